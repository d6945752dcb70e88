package additive

import "errors"

// Sentinel errors distinguishing the failure modes of share construction,
// arithmetic and decoding. Every error returned by this package is one of
// these values or wraps one of them, and can be tested with [errors.Is].
var (
	// ErrParameter indicates an unsupported exponent or share quantity.
	ErrParameter = errors.New("invalid share parameters")

	// ErrRange indicates a value that cannot be represented with the
	// supplied exponent and signedness.
	ErrRange = errors.New("value is not in range that can be represented using supplied parameters")

	// ErrCompatibility indicates an operation over shares with mismatched
	// exponent or signedness.
	ErrCompatibility = errors.New("shares must have compatible parameters to be added")

	// ErrDomain indicates a scalar outside the domain supported by the
	// share's parameters.
	ErrDomain = errors.New("unsigned shares cannot be multiplied by a negative scalar")

	// ErrFormat indicates a malformed binary or Base64 encoding of a share.
	ErrFormat = errors.New("invalid binary encoding of share")
)
