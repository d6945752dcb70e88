package additive

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Share is one additive secret share of a fixed-width integer. A Share is
// parameterized by an exponent, which defines the modulus 2^exponent of the
// underlying field as well as the encoded width in bytes, and by a signedness
// flag, which determines how the internal representation maps to the logical
// integer. Signed shares store their value with an offset of 2^(exponent-1)
// so that the same modular addition combines shares and reconstructs values.
//
// A Share is immutable after construction: every operation returns a fresh
// Share, and distinct Share values never interfere, so they are safe to use
// from multiple goroutines.
type Share struct {
	value    big.Int
	exponent int
	signed   bool
}

// NewShare returns a share of the supplied value constructed according to the
// supplied parameters. The exponent must be a multiple of 8 in [8, 128]
// ([ErrParameter] otherwise) and the value must lie in [0, 2^exponent) when
// unsigned or in [-2^(exponent-1), 2^(exponent-1)) when signed ([ErrRange]
// otherwise).
//
// A share built this way represents the value on its own; shares that hide
// the value behind randomness are produced by [Shares].
func NewShare(value *big.Int, exponent int, signed bool) (*Share, error) {
	internal, err := internalFromValue(value, exponent, signed)
	if err != nil {
		return nil, err
	}
	return newShareUnchecked(internal, exponent, signed), nil
}

// NewShareFromInt64 is a convenience wrapper around [NewShare] for values
// that fit a native word.
func NewShareFromInt64(value int64, exponent int, signed bool) (*Share, error) {
	return NewShare(big.NewInt(value), exponent, signed)
}

// newShareUnchecked constructs a share around an internal representation that
// is already known to lie in [0, 2^exponent). It is the only way to build a
// Share without validation and must stay confined to the share generator and
// to operations whose modular reduction guarantees the range invariant.
func newShareUnchecked(internal *big.Int, exponent int, signed bool) *Share {
	s := &Share{exponent: exponent, signed: signed}
	s.value.Set(internal)
	return s
}

// internalFromValue checks that the supplied parameters are compatible and
// returns the offset-adjusted internal representation of value.
func internalFromValue(value *big.Int, exponent int, signed bool) (*big.Int, error) {
	if err := validateExponent(exponent); err != nil {
		return nil, err
	}
	if value == nil {
		return nil, fmt.Errorf("%w: value must not be nil", ErrParameter)
	}

	minimum := new(big.Int)
	maximum := new(big.Int)
	if signed {
		maximum.Lsh(bigOne, uint(exponent-1))
		minimum.Neg(maximum)
	} else {
		maximum.Lsh(bigOne, uint(exponent))
	}

	if value.Cmp(minimum) < 0 || value.Cmp(maximum) >= 0 {
		return nil, fmt.Errorf("%w: exponent %d, signed %t", ErrRange, exponent, signed)
	}

	internal := new(big.Int).Set(value)
	if signed {
		internal.Add(internal, maximum)
	}
	return internal, nil
}

func validateExponent(exponent int) error {
	if exponent < 1 || exponent > 128 || exponent%8 != 0 {
		return fmt.Errorf("%w: exponent must be a positive multiple of 8 that is at most 128", ErrParameter)
	}
	return nil
}

var bigOne = big.NewInt(1)

// fieldSize returns the modulus 2^exponent.
func fieldSize(exponent int) *big.Int {
	return new(big.Int).Lsh(bigOne, uint(exponent))
}

// offsetTerm returns 2^(exponent-1), the constant added exactly once to the
// internal representation of every signed share.
func offsetTerm(exponent int) *big.Int {
	return new(big.Int).Lsh(bigOne, uint(exponent-1))
}

// Exponent returns the log2 of the modulus over which the share is defined.
func (s *Share) Exponent() int {
	return s.exponent
}

// Signed reports whether the share represents a signed integer.
func (s *Share) Signed() bool {
	return s.signed
}

// Value returns the integer represented by a fully reconstructed aggregate
// share. No checking is performed that the share is fully reconstructed; a
// share that is still missing siblings yields an integer indistinguishable
// from random.
func (s *Share) Value() *big.Int {
	v := new(big.Int).Set(&s.value)
	if s.signed {
		v.Sub(v, offsetTerm(s.exponent))
	}
	return v
}

// Add returns the share of the sum of the two integers underlying s and t.
// Both shares must have the same exponent and signedness; Add returns
// [ErrCompatibility] otherwise. The result wraps modulo 2^exponent.
//
// For signed shares the internal offset term is re-added once per pairwise
// addition, so that exactly one offset term survives in the aggregate no
// matter how many shares are combined.
func (s *Share) Add(t *Share) (*Share, error) {
	if s.exponent != t.exponent || s.signed != t.signed {
		return nil, ErrCompatibility
	}

	sum := new(big.Int).Add(&s.value, &t.value)
	if s.signed {
		sum.Add(sum, offsetTerm(s.exponent))
	}
	sum.Mod(sum, fieldSize(s.exponent))

	return newShareUnchecked(sum, s.exponent, s.signed), nil
}

// Sum folds a sequence of compatible shares into a single share with repeated
// [Share.Add]. A single share is returned unchanged, and an empty sequence
// returns [ErrParameter] since no neutral share exists without parameters.
// Summing a complete share set produced by [Shares] reconstructs the shared
// integer.
func Sum(shares ...*Share) (*Share, error) {
	if len(shares) == 0 {
		return nil, fmt.Errorf("%w: cannot sum an empty sequence of shares", ErrParameter)
	}

	acc := shares[0]
	for _, s := range shares[1:] {
		var err error
		if acc, err = acc.Add(s); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// Mul returns the share of k times the integer underlying s. Multiplying
// every share of a complete share set by the same scalar yields a share set
// of the scaled integer. The result wraps modulo 2^exponent. An unsigned
// share cannot be multiplied by a negative scalar; Mul returns [ErrDomain]
// in that case.
//
// For signed shares the product k*internal carries k offset terms, so a
// correction of (|k|-1)*2^(exponent-1) is added to leave exactly one.
func (s *Share) Mul(k *big.Int) (*Share, error) {
	if k == nil {
		return nil, fmt.Errorf("%w: scalar must not be nil", ErrParameter)
	}
	if !s.signed && k.Sign() < 0 {
		return nil, ErrDomain
	}

	product := new(big.Int).Mul(&s.value, k)
	if s.signed {
		correction := new(big.Int).Abs(k)
		correction.Sub(correction, bigOne)
		correction.Mul(correction, offsetTerm(s.exponent))
		product.Add(product, correction)
	}
	product.Mod(product, fieldSize(s.exponent))

	return newShareUnchecked(product, s.exponent, s.signed), nil
}

// MulScalar returns the share of k times the integer underlying s, for any
// native integer scalar type. See [Share.Mul].
func MulScalar[T constraints.Integer](s *Share, k T) (*Share, error) {
	scalar := new(big.Int)
	if k < 0 {
		scalar.SetInt64(int64(k))
	} else {
		scalar.SetUint64(uint64(k))
	}
	return s.Mul(scalar)
}

// Equal reports whether s and t have the same parameters and the same
// internal representation.
func (s *Share) Equal(t *Share) bool {
	return s.exponent == t.exponent && s.signed == t.signed && s.value.Cmp(&t.value) == 0
}

// String returns a human-readable rendering of the share exposing its
// internal representation. It is meant for debugging; shares intended to stay
// secret should not be logged.
func (s *Share) String() string {
	return fmt.Sprintf("share(%s, %d, %t)", s.value.String(), s.exponent, s.signed)
}
