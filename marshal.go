package additive

import (
	"encoding/base64"
	"fmt"
	"io"
)

// Binary encoding of a share: one header byte packing the exponent and the
// signedness, ((exponent-1) << 1) | signed_bit, followed by exponent/8 bytes
// of the internal representation in little-endian order.

// BinarySize returns the size in bytes of the share once marshalled into a
// binary form.
func (s *Share) BinarySize() int {
	return 1 + s.exponent/8
}

// MarshalBinary encodes the share into a binary form on a newly allocated
// slice of exactly [Share.BinarySize] bytes. It implements the
// [encoding.BinaryMarshaler] interface.
func (s *Share) MarshalBinary() ([]byte, error) {
	p := make([]byte, s.BinarySize())

	header := byte((s.exponent - 1) << 1)
	if s.signed {
		header |= 1
	}
	p[0] = header

	// big.Int.Bytes is big-endian; the wire format is little-endian.
	be := s.value.Bytes()
	for i, b := range be {
		p[1+len(be)-1-i] = b
	}

	return p, nil
}

// UnmarshalBinary decodes p, produced by [Share.MarshalBinary], on the target
// share. It implements the [encoding.BinaryUnmarshaler] interface, and
// returns [ErrFormat] if the header encodes an invalid exponent or if the
// payload length does not match it.
func (s *Share) UnmarshalBinary(p []byte) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty encoding", ErrFormat)
	}

	exponent := int(p[0])>>1 + 1
	if exponent%8 != 0 {
		return fmt.Errorf("%w: invalid exponent in binary encoding of share", ErrFormat)
	}
	if len(p) != 1+exponent/8 {
		return fmt.Errorf("%w: encoding has %d payload bytes but exponent %d requires %d", ErrFormat, len(p)-1, exponent, exponent/8)
	}

	be := make([]byte, len(p)-1)
	for i, b := range p[1:] {
		be[len(be)-1-i] = b
	}

	// The payload spans exactly exponent/8 bytes, so the decoded internal
	// representation is below 2^exponent and the range invariant holds
	// without further validation.
	s.value.SetBytes(be)
	s.exponent = exponent
	s.signed = p[0]&1 == 1
	return nil
}

// WriteTo writes the share on w. It implements the [io.WriterTo] interface,
// and writes exactly [Share.BinarySize] bytes on w.
func (s *Share) WriteTo(w io.Writer) (int64, error) {
	p, err := s.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(p)
	return int64(n), err
}

// ReadFrom reads one encoded share from r on the target share. It implements
// the [io.ReaderFrom] interface. The encoding is self-describing: the number
// of payload bytes to consume is recovered from the header byte.
func (s *Share) ReadFrom(r io.Reader) (int64, error) {
	var header [1]byte
	if n, err := io.ReadFull(r, header[:]); err != nil {
		return int64(n), err
	}

	exponent := int(header[0])>>1 + 1
	if exponent%8 != 0 {
		return 1, fmt.Errorf("%w: invalid exponent in binary encoding of share", ErrFormat)
	}

	p := make([]byte, 1+exponent/8)
	p[0] = header[0]
	n, err := io.ReadFull(r, p[1:])
	if err != nil {
		return int64(1 + n), err
	}
	return int64(1 + n), s.UnmarshalBinary(p)
}

// MarshalText encodes the share as standard padded Base64 of its binary
// form. It implements the [encoding.TextMarshaler] interface.
func (s *Share) MarshalText() ([]byte, error) {
	p, err := s.MarshalBinary()
	if err != nil {
		return nil, err
	}
	text := make([]byte, base64.StdEncoding.EncodedLen(len(p)))
	base64.StdEncoding.Encode(text, p)
	return text, nil
}

// UnmarshalText decodes standard Base64 text produced by [Share.MarshalText]
// on the target share. It implements the [encoding.TextUnmarshaler]
// interface.
func (s *Share) UnmarshalText(text []byte) error {
	p := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(p, text)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrFormat, err)
	}
	return s.UnmarshalBinary(p[:n])
}

// Base64 returns the share encoded as a standard padded Base64 string.
// Encoding cannot fail on a constructed share, whose exponent and internal
// representation already satisfy the wire format's constraints, so the error
// of [Share.MarshalText] is discarded.
func (s *Share) Base64() string {
	text, _ := s.MarshalText()
	return string(text)
}

// ShareFromBytes decodes the binary encoding of a share.
func ShareFromBytes(p []byte) (*Share, error) {
	s := new(Share)
	if err := s.UnmarshalBinary(p); err != nil {
		return nil, err
	}
	return s, nil
}

// ShareFromBase64 decodes the Base64 encoding of a share.
func ShareFromBase64(text string) (*Share, error) {
	s := new(Share)
	if err := s.UnmarshalText([]byte(text)); err != nil {
		return nil, err
	}
	return s, nil
}
