package sampling

import (
	"io"
	"math/big"
)

// RandBigIntLE reads size bytes from prng and returns them interpreted as an
// unsigned little-endian integer, uniformly distributed in [0, 2^(8*size)).
func RandBigIntLE(prng PRNG, size int) (*big.Int, error) {
	p := make([]byte, size)
	if _, err := io.ReadFull(prng, p); err != nil {
		return nil, err
	}
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
	return new(big.Int).SetBytes(p), nil
}
