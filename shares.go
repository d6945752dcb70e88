package additive

import (
	"fmt"
	"math/big"

	"github.com/nthparty/additive/utils/sampling"
)

// Shares splits value into quantity additive secret shares constructed
// according to the supplied parameters, drawing quantity-1 uniformly random
// shares from prng and balancing the set with a final computed share so that
// [Sum] over the complete set reconstructs value.
//
// Each returned share, taken in isolation, is statistically indistinguishable
// from a uniformly random element of [0, 2^exponent): hiding is
// information-theoretic provided prng is uniform and independent per draw.
// The quantity must be at least 2, and value, exponent and signed must
// satisfy the constraints of [NewShare].
func Shares(prng sampling.PRNG, value *big.Int, quantity, exponent int, signed bool) ([]*Share, error) {
	if prng == nil {
		return nil, fmt.Errorf("%w: prng must not be nil", ErrParameter)
	}
	if quantity < 2 {
		return nil, fmt.Errorf("%w: quantity of shares must be at least 2", ErrParameter)
	}

	target, err := internalFromValue(value, exponent, signed)
	if err != nil {
		return nil, err
	}

	mod := fieldSize(exponent)
	offset := offsetTerm(exponent)

	shares := make([]*Share, 0, quantity)
	total := new(big.Int)
	for i := 0; i < quantity-1; i++ {
		v, err := sampling.RandBigIntLE(prng, exponent/8)
		if err != nil {
			return nil, fmt.Errorf("cannot sample share: %w", err)
		}
		if signed {
			// Random shares carry one offset term each, like every
			// other share. Adding the offset permutes the uniform
			// distribution over [0, 2^exponent), so the share stays
			// indistinguishable from random.
			v.Add(v, offset)
			v.Mod(v, mod)
		}
		shares = append(shares, newShareUnchecked(v, exponent, signed))
		total.Add(total, v)
	}

	last := new(big.Int).Sub(target, total)
	if signed && quantity%2 == 0 {
		// Reconstruction performs quantity-1 pairwise additions, each
		// re-adding one offset term. Offset terms cancel in pairs
		// modulo 2^exponent, so one must be restored here whenever
		// quantity-1 is odd for exactly one to survive in the
		// aggregate.
		last.Add(last, offset)
	}
	last.Mod(last, mod)
	shares = append(shares, newShareUnchecked(last, exponent, signed))

	return shares, nil
}

// SharesFromInt64 is a convenience wrapper around [Shares] for values that
// fit a native word.
func SharesFromInt64(prng sampling.PRNG, value int64, quantity, exponent int, signed bool) ([]*Share, error) {
	return Shares(prng, big.NewInt(value), quantity, exponent, signed)
}
