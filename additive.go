/*
Package additive provides a data structure for fixed-width integers that
supports additive secret sharing, designed for use within secure multi-party
computation (MPC) protocol implementations.

An integer is split into two or more [Share] values such that no proper subset
of the shares reveals any information about the integer, while a complete set
of shares can be recombined with [Sum] and the integer recovered with
[Share.Value]. Shares of compatible parameters can also be transformed locally:
adding the shares of two share sets pairwise yields shares of the sum of the
two original integers, and multiplying every share of a set by the same scalar
yields shares of the scaled integer. Both operations wrap modulo 2^exponent,
reproducing twos-complement overflow semantics for signed shares.

All randomness is drawn from an injected [sampling.PRNG]; see the
utils/sampling package for a cryptographically secure source and for a keyed,
deterministic one.
*/
package additive
