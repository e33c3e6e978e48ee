package permutations

import (
	"math/bits"

	"github.com/optable/hkdfrand/pkg/hkdfrand"
)

type naive struct {
	p []int64
}

// NewNaive builds a Fisher-Yates permutation of n elements with every
// swap index drawn from prng. Two parties holding generators keyed
// with the same seed derive the identical permutation without
// communicating it.
func NewNaive(prng hkdfrand.SecurePrng, n int64) (naive, error) {
	var p = make([]int64, n)
	// Initialize a trivial permutation
	for i := int64(0); i < n; i++ {
		p[i] = i
	}
	// and shuffle it back to front
	for i := n - 1; i > 0; i-- {
		j, err := uniform(prng, uint64(i)+1)
		if err != nil {
			return naive{}, err
		}
		p[i], p[j] = p[j], p[i]
	}

	return naive{p: p}, nil
}

// Shuffle using the naive method
// with n the number to permute/the index of the permutation vector.
func (k naive) Shuffle(n int64) int64 {
	return k.p[n]
}

// uniform draws from [0,n) without modulo bias: Rand64 is masked down
// to the next power of two covering n and overshoots are rejected.
func uniform(prng hkdfrand.SecurePrng, n uint64) (int64, error) {
	mask := uint64(1)<<bits.Len64(n-1) - 1
	for {
		v, err := prng.Rand64()
		if err != nil {
			return 0, err
		}
		if v &= mask; v < n {
			return int64(v), nil
		}
	}
}
