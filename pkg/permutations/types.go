package permutations

import (
	"fmt"

	"github.com/optable/hkdfrand/pkg/hkdfrand"
)

// Permutations is an interface satisfied by anything with a proper
// Shuffle method
type Permutations interface {
	Shuffle(n int64) int64
}

const (
	Naive = iota
	Nil
)

// New creates a permutation of type t over n elements, drawing from
// prng. Generators keyed with the same seed yield the same
// permutation on every party.
func New(t int, prng hkdfrand.SecurePrng, n int64) (Permutations, error) {
	switch t {
	case Naive:
		return NewNaive(prng, n)
	case Nil:
		return NewNil(n)
	default:
		return nil, fmt.Errorf("unsupported permutation type %d", t)
	}
}
