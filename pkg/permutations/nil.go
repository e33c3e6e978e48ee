package permutations

type null int

// NewNil is the identity permutation over any number of elements,
// useful to take shuffling out of the picture entirely.
func NewNil(n int64) (null, error) {
	return 0, nil
}

// Shuffle using the nil method just returns the same value
func (p null) Shuffle(n int64) int64 {
	return n
}
