package permutations

import (
	"testing"

	"github.com/optable/hkdfrand/pkg/hkdfrand"
)

const xxx = 1000

func newPrng(t *testing.T) hkdfrand.SecurePrng {
	t.Helper()
	prng, err := hkdfrand.NewSingleThread(hkdfrand.HKDFSHA256, make([]byte, hkdfrand.SeedLength))
	if err != nil {
		t.Fatal(err)
	}
	return prng
}

func TestNaiveBijection(t *testing.T) {
	p, err := NewNaive(newPrng(t), xxx)
	if err != nil {
		t.Fatal(err)
	}

	var seen = make([]bool, xxx)
	for i := int64(0); i < xxx; i++ {
		v := p.Shuffle(i)
		if v < 0 || v >= xxx {
			t.Fatalf("position %d permuted out of range to %d", i, v)
		}
		if seen[v] {
			t.Fatalf("position %d permuted to %d twice", i, v)
		}
		seen[v] = true
	}
}

func TestNaiveReplayable(t *testing.T) {
	one, err := NewNaive(newPrng(t), xxx)
	if err != nil {
		t.Fatal(err)
	}
	two, err := NewNaive(newPrng(t), xxx)
	if err != nil {
		t.Fatal(err)
	}

	// same seed, same permutation, no communication
	for i := int64(0); i < xxx; i++ {
		if one.Shuffle(i) != two.Shuffle(i) {
			t.Fatalf("permutations diverged at position %d", i)
		}
	}
}

func TestNil(t *testing.T) {
	p, err := NewNil(xxx)
	if err != nil {
		t.Fatal(err)
	}
	for i := int64(0); i < xxx; i++ {
		if p.Shuffle(i) != i {
			t.Fatalf("nil permutation moved position %d", i)
		}
	}
}

func TestNewUnknownType(t *testing.T) {
	if _, err := New(42, newPrng(t), xxx); err == nil {
		t.Fatal("created a permutation of an unknown type")
	}
}
