package hkdfrand

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/optable/hkdfrand/internal/entropy"
	"github.com/optable/hkdfrand/internal/expand"
)

/*
A replayable cryptographically secure pseudorandom number generator
built on a HMAC-based key derivation function (HKDF, RFC 5869).

HKDFs consist of two functions, extract and expand. Given an input
seed with sufficient entropy, extract condenses it into uniform key
material which expand then stretches into pseudorandom output. The
output is deterministic for a fixed seed, so multiple parties holding
the same seed replay the exact same stream without any communication.

A single extract step can safely expand to 255 * 32 bytes. Once those
have been consumed the generator deterministically re-salts the seed
with a monotonic counter and expands a fresh batch, so there is no
bound on the number of pseudorandom bytes one seed can produce.
*/

const (
	// SeedLength is the seed size, in bytes, expected by New and
	// produced by GenerateSeed.
	SeedLength = expand.KeyLength

	// suites for the underlying expansion hash
	HKDFSHA256  = expand.HKDFSHA256
	HKDFBlake2b = expand.HKDFBlake2b
)

// SecurePrng is the interface satisfied by both generator variants.
type SecurePrng interface {
	Rand8() (uint8, error)
	Rand64() (uint64, error)
}

// source is the state machine shared by both variants: the immutable
// seed key, the current batch of expanded bytes, the read cursor into
// it and the counter salting the next expansion.
type source struct {
	suite int
	key   []byte
	buf   []byte
	pos   int
	salt  uint64
}

func newSource(suite int, seed []byte) (*source, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("cannot create a prng with a seed of %d bytes instead of the expected %d", len(seed), SeedLength)
	}

	var s = &source{suite: suite, key: append([]byte(nil), seed...)}
	if err := s.resalt(); err != nil {
		return nil, err
	}

	return s, nil
}

// resalt replaces the batch wholesale with an expansion of the key
// under the current counter salt and advances the counter. State is
// only touched on success, so a failed expansion leaves the cursor and
// counter exactly where they were.
func (s *source) resalt() error {
	buf, err := expand.Expand(s.suite, s.key, expand.Salt(s.salt))
	if err != nil {
		return err
	}

	s.buf = buf
	s.pos = 0
	s.salt++
	return nil
}

func (s *source) rand8() (uint8, error) {
	if s.pos == len(s.buf) {
		if err := s.resalt(); err != nil {
			return 0, err
		}
	}

	b := s.buf[s.pos]
	s.pos++
	return b, nil
}

// rand64 packs the next eight bytes of the stream little endian: the
// first byte consumed is the least significant. A batch with fewer
// than eight unread bytes is discarded and regenerated whole first;
// reads never straddle two batches.
func (s *source) rand64() (uint64, error) {
	if len(s.buf)-s.pos < 8 {
		if err := s.resalt(); err != nil {
			return 0, err
		}
	}

	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8
	return v, nil
}

// Prng is the thread safe generator variant: a single lock serializes
// every read, including any batch regeneration it triggers, so no two
// callers ever observe overlapping ranges of the stream.
type Prng struct {
	mu  sync.Mutex
	src *source
}

// New creates a thread safe prng of suite t keyed with seed. The seed
// must be SeedLength bytes with sufficient entropy, such as one
// produced by GenerateSeed. Fails on a seed of the wrong size or on
// internal cryptographic errors.
func New(t int, seed []byte) (*Prng, error) {
	src, err := newSource(t, seed)
	if err != nil {
		return nil, err
	}
	return &Prng{src: src}, nil
}

// Rand8 returns 8 bits of randomness.
func (p *Prng) Rand8() (uint8, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.src.rand8()
}

// Rand64 returns 64 bits of randomness, packed little endian from the
// next eight bytes of the stream.
func (p *Prng) Rand64() (uint64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.src.rand64()
}

// SingleThreadPrng is the lock free variant for single owner use,
// avoiding the synchronization overhead of Prng. Calling it from
// multiple goroutines is a data race; callers needing shared access
// must use Prng instead.
type SingleThreadPrng struct {
	src *source
}

// NewSingleThread creates a single owner prng of suite t keyed with
// seed. Seed requirements and failure modes are the same as New's.
func NewSingleThread(t int, seed []byte) (*SingleThreadPrng, error) {
	src, err := newSource(t, seed)
	if err != nil {
		return nil, err
	}
	return &SingleThreadPrng{src: src}, nil
}

// Rand8 returns 8 bits of randomness.
func (p *SingleThreadPrng) Rand8() (uint8, error) {
	return p.src.rand8()
}

// Rand64 returns 64 bits of randomness, packed little endian from the
// next eight bytes of the stream.
func (p *SingleThreadPrng) Rand64() (uint64, error) {
	return p.src.rand64()
}

// GenerateSeed returns a fresh seed of SeedLength bytes drawn from the
// system entropy source, suitable for keying either variant.
func GenerateSeed() ([]byte, error) {
	return entropy.Bytes(SeedLength)
}
