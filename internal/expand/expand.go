package expand

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/hkdf"
)

/*
The expansion engine behind the generator: a single HKDF (RFC 5869)
extract-and-expand pass over (key, salt) producing one full batch of
pseudorandom bytes. The salt is derived from a resalting counter so
the generator can keep producing batches deterministically once the
current one is exhausted.
*/

const (
	// KeyLength is the input key size, in bytes, expected by the
	// extract step.
	KeyLength = 32

	// hashLength is the digest size of both suite hashes.
	hashLength = 32

	// MaxExpandLength is the most bytes a single extract step can
	// safely expand to: 255 blocks of hashLength bytes (RFC 5869,
	// section 2.3).
	MaxExpandLength = 255 * hashLength

	HKDFSHA256 = iota
	HKDFBlake2b
)

var (
	ErrUnknownSuite      = fmt.Errorf("cannot expand with an unknown hkdf suite")
	ErrKeyLengthMismatch = fmt.Errorf("provided key is not %d bytes long", KeyLength)
)

// saltPrefix domain separates the generator's salts from other users
// of the same key material.
var saltPrefix = []byte("hkdfrand")

// Salt encodes a resalting counter into the salt fed to the extract
// step. The encoding is fixed (prefix followed by the counter in big
// endian): parties sharing a key must derive identical salts to replay
// the same stream.
func Salt(counter uint64) []byte {
	salt := make([]byte, len(saltPrefix)+8)
	copy(salt, saltPrefix)
	binary.BigEndian.PutUint64(salt[len(saltPrefix):], counter)
	return salt
}

// newHash selects the hash constructor for suite t.
func newHash(t int) (func() hash.Hash, error) {
	switch t {
	case HKDFSHA256:
		return sha256.New, nil
	case HKDFBlake2b:
		return func() hash.Hash {
			// never errors with a nil key
			h, _ := blake2b.New256(nil)
			return h
		}, nil
	default:
		return nil, ErrUnknownSuite
	}
}

// Expand runs one extract-and-expand pass of suite t over (key, salt)
// and returns a fresh batch of MaxExpandLength pseudorandom bytes.
func Expand(t int, key, salt []byte) ([]byte, error) {
	if len(key) != KeyLength {
		return nil, ErrKeyLengthMismatch
	}

	h, err := newHash(t)
	if err != nil {
		return nil, err
	}

	batch := make([]byte, MaxExpandLength)
	if _, err := io.ReadFull(hkdf.New(h, key, salt, nil), batch); err != nil {
		return nil, err
	}

	return batch, nil
}
