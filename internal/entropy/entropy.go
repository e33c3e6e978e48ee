package entropy

import (
	"crypto/rand"
	"fmt"
)

// Bytes draws n bytes from the operating system entropy source. It is
// the only place the library touches true randomness; the generator
// itself never does.
func Bytes(n int) ([]byte, error) {
	var b = make([]byte, n)

	if m, err := rand.Read(b); err != nil {
		return nil, err
	} else if m != n {
		return nil, fmt.Errorf("requested %d entropy bytes and got %d", n, m)
	}

	return b, nil
}
