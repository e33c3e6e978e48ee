package entropy

import (
	"bytes"
	"testing"
)

func TestBytesLength(t *testing.T) {
	for _, n := range []int{1, 16, 32, 8160} {
		b, err := Bytes(n)
		if err != nil {
			t.Fatal(err)
		}
		if len(b) != n {
			t.Fatalf("requested %d bytes and got %d", n, len(b))
		}
	}
}

func TestBytesFresh(t *testing.T) {
	one, err := Bytes(32)
	if err != nil {
		t.Fatal(err)
	}
	two, err := Bytes(32)
	if err != nil {
		t.Fatal(err)
	}
	// 32 equal bytes from a healthy entropy source is not happening
	if bytes.Equal(one, two) {
		t.Fatal("two independent draws returned identical bytes")
	}
}
