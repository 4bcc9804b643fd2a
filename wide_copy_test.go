package c5

import (
	"bytes"
	"testing"
)

func TestCopyMatch_ShortAgoShortLen(t *testing.T) {
	dst := make([]byte, 32+Padding)
	copy(dst, []byte("AB"))

	copyMatch(dst, 2, 2, 5) // ago=2, len=5, below the periodic threshold
	want := "ABABABA"
	if string(dst[:len(want)]) != want {
		t.Fatalf("got %q want %q", dst[:len(want)], want)
	}
}

func TestCopyMatch_PeriodicOverlap(t *testing.T) {
	dst := make([]byte, 64+Padding)
	copy(dst, []byte("AB"))

	copyMatch(dst, 2, 2, 20) // ago=2, len=20 >= 10: periodic path
	want := bytes.Repeat([]byte("AB"), 11)[:22]
	if !bytes.Equal(dst[:22], want) {
		t.Fatalf("got %q want %q", dst[:22], want)
	}
}

func TestCopyMatch_WideStridedNonOverlapping(t *testing.T) {
	dst := make([]byte, 64+Padding)
	copy(dst, []byte("0123456789abcdef")) // 16 bytes, ago=16 >= length

	copyMatch(dst, 16, 16, 16)
	want := "0123456789abcdef0123456789abcdef"
	if string(dst[:len(want)]) != want {
		t.Fatalf("got %q want %q", dst[:len(want)], want)
	}
}

func TestCopyMatch_WideStridedSelfOverlapping(t *testing.T) {
	dst := make([]byte, 128+Padding)
	copy(dst, []byte("ABCDEFGH")) // 8 bytes, ago=8, len > ago: self-referential

	copyMatch(dst, 8, 8, 40)
	want := bytes.Repeat([]byte("ABCDEFGH"), 6)
	if !bytes.Equal(dst[:48], want) {
		t.Fatalf("got %q want %q", dst[:48], want)
	}
}

func TestCopyMatch_ZeroLengthIsNoop(t *testing.T) {
	dst := make([]byte, 16+Padding)
	copy(dst, []byte("sentinel"))
	before := append([]byte{}, dst...)

	copyMatch(dst, 8, 1, 0)

	if !bytes.Equal(dst, before) {
		t.Fatalf("zero-length copyMatch mutated the buffer")
	}
}

func TestWordEqual(t *testing.T) {
	a := []byte{1, 2, 3, 4, 5}
	b := []byte{1, 2, 3, 4, 9}

	if !wordEqual(a, 0, b, 0) {
		t.Fatalf("expected the first 4 bytes to compare equal")
	}
	if wordEqual(a, 1, b, 1) {
		t.Fatalf("expected bytes [1:5] to differ (5 vs 9)")
	}
}

func TestCopyLiteral(t *testing.T) {
	src := []byte("hello, world")
	dst := make([]byte, 32)

	copyLiteral(dst, 3, src, 0, 5)
	if string(dst[3:8]) != "hello" {
		t.Fatalf("got %q want %q", dst[3:8], "hello")
	}
}
