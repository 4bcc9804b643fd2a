package c5

import (
	"bytes"
	"testing"
)

func benchCorpus() []byte {
	return bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 2000)
}

func BenchmarkEncode(b *testing.B) {
	src := benchCorpus()
	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Encode(src); err != nil {
			b.Fatalf("Encode: %v", err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	src := benchCorpus()
	compressed, err := Encode(src)
	if err != nil {
		b.Fatalf("Encode: %v", err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Decode(compressed); err != nil {
			b.Fatalf("Decode: %v", err)
		}
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	src := benchCorpus()
	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		compressed, err := Encode(src)
		if err != nil {
			b.Fatalf("Encode: %v", err)
		}
		if _, err := Decode(compressed); err != nil {
			b.Fatalf("Decode: %v", err)
		}
	}
}

func BenchmarkEncodeInto_BufferReuse(b *testing.B) {
	src := benchCorpus()
	n := len(src)

	paddedIn := make([]byte, n+Padding)
	copy(paddedIn, src)
	out := make([]byte, MaxEncodedLen(n)+Padding)

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := EncodeInto(out, paddedIn, n, nil); err != nil {
			b.Fatalf("EncodeInto: %v", err)
		}
	}
}
