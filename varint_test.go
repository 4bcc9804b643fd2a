package c5

import "testing"

func TestVarint_RoundTrip(t *testing.T) {
	values := []uint32{0, 1, 2, 127, 128, 129, 16383, 16384, 16385, 1 << 20, 1 << 28, 0xffffffff, 0xfffffff1}

	for _, v := range values {
		buf := make([]byte, 16)
		pos := 0
		writeVarint(buf, &pos, v)

		readPos := 0
		got, err := readVarint(buf[:pos], &readPos)
		if err != nil {
			t.Fatalf("readVarint(%d) failed: %v", v, err)
		}
		if got != v {
			t.Fatalf("round-trip mismatch: wrote %d, read %d", v, got)
		}
		if readPos != pos {
			t.Fatalf("readVarint consumed %d bytes, writeVarint wrote %d", readPos, pos)
		}
	}
}

func TestVarint_Sequence(t *testing.T) {
	buf := make([]byte, 32)
	pos := 0
	want := []uint32{0, 300, 5, 1 << 25}
	for _, v := range want {
		writeVarint(buf, &pos, v)
	}

	readPos := 0
	for _, v := range want {
		got, err := readVarint(buf[:pos], &readPos)
		if err != nil {
			t.Fatalf("readVarint failed: %v", err)
		}
		if got != v {
			t.Fatalf("sequence mismatch: want %d got %d", v, got)
		}
	}
}

func TestVarint_TruncatedReturnsError(t *testing.T) {
	buf := make([]byte, 8)
	pos := 0
	writeVarint(buf, &pos, 1<<28) // multi-byte varint

	truncated := buf[:pos-1]
	readPos := 0
	if _, err := readVarint(truncated, &readPos); err != ErrTruncatedStream {
		t.Fatalf("expected ErrTruncatedStream, got %v", err)
	}
}
