// SPDX-License-Identifier: MIT
// Source: github.com/dgnorth/c5

package c5

// writeVarint writes v to dst[*pos:] using unsigned base-128 little-endian
// encoding (7 payload bits per byte, continuation bit 0x80 set on every byte
// but the last), advancing *pos past it. dst must have enough room; callers
// size the output buffer so this never runs out of space.
func writeVarint(dst []byte, pos *int, v uint32) {
	for v >= 0x80 {
		dst[*pos] = byte(v) | 0x80
		*pos++
		v >>= 7
	}

	dst[*pos] = byte(v)
	*pos++
}

// readVarint reads a base-128 little-endian varint from src starting at
// *pos, advancing *pos past it. Returns ErrTruncatedStream if the varint runs
// past the end of src.
func readVarint(src []byte, pos *int) (uint32, error) {
	var v uint32
	var shift uint

	for {
		if *pos >= len(src) {
			return 0, ErrTruncatedStream
		}

		b := src[*pos]
		*pos++

		v |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, nil
		}

		shift += 7
	}
}
