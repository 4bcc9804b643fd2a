// SPDX-License-Identifier: MIT
// Source: github.com/dgnorth/c5

package c5

import "encoding/binary"

// copyMatch reproduces a back-reference copy: length bytes read starting at
// dst[outPos-ago:] and written starting at dst[outPos:], handling the three
// cases from spec.md §4.3. dst must carry Padding trailing bytes past the
// logical end of the stream so the 8-byte strided copies below may overwrite
// up to 7 bytes past outPos+length.
//
// Adapted from the teacher's copy.go (copyBackRef), which grows an
// overlapping copy by repeated doubling; this port instead implements the
// spec's explicit 8-byte periodic-replication algorithm for small ago, since
// the doubling trick does not reproduce the exact periodic pattern the wire
// format requires bit-for-bit.
func copyMatch(dst []byte, outPos, ago, length int) {
	if length == 0 {
		return
	}

	src := outPos - ago

	switch {
	case ago >= 8:
		copyWideStrided(dst, outPos, src, length)
	case length >= 10:
		copyPeriodic(dst, outPos, src, ago, length)
	default:
		for i := 0; i < length; i++ {
			dst[outPos+i] = dst[src+i]
		}
	}
}

// copyWideStrided copies length bytes from dst[src:] to dst[outPos:] eight
// bytes at a time. The per-chunk copy is always a single 8-byte slice copy
// (safe for any overlap within that chunk); doing it in a sequential stride
// rather than one bulk copy is what makes self-overlapping copies (src+i
// wrapping into bytes outPos+i already wrote) reproduce the LZ77 repeating
// pattern when ago < length.
func copyWideStrided(dst []byte, outPos, src, length int) {
	for i := 0; i < length; i += 8 {
		copy(dst[outPos+i:outPos+i+8], dst[src+i:src+i+8])
	}
}

// copyPeriodic handles ago < 8 && length >= 10: the copy is a repeating
// pattern of period ago. The first 8 destination bytes are primed byte-by-byte
// (then 2, then 4 at a time) so that the first 64-bit word already holds the
// correct repeating pattern; subsequent 8-byte chunks step their source
// pointer by 8 % ago, preserving periodicity across iterations.
func copyPeriodic(dst []byte, outPos, src, ago, length int) {
	dst[outPos+0] = dst[src+0]
	dst[outPos+1] = dst[src+1]
	copy(dst[outPos+2:outPos+4], dst[src+(2%ago):src+(2%ago)+2])
	copy(dst[outPos+4:outPos+8], dst[src+(4%ago):src+(4%ago)+4])

	step := 8 % ago
	s := src

	for i := 0; i < length; i += 8 {
		copy(dst[outPos+i:outPos+i+8], dst[s:s+8])
		s += step
	}
}

// wordEqual reports whether the 4 bytes at a[i:i+4] equal the 4 bytes at
// b[j:j+4], used by the match extender to compare 4 bytes per step instead of
// one. Relies on both slices carrying Padding trailing bytes.
func wordEqual(a []byte, i int, b []byte, j int) bool {
	return binary.LittleEndian.Uint32(a[i:i+4]) == binary.LittleEndian.Uint32(b[j:j+4])
}

// copyLiteral copies length bytes of input verbatim into the output stream.
// Unlike copyMatch this never self-overlaps (src is the input buffer, dst is
// the output buffer), so a single slice copy suffices; Go's copy() already
// compiles to an efficient memmove, making the teacher's manual 8-byte stride
// loop (itself working around unaligned C memcpy) unnecessary here.
func copyLiteral(dst []byte, outPos int, src []byte, inPos int, length int) {
	copy(dst[outPos:outPos+length], src[inPos:inPos+length])
}
