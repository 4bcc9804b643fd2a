// SPDX-License-Identifier: MIT
// Source: github.com/dgnorth/c5

package c5

// overflowMarker is the high-nibble bit pattern (0xF0) that signals a copy
// tag's length field has overflowed into a trailing varint.
const overflowMarker = zhiMax << zloBits

// decoderState holds the decoder's working state for a single Decode call.
// Grounded in the teacher's decompressCore (decompress.go), adapted from its
// LZO1X M1-M4 state machine to this format's simpler bit-selected
// literal/copy step sequence.
type decoderState struct {
	in    []byte
	inPos int

	out    []byte
	outPos int
	n      int // logical uncompressed length, from the header

	br *bitReader
}

// Decode decompresses a c5 stream produced by Encode/EncodeWithOptions.
func Decode(compressed []byte) ([]byte, error) {
	n, err := PeekUncompressedLength(compressed)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, int(n)+Padding)

	written, err := DecodeInto(dst, compressed)
	if err != nil {
		return nil, err
	}

	return dst[:written], nil
}

// DecodeInto is the low-level decode entry point matching spec.md §6's
// decode(in_ptr, in_len, out_ptr) -> out_len boundary. dst must have length
// at least PeekUncompressedLength(compressed)+Padding.
func DecodeInto(dst, compressed []byte) (int, error) {
	n, err := PeekUncompressedLength(compressed)
	if err != nil {
		return 0, err
	}

	if len(dst) < int(n)+Padding {
		return 0, ErrOutputTooSmall
	}

	if n == 0 {
		return 0, nil
	}

	st := &decoderState{in: compressed, out: dst, n: int(n), inPos: headerSize}

	if st.inPos >= len(st.in) {
		return 0, ErrTruncatedStream
	}

	st.out[0] = st.in[st.inPos]
	st.inPos++
	st.outPos = 1

	st.br = newBitReader(st.in, &st.inPos)

	for st.inPos < len(st.in) {
		bit, err := st.br.readBit()
		if err != nil {
			return 0, err
		}

		if bit == 1 {
			if err := st.decodeLiteral(); err != nil {
				return 0, err
			}
		}

		if err := st.decodeCopy(); err != nil {
			return 0, err
		}
	}

	return st.outPos, nil
}

// decodeLiteral decodes one literal command (§4.1) and copies its bytes into
// the output buffer.
func (d *decoderState) decodeLiteral() error {
	c, err := d.br.readBits(2)
	if err != nil {
		return err
	}

	length := c + 1
	if length == 4 {
		v, err := readVarint(d.in, &d.inPos)
		if err != nil {
			return err
		}

		length = v + 3
	}

	if d.inPos+int(length) > len(d.in) {
		return ErrTruncatedStream
	}
	if d.outPos+int(length) > d.n {
		return ErrOutputTooSmall
	}

	copyLiteral(d.out, d.outPos, d.in, d.inPos, int(length))
	d.inPos += int(length)
	d.outPos += int(length)

	return nil
}

// decodeCopy decodes one copy command (§4.1) and reproduces it in the output
// buffer, including the len==0 flush form emitted at end of stream.
func (d *decoderState) decodeCopy() error {
	if d.inPos >= len(d.in) {
		return ErrTruncatedStream
	}

	z := d.in[d.inPos]
	d.inPos++

	var length uint32
	if z&overflowMarker == overflowMarker {
		v, err := readVarint(d.in, &d.inPos)
		if err != nil {
			return err
		}

		length = v + 15
	} else {
		length = uint32(z>>zloBits) + 1
	}

	v2, err := readVarint(d.in, &d.inPos)
	if err != nil {
		return err
	}

	ago := (v2 << zloBits) | uint32(z&zloMask)

	if length == 0 {
		return nil
	}

	if ago == 0 || int(ago) > d.outPos {
		return ErrTruncatedStream
	}
	if d.outPos+int(length) > d.n {
		return ErrOutputTooSmall
	}

	copyMatch(d.out, d.outPos, int(ago), int(length))
	d.outPos += int(length)

	return nil
}
