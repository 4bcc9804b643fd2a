// SPDX-License-Identifier: MIT
// Source: github.com/dgnorth/c5

package c5

// encoderState holds the encoder's working state for a single Encode call:
// input/output cursors, the pending literal run, and the history index.
// Grounded in the teacher's lzoCompressor (compress9x.go), trimmed to the
// fields this format's simpler single-pass parser actually needs.
type encoderState struct {
	in []byte // padded input: len(in) >= n+Padding
	n  int    // logical input length
	out []byte // padded output: len(out) >= MaxEncodedLen(n)+Padding

	inPos  int
	outPos int

	hist *historyTable
	opts *EncodeOptions
	bw   *bitWriter

	literalPos int
	literalLen int
}

// Encode compresses src using the reference tuning (EncodeOptions(nil)).
func Encode(src []byte) ([]byte, error) {
	return EncodeWithOptions(src, nil)
}

// EncodeWithOptions compresses src with the given tuning knobs (nil uses the
// reference defaults). It allocates correctly padded input and output
// buffers and calls EncodeInto.
func EncodeWithOptions(src []byte, opts *EncodeOptions) ([]byte, error) {
	n := len(src)

	padded := make([]byte, n+Padding)
	copy(padded, src)

	dst := make([]byte, MaxEncodedLen(n)+Padding)

	written, err := EncodeInto(dst, padded, n, opts)
	if err != nil {
		return nil, err
	}

	return dst[:written], nil
}

// EncodeInto is the low-level encode entry point matching spec.md §6's
// encode(in_ptr, in_len, out_ptr) -> out_len boundary. src must have length
// at least n+Padding; dst must have length at least
// MaxEncodedLen(n)+Padding. Violating either is a caller contract violation
// reported as ErrMissingPadding / ErrOutputTooSmall; out-of-range opts are
// reported as ErrInvalidOptions. These checks run once up front rather than
// per loop iteration.
func EncodeInto(dst, src []byte, n int, opts *EncodeOptions) (int, error) {
	if len(src) < n+Padding {
		return 0, ErrMissingPadding
	}
	if len(dst) < MaxEncodedLen(n)+Padding {
		return 0, ErrOutputTooSmall
	}

	resolved, err := opts.resolved()
	if err != nil {
		return 0, err
	}

	h := acquireHistoryTable(uint(resolved.HistorySizeBits), resolved.Associativity)
	defer releaseHistoryTable(h)

	st := &encoderState{in: src, n: n, out: dst, hist: h, opts: resolved}
	st.run()

	return st.outPos, nil
}

// run executes the full encode algorithm from spec.md §4.2.
func (st *encoderState) run() {
	putHeader(st.out, uint32(st.n))
	st.outPos = headerSize

	if st.n == 0 {
		return
	}

	st.hist.insert(st.in, 0)
	st.out[st.outPos] = st.in[0]
	st.outPos++
	st.inPos = 1

	st.bw = newBitWriter(st.out, &st.outPos)

	for st.inPos < st.n {
		matchPos, matchLen := st.findMatch()

		if matchLen >= minMatchLen {
			if st.literalLen > 0 {
				st.bw.writeBit(1)
				st.emitLiteral()
				st.emitCopy(uint32(matchLen), uint32(st.inPos-matchPos))
			} else {
				st.bw.writeBit(0)
				st.emitCopy(uint32(matchLen), uint32(st.inPos-matchPos))
			}

			st.inPos += matchLen
			continue
		}

		k := st.literalLen/8 + 1
		if k > st.opts.MaxLiteralize {
			k = st.opts.MaxLiteralize
		}
		if st.inPos+k > st.n {
			k = st.n - st.inPos
		}

		if st.literalLen == 0 {
			st.literalPos = st.inPos
		}

		st.hist.insert(st.in, st.inPos)
		st.inPos += k
		st.literalLen += k
	}

	if st.literalLen > 0 {
		st.bw.writeBit(1)
		st.emitLiteral()
		st.emitCopy(0, 1)
	}

	st.bw.flush()
}

// findMatch probes the history row for the fingerprint at the current input
// position and extends every non-stale candidate, returning the longest.
// Opportunistically reinserts intermediate positions every
// opts.HashEveryNBytes bytes while extending, amortizing index maintenance
// (spec.md §4.2 step 4a). The 4-byte compare phase only visits multiples of
// 4, so strides below 4 insert every 4 bytes there.
func (st *encoderState) findMatch() (matchPos, matchLen int) {
	in := st.in
	inPos := st.inPos
	maxLen := st.n - inPos
	stride := st.opts.HashEveryNBytes

	for _, p := range st.hist.candidates(in, inPos) {
		pos := int(p)
		if uint32(pos) >= uint32(inPos) {
			continue // stale or forward reference (spec.md §3)
		}

		length := 0

		for length+4 < maxLen && wordEqual(in, pos+length, in, inPos+length) {
			if length&(stride-1) == 0 {
				st.hist.insert(in, inPos+length)
			}
			length += 4
		}

		for length < maxLen && in[pos+length] == in[inPos+length] {
			if length&(stride-1) == 0 {
				st.hist.insert(in, inPos+length)
			}
			length++
		}

		if length > matchLen {
			matchLen = length
			matchPos = pos
		}
	}

	return matchPos, matchLen
}

// emitLiteral writes the pending literal-command encoding (§4.1) and copies
// its bytes from input to output.
func (st *encoderState) emitLiteral() {
	length := uint32(st.literalLen)

	c := length - 1
	if c > 3 {
		c = 3
	}
	st.bw.writeBits(c, 2)

	if length >= 4 {
		writeVarint(st.out, &st.outPos, length-3)
	}

	copyLiteral(st.out, st.outPos, st.in, st.literalPos, st.literalLen)
	st.outPos += st.literalLen
	st.literalLen = 0
}

// emitCopy writes the copy-command tag byte and trailing varint(s) (§4.1).
// length and ago are uint32 so the len==0 flush case (emitCopy(0, 1)) wraps
// exactly the way the decoder's matching uint32 arithmetic expects: length-1
// underflows past zhiMax, forcing the overflow varint branch, and the
// decoder's length+15 wraps back to zero.
func (st *encoderState) emitCopy(length, ago uint32) {
	z := byte(ago & zloMask)

	if length-1 < zhiMax {
		z |= byte((length - 1) << zloBits)
		st.out[st.outPos] = z
		st.outPos++
	} else {
		z |= byte(zhiMax << zloBits)
		st.out[st.outPos] = z
		st.outPos++
		writeVarint(st.out, &st.outPos, length-15)
	}

	writeVarint(st.out, &st.outPos, ago>>zloBits)
}
