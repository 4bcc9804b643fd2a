// SPDX-License-Identifier: MIT
// Source: github.com/dgnorth/c5

package c5

import "io"

// EncodeFromReader reads r fully into memory, then calls EncodeWithOptions.
// No streaming logic of its own — Encode/Decode remain whole-buffer
// operations; this is sugar for the common "I have an io.Reader" case,
// grounded in the teacher's DecompressFromReader (decompress_reader.go).
func EncodeFromReader(r io.Reader, opts *EncodeOptions) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return EncodeWithOptions(src, opts)
}

// DecodeToWriter decodes compressed and writes the result to w. No streaming
// logic of its own: it calls Decode, then w.Write.
func DecodeToWriter(w io.Writer, compressed []byte) (int, error) {
	out, err := Decode(compressed)
	if err != nil {
		return 0, err
	}

	n, err := w.Write(out)
	if err != nil {
		return n, err
	}

	return n, nil
}
