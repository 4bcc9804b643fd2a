// SPDX-License-Identifier: MIT
// Source: github.com/dgnorth/c5

package c5

import "errors"

// Sentinel errors for encoding and decoding.
var (
	// ErrTruncatedStream is returned when a decode read (tag byte, varint, or
	// literal payload) would run past the end of the compressed buffer.
	ErrTruncatedStream = errors.New("c5: truncated compressed stream")
	// ErrOutputTooSmall is returned when a caller-supplied output buffer (or
	// declared length) is too small to hold the result.
	ErrOutputTooSmall = errors.New("c5: output buffer too small")
	// ErrMissingPadding is returned when a caller-supplied buffer's length does
	// not include the required trailing Padding bytes.
	ErrMissingPadding = errors.New("c5: buffer missing required trailing padding")
	// ErrInvalidOptions is returned when EncodeOptions carries an out-of-range
	// tuning value (e.g. HistorySizeBits outside [1, 16] or a non-power-of-two
	// HashEveryNBytes).
	ErrInvalidOptions = errors.New("c5: invalid encode options")
)
