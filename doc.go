// SPDX-License-Identifier: MIT
// Source: github.com/dgnorth/c5

/*
Package c5 implements the c5/uc5 byte-stream codec: a hash-indexed LZ77-style
compressor and decompressor with a bit-packed control stream and a byte-stream
for literals, copy tags and varints.

The wire format is a 4-byte big-endian uncompressed-length header, the first
input byte verbatim, then a sequence of steps. Each step begins with one
control bit: 0 selects a copy command, 1 selects a literal command followed by
a copy command. Control bits are buffered in 32-bit big-endian cells
interleaved with the byte-stream fields.

# Encode

	out, err := c5.Encode(data)

With tuning knobs (history size, literalize stride, associativity):

	out, err := c5.EncodeWithOptions(data, &c5.EncodeOptions{Associativity: 2})

# Decode

	out, err := c5.Decode(compressed)

Both Encode and Decode operate on whole buffers; there is no streaming or
chunked API. EncodeFromReader/DecodeToWriter exist purely as convenience
wrappers that read a full io.Reader into memory first.

# Buffer padding

Encode and Decode internally allocate buffers with Padding trailing bytes,
required because the inner loops may read or write a few bytes past the
logical end of a buffer: the encoder's 4-byte hash loads and match compares,
and the decoder's wide 8-byte copies. EncodeInto/DecodeInto, the
low-level entry points, require callers to provide this padding themselves;
see their doc comments.
*/
package c5
