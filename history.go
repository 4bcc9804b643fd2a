// SPDX-License-Identifier: MIT
// Source: github.com/dgnorth/c5

package c5

import "encoding/binary"

// historyTable is the encoder's associative history index: a mapping from a
// hashed 4-byte fingerprint to up to assoc recent input positions, with
// round-robin replacement driven by a monotonically increasing counter.
// Adapted from the teacher's single-slot dictionary (compress_1x_fast.go's
// `dict := make([]int32, 1<<dictBits)`) generalized to a configurable
// associativity, in the spirit of the teacher's multi-candidate hash-chain
// search (sliding_window.go's searchBestMatch) without its unbounded chain —
// each row here holds a small fixed number of candidates instead.
type historyTable struct {
	rows    []uint32 // flat rows*assoc slice; 0 is both the initial value and position 0
	assoc   int
	rowBits uint
	counter uint32
}

// newHistoryTable allocates a table with 2^rowBits rows and the given
// associativity (minimum 1).
func newHistoryTable(rowBits uint, assoc int) *historyTable {
	if assoc < 1 {
		assoc = 1
	}

	return &historyTable{
		rows:    make([]uint32, (1<<rowBits)*assoc),
		assoc:   assoc,
		rowBits: rowBits,
	}
}

// reset clears the table for reuse (see pool.go) without reallocating.
func (h *historyTable) reset() {
	for i := range h.rows {
		h.rows[i] = 0
	}

	h.counter = 0
}

// hash mixes a 4-byte little-endian load at in[pos:pos+4] into a row index.
// Only 3 bytes of entropy are required (spec.md §4.4); the 4th byte still
// participates in the multiply, matching the reference hash function.
func (h *historyTable) hash(in []byte, pos int) uint32 {
	v := binary.LittleEndian.Uint32(in[pos : pos+4])
	return (v * hashMultiplier) >> (32 - h.rowBits)
}

// insert records pos under the fingerprint at in[pos:pos+4] in slot
// counter%assoc of its row. The counter is shared by all rows, so with
// assoc > 1 the replaced slot is not necessarily the row's oldest.
func (h *historyTable) insert(in []byte, pos int) {
	key := h.hash(in, pos)
	slot := h.counter % uint32(h.assoc)
	h.rows[int(key)*h.assoc+int(slot)] = uint32(pos)
	h.counter++
}

// candidates returns the row of stored positions for the fingerprint at
// in[pos:pos+4]. The returned slice aliases the table; callers must not
// retain it across further inserts.
func (h *historyTable) candidates(in []byte, pos int) []uint32 {
	key := int(h.hash(in, pos))
	return h.rows[key*h.assoc : key*h.assoc+h.assoc]
}
