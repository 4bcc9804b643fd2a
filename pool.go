// SPDX-License-Identifier: MIT
// Source: github.com/dgnorth/c5

package c5

import "sync"

// historyTablePool lets back-to-back Encode calls reuse a *historyTable's
// backing array instead of allocating a fresh ~64KiB+ table every time.
// Grounded in the teacher's sliding_window_pool.go (slidingWindowDictPool).
var historyTablePool = sync.Pool{
	New: func() any {
		return &historyTable{}
	},
}

// acquireHistoryTable gets a zeroed table from the pool sized for rowBits
// rows and the given associativity, reusing the pooled backing array when its
// dimensions already match.
func acquireHistoryTable(rowBits uint, assoc int) *historyTable {
	h := historyTablePool.Get().(*historyTable)

	if assoc < 1 {
		assoc = 1
	}

	if h.rows == nil || h.rowBits != rowBits || h.assoc != assoc {
		h.rowBits = rowBits
		h.assoc = assoc
		h.rows = make([]uint32, (1<<rowBits)*assoc)
		h.counter = 0
		return h
	}

	h.reset()
	return h
}

// releaseHistoryTable returns a table to the pool for reuse.
func releaseHistoryTable(h *historyTable) {
	if h == nil {
		return
	}

	historyTablePool.Put(h)
}
