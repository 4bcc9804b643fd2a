// SPDX-License-Identifier: MIT
// Source: github.com/dgnorth/c5

package c5

// EncodeOptions configures the tunable knobs of the encoder. These are the
// constants spec.md §9 calls "load-bearing for the exact output sequence but
// not for correctness"; a zero value in any field means "use the reference
// default" (mirrors the teacher's CompressOptions{Level: 0} meaning level 1).
type EncodeOptions struct {
	// HistorySizeBits sets the history table to 2^HistorySizeBits rows.
	// Must be in [1, 16] when set; 0 means the reference default (14).
	HistorySizeBits int
	// HashEveryNBytes is the stride, in bytes, at which the encoder
	// opportunistically re-hashes positions while extending a match. Must be
	// a power of two when set; 0 means the reference default (32).
	HashEveryNBytes int
	// MaxLiteralize caps the literalize stride (§4.2 step 4c); 0 means the
	// reference default (32).
	MaxLiteralize int
	// Associativity is the number of candidate positions stored per history
	// row (§4.4's "A > 1 as a compression-vs-speed knob"); 0 means the
	// reference default (1).
	Associativity int
}

// DefaultEncodeOptions returns the reference tuning (H=2^14, hash every 32
// bytes, literalize cap 32, associativity 1).
func DefaultEncodeOptions() *EncodeOptions {
	return &EncodeOptions{
		HistorySizeBits: defaultHistorySizeBits,
		HashEveryNBytes: defaultHashEveryNBytes,
		MaxLiteralize:   defaultMaxLiteralize,
		Associativity:   defaultAssociativity,
	}
}

// resolved fills in zero fields with the reference defaults and validates the
// result, returning ErrInvalidOptions if a non-zero field is out of range.
func (o *EncodeOptions) resolved() (*EncodeOptions, error) {
	r := DefaultEncodeOptions()
	if o == nil {
		return r, nil
	}

	if o.HistorySizeBits != 0 {
		r.HistorySizeBits = o.HistorySizeBits
	}
	if o.HashEveryNBytes != 0 {
		r.HashEveryNBytes = o.HashEveryNBytes
	}
	if o.MaxLiteralize != 0 {
		r.MaxLiteralize = o.MaxLiteralize
	}
	if o.Associativity != 0 {
		r.Associativity = o.Associativity
	}

	if r.HistorySizeBits < 1 || r.HistorySizeBits > 16 {
		return nil, ErrInvalidOptions
	}
	if r.HashEveryNBytes&(r.HashEveryNBytes-1) != 0 {
		return nil, ErrInvalidOptions
	}
	if r.MaxLiteralize < 1 {
		return nil, ErrInvalidOptions
	}
	if r.Associativity < 1 {
		return nil, ErrInvalidOptions
	}

	return r, nil
}
