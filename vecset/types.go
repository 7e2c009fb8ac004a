package vecset

// SparseVector is a dense-backed vector of fixed length n carrying a
// parallel list of the positions it has written through Set, so callers
// that know they touched few entries can walk Index() instead of the
// full Array(). Density is a caller concern (C1): nothing here decides
// which walk to use.
//
// The zero value is not usable; construct with NewSparseVector.
type SparseVector struct {
	array []float64
	index []int
	count int
}

// NewSparseVector allocates a SparseVector over the index space [0, n).
func NewSparseVector(n int) *SparseVector {
	return &SparseVector{
		array: make([]float64, n),
		index: make([]int, n),
	}
}

// Len returns the size of the index space.
func (v *SparseVector) Len() int { return len(v.array) }

// Count returns the number of positions currently listed in Index.
func (v *SparseVector) Count() int { return v.count }

// Get returns the value at position i, whether or not i is listed.
func (v *SparseVector) Get(i int) float64 { return v.array[i] }

// Array exposes the full dense backing store for a non-hyper-sparse walk.
// Callers must not resize the returned slice.
func (v *SparseVector) Array() []float64 { return v.array }

// Index returns the positions written since the last Clear, in the order
// they were set. Callers must not resize the returned slice.
func (v *SparseVector) Index() []int { return v.index[:v.count] }

// Set writes value at position i and, if i was not already listed,
// appends it to Index. Calling Set twice on the same position without an
// intervening Clear is safe and does not duplicate the index entry, but
// costs an O(count) scan to detect the duplicate — callers on a known-
// fresh vector should prefer SetFresh.
func (v *SparseVector) Set(i int, value float64) {
	v.array[i] = value
	for j := 0; j < v.count; j++ {
		if v.index[j] == i {
			return
		}
	}
	v.index[v.count] = i
	v.count++
}

// SetFresh writes value at position i and unconditionally appends i to
// Index, for the common case of building a vector position by position
// with no repeats (e.g. one FTRAN result, one row of a PRICE result).
func (v *SparseVector) SetFresh(i int, value float64) {
	v.array[i] = value
	v.index[v.count] = i
	v.count++
}

// Clear zeroes every listed position and resets Count to zero. It costs
// O(Count), not O(Len) — the point of carrying an index list at all.
func (v *SparseVector) Clear() {
	for j := 0; j < v.count; j++ {
		v.array[v.index[j]] = 0
	}
	v.count = 0
}

// Reset drops the index list without zeroing the backing array; useful
// when the caller is about to overwrite the full dense range itself.
func (v *SparseVector) Reset() {
	v.count = 0
}
