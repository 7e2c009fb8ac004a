package topheap

import (
	"github.com/katalvlaran/ekkprimal/simplexmodel"
	"github.com/katalvlaran/ekkprimal/sortutil"
)

// DecreasingHeap keeps the K largest (measure, id) pairs seen since the
// last Reset, plus maxNonCandidate, the largest measure among pairs that
// were offered but did not make the cut — the "non-candidate upper
// bound" used to decide whether an incrementally maintained top-K list
// can still be trusted (C3, §4.3/§4.4).
//
// Add is O(capacity) per call; for the small K (≈10) this package is
// sized for, that beats the bookkeeping of a real binary heap. The zero
// value is not usable; construct with NewDecreasingHeap.
type DecreasingHeap struct {
	capacity        int
	measures        []float64
	ids             []int
	count           int
	maxNonCandidate float64
	sorted          bool
}

// NewDecreasingHeap allocates a heap that retains up to capacity pairs.
func NewDecreasingHeap(capacity int) *DecreasingHeap {
	return &DecreasingHeap{
		capacity:        capacity,
		measures:        make([]float64, capacity),
		ids:             make([]int, capacity),
		maxNonCandidate: -simplexmodel.Inf,
	}
}

// Reset empties the heap and drops the non-candidate bound, ready for a
// fresh incremental refresh.
func (h *DecreasingHeap) Reset() {
	h.count = 0
	h.maxNonCandidate = -simplexmodel.Inf
	h.sorted = false
}

// Len returns the number of pairs currently retained (≤ capacity).
func (h *DecreasingHeap) Len() int { return h.count }

// Capacity returns K.
func (h *DecreasingHeap) Capacity() int { return h.capacity }

// NonCandidateMeasure returns the running bound on the best excluded
// candidate: any column with a measure at or below this value cannot
// beat what the heap already holds.
func (h *DecreasingHeap) NonCandidateMeasure() float64 { return h.maxNonCandidate }

// Add offers (measure, id) to the heap. It returns true if the pair was
// retained (either because the heap had room, or because it displaced
// the current worst retained pair), false if it was rejected — in which
// case maxNonCandidate is raised to measure if measure exceeds it.
//
// Ties are broken by id ascending: a pair is preferred over an equal-
// measure pair with a larger id. Add invalidates any prior Finalize.
func (h *DecreasingHeap) Add(measure float64, id int) bool {
	h.sorted = false
	if h.count < h.capacity {
		h.measures[h.count] = measure
		h.ids[h.count] = id
		h.count++
		return true
	}
	worst := 0
	for i := 1; i < h.count; i++ {
		if isWorse(h.measures[i], h.ids[i], h.measures[worst], h.ids[worst]) {
			worst = i
		}
	}
	if isBetter(measure, id, h.measures[worst], h.ids[worst]) {
		if h.measures[worst] > h.maxNonCandidate {
			h.maxNonCandidate = h.measures[worst]
		}
		h.measures[worst] = measure
		h.ids[worst] = id
		return true
	}
	if measure > h.maxNonCandidate {
		h.maxNonCandidate = measure
	}
	return false
}

// isBetter reports whether (measureA, idA) ranks ahead of (measureB,
// idB): larger measure wins; equal measure, smaller id wins.
func isBetter(measureA float64, idA int, measureB float64, idB int) bool {
	if measureA != measureB {
		return measureA > measureB
	}
	return idA < idB
}

func isWorse(measureA float64, idA int, measureB float64, idB int) bool {
	return isBetter(measureB, idB, measureA, idA)
}

// Finalize sorts the retained pairs into descending order (C3:
// sort_decreasing_heap). After Finalize, Best and At report in that
// order; Add may still be called afterward and simply re-invalidates
// the ordering.
func (h *DecreasingHeap) Finalize() {
	sortutil.SortByValueDescending(h.measures[:h.count], h.ids[:h.count])
	h.sorted = true
}

// Best returns the largest retained (measure, id) pair. ok is false if
// the heap is empty. Best implicitly finalizes if needed.
func (h *DecreasingHeap) Best() (measure float64, id int, ok bool) {
	if h.count == 0 {
		return 0, 0, false
	}
	if !h.sorted {
		h.Finalize()
	}
	return h.measures[0], h.ids[0], true
}

// At returns the i'th retained pair in descending order (0 is the
// best). At implicitly finalizes if needed.
func (h *DecreasingHeap) At(i int) (measure float64, id int) {
	if !h.sorted {
		h.Finalize()
	}
	return h.measures[i], h.ids[i]
}
