package sortutil

import "sort"

// SortByValueDescending reorders values and ids in lock-step so that
// values ends up sorted descending, ties broken by id ascending
// (stable). Both slices must have equal length; both are mutated in
// place. This is the array-of-pairs, no-boxing discipline a C
// maxheapsort over parallel arrays uses, expressed as two slices
// instead of a pointer-pair.
func SortByValueDescending(values []float64, ids []int) {
	n := len(values)
	if n < 2 {
		return
	}
	less := func(i, j int) bool {
		if values[i] != values[j] {
			return values[i] < values[j]
		}
		return ids[i] > ids[j]
	}
	swap := func(i, j int) {
		values[i], values[j] = values[j], values[i]
		ids[i], ids[j] = ids[j], ids[i]
	}
	siftDown := func(start, end int) {
		i := start
		for {
			l := 2*i + 1
			if l >= end {
				break
			}
			largest := l
			if r := l + 1; r < end && less(l, r) {
				largest = r
			}
			if !less(i, largest) {
				break
			}
			swap(i, largest)
			i = largest
		}
	}
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(i, n)
	}
	for end := n - 1; end > 0; end-- {
		swap(0, end)
		siftDown(0, end)
	}
	// The loop above leaves values ascending with equal-value runs in
	// descending-id order; reversing the whole array gives descending
	// values with equal-value runs in ascending-id order.
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

// AscendingOK reports whether values is sorted non-decreasing. A
// descending array can be checked by passing it reversed. Neither the
// phase-1 ratio test nor the top-K heap calls it.
func AscendingOK(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}

// Breakpoint is one entry of the phase-1 ratio-test breakpoint lists
// (R and T in §4.5): a candidate step length and the signed row it came
// from (row index r encodes the "leaves at lower" case, r − n_row
// encodes the "leaves at upper" case).
type Breakpoint struct {
	Theta     float64
	SignedRow int
}

// SortBreakpointsAscending sorts bp by Theta ascending, breaking ties by
// SignedRow ascending for determinism. Phase-1 CHUZR (§4.5) sorts both
// the relaxed list R and the tight list T this way before walking them.
func SortBreakpointsAscending(bp []Breakpoint) {
	sort.Slice(bp, func(i, j int) bool {
		if bp[i].Theta != bp[j].Theta {
			return bp[i].Theta < bp[j].Theta
		}
		return bp[i].SignedRow < bp[j].SignedRow
	})
}
