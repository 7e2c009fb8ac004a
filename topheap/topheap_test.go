package topheap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ekkprimal/topheap"
)

func TestDecreasingHeap_FillsUnderCapacity(t *testing.T) {
	r := require.New(t)
	h := topheap.NewDecreasingHeap(3)

	r.True(h.Add(1.0, 10))
	r.True(h.Add(2.0, 20))
	r.Equal(2, h.Len())

	best, id, ok := h.Best()
	r.True(ok)
	r.Equal(2.0, best)
	r.Equal(20, id)
}

func TestDecreasingHeap_DisplacesWorstWhenFull(t *testing.T) {
	r := require.New(t)
	h := topheap.NewDecreasingHeap(2)

	h.Add(1.0, 1)
	h.Add(2.0, 2)
	r.True(h.Add(5.0, 3), "a larger measure must displace the worst")
	r.Equal(2, h.Len())

	measure, id := h.At(1)
	r.Equal(2.0, measure)
	r.Equal(2, id)
}

func TestDecreasingHeap_RejectsWorseAndRaisesNonCandidate(t *testing.T) {
	r := require.New(t)
	h := topheap.NewDecreasingHeap(2)

	h.Add(5.0, 1)
	h.Add(4.0, 2)
	r.False(h.Add(1.0, 3))
	r.Equal(1.0, h.NonCandidateMeasure())
}

func TestDecreasingHeap_TiesBreakByAscendingID(t *testing.T) {
	r := require.New(t)
	h := topheap.NewDecreasingHeap(1)

	h.Add(3.0, 10)
	r.True(h.Add(3.0, 2), "equal measure with smaller id must displace")

	_, id, _ := h.Best()
	r.Equal(2, id)
}

func TestDecreasingHeap_Reset(t *testing.T) {
	r := require.New(t)
	h := topheap.NewDecreasingHeap(2)

	h.Add(1.0, 1)
	h.Reset()
	r.Equal(0, h.Len())
	_, _, ok := h.Best()
	r.False(ok)
}

func TestDecreasingHeap_FinalizeDescendingOrder(t *testing.T) {
	r := require.New(t)
	h := topheap.NewDecreasingHeap(4)

	h.Add(1.0, 1)
	h.Add(9.0, 2)
	h.Add(4.0, 3)
	h.Finalize()

	m0, _ := h.At(0)
	m1, _ := h.At(1)
	m2, _ := h.At(2)
	r.Equal(9.0, m0)
	r.Equal(4.0, m1)
	r.Equal(1.0, m2)
}
