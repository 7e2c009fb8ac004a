package sortutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ekkprimal/sortutil"
)

func TestSortByValueDescending_Basic(t *testing.T) {
	r := require.New(t)
	values := []float64{3, 1, 4, 1, 5}
	ids := []int{0, 1, 2, 3, 4}

	sortutil.SortByValueDescending(values, ids)

	r.Equal([]float64{5, 4, 3, 1, 1}, values)
	r.True(sortutil.AscendingOK(reverse(values)))
}

func TestSortByValueDescending_TiesBreakByAscendingID(t *testing.T) {
	r := require.New(t)
	values := []float64{2, 2, 2}
	ids := []int{5, 1, 3}

	sortutil.SortByValueDescending(values, ids)

	r.Equal([]float64{2, 2, 2}, values)
	r.Equal([]int{1, 3, 5}, ids)
}

func TestSortByValueDescending_EmptyAndSingleton(t *testing.T) {
	values := []float64{}
	ids := []int{}
	sortutil.SortByValueDescending(values, ids)

	values2 := []float64{7}
	ids2 := []int{9}
	sortutil.SortByValueDescending(values2, ids2)
	require.Equal(t, []float64{7}, values2)
}

func TestAscendingOK(t *testing.T) {
	r := require.New(t)
	r.True(sortutil.AscendingOK([]float64{1, 1, 2, 3}))
	r.False(sortutil.AscendingOK([]float64{1, 0, 2}))
	r.True(sortutil.AscendingOK(nil))
}

func TestSortBreakpointsAscending(t *testing.T) {
	r := require.New(t)
	bp := []sortutil.Breakpoint{
		{Theta: 2, SignedRow: 1},
		{Theta: 1, SignedRow: 4},
		{Theta: 1, SignedRow: 2},
	}

	sortutil.SortBreakpointsAscending(bp)

	r.Equal([]sortutil.Breakpoint{
		{Theta: 1, SignedRow: 2},
		{Theta: 1, SignedRow: 4},
		{Theta: 2, SignedRow: 1},
	}, bp)
}

func reverse(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v
	}
	return out
}
