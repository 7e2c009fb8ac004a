package densebasis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ekkprimal/densebasis"
	"github.com/katalvlaran/ekkprimal/simplexmodel"
	"github.com/katalvlaran/ekkprimal/vecset"
)

// newTestBasis builds a 2x2 structural matrix [[2,1],[1,3]] (columns
// [2,1] and [1,3]) with both slacks starting basic.
func newTestBasis(t *testing.T) *densebasis.Basis {
	t.Helper()
	structural := [][]float64{
		{2, 1},
		{1, 3},
	}
	lower := []float64{0, 0, -simplexmodel.Inf, -simplexmodel.Inf}
	upper := []float64{simplexmodel.Inf, simplexmodel.Inf, simplexmodel.Inf, simplexmodel.Inf}
	cost := []float64{1, 1, 0, 0}
	b, err := densebasis.NewBasis(structural, lower, upper, cost, []int{2, 3})
	require.NoError(t, err)
	return b
}

func TestNewBasis_DimensionMismatch(t *testing.T) {
	r := require.New(t)
	structural := [][]float64{{1, 2}, {3, 4}}
	_, err := densebasis.NewBasis(structural, []float64{0}, []float64{0}, []float64{0}, []int{0, 1})
	r.ErrorIs(err, densebasis.ErrDimensionMismatch)
}

func TestBasis_ComputeFactor_IdentityOnSlackBasis(t *testing.T) {
	r := require.New(t)
	b := newTestBasis(t)

	rd, err := b.ComputeFactor()
	r.NoError(err)
	r.Zero(rd)

	aq := vecset.NewSparseVector(2)
	r.NoError(b.PivotColumnFtran(0, aq))
	r.Equal(2.0, aq.Get(0))
	r.Equal(1.0, aq.Get(1))
}

func TestBasis_UpdateFactor_MatchesReinversionAfterPivot(t *testing.T) {
	r := require.New(t)
	b := newTestBasis(t)
	_, err := b.ComputeFactor()
	r.NoError(err)

	aq := vecset.NewSparseVector(2)
	r.NoError(b.PivotColumnFtran(0, aq))

	rowEp := vecset.NewSparseVector(2)
	r.NoError(b.UnitBtran(0, rowEp))

	reason, err := b.UpdateFactor(aq, rowEp, 0)
	r.NoError(err)
	r.Equal(simplexmodel.RebuildNone, reason)
	r.NoError(b.UpdatePivots(0, 0, simplexmodel.MoveUp))

	// Basis is now columns {0, 3}: [[2,0],[1,1]]. B^{-1} should satisfy
	// FTRAN(basicIndex[0]) = e_0 and FTRAN(basicIndex[1]) = e_1.
	check0 := vecset.NewSparseVector(2)
	r.NoError(b.PivotColumnFtran(0, check0))
	r.InDelta(1.0, check0.Get(0), 1e-9)
	r.InDelta(0.0, check0.Get(1), 1e-9)

	check3 := vecset.NewSparseVector(2)
	r.NoError(b.PivotColumnFtran(3, check3))
	r.InDelta(0.0, check3.Get(0), 1e-9)
	r.InDelta(1.0, check3.Get(1), 1e-9)

	r.Equal(0, b.BasicIndex(0))
	r.Equal(3, b.BasicIndex(1))
	r.Equal(simplexmodel.Nonbasic, b.NonbasicFlag(2))
	r.Equal(simplexmodel.MoveUp, b.NonbasicMove(2))
	r.Equal(simplexmodel.Basic, b.NonbasicFlag(0))
}

func TestBasis_ComputeDual_ZeroOnBasicColumns(t *testing.T) {
	r := require.New(t)
	b := newTestBasis(t)
	_, err := b.ComputeFactor()
	r.NoError(err)

	dual := make([]float64, 4)
	r.NoError(b.ComputeDual([]float64{1, 1, 0, 0}, dual))
	r.Equal(0.0, dual[2])
	r.Equal(0.0, dual[3])
	// Reduced cost of a structural column against a zero-cost slack
	// basis equals its own cost.
	r.InDelta(1.0, dual[0], 1e-9)
	r.InDelta(1.0, dual[1], 1e-9)
}

func TestBasis_FlipNonbasic(t *testing.T) {
	r := require.New(t)
	b := newTestBasis(t)

	r.NoError(b.FlipNonbasic(0, simplexmodel.MoveDown))
	r.Equal(simplexmodel.MoveDown, b.NonbasicMove(0))
}

func TestBasis_TableauRowPrice_SpansSlackColumns(t *testing.T) {
	r := require.New(t)
	b := newTestBasis(t)
	_, err := b.ComputeFactor()
	r.NoError(err)

	rowEp := vecset.NewSparseVector(2)
	r.NoError(b.UnitBtran(0, rowEp))
	rowAp := vecset.NewSparseVector(4)
	r.NoError(b.TableauRowPrice(rowEp, rowAp))

	r.Equal(2.0, rowAp.Get(0))
	r.Equal(1.0, rowAp.Get(1))
	r.Equal(1.0, rowAp.Get(2), "slack column 2 is the unit column for row 0")
	r.Equal(0.0, rowAp.Get(3))
}

func TestBasis_ComputePrimal(t *testing.T) {
	r := require.New(t)
	b := newTestBasis(t)
	_, err := b.ComputeFactor()
	r.NoError(err)

	workValue := make([]float64, 4)
	workValue[0] = 1 // x0 nonbasic at 1
	workValue[1] = 2 // x1 nonbasic at 2
	baseValue := make([]float64, 2)
	r.NoError(b.ComputePrimal(workValue, baseValue))

	// rhs = -(col0*1 + col1*2) = -([2,1] + [2,6]) = [-4,-7]; B is
	// identity (slacks basic), so baseValue == rhs.
	r.InDelta(-4.0, baseValue[0], 1e-9)
	r.InDelta(-7.0, baseValue[1], 1e-9)
}
