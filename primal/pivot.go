package primal

import (
	"math"

	"github.com/katalvlaran/ekkprimal/simplexmodel"
)

// assessPivot is §4.7's numerical cross-check between the FTRAN-derived
// pivot element (alphaCol, from a_q) and the BTRAN+PRICE-derived one
// (read out of rowAp, which — per this package's merged
// TableauRowPrice contract — already spans the slack columns, so there
// is no separate row_ep lookup for q ≥ n_col).
//
// It returns ErrNumericalCrossCheck for the fatal (>1e-3) case, or
// RebuildPossiblySingularBasis with a nil error for the soft (>1e-7,
// update_count>0) case that should simply trigger a rebuild.
func (e *Engine) assessPivot(q int, alphaCol float64) (simplexmodel.RebuildReason, error) {
	alphaRow := e.rowAp.Get(q)
	denom := math.Min(math.Abs(alphaCol), math.Abs(alphaRow))
	if denom == 0 {
		return simplexmodel.RebuildPossiblySingularBasis, nil
	}
	trouble := math.Abs(math.Abs(alphaCol)-math.Abs(alphaRow)) / denom
	if trouble > 1e-3 {
		return simplexmodel.RebuildNone, ErrNumericalCrossCheck
	}
	if trouble > 1e-7 && e.updateCount > 0 {
		return simplexmodel.RebuildPossiblySingularBasis, nil
	}
	return simplexmodel.RebuildNone, nil
}
