package primal

import (
	"math"

	"github.com/katalvlaran/ekkprimal/simplexmodel"
	"github.com/katalvlaran/ekkprimal/vecset"
)

// updateDevex is §4.8 step 7. It returns the pivot weight (needed only
// for the bad-weight comparison, already folded in here) and leaves
// devexWeight/devexIndex consistent with the pivot that just committed.
//
// The per-column update reads "pivot_weight·|α_col|" in the source
// description; read literally that names a per-column alpha, which this
// implementation takes to mean row_ap's entry for that column (the only
// per-column alpha available at this point) rather than the entering
// column's own alphaCol, matching the standard Devex weight recurrence.
func (e *Engine) updateDevex(q, rOut, vOut int, aq *vecset.SparseVector, alphaCol float64) float64 {
	sumSq := float64(e.devexIndex[q])
	for _, r := range aq.Index() {
		basicVar := e.basis.BasicIndex(r)
		term := float64(e.devexIndex[basicVar]) * aq.Get(r)
		sumSq += term * term
	}
	pivotWeight := math.Sqrt(sumSq) / math.Abs(alphaCol)

	for _, col := range e.rowAp.Index() {
		cand := pivotWeight*math.Abs(e.rowAp.Get(col)) + float64(e.devexIndex[col])
		if cand > e.devexWeight[col] {
			e.devexWeight[col] = cand
		}
	}

	oldWeightQ := e.devexWeight[q]
	if oldWeightQ > e.opts.DevexBadWeightFactor*pivotWeight {
		e.badDevexWeightCount++
		if e.badDevexWeightCount > e.opts.MaxBadDevexWeights {
			e.resetDevex()
		}
	}

	e.devexWeight[vOut] = math.Max(1, pivotWeight)
	e.devexWeight[q] = 1
	e.devexIndex[q] = 0
	e.devexIndex[vOut] = 1

	return pivotWeight
}

// resetDevex reinitialises the Devex reference framework: every weight
// back to 1, the reference indicator resynced to the current nonbasic
// flags, and the bad-weight counter cleared.
func (e *Engine) resetDevex() {
	for v := 0; v < e.nTot; v++ {
		e.devexWeight[v] = 1
		if e.basis.NonbasicFlag(v) == simplexmodel.Nonbasic {
			e.devexIndex[v] = 1
		} else {
			e.devexIndex[v] = 0
		}
	}
	e.badDevexWeightCount = 0
}
