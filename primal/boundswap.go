package primal

import (
	"github.com/katalvlaran/ekkprimal/simplexmodel"
	"github.com/katalvlaran/ekkprimal/vecset"
)

// boundSwapDecision is the outcome of §4.6: either a flip (no pivot) or
// a commitment to pivot at a known row, alpha, and theta.
type boundSwapDecision struct {
	flip          bool
	thetaPrimal   float64
	rebuildReason simplexmodel.RebuildReason
}

// considerBoundSwap implements §4.6: compare the pivot step against the
// entering variable's own bound span, and decide whether to flip it
// instead of pivoting. found reports whether CHUZR located a leaving
// row; when it did not (Phase 2 only — Phase 1 treats that as a hard
// error upstream), a finite span still allows a flip, while an infinite
// span means the LP is unbounded in this direction. moveIn is the same
// signed ±1 the ratio test used to form its breakpoints: the step that
// lands rOut on destBound satisfies baseValue[rOut] − α_r·θ = destBound
// for the signed α_r = alphaCol*moveIn, not the raw alphaCol.
func (e *Engine) considerBoundSwap(q int, rOut int, alphaCol float64, moveOut simplexmodel.NonbasicMove, found bool, moveIn float64) boundSwapDecision {
	span := e.upper[q] - e.lower[q]

	if !found {
		if span < simplexmodel.Inf {
			return boundSwapDecision{flip: true, thetaPrimal: span}
		}
		return boundSwapDecision{rebuildReason: simplexmodel.RebuildPossiblyPrimalUnbounded}
	}

	destBound := e.baseLower[rOut]
	if moveOut == simplexmodel.MoveDown {
		destBound = e.baseUpper[rOut]
	}
	thetaPivot := (e.baseValue[rOut] - destBound) / (alphaCol * moveIn)

	if span < simplexmodel.Inf && span < thetaPivot {
		return boundSwapDecision{flip: true, thetaPrimal: span}
	}
	return boundSwapDecision{thetaPrimal: thetaPivot}
}

// applyBoundFlip executes a flip of q from its current bound to the
// opposite one: no pivot, no basis change, but the basic values it
// feeds via a_q still move (§4.6, §4.8 steps 1/3 reused at thetaPrimal =
// span).
func (e *Engine) applyBoundFlip(q int, aq *vecset.SparseVector, moveIn float64, span float64) error {
	oldMove := e.basis.NonbasicMove(q)
	newMove := simplexmodel.MoveUp
	if oldMove == simplexmodel.MoveUp {
		newMove = simplexmodel.MoveDown
	}
	if err := e.basis.FlipNonbasic(q, newMove); err != nil {
		return err
	}
	e.value[q] += span * moveIn

	if e.phase == simplexmodel.Phase1 {
		e.phase1UpdateBasicValues(span, aq, moveIn)
		e.phase1RefreshDuals()
		for _, v := range e.rowBasicFeasibilityChg.Index() {
			e.refreshHyperSparseCandidate(v)
		}
	} else {
		// A Phase-2 flip moves basic values but pivots nothing, so no
		// dual changes. q's own dual infeasibility does change sign with
		// its new move, which leaves q's heap entry stale; runCHUZC
		// detects that and falls back to a full scan.
		e.phase2UpdateBasicValues(span, aq, q, moveIn)
	}

	e.primalBoundSwap++
	e.numFlipSinceRebuild++
	e.reportIteration()
	return nil
}
