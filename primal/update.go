package primal

import (
	"github.com/katalvlaran/ekkprimal/simplexmodel"
	"github.com/katalvlaran/ekkprimal/vecset"
)

// phase1SyntheticCost is the Phase-1 synthetic cost of a basic value
// against its bound (§4.8 step 1): -1 below lower, +1 above upper, 0
// otherwise.
func (e *Engine) phase1SyntheticCost(value, lower, upper float64) float64 {
	tol := e.opts.PrimalFeasibilityTolerance
	switch {
	case value < lower-tol:
		return -1
	case value > upper+tol:
		return 1
	default:
		return 0
	}
}

// phase1UpdateBasicValues is §4.8 step 1: move every basic value by
// theta*a_q[r], track the synthetic-cost delta per row, and keep
// num_primal_infeasibilities exact incrementally rather than by a full
// rescan.
func (e *Engine) phase1UpdateBasicValues(theta float64, aq *vecset.SparseVector, moveIn float64) {
	e.colBasicFeasibilityChg.Clear()
	for _, r := range aq.Index() {
		oldVal := e.baseValue[r]
		newVal := oldVal - theta*aq.Get(r)*moveIn
		e.baseValue[r] = newVal

		oldCost := e.phase1SyntheticCost(oldVal, e.baseLower[r], e.baseUpper[r])
		newCost := e.phase1SyntheticCost(newVal, e.baseLower[r], e.baseUpper[r])
		switch {
		case oldCost == 0 && newCost != 0:
			e.numPrimalInfeasibilities++
		case oldCost != 0 && newCost == 0:
			e.numPrimalInfeasibilities--
		}
		if delta := newCost - oldCost; delta != 0 {
			e.colBasicFeasibilityChg.SetFresh(r, delta)
			e.cost[e.basis.BasicIndex(r)] = newCost
		}
	}
	if e.numPrimalInfeasibilities == 0 && e.rebuildReason == simplexmodel.RebuildNone {
		e.rebuildReason = simplexmodel.RebuildUpdateLimitReached
	}
}

// phase1RefreshDuals is §4.8 step 2: propagate the synthetic-cost delta
// computed by phase1UpdateBasicValues through BTRAN and PRICE to refresh
// work_dual at every affected nonbasic position.
func (e *Engine) phase1RefreshDuals() error {
	e.rowBasicFeasibilityChg.Clear()
	if e.colBasicFeasibilityChg.Count() == 0 {
		return nil
	}
	e.btranBuf.Clear()
	if err := e.basis.FullBtran(e.colBasicFeasibilityChg.Array(), e.btranBuf); err != nil {
		return err
	}
	if err := e.basis.FullPrice(e.btranBuf.Array(), e.rowBasicFeasibilityChg); err != nil {
		return err
	}
	for _, v := range e.rowBasicFeasibilityChg.Index() {
		if e.basis.NonbasicFlag(v) == simplexmodel.Nonbasic {
			e.dual[v] -= e.rowBasicFeasibilityChg.Get(v)
		}
	}
	return nil
}

// phase2UpdateBasicValues is §4.8 step 3: move every basic value by
// theta*a_q[r], detect any newly introduced infeasibility, and roll the
// pivot's objective contribution into updated_primal_objective_value.
func (e *Engine) phase2UpdateBasicValues(theta float64, aq *vecset.SparseVector, q int, moveIn float64) {
	tol := e.opts.PrimalFeasibilityTolerance
	newInfeasibility := false
	for _, r := range aq.Index() {
		oldVal := e.baseValue[r]
		newVal := oldVal - theta*aq.Get(r)*moveIn
		e.baseValue[r] = newVal

		wasInfeasible := oldVal < e.baseLower[r]-tol || oldVal > e.baseUpper[r]+tol
		isInfeasible := newVal < e.baseLower[r]-tol || newVal > e.baseUpper[r]+tol
		switch {
		case isInfeasible && !wasInfeasible:
			e.numPrimalInfeasibilities++
			newInfeasibility = true
		case !isInfeasible && wasInfeasible:
			e.numPrimalInfeasibilities--
		}
	}
	e.updatedPrimalObjectiveValue += e.dual[q] * theta * moveIn
	if newInfeasibility && e.rebuildReason == simplexmodel.RebuildNone {
		e.rebuildReason = simplexmodel.RebuildPrimalInfeasibleInPrimalSimplex
	}
}

// applyPivot is the pivot branch of the update engine (§4.8 steps 1–11),
// called once a row has been committed to (considerBoundSwap chose not
// to flip). rowEp/rowAp must already hold the BTRAN/PRICE results used
// by the numerical cross-check in pivot.go.
func (e *Engine) applyPivot(q, rOut int, alphaCol float64, moveOut simplexmodel.NonbasicMove, moveIn, thetaPrimal float64) error {
	wasFree := e.basis.NonbasicMove(q) == simplexmodel.MoveNone
	vOut := e.basis.BasicIndex(rOut)

	// Steps 1–3: primal update (phase-dependent).
	if e.phase == simplexmodel.Phase1 {
		e.phase1UpdateBasicValues(thetaPrimal, e.aq, moveIn)
		if err := e.phase1RefreshDuals(); err != nil {
			return err
		}
	} else {
		e.phase2UpdateBasicValues(thetaPrimal, e.aq, q, moveIn)
	}

	// Step 4a: place the entering variable's new value into the row it
	// is about to occupy.
	valueIn := e.value[q] + thetaPrimal*moveIn
	e.baseValue[rOut] = valueIn

	// Step 5: entering-value infeasibility handling. Runs before the
	// row inherits q's bounds below, since shiftBound may itself widen
	// them in the AllowBoundPerturbation case.
	tol := e.opts.PrimalFeasibilityTolerance
	switch {
	case valueIn < e.lower[q]-tol:
		if err := e.handleEnteringInfeasibility(q, valueIn, e.lower[q], true); err != nil {
			return err
		}
	case valueIn > e.upper[q]+tol:
		if err := e.handleEnteringInfeasibility(q, valueIn, e.upper[q], false); err != nil {
			return err
		}
	}

	// Step 4b: carry q's (possibly just-widened) bounds onto the row so
	// future ratio tests see them.
	e.baseLower[rOut] = e.lower[q]
	e.baseUpper[rOut] = e.upper[q]

	// Step 6: dual update.
	thetaDual := e.dual[q] / alphaCol
	for _, col := range e.rowAp.Index() {
		e.dual[col] -= thetaDual * e.rowAp.Get(col)
	}
	e.dual[q] = 0
	e.dual[vOut] = -thetaDual

	// Step 7: Devex weight update.
	pivotWeight := e.updateDevex(q, rOut, vOut, e.aq, alphaCol)

	// Step 8: S_free membership.
	if wasFree {
		e.freeSet.Remove(q)
		e.numFreeCol = e.freeSet.Count()
	}

	// Step 9: incremental CHUZC feed.
	for _, col := range e.rowAp.Index() {
		e.refreshHyperSparseCandidate(col)
	}
	_ = pivotWeight

	// Step 10: delegate to the basis. vOut's work_value must land on
	// whichever bound moveOut names before it is read as nonbasic again.
	if moveOut == simplexmodel.MoveDown {
		e.value[vOut] = e.upper[vOut]
	} else {
		e.value[vOut] = e.lower[vOut]
	}
	if err := e.basis.UpdatePivots(q, rOut, moveOut); err != nil {
		return err
	}
	// Step 9, leaving variable: offered only now that UpdatePivots has
	// made it nonbasic.
	e.refreshHyperSparseCandidate(vOut)
	if err := e.basis.UpdateMatrix(q, vOut); err != nil {
		return err
	}
	factorReason, err := e.basis.UpdateFactor(e.aq, e.rowEp, rOut)
	if err != nil {
		return err
	}
	if factorReason != simplexmodel.RebuildNone && e.rebuildReason == simplexmodel.RebuildNone {
		e.rebuildReason = factorReason
	}
	e.updateCount++
	if e.updateCount >= e.opts.UpdateLimit && e.rebuildReason == simplexmodel.RebuildNone {
		e.rebuildReason = simplexmodel.RebuildUpdateLimitReached
	}

	// Step 11.
	e.iterationCount++
	e.reportIteration()
	return nil
}

// handleEnteringInfeasibility is the dispatch of §4.8 step 5 once the
// entering variable's post-pivot value is found outside its bound.
// atLower reports which bound was violated.
func (e *Engine) handleEnteringInfeasibility(q int, value, bound float64, atLower bool) error {
	infeasibility := value - bound
	if infeasibility < 0 {
		infeasibility = -infeasibility
	}
	switch {
	case e.phase == simplexmodel.Phase1:
		cost := 1.0
		if atLower {
			cost = -1.0
		}
		e.cost[q] = cost
		e.dual[q] += cost
		return nil
	case e.opts.AllowBoundPerturbation:
		return e.shiftBound(q, atLower, infeasibility)
	default:
		if e.rebuildReason == simplexmodel.RebuildNone {
			e.rebuildReason = simplexmodel.RebuildPrimalInfeasibleInPrimalSimplex
		}
		return nil
	}
}
