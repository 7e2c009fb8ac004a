package primal

import "github.com/katalvlaran/ekkprimal/simplexmodel"

// rebuild is C7's rebuild half (§4.9): refactorize if any updates are
// pending, recompute base_value from scratch, recount infeasibilities,
// flip phase if warranted, and refresh duals for the (possibly new)
// phase. It is called once before every inner-loop pass (§4.10).
func (e *Engine) rebuild() error {
	if e.updateCount > 0 {
		rd, err := e.basis.ComputeFactor()
		if err != nil {
			return err
		}
		if rd != 0 {
			e.phase = simplexmodel.PhaseError
			e.modelStatus = simplexmodel.StatusSolveError
			return ErrRankDeficient
		}
		e.updateCount = 0
	}

	if err := e.basis.ComputePrimal(e.value, e.baseValue); err != nil {
		return err
	}

	if e.phase == simplexmodel.Phase2 && e.opts.CorrectPrimalOnRebuild {
		e.correctPrimalDiagnostic()
	}

	freshCount := e.recountInfeasibilities()
	if e.phase != simplexmodel.PhaseUnknown && !e.boundsPerturbed && !e.opts.CorrectPrimalOnRebuild && freshCount != e.numPrimalInfeasibilities {
		e.phase = simplexmodel.PhaseError
		e.modelStatus = simplexmodel.StatusSolveError
		return ErrLogicInvariant
	}
	e.numPrimalInfeasibilities = freshCount

	switch {
	case e.phase == simplexmodel.PhaseUnknown:
		if e.numPrimalInfeasibilities > 0 {
			e.switchToPhase1()
		} else {
			e.switchToPhase2()
		}
	case e.phase == simplexmodel.Phase2 && e.numPrimalInfeasibilities > 0:
		e.switchToPhase1()
	case e.phase == simplexmodel.Phase1 && e.numPrimalInfeasibilities == 0:
		e.switchToPhase2()
	}

	var err error
	if e.phase == simplexmodel.Phase1 {
		err = e.recomputePhase1Duals()
	} else {
		err = e.model.ComputeDual(e.cost, e.dual)
	}
	if err != nil {
		return err
	}

	scratch := e.computeObjectiveFromScratch()
	e.updatedPrimalObjectiveValue += scratch - e.previousObjectiveScratch
	e.previousObjectiveScratch = scratch

	e.hyperSparseEnabled = e.phase == simplexmodel.Phase2
	e.heap.Reset()
	e.chuzcDoneNext = false
	e.numFlipSinceRebuild = 0
	e.hasFreshRebuild = true
	e.rebuildReason = simplexmodel.RebuildNone
	return nil
}

// cleanup is C7's cleanup half (§4.9), invoked once Phase 2 reports
// nothing left to do: undo every bound shift, recompute from scratch,
// and settle on PhaseOptimal or PhaseCleanup.
func (e *Engine) cleanup() error {
	for v := 0; v < e.nTot; v++ {
		if e.lowerShift[v] != 0 {
			e.lower[v] += e.lowerShift[v]
			e.lowerShift[v] = 0
		}
		if e.upperShift[v] != 0 {
			e.upper[v] -= e.upperShift[v]
			e.upperShift[v] = 0
		}
	}
	e.boundsPerturbed = false
	for r := 0; r < e.nRow; r++ {
		bv := e.basis.BasicIndex(r)
		e.baseLower[r] = e.lower[bv]
		e.baseUpper[r] = e.upper[bv]
	}

	if err := e.basis.ComputePrimal(e.value, e.baseValue); err != nil {
		return err
	}
	e.numPrimalInfeasibilities = e.recountInfeasibilities()
	if err := e.model.ComputeDual(e.cost, e.dual); err != nil {
		return err
	}
	scratch := e.computeObjectiveFromScratch()
	e.updatedPrimalObjectiveValue = scratch
	e.previousObjectiveScratch = scratch

	if e.numPrimalInfeasibilities > 0 {
		e.phase = simplexmodel.PhaseCleanup
	} else {
		e.phase = simplexmodel.PhaseOptimal
		e.modelStatus = simplexmodel.StatusOptimal
	}
	return nil
}

// recountInfeasibilities rescans base_value against its bounds from
// scratch (§4.9) without assigning the result, so a caller can compare
// it against the incrementally maintained count before committing to
// it (§7 LogicError).
func (e *Engine) recountInfeasibilities() int {
	tol := e.opts.PrimalFeasibilityTolerance
	count := 0
	for r := 0; r < e.nRow; r++ {
		v := e.baseValue[r]
		if v < e.baseLower[r]-tol || v > e.baseUpper[r]+tol {
			count++
		}
	}
	return count
}

// correctPrimalDiagnostic is the configuration-gated "correct primal"
// pass (§4.9): widen a violated basic bound to the basic value so the
// row counts as feasible. Only the row bounds baseLower/baseUpper
// change. Off by default (Options.CorrectPrimalOnRebuild).
func (e *Engine) correctPrimalDiagnostic() {
	tol := e.opts.PrimalFeasibilityTolerance
	for r := 0; r < e.nRow; r++ {
		if e.baseValue[r] < e.baseLower[r]-tol {
			e.baseLower[r] = e.baseValue[r]
		}
		if e.baseValue[r] > e.baseUpper[r]+tol {
			e.baseUpper[r] = e.baseValue[r]
		}
	}
}

// switchToPhase1 resets work_cost to the Phase-1 synthetic costs: zero
// on every nonbasic variable, ±1/0 on each basic variable per its
// current feasibility.
func (e *Engine) switchToPhase1() {
	e.phase = simplexmodel.Phase1
	for v := 0; v < e.nTot; v++ {
		e.cost[v] = 0
	}
	for r := 0; r < e.nRow; r++ {
		bv := e.basis.BasicIndex(r)
		e.cost[bv] = e.phase1SyntheticCost(e.baseValue[r], e.baseLower[r], e.baseUpper[r])
	}
}

// switchToPhase2 restores work_cost to the true objective costs.
func (e *Engine) switchToPhase2() {
	e.phase = simplexmodel.Phase2
	for v := 0; v < e.nTot; v++ {
		e.cost[v] = e.model.WorkCost(v)
	}
}

// recomputePhase1Duals is rebuild's Phase-1 path (§4.9): BTRAN+PRICE the
// vector of basic synthetic costs, then set work_dual to the reduced
// cost d_j = cost[j] − (c_B^T B^{-1} A_j) everywhere, with every basic
// position forced back to exactly zero.
func (e *Engine) recomputePhase1Duals() error {
	costVec := make([]float64, e.nRow)
	for r := 0; r < e.nRow; r++ {
		costVec[r] = e.cost[e.basis.BasicIndex(r)]
	}
	e.btranBuf.Clear()
	if err := e.basis.FullBtran(costVec, e.btranBuf); err != nil {
		return err
	}
	e.rowBasicFeasibilityChg.Clear()
	if err := e.basis.FullPrice(e.btranBuf.Array(), e.rowBasicFeasibilityChg); err != nil {
		return err
	}
	for v := 0; v < e.nTot; v++ {
		e.dual[v] = e.cost[v]
	}
	for _, v := range e.rowBasicFeasibilityChg.Index() {
		e.dual[v] -= e.rowBasicFeasibilityChg.Get(v)
	}
	for r := 0; r < e.nRow; r++ {
		e.dual[e.basis.BasicIndex(r)] = 0
	}
	return nil
}

// computeObjectiveFromScratch sums cost·value over every variable,
// nonbasic from work_value and basic from base_value, for the
// objective-value correction in rebuild and cleanup.
func (e *Engine) computeObjectiveFromScratch() float64 {
	obj := 0.0
	for v := 0; v < e.nTot; v++ {
		if e.basis.NonbasicFlag(v) == simplexmodel.Nonbasic {
			obj += e.cost[v] * e.value[v]
		}
	}
	for r := 0; r < e.nRow; r++ {
		obj += e.cost[e.basis.BasicIndex(r)] * e.baseValue[r]
	}
	return obj
}
