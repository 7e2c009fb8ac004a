package primal

import (
	"time"

	"github.com/katalvlaran/ekkprimal/simplexmodel"
)

// Solve runs the two-phase state machine (C8, §4.10) to completion: a
// terminal phase, or a Warning bailout. The engine holds its mutable
// state exclusively for the duration of this call (§5); there are no
// suspension points visible to the caller.
func (e *Engine) Solve() (Result, error) {
	e.startTime = time.Now()

	if err := e.rebuild(); err != nil {
		return e.buildResult(false), err
	}

	for !e.terminalPhase() {
		if e.checkBailout() {
			return e.buildResult(true), nil
		}

		for e.rebuildReason == simplexmodel.RebuildNone && !e.terminalPhase() {
			if err := e.iterate(); err != nil {
				return e.buildResult(false), err
			}
			if e.checkBailout() {
				return e.buildResult(true), nil
			}
		}
		if e.terminalPhase() {
			break
		}

		if err := e.resolveRebuildTrigger(); err != nil {
			return e.buildResult(false), err
		}
		e.rebuildReason = simplexmodel.RebuildNone
	}

	return e.buildResult(false), nil
}

// iterate runs one pricing/ratio-test/pivot-or-flip step (§4.4–§4.8). It
// mutates e.rebuildReason as a side effect when a rebuild trigger fires,
// rather than returning it, so the inner loop in Solve can detect it.
func (e *Engine) iterate() error {
	q, _ := e.runCHUZC()
	if q == -1 {
		e.rebuildReason = simplexmodel.RebuildPossiblyOptimal
		return nil
	}

	moveIn := 1.0
	if e.dual[q] > 0 {
		moveIn = -1.0
	}

	e.aq.Clear()
	if err := e.basis.PivotColumnFtran(q, e.aq); err != nil {
		return err
	}

	var (
		rOut     int
		alphaCol float64
		moveOut  simplexmodel.NonbasicMove
		found    bool
	)
	if e.phase == simplexmodel.Phase1 {
		r, a, m, err := e.chuzrPhase1(q, e.aq, moveIn)
		if err != nil {
			return err
		}
		rOut, alphaCol, moveOut, found = r, a, m, true
	} else {
		rOut, alphaCol, moveOut, found = e.chuzrPhase2(e.aq, moveIn)
	}

	decision := e.considerBoundSwap(q, rOut, alphaCol, moveOut, found, moveIn)
	if decision.rebuildReason != simplexmodel.RebuildNone {
		e.rebuildReason = decision.rebuildReason
		return nil
	}
	if decision.flip {
		return e.applyBoundFlip(q, e.aq, moveIn, decision.thetaPrimal)
	}

	e.rowEp.Clear()
	if err := e.basis.UnitBtran(rOut, e.rowEp); err != nil {
		return err
	}
	e.rowAp.Clear()
	if err := e.basis.TableauRowPrice(e.rowEp, e.rowAp); err != nil {
		return err
	}

	reason, err := e.assessPivot(q, alphaCol)
	if err != nil {
		return err
	}
	if reason != simplexmodel.RebuildNone {
		e.rebuildReason = reason
		return nil
	}

	return e.applyPivot(q, rOut, alphaCol, moveOut, moveIn, decision.thetaPrimal)
}

// resolveRebuildTrigger dispatches the §4.10 terminal-transition table
// for whichever rebuild reason broke the inner loop.
func (e *Engine) resolveRebuildTrigger() error {
	switch e.rebuildReason {
	case simplexmodel.RebuildPossiblyOptimal:
		return e.resolvePossiblyOptimal()

	case simplexmodel.RebuildPossiblyPrimalUnbounded:
		if e.boundsPerturbed {
			return e.cleanup()
		}
		e.solvePhase2NoPivot()
		return nil

	case simplexmodel.RebuildPrimalInfeasibleInPrimalSimplex,
		simplexmodel.RebuildPossiblySingularBasis,
		simplexmodel.RebuildUpdateLimitReached,
		simplexmodel.RebuildSyntheticClockSaysInvert:
		return e.rebuild()

	default:
		return nil
	}
}

// resolvePossiblyOptimal handles CHUZC reporting no candidate. In
// Phase 1 this means primal infeasibility once a rebuild confirms it
// (a stale CHUZC reading can be wrong); in Phase 2 it means optimality
// unless bounds are still perturbed, in which case cleanup must run and
// remove them before the claim can be trusted.
func (e *Engine) resolvePossiblyOptimal() error {
	if e.phase == simplexmodel.Phase1 {
		if err := e.rebuild(); err != nil {
			return err
		}
		if e.phase == simplexmodel.Phase1 {
			if q, _ := e.runCHUZC(); q == -1 && e.numPrimalInfeasibilities > 0 {
				e.phase = simplexmodel.PhaseExit
				e.modelStatus = simplexmodel.StatusPrimalInfeasible
			}
		}
		return nil
	}

	if e.boundsPerturbed {
		return e.cleanup()
	}
	e.phase = simplexmodel.PhaseOptimal
	e.modelStatus = simplexmodel.StatusOptimal
	return nil
}

// solvePhase2NoPivot is Phase 2's "no pivot, no flip" terminal branch
// (§4.10): prefer a previously recorded PrimalDualInfeasible status
// over overwriting it with PrimalUnbounded.
func (e *Engine) solvePhase2NoPivot() {
	e.phase = simplexmodel.PhaseExit
	if e.modelStatus == simplexmodel.StatusPrimalDualInfeasible {
		return
	}
	e.modelStatus = simplexmodel.StatusPrimalUnbounded
}

// terminalPhase reports whether the phase is one Solve should stop at.
func (e *Engine) terminalPhase() bool {
	switch e.phase {
	case simplexmodel.PhaseOptimal, simplexmodel.PhaseExit, simplexmodel.PhaseCleanup, simplexmodel.PhaseError:
		return true
	}
	return false
}

// checkBailout polls the iteration and time limits (§5 Cancellation and
// timeouts). A zero limit means unlimited.
func (e *Engine) checkBailout() bool {
	if e.opts.IterationLimit > 0 && e.iterationCount >= e.opts.IterationLimit {
		return true
	}
	if e.opts.TimeLimit > 0 && e.elapsed() >= e.opts.TimeLimit {
		return true
	}
	return false
}

// buildResult assembles the terminal or bailout Result.
func (e *Engine) buildResult(warning bool) Result {
	return Result{
		Status:          e.modelStatus,
		Phase:           e.phase,
		Iterations:      e.iterationCount,
		ObjectiveValue:  e.updatedPrimalObjectiveValue,
		Warning:         warning,
		BoundsPerturbed: e.boundsPerturbed,
	}
}
