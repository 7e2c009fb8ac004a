package primal

import (
	"math"

	"github.com/katalvlaran/ekkprimal/simplexmodel"
)

// dualInf is the dual infeasibility measure of §4.4: |work_dual[v]| for
// a free variable, otherwise the reduced cost signed by the bound it
// currently sits at.
func (e *Engine) dualInf(v int) float64 {
	move := e.basis.NonbasicMove(v)
	if move == simplexmodel.MoveNone {
		return math.Abs(e.dual[v])
	}
	return -float64(move) * e.dual[v]
}

// chuzcMeasure is dual_inf(v) / devex_weight[v], the CHUZC ranking key.
func (e *Engine) chuzcMeasure(v int) float64 {
	return e.dualInf(v) / e.devexWeight[v]
}

// chuzcFull performs the full O(n_tot) pricing scan (§4.4a): S_free
// first, then every variable. Scanning S_free twice (it is a subset of
// [0, n_tot)) only affects which variable wins an exact tie, giving
// free columns priority, matching the source's scan order.
func (e *Engine) chuzcFull() (q int, measure float64, found bool) {
	q = -1
	consider := func(v int) {
		if e.basis.NonbasicFlag(v) != simplexmodel.Nonbasic {
			return
		}
		di := e.dualInf(v)
		if di <= e.opts.DualFeasibilityTolerance {
			return
		}
		m := di / e.devexWeight[v]
		if q == -1 || m > measure {
			q = v
			measure = m
		}
	}
	for _, v := range e.freeSet.Entries() {
		consider(v)
	}
	for v := 0; v < e.nTot; v++ {
		consider(v)
	}
	return q, measure, q != -1
}

// refreshHyperSparseCandidate offers v to the incremental top-K heap if
// it is a valid CHUZC candidate; called from the update engine (§4.8
// step 9) for every column whose dual changed this pivot, and for the
// leaving variable.
func (e *Engine) refreshHyperSparseCandidate(v int) {
	if !e.hyperSparseEnabled {
		return
	}
	if e.basis.NonbasicFlag(v) != simplexmodel.Nonbasic {
		return
	}
	di := e.dualInf(v)
	if di <= e.opts.DualFeasibilityTolerance {
		return
	}
	e.heap.Add(di/e.devexWeight[v], v)
}

// runCHUZC selects the entering variable q, using the incremental
// hyper-sparse heap when it is enabled and trustworthy, falling back to
// a full scan otherwise (§4.4b). It returns q = -1 if no candidate
// satisfies the dual feasibility tolerance.
func (e *Engine) runCHUZC() (q int, measure float64) {
	if !e.hyperSparseEnabled {
		q, measure, ok := e.chuzcFull()
		if !ok {
			return -1, 0
		}
		return q, measure
	}

	best, id, ok := e.heap.Best()
	nonCand := e.heap.NonCandidateMeasure()
	// A retained entry goes stale when its column pivots into the basis,
	// flips bound, or has its dual or weight changed after it was added,
	// so the heap's best is trusted only while that column is still
	// nonbasic and its current measure equals the recorded one.
	if ok && best >= nonCand && e.basis.NonbasicFlag(id) == simplexmodel.Nonbasic && e.chuzcMeasure(id) == best {
		e.chuzcDoneNext = true
		if e.opts.DebugCheckCHUZC {
			e.debugCheckCHUZC(id, best)
		}
		return id, best
	}

	// The heap can no longer certify it holds the true best: a column
	// outside it may have grown past max_noncand unnoticed. Fall back to
	// a full scan and reseed the heap with what it finds so later
	// incremental refreshes have a trustworthy baseline.
	e.heap.Reset()
	fq, fm, fok := e.chuzcFull()
	if !fok {
		return -1, 0
	}
	e.heap.Add(fm, fq)
	return fq, fm
}

// debugCheckCHUZC re-runs a full scan and logs a mismatch against the
// hyper-sparse pick, gated by Options.DebugCheckCHUZC (§4.4 self-
// consistency check).
func (e *Engine) debugCheckCHUZC(hyperQ int, hyperMeasure float64) {
	fq, fm, fok := e.chuzcFull()
	if !fok || fq != hyperQ || math.Abs(fm-hyperMeasure) > 1e-9 {
		e.logger.Printf(
			"primal: chuzc self-consistency check failed: hyper-sparse picked q=%d measure=%.9g, full scan picked q=%d measure=%.9g found=%v",
			hyperQ, hyperMeasure, fq, fm, fok,
		)
	}
}
