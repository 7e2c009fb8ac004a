// Package primal internal tests exercise the two-phase engine end to
// end against small hand-built LPs, plus the bound-shift/cleanup pair
// in isolation. densebasis.Basis plays both the Basis and Model
// collaborator roles: NewBasis's logical/slack column for row r is a
// unit vector, so the implicit constraint per row reads
// structural·value + slack = 0, i.e. slack = -(structural row
// activity). Every fixture below encodes its row bound with that
// convention in mind.
package primal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ekkprimal/densebasis"
	"github.com/katalvlaran/ekkprimal/simplexmodel"
)

// ------------------------------------------------------------------------
// 1. Trivial optimal: one pivot settles it.
// ------------------------------------------------------------------------

// TestSolve_TrivialOptimal covers min x1+x2 s.t. x1+x2 >= 1, x1,x2 >= 0,
// starting with both variables nonbasic at zero and the row's slack
// basic. The only feasible move brings one variable in at 1.
func TestSolve_TrivialOptimal(t *testing.T) {
	r := require.New(t)
	structural := [][]float64{{1}, {1}}
	lower := []float64{0, 0, -simplexmodel.Inf}
	upper := []float64{simplexmodel.Inf, simplexmodel.Inf, -1}
	cost := []float64{1, 1, 0}
	b, err := densebasis.NewBasis(structural, lower, upper, cost, []int{2})
	r.NoError(err)

	e, err := NewEngine(b, b, nil, nil, simplexmodel.DefaultOptions(simplexmodel.WithBoundPerturbation(false)))
	r.NoError(err)

	res, err := e.Solve()
	r.NoError(err)
	r.Equal(simplexmodel.StatusOptimal, res.Status)
	r.Equal(1, res.Iterations)
	r.InDelta(1.0, res.ObjectiveValue, 1e-9)

	oneBasic := b.NonbasicFlag(0) == simplexmodel.Basic || b.NonbasicFlag(1) == simplexmodel.Basic
	r.True(oneBasic, "one of x1, x2 must end up basic")
}

// ------------------------------------------------------------------------
// 2. Primal infeasible: CHUZC starves in Phase 1.
// ------------------------------------------------------------------------

// TestSolve_PrimalInfeasible covers x <= -1, x >= 0: no assignment can
// satisfy both, so Phase 1 finds no infeasibility-reducing direction
// and the engine must declare PRIMAL_INFEASIBLE without ever pivoting.
func TestSolve_PrimalInfeasible(t *testing.T) {
	r := require.New(t)
	structural := [][]float64{{1}}
	lower := []float64{0, 1}
	upper := []float64{simplexmodel.Inf, simplexmodel.Inf}
	cost := []float64{1, 0}
	b, err := densebasis.NewBasis(structural, lower, upper, cost, []int{1})
	r.NoError(err)

	e, err := NewEngine(b, b, nil, nil, simplexmodel.DefaultOptions(simplexmodel.WithBoundPerturbation(false)))
	r.NoError(err)

	res, err := e.Solve()
	r.NoError(err)
	r.Equal(simplexmodel.StatusPrimalInfeasible, res.Status)
	r.Equal(simplexmodel.PhaseExit, res.Phase)
	r.Equal(0, res.Iterations)
}

// ------------------------------------------------------------------------
// 3. Unbounded: CHUZR starves in Phase 2 with an infinite entering span.
// ------------------------------------------------------------------------

// TestSolve_Unbounded covers min -x s.t. x >= 0, modeled against a
// dummy zero-coefficient row so the engine's one-row minimum is met.
// x never appears in any row, so its FTRAN column is all zero and
// CHUZR finds no bounding row; x's own span is infinite, so no flip
// rescues it either.
func TestSolve_Unbounded(t *testing.T) {
	r := require.New(t)
	structural := [][]float64{{0}}
	lower := []float64{0, -simplexmodel.Inf}
	upper := []float64{simplexmodel.Inf, simplexmodel.Inf}
	cost := []float64{-1, 0}
	b, err := densebasis.NewBasis(structural, lower, upper, cost, []int{1})
	r.NoError(err)

	e, err := NewEngine(b, b, nil, nil, simplexmodel.DefaultOptions(simplexmodel.WithBoundPerturbation(false)))
	r.NoError(err)

	res, err := e.Solve()
	r.NoError(err)
	r.Equal(simplexmodel.StatusPrimalUnbounded, res.Status)
	r.Equal(0, res.Iterations)
}

// ------------------------------------------------------------------------
// 4. Bound-flip dominates pivot.
// ------------------------------------------------------------------------

// TestSolve_BoundFlipDominatesPivot covers min x s.t. 0<=x<=5, 0<=y<=1,
// x+y=3, starting with x basic at 3 and y nonbasic at 0. y's own span
// (1) is shorter than the distance from x's current value to the
// lower bound it moves toward (3), so CHUZR's flip-vs-pivot comparison must choose
// the flip: y jumps straight to its upper bound, x settles at 2, and
// the LP is already optimal (x cannot go below 3-1=2 while y<=1).
func TestSolve_BoundFlipDominatesPivot(t *testing.T) {
	r := require.New(t)
	structural := [][]float64{{1}, {1}}
	lower := []float64{0, 0, -3}
	upper := []float64{5, 1, -3}
	cost := []float64{1, 0, 0}
	b, err := densebasis.NewBasis(structural, lower, upper, cost, []int{0})
	r.NoError(err)
	_, err = b.ComputeFactor()
	r.NoError(err)

	e, err := NewEngine(b, b, nil, nil, simplexmodel.DefaultOptions(simplexmodel.WithBoundPerturbation(false)))
	r.NoError(err)

	res, err := e.Solve()
	r.NoError(err)
	r.Equal(simplexmodel.StatusOptimal, res.Status)
	r.Equal(0, res.Iterations, "the flip must settle this without ever pivoting")
	r.Greater(e.primalBoundSwap, 0)
	r.InDelta(2.0, res.ObjectiveValue, 1e-9)
}

// ------------------------------------------------------------------------
// 5. Degenerate Harris: more than one step, no cycling, optimal.
// ------------------------------------------------------------------------

// TestSolve_DegenerateHarris covers min x+y s.t. x+y >= 2, 0<=x<=1,
// 0<=y<=1, starting at (0, 0). Neither variable alone can reach
// feasibility (each capped at 1 against a requirement of 2), so the
// engine must move both: a flip that saturates the first candidate's
// bound, then a pivot that brings the second in to close the gap.
func TestSolve_DegenerateHarris(t *testing.T) {
	r := require.New(t)
	structural := [][]float64{{1}, {1}}
	lower := []float64{0, 0, -simplexmodel.Inf}
	upper := []float64{1, 1, -2}
	cost := []float64{1, 1, 0}
	b, err := densebasis.NewBasis(structural, lower, upper, cost, []int{2})
	r.NoError(err)

	e, err := NewEngine(b, b, nil, nil, simplexmodel.DefaultOptions(
		simplexmodel.WithBoundPerturbation(false),
		simplexmodel.WithIterationLimit(1000),
	))
	r.NoError(err)

	res, err := e.Solve()
	r.NoError(err)
	r.False(res.Warning, "must not hit the 1000-iteration bailout")
	r.Equal(simplexmodel.StatusOptimal, res.Status)
	r.InDelta(2.0, res.ObjectiveValue, 1e-9)
	// Reaching feasibility took a flip and a pivot: more than a single
	// algorithmic step in total, even though only the pivot increments
	// Result.Iterations.
	r.GreaterOrEqual(res.Iterations+e.primalBoundSwap, 2)
}

// ------------------------------------------------------------------------
// 6. Perturbation + cleanup: shiftBound is exactly reversible.
// ------------------------------------------------------------------------

// TestShiftBoundAndCleanup_ExactlyReversible exercises C9's bound-shift
// helper directly: shifting a violated lower bound must record the
// widened amount in lowerShift and mark boundsPerturbed, and cleanup
// must restore the original bound and clear the flag exactly, with no
// residual shift left behind.
func TestShiftBoundAndCleanup_ExactlyReversible(t *testing.T) {
	r := require.New(t)
	structural := [][]float64{{1}}
	lower := []float64{0, -simplexmodel.Inf}
	upper := []float64{simplexmodel.Inf, simplexmodel.Inf}
	cost := []float64{1, 0}
	b, err := densebasis.NewBasis(structural, lower, upper, cost, []int{1})
	r.NoError(err)

	opts := simplexmodel.DefaultOptions(simplexmodel.WithBoundPerturbation(true))
	e, err := NewEngine(b, b, densebasis.NewDeterministicRandom(7), nil, opts)
	r.NoError(err)
	r.NoError(e.rebuild())

	originalLower := e.lower[0]
	r.NoError(e.shiftBound(0, true, 0.5))
	r.True(e.boundsPerturbed)
	r.Less(e.lower[0], originalLower, "a lower-bound shift must widen it (make it smaller)")
	r.Greater(e.lowerShift[0], 0.0)

	r.NoError(e.cleanup())
	r.False(e.boundsPerturbed)
	r.InDelta(originalLower, e.lower[0], 1e-9)
	r.Equal(0.0, e.lowerShift[0])
}

// ------------------------------------------------------------------------
// 7. Flip from the upper bound: moveIn = -1.
// ------------------------------------------------------------------------

// TestSolve_FlipFromUpperBound covers min x s.t. 0<=x<=1, with x forced
// to start nonbasic at its upper bound (1) rather than the usual lower
// bound, against a row whose slack has a loose enough bound that x's
// own span is the binding one. The entering direction is moveIn=-1
// (x decreases from upper), which every other fixture in this file
// avoids by always entering from a variable's lower bound. x must flip
// straight to 0 rather than pivot.
func TestSolve_FlipFromUpperBound(t *testing.T) {
	r := require.New(t)
	structural := [][]float64{{1}}
	lower := []float64{0, -simplexmodel.Inf}
	upper := []float64{1, 2}
	cost := []float64{1, 0}
	b, err := densebasis.NewBasis(structural, lower, upper, cost, []int{1})
	r.NoError(err)
	r.NoError(b.FlipNonbasic(0, simplexmodel.MoveDown))

	e, err := NewEngine(b, b, nil, nil, simplexmodel.DefaultOptions(simplexmodel.WithBoundPerturbation(false)))
	r.NoError(err)

	res, err := e.Solve()
	r.NoError(err)
	r.Equal(simplexmodel.StatusOptimal, res.Status)
	r.Equal(0, res.Iterations, "a flip must settle this without ever pivoting")
	r.Greater(e.primalBoundSwap, 0)
	r.InDelta(0.0, res.ObjectiveValue, 1e-9)
}

// ------------------------------------------------------------------------
// 8. Entering-value infeasibility drives shiftBound end to end.
// ------------------------------------------------------------------------

// TestSolve_EnteringInfeasibilityShiftsBound forces a free entering
// variable's pivot step past the ±Inf sentinel that stands in for its
// (nonexistent) bound, so applyPivot's step-5 entering-infeasibility
// handling fires for real inside a full Solve() call rather than via a
// direct call to shiftBound. With bound perturbation enabled, the
// pivot goes through and the shift is later found, on cleanup, to have
// only papered over a violation against the variable's true (Inf)
// bound, landing the engine in PhaseCleanup; this is the intended
// outcome of perturbing a bound the problem never really had.
func TestSolve_EnteringInfeasibilityShiftsBound(t *testing.T) {
	r := require.New(t)
	structural := [][]float64{{1}}
	lower := []float64{-simplexmodel.Inf, -2e30}
	upper := []float64{simplexmodel.Inf, simplexmodel.Inf}
	cost := []float64{-1, 0}
	b, err := densebasis.NewBasis(structural, lower, upper, cost, []int{1})
	r.NoError(err)

	opts := simplexmodel.DefaultOptions(simplexmodel.WithBoundPerturbation(true))
	e, err := NewEngine(b, b, nil, nil, opts)
	r.NoError(err)

	res, err := e.Solve()
	r.NoError(err)
	r.Equal(simplexmodel.PhaseCleanup, res.Phase)
	r.False(res.BoundsPerturbed, "cleanup must have already undone the shift")
	r.Equal(0.0, e.upperShift[0])
	r.Equal(0.0, e.lowerShift[0])
}
