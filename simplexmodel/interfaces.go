package simplexmodel

import "github.com/katalvlaran/ekkprimal/vecset"

// Basis is the basis-factorization collaborator (§6). The core never
// holds a matrix or a factorization of its own; every FTRAN/BTRAN/PRICE
// and every basis-state mutation is delegated here.
//
// Variables are numbered [0, NumCols+NumRows): columns [0, NumCols) are
// structural, columns [NumCols, NumCols+NumRows) are the logical/slack
// variable for each row.
type Basis interface {
	// PivotColumnFtran solves B·a_q = A[:,q] in place into aq, which the
	// caller has Clear'd. Returns the pivot column.
	PivotColumnFtran(q int, aq *vecset.SparseVector) error
	// UnitBtran solves B^T·row_ep = e_r in place into rowEp.
	UnitBtran(r int, rowEp *vecset.SparseVector) error
	// TableauRowPrice forms rowAp = rowEp · A_N over the full nonbasic
	// column space [0, NumCols+NumRows) — structural and logical/slack
	// columns together, so the core does not need a second PRICE call
	// for the slack side of the pivot row.
	TableauRowPrice(rowEp *vecset.SparseVector, rowAp *vecset.SparseVector) error
	// FullBtran solves B^T·out = v for a dense right-hand side v,
	// without relying on v being unit; used for the Phase-1 synthetic-
	// cost dual recompute in rebuild (§4.9).
	FullBtran(v []float64, out *vecset.SparseVector) error
	// FullPrice forms out = v · A_N for a dense row vector v.
	FullPrice(v []float64, out *vecset.SparseVector) error
	// ComputeFactor (re)factorizes the current basis, returning a
	// nonzero rank deficiency count on failure (0 = full rank).
	ComputeFactor() (rankDeficiency int, err error)
	// ComputePrimal solves B·x_B = b − N·x_N from scratch, writing one
	// entry per basis row into baseValue. workValue supplies x_N (the
	// nonbasic variables' current values); basic positions in workValue
	// are ignored. Used by rebuild (§4.9) to recompute base_value
	// without drift from incremental updates.
	ComputePrimal(workValue []float64, baseValue []float64) error
	// UpdateFactor folds one pivot (column aq entering at row rOut, with
	// BTRAN row rowEp) into the factorization. It may decide a
	// reinversion is cheaper than continuing to update, in which case it
	// returns RebuildSyntheticClockSaysInvert.
	UpdateFactor(aq *vecset.SparseVector, rowEp *vecset.SparseVector, rOut int) (RebuildReason, error)
	// UpdatePivots performs the symbolic basis change: q becomes basic
	// in row rOut, the variable that occupied rOut becomes nonbasic with
	// the given move.
	UpdatePivots(q, rOut int, moveOut NonbasicMove) error
	// UpdateMatrix updates any matrix-side bookkeeping the PRICE
	// operation depends on after q and vOut trade basic/nonbasic roles.
	UpdateMatrix(q, vOut int) error
	// FlipNonbasic performs the symbolic bound-swap of §4.6: v stays
	// nonbasic, but now sits at the opposite bound, recorded as newMove.
	// No factorization or matrix update is implied.
	FlipNonbasic(v int, newMove NonbasicMove) error

	// NonbasicFlag reports whether v is currently basic or nonbasic.
	NonbasicFlag(v int) NonbasicFlag
	// NonbasicMove reports which bound a nonbasic v currently sits at.
	NonbasicMove(v int) NonbasicMove
	// BasicIndex reports which variable occupies basic row r.
	BasicIndex(r int) int
}

// Model is the LP data collaborator (§6): bounds and costs over the
// full variable index space, plus the Phase-2 dual recompute hook.
type Model interface {
	// NumCols returns n_col, the number of structural columns.
	NumCols() int
	// NumRows returns n_row, the number of logical/slack columns (and
	// basis rows).
	NumRows() int

	// WorkLower returns the lower bound of variable v. The engine reads
	// it once, at construction, and perturbs only its own copy.
	WorkLower(v int) float64
	// WorkUpper returns the upper bound of variable v. The engine reads
	// it once, at construction, and perturbs only its own copy.
	WorkUpper(v int) float64
	// WorkCost returns the objective cost coefficient of variable v. The
	// engine reads it at construction and again on every switch to
	// Phase 2; Phase-1 synthetic costs are held by the engine only.
	WorkCost(v int) float64
	// BaseLower returns the lower bound of the basic variable in row r.
	BaseLower(r int) float64
	// BaseUpper returns the upper bound of the basic variable in row r.
	BaseUpper(r int) float64

	// ComputeDual recomputes work_dual from workCost via the structural
	// matrix and the current factorization, writing NumCols+NumRows
	// entries into dual. This is the "external computeDual collaborator"
	// Phase 2 rebuild delegates to (§4.9); Phase 1 instead uses Basis's
	// FullBtran/FullPrice directly over synthetic costs.
	ComputeDual(workCost []float64, dual []float64) error
}

// RandomSource is the deterministic per-variable tie-break sequence used
// solely by the bound-shift helper (C9, §4.6 GLOSSARY, §8 property 8).
type RandomSource interface {
	// Float64 returns a value in [0, 1) that is a deterministic function
	// of v, so repeated shifts of the same variable within one solve are
	// reproducible.
	Float64(v int) float64
}

// Logger is the minimal message sink the engine reports progress
// through (AMBIENT STACK); the default is a no-op.
type Logger interface {
	Printf(format string, args ...any)
}

// NopLogger discards everything written to it.
type NopLogger struct{}

// Printf implements Logger by doing nothing.
func (NopLogger) Printf(string, ...any) {}
