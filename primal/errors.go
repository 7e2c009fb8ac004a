package primal

import "errors"

var (
	// ErrNilBasis is returned by NewEngine when basis is nil.
	ErrNilBasis = errors.New("primal: basis collaborator is nil")
	// ErrNilModel is returned by NewEngine when model is nil.
	ErrNilModel = errors.New("primal: model collaborator is nil")
	// ErrNoRows is returned by NewEngine when the model has zero rows
	// (§7 InputError).
	ErrNoRows = errors.New("primal: model has no rows")
	// ErrRankDeficient is returned by Solve when rebuild's
	// (re)factorization reports a rank-deficient basis (§7 NumericError).
	ErrRankDeficient = errors.New("primal: rank-deficient basis")
	// ErrNumericalCrossCheck is returned by Solve when a pivot's
	// column/row numerical cross-check (§4.7) exceeds the hard 1e-3
	// threshold.
	ErrNumericalCrossCheck = errors.New("primal: pivot numerical cross-check failed")
	// ErrLogicInvariant is returned when an internal invariant is found
	// broken (§7 LogicError).
	ErrLogicInvariant = errors.New("primal: internal invariant violated")
	// ErrPhase1NoLeavingRow is the hard error of §4.5: in Phase 1, an
	// empty relaxed breakpoint list R is not a valid "no leaving row"
	// outcome (that is only legitimate in Phase 2).
	ErrPhase1NoLeavingRow = errors.New("primal: phase-1 ratio test found no leaving row")
)
