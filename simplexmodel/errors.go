package simplexmodel

import "errors"

var (
	// ErrNoRows indicates solve() was called against a model with zero
	// rows (§7 InputError).
	ErrNoRows = errors.New("simplexmodel: model has no rows")

	// ErrNilBasis indicates a nil Basis collaborator was supplied.
	ErrNilBasis = errors.New("simplexmodel: basis collaborator is nil")

	// ErrNilModel indicates a nil Model collaborator was supplied.
	ErrNilModel = errors.New("simplexmodel: model collaborator is nil")

	// ErrRankDeficient indicates the basis factorization reported a
	// rank-deficient basis matrix (§7 NumericError).
	ErrRankDeficient = errors.New("simplexmodel: rank-deficient basis matrix")

	// ErrNumericalCrossCheck indicates the column/row pivot cross-check
	// (§4.7) exceeded the hard 1e-3 threshold: an invariant violation, not
	// a recoverable rebuild trigger.
	ErrNumericalCrossCheck = errors.New("simplexmodel: pivot numerical cross-check failed")

	// ErrLogicInvariant indicates an internal invariant was found broken
	// (§7 LogicError), e.g. a recomputed infeasibility count disagreeing
	// with the incrementally maintained one.
	ErrLogicInvariant = errors.New("simplexmodel: internal invariant violated")
)
