package simplexmodel

// NonbasicFlag records whether a variable is currently basic or nonbasic.
// devex_index[v] = nonbasicFlag[v]^2 (§3), so the two valid values must
// stay 0/1.
type NonbasicFlag int8

const (
	// Basic marks a variable that occupies a row of the current basis.
	Basic NonbasicFlag = 0
	// Nonbasic marks a variable fixed at one of its bounds (or free at 0).
	Nonbasic NonbasicFlag = 1
)

// NonbasicMove records which bound a nonbasic variable currently sits at.
type NonbasicMove int8

const (
	// MoveDown means the variable is at its upper bound and would decrease
	// to improve the objective (dual sign convention, §3).
	MoveDown NonbasicMove = -1
	// MoveNone means the variable is free (nonbasic at value 0).
	MoveNone NonbasicMove = 0
	// MoveUp means the variable is at its lower bound and would increase
	// to improve the objective.
	MoveUp NonbasicMove = 1
)

// RebuildReason is the set of non-error conditions (§7: RebuildTrigger)
// that interrupt the inner iteration loop and route control back to
// rebuild(). It is never itself an error.
type RebuildReason int

const (
	// RebuildNone means no trigger fired; keep iterating.
	RebuildNone RebuildReason = iota
	// RebuildPossiblyOptimal fires when CHUZC finds no entering candidate.
	RebuildPossiblyOptimal
	// RebuildPossiblyPrimalUnbounded fires when CHUZR finds no leaving row
	// and no bound flip is possible, in Phase 2.
	RebuildPossiblyPrimalUnbounded
	// RebuildPossiblySingularBasis fires when the column/row pivot
	// cross-check (§4.7) exceeds the soft numerical-trouble threshold.
	RebuildPossiblySingularBasis
	// RebuildPrimalInfeasibleInPrimalSimplex fires when an update step
	// introduces a primal infeasibility that perturbation may not absorb.
	RebuildPrimalInfeasibleInPrimalSimplex
	// RebuildUpdateLimitReached fires when the factorization update count
	// reaches its configured limit, or Phase 1 empties its infeasibility
	// count mid-iteration.
	RebuildUpdateLimitReached
	// RebuildSyntheticClockSaysInvert fires when the basis collaborator's
	// UpdateFactor decides a reinversion is cheaper than another update.
	RebuildSyntheticClockSaysInvert
)

// String renders the rebuild reason for logging.
func (r RebuildReason) String() string {
	switch r {
	case RebuildNone:
		return "none"
	case RebuildPossiblyOptimal:
		return "possibly-optimal"
	case RebuildPossiblyPrimalUnbounded:
		return "possibly-primal-unbounded"
	case RebuildPossiblySingularBasis:
		return "possibly-singular-basis"
	case RebuildPrimalInfeasibleInPrimalSimplex:
		return "primal-infeasible-in-primal-simplex"
	case RebuildUpdateLimitReached:
		return "update-limit-reached"
	case RebuildSyntheticClockSaysInvert:
		return "synthetic-clock-says-invert"
	default:
		return "unknown-rebuild-reason"
	}
}

// SolvePhase is the phase-driver state (§4.10).
type SolvePhase int

const (
	// PhaseUnknown is the state before the first rebuild has run.
	PhaseUnknown SolvePhase = iota
	// Phase1 minimises the sum of primal infeasibilities.
	Phase1
	// Phase2 minimises the true (possibly perturbed) objective.
	Phase2
	// PhaseOptimal is terminal: no primal or dual infeasibility remains.
	PhaseOptimal
	// PhaseExit is terminal: the LP has no optimal solution, and
	// ModelStatus records which of PrimalInfeasible/PrimalUnbounded/
	// PrimalDualInfeasible applies.
	PhaseExit
	// PhaseCleanup is terminal from the primal engine's point of view:
	// hand off to a dual-simplex cleanup pass.
	PhaseCleanup
	// PhaseError is terminal: a non-recoverable numerical or logic error.
	PhaseError
)

// String renders the phase for logging.
func (p SolvePhase) String() string {
	switch p {
	case PhaseUnknown:
		return "unknown"
	case Phase1:
		return "phase-1"
	case Phase2:
		return "phase-2"
	case PhaseOptimal:
		return "optimal"
	case PhaseExit:
		return "exit"
	case PhaseCleanup:
		return "cleanup"
	case PhaseError:
		return "error"
	default:
		return "unknown-phase"
	}
}

// ModelStatus is the user-visible outcome of a solve (§7).
type ModelStatus int

const (
	// StatusNotSet means solve() has not finished determining a status.
	StatusNotSet ModelStatus = iota
	// StatusOptimal means an optimal basic feasible solution was found.
	StatusOptimal
	// StatusPrimalInfeasible means no feasible point exists.
	StatusPrimalInfeasible
	// StatusPrimalUnbounded means the objective is unbounded on the
	// feasible region.
	StatusPrimalUnbounded
	// StatusPrimalDualInfeasible means both primal and dual infeasibility
	// were observed; reported in preference to overwriting it with
	// StatusPrimalUnbounded.
	StatusPrimalDualInfeasible
	// StatusDualInfeasible means Phase 1 could not resolve primal
	// infeasibility while a known dual-infeasible condition persists.
	StatusDualInfeasible
	// StatusSolveError means a non-recoverable numerical or logic error
	// occurred (rank-deficient basis after reinversion, a pivot
	// cross-check past the hard threshold, or a broken invariant).
	StatusSolveError
)

// String renders the model status for logging.
func (s ModelStatus) String() string {
	switch s {
	case StatusNotSet:
		return "not-set"
	case StatusOptimal:
		return "optimal"
	case StatusPrimalInfeasible:
		return "primal-infeasible"
	case StatusPrimalUnbounded:
		return "primal-unbounded"
	case StatusPrimalDualInfeasible:
		return "primal-dual-infeasible"
	case StatusDualInfeasible:
		return "dual-infeasible"
	case StatusSolveError:
		return "solve-error"
	default:
		return "unknown-status"
	}
}

// Inf is the engine's representation of an unbounded bound. Collaborators
// must use exactly this value (not math.Inf's IEEE arithmetic) so that
// comparisons against free-column bounds (§3: S_free) are exact.
const Inf = 1.0e30
