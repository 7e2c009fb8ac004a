package simplexmodel

// Options configures a solve. The zero value is not a valid Options;
// build one with DefaultOptions and apply functional options over it,
// mirroring the dijkstra.Options / dijkstra.Option pattern.
type Options struct {
	// PrimalFeasibilityTolerance bounds how far a basic value may sit
	// outside its bound before it counts as infeasible (§3, §4.5).
	PrimalFeasibilityTolerance float64
	// DualFeasibilityTolerance bounds how far a reduced cost may have
	// the wrong sign before it counts as a CHUZC candidate (§4.4).
	DualFeasibilityTolerance float64
	// UpdateLimit is the number of factorization updates tolerated
	// before rebuild forces a refactorization (§4.8 step 10, §4.9).
	UpdateLimit int
	// AllowBoundPerturbation enables bound-shift absorption of a small
	// entering-value infeasibility in Phase 2 (§4.8 step 5); when false,
	// the same condition instead raises
	// RebuildPrimalInfeasibleInPrimalSimplex.
	AllowBoundPerturbation bool
	// IterationLimit bounds the number of pivots a solve will perform
	// before returning a Warning bailout (§4.10, §5). Bound flips are not
	// counted.
	IterationLimit int
	// TimeLimit bounds wall-clock solve time in seconds; zero disables
	// the check. Solve measures the elapsed time itself, from time.Now
	// at the start of the call; no caller-supplied clock is consulted.
	TimeLimit float64
	// HeapCapacity is K, the capacity of the hyper-sparse CHUZC
	// candidate heap (§4.3; "K≈10").
	HeapCapacity int
	// DevexBadWeightFactor is the multiplier past which a just-replaced
	// Devex weight counts as "bad" (§4.8 step 7).
	DevexBadWeightFactor float64
	// MaxBadDevexWeights is the number of bad-weight events tolerated
	// before the Devex framework resets (§4.8 step 7).
	MaxBadDevexWeights int
	// DebugCheckCHUZC re-runs a full CHUZC scan whenever hyper-sparse
	// CHUZC claims done_next_chuzc, and logs a mismatch through the
	// engine's Logger when the full scan picks a different column or
	// measure (§4.4). Off by default: it doubles CHUZC cost.
	DebugCheckCHUZC bool
	// CorrectPrimalOnRebuild gates the "correct primal" pass in Phase-2
	// rebuild (§4.9), which widens each violated basic row bound to the
	// row's value. Default false.
	CorrectPrimalOnRebuild bool
}

// DefaultOptions returns the Options HiGHS-derived defaults this engine
// targets, with opts applied on top.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		PrimalFeasibilityTolerance: 1e-7,
		DualFeasibilityTolerance:   1e-7,
		UpdateLimit:                5000,
		AllowBoundPerturbation:     true,
		IterationLimit:             0,
		TimeLimit:                  0,
		HeapCapacity:               10,
		DevexBadWeightFactor:       3,
		MaxBadDevexWeights:         3,
		DebugCheckCHUZC:            false,
		CorrectPrimalOnRebuild:     false,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option mutates an Options in place.
type Option func(*Options)

// WithPrimalFeasibilityTolerance overrides PrimalFeasibilityTolerance.
func WithPrimalFeasibilityTolerance(tol float64) Option {
	return func(o *Options) { o.PrimalFeasibilityTolerance = tol }
}

// WithDualFeasibilityTolerance overrides DualFeasibilityTolerance.
func WithDualFeasibilityTolerance(tol float64) Option {
	return func(o *Options) { o.DualFeasibilityTolerance = tol }
}

// WithUpdateLimit overrides UpdateLimit.
func WithUpdateLimit(limit int) Option {
	return func(o *Options) { o.UpdateLimit = limit }
}

// WithBoundPerturbation overrides AllowBoundPerturbation.
func WithBoundPerturbation(allow bool) Option {
	return func(o *Options) { o.AllowBoundPerturbation = allow }
}

// WithIterationLimit overrides IterationLimit. Zero means unlimited.
func WithIterationLimit(limit int) Option {
	return func(o *Options) { o.IterationLimit = limit }
}

// WithTimeLimit overrides TimeLimit, in seconds. Zero means unlimited.
func WithTimeLimit(seconds float64) Option {
	return func(o *Options) { o.TimeLimit = seconds }
}

// WithHeapCapacity overrides HeapCapacity (K).
func WithHeapCapacity(k int) Option {
	return func(o *Options) { o.HeapCapacity = k }
}

// WithDevexBadWeightFactor overrides DevexBadWeightFactor.
func WithDevexBadWeightFactor(factor float64) Option {
	return func(o *Options) { o.DevexBadWeightFactor = factor }
}

// WithMaxBadDevexWeights overrides MaxBadDevexWeights.
func WithMaxBadDevexWeights(n int) Option {
	return func(o *Options) { o.MaxBadDevexWeights = n }
}

// WithDebugCheckCHUZC overrides DebugCheckCHUZC.
func WithDebugCheckCHUZC(enabled bool) Option {
	return func(o *Options) { o.DebugCheckCHUZC = enabled }
}

// WithCorrectPrimalOnRebuild overrides CorrectPrimalOnRebuild.
func WithCorrectPrimalOnRebuild(enabled bool) Option {
	return func(o *Options) { o.CorrectPrimalOnRebuild = enabled }
}
