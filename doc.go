// Package ekkprimal is a from-scratch revised primal simplex iteration
// engine for linear programs.
//
// It implements the two-phase primal simplex core: pricing (CHUZC, full
// and hyper-sparse), the ratio test (CHUZR, Harris two-pass in Phase 2
// and an expand-style two-sort in Phase 1), bound-swap handling, Devex
// pricing weights, bound perturbation with post-hoc cleanup, and the
// two-phase state machine that drives a basis to optimality, primal
// infeasibility, primal unboundedness, a bailout, or a numerical error.
//
// The engine never touches a concrete basis factorization, matrix, or
// file format; it is driven entirely through the collaborator
// interfaces in package simplexmodel (FTRAN/BTRAN/PRICE, bounds, costs).
// Package densebasis supplies a small dense reference implementation of
// those interfaces so the engine can be exercised end to end; package
// cmd/solve is a worked example.
//
// Subpackages:
//
//	simplexmodel/ — collaborator contracts, status/phase enums, options
//	vecset/       — dense-backed sparse vector and bounded index set
//	topheap/      — fixed-capacity decreasing-order candidate heap
//	sortutil/     — breakpoint sort helpers used by Phase 1 CHUZR
//	primal/       — the two-phase engine itself
//	densebasis/   — dense Gauss-Jordan reference basis collaborator
//	cmd/solve/    — worked example driving the engine on a literal LP
package ekkprimal
