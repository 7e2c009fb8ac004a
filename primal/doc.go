// Package primal implements the two-phase revised primal simplex
// iteration engine: pricing (CHUZC), the ratio test (CHUZR), bound-swap
// handling, pivot numerical assessment, the primal/dual/cost/weight/
// basis update engine, rebuild and cleanup, and the phase-driver state
// machine that ties them together.
//
// Engine owns every mutable array the iteration touches and is driven
// entirely through the simplexmodel.Basis and simplexmodel.Model
// collaborators; it never holds a matrix, a factorization, or file I/O
// of its own (OUT OF SCOPE collaborators). There is no global or
// thread-local state — every method takes the engine as its single
// mutable borrow, and Solve holds it exclusively for the call's
// duration.
package primal
