// Package densebasis is a small, dense Gauss-Jordan reference
// implementation of simplexmodel.Basis and simplexmodel.Model: it keeps
// the full structural matrix and the full B^{-1} as plain [][]float64,
// updating B^{-1} by elementary row operations after each pivot instead
// of a sparse LU/product-form factorization.
//
// It exists so package primal's engine has something concrete to drive
// in tests and in cmd/solve: a flat, deterministic loop order and a
// reported rank deficiency on a zero pivot rather than a panic. It is
// not a substitute for a real sparse factorization — that remains out
// of this engine's scope — and is only suitable for the small demo-
// sized LPs this repo exercises.
package densebasis
