// Package simplexmodel defines the collaborator boundary the primal
// simplex engine (package primal) is driven through: the basis
// factorization contract (FTRAN/BTRAN/PRICE, pivot and matrix updates),
// the LP data contract (bounds, costs), a deterministic random source
// used only for the tie-break offset in bound shifting, and a minimal
// logging hook.
//
// None of the types here own a factorization, a matrix, or file I/O.
// Package densebasis provides one concrete, dense implementation of
// Basis and Model; any caller may supply its own.
package simplexmodel
