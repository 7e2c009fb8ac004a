// Package vecset provides the two small value types the primal simplex
// engine uses to hold working vectors and membership sets without
// allocating on every pivot:
//
//   - SparseVector: a dense-backed vector with a parallel list of its
//     nonzero positions, used for the FTRAN pivot column, the BTRAN/PRICE
//     pivot row, and feasibility-change buffers.
//   - IndexSet: a membership-tested subset of a fixed index universe,
//     with O(1) amortized Add/Remove/Contains, used for the free-column
//     set.
//
// Both types own their storage; there is no global or thread-local
// state, and no side-channel setup/debug argument — diagnostics, where
// wanted, are a caller concern.
package vecset
