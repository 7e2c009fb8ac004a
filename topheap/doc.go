// Package topheap implements the fixed-capacity decreasing-order
// candidate heap the hyper-sparse pricing step (CHUZC, C4) maintains
// incrementally across pivots: the K best (measure, column) pairs seen
// since the last refresh, plus a running bound on the best candidate
// that was excluded.
package topheap
