// Package sortutil holds the small sort and validation helpers the
// phase-1 ratio test and the hyper-sparse pricing heap build on: a
// descending max-heap sort over parallel value/id arrays, an ascending-
// order validator for debug assertions, and a breakpoint-list sorter
// for the phase-1 "expand" two-list ratio test.
package sortutil
