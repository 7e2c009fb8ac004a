// Command solve is a worked example: it builds a small literal LP
// against densebasis.Basis and drives primal.Engine to completion,
// printing the terminal status and objective value.
//
// min x + y  s.t.  x + y >= 2, 0 <= x <= 1, 0 <= y <= 1
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/katalvlaran/ekkprimal/densebasis"
	"github.com/katalvlaran/ekkprimal/primal"
	"github.com/katalvlaran/ekkprimal/simplexmodel"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// One row, x + y >= 2 encoded against densebasis's slack = -(row
	// activity) convention: the slack's upper bound is -2.
	structural := [][]float64{
		{1}, // x
		{1}, // y
	}
	lower := []float64{0, 0, -simplexmodel.Inf}
	upper := []float64{1, 1, -2}
	cost := []float64{1, 1, 0}

	basis, err := densebasis.NewBasis(structural, lower, upper, cost, []int{2})
	if err != nil {
		return errors.Wrap(err, "solve: building basis")
	}

	engine, err := primal.NewEngine(basis, basis, nil, nil, simplexmodel.DefaultOptions(
		simplexmodel.WithBoundPerturbation(false),
		simplexmodel.WithIterationLimit(1000),
	))
	if err != nil {
		return errors.Wrap(err, "solve: constructing engine")
	}

	result, err := engine.Solve()
	if err != nil {
		return errors.Wrap(err, "solve: running engine")
	}

	fmt.Printf("status: %s\n", result.Status)
	fmt.Printf("phase: %s\n", result.Phase)
	fmt.Printf("iterations: %d\n", result.Iterations)
	fmt.Printf("objective: %g\n", result.ObjectiveValue)
	if result.Warning {
		fmt.Println("warning: bailed out on iteration/time limit")
	}
	return nil
}
