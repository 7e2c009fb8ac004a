package primal

import (
	"time"

	"github.com/katalvlaran/ekkprimal/simplexmodel"
	"github.com/katalvlaran/ekkprimal/topheap"
	"github.com/katalvlaran/ekkprimal/vecset"
)

// Engine is the single mutable "engine context" every component method
// operates on. It holds no collaborator state of its own beyond what it
// reads through Basis and Model at construction and at rebuild.
type Engine struct {
	basis  simplexmodel.Basis
	model  simplexmodel.Model
	random simplexmodel.RandomSource
	logger simplexmodel.Logger
	opts   simplexmodel.Options

	nCol, nRow, nTot int

	// Working data (§3), owned by the engine and mutated only by it.
	lower, upper             []float64
	lowerShift, upperShift   []float64
	value                    []float64
	cost                     []float64
	dual                     []float64
	baseLower, baseUpper     []float64
	baseValue                []float64

	numPrimalInfeasibilities int
	numFreeCol               int
	iterationCount           int
	updateCount              int
	primalBoundSwap          int
	numFlipSinceRebuild      int

	freeSet *vecset.IndexSet
	heap    *topheap.DecreasingHeap

	devexWeight []float64
	devexIndex  []int8
	badDevexWeightCount int

	boundsPerturbed bool
	hasFreshRebuild bool

	phase         simplexmodel.SolvePhase
	rebuildReason simplexmodel.RebuildReason
	modelStatus   simplexmodel.ModelStatus

	updatedPrimalObjectiveValue float64
	previousObjectiveScratch    float64

	hyperSparseEnabled bool
	chuzcDoneNext      bool
	chuzcCachedQ       int
	chuzcCachedMeasure float64

	// Workspace vectors, sized once and reused across iterations (§5).
	aq                      *vecset.SparseVector
	rowEp                   *vecset.SparseVector
	rowAp                   *vecset.SparseVector
	colBasicFeasibilityChg  *vecset.SparseVector
	rowBasicFeasibilityChg  *vecset.SparseVector
	btranBuf                *vecset.SparseVector

	startTime time.Time

	// IterationLog, if set, is invoked once per pivot/flip with the
	// iteration count, phase, objective value, and rebuild reason
	// observed at that point.
	IterationLog func(iteration int, phase simplexmodel.SolvePhase, objective float64, reason simplexmodel.RebuildReason)
}

// Result is the terminal outcome of a Solve call.
type Result struct {
	Status               simplexmodel.ModelStatus
	Phase                simplexmodel.SolvePhase
	Iterations           int
	ObjectiveValue       float64
	Warning              bool
	BoundsPerturbed      bool
	// Ray is left nil: this engine does not construct a primal
	// unboundedness ray.
	Ray []float64
}

// NewEngine constructs an Engine over basis/model sized at
// model.NumCols()+model.NumRows() variables. random and logger may be
// nil; with a nil random source shiftBound uses a random offset of 0,
// and a nil logger is replaced with simplexmodel.NopLogger.
func NewEngine(basis simplexmodel.Basis, model simplexmodel.Model, random simplexmodel.RandomSource, logger simplexmodel.Logger, opts simplexmodel.Options) (*Engine, error) {
	if basis == nil {
		return nil, ErrNilBasis
	}
	if model == nil {
		return nil, ErrNilModel
	}
	nCol := model.NumCols()
	nRow := model.NumRows()
	if nRow == 0 {
		return nil, ErrNoRows
	}
	nTot := nCol + nRow
	if logger == nil {
		logger = simplexmodel.NopLogger{}
	}

	e := &Engine{
		basis:  basis,
		model:  model,
		random: random,
		logger: logger,
		opts:   opts,

		nCol: nCol,
		nRow: nRow,
		nTot: nTot,

		lower:      make([]float64, nTot),
		upper:      make([]float64, nTot),
		lowerShift: make([]float64, nTot),
		upperShift: make([]float64, nTot),
		value:      make([]float64, nTot),
		cost:       make([]float64, nTot),
		dual:       make([]float64, nTot),

		baseLower: make([]float64, nRow),
		baseUpper: make([]float64, nRow),
		baseValue: make([]float64, nRow),

		freeSet: vecset.NewIndexSet(nTot),
		heap:    topheap.NewDecreasingHeap(opts.HeapCapacity),

		devexWeight: make([]float64, nTot),
		devexIndex:  make([]int8, nTot),

		aq:                     vecset.NewSparseVector(nRow),
		rowEp:                  vecset.NewSparseVector(nRow),
		rowAp:                  vecset.NewSparseVector(nTot),
		colBasicFeasibilityChg: vecset.NewSparseVector(nRow),
		rowBasicFeasibilityChg: vecset.NewSparseVector(nTot),
		btranBuf:               vecset.NewSparseVector(nRow),

		phase: simplexmodel.PhaseUnknown,
	}
	for v := 0; v < nTot; v++ {
		e.lower[v] = model.WorkLower(v)
		e.upper[v] = model.WorkUpper(v)
		e.cost[v] = model.WorkCost(v)
		e.devexWeight[v] = 1
	}
	for r := 0; r < nRow; r++ {
		e.baseLower[r] = model.BaseLower(r)
		e.baseUpper[r] = model.BaseUpper(r)
	}
	e.initWorkValuesAndFreeSet()
	return e, nil
}

// initWorkValuesAndFreeSet seeds work_value at a bound for every
// nonbasic variable (lower if finite, else upper, else 0 when free) and
// populates S_free (§3, §8 property 5).
func (e *Engine) initWorkValuesAndFreeSet() {
	for v := 0; v < e.nTot; v++ {
		if e.basis.NonbasicFlag(v) != simplexmodel.Nonbasic {
			e.devexIndex[v] = 0
			continue
		}
		e.devexIndex[v] = 1
		switch {
		case e.lower[v] <= -simplexmodel.Inf && e.upper[v] >= simplexmodel.Inf:
			e.value[v] = 0
		case e.basis.NonbasicMove(v) == simplexmodel.MoveUp:
			e.value[v] = e.lower[v]
		case e.basis.NonbasicMove(v) == simplexmodel.MoveDown:
			e.value[v] = e.upper[v]
		default:
			e.value[v] = e.lower[v]
		}
		if e.isFree(v) {
			e.freeSet.Add(v)
		}
	}
	e.numFreeCol = e.freeSet.Count()
}

// isFree reports membership in S_free per its §3 definition.
func (e *Engine) isFree(v int) bool {
	return e.lower[v] <= -simplexmodel.Inf && e.upper[v] >= simplexmodel.Inf &&
		e.basis.NonbasicFlag(v) == simplexmodel.Nonbasic
}

func (e *Engine) elapsed() float64 {
	if e.startTime.IsZero() {
		return 0
	}
	return time.Since(e.startTime).Seconds()
}

func (e *Engine) reportIteration() {
	if e.IterationLog != nil {
		e.IterationLog(e.iterationCount, e.phase, e.updatedPrimalObjectiveValue, e.rebuildReason)
	}
}
