package densebasis

import (
	"github.com/katalvlaran/ekkprimal/simplexmodel"
	"github.com/katalvlaran/ekkprimal/vecset"
)

// PivotColumnFtran solves B·aq = column(q) by dense matrix-vector
// multiply against the cached B^{-1}.
func (b *Basis) PivotColumnFtran(q int, aq *vecset.SparseVector) error {
	col := b.column(q)
	for r := 0; r < b.nRow; r++ {
		var sum float64
		row := b.binv[r]
		for j := 0; j < b.nRow; j++ {
			sum += row[j] * col[j]
		}
		if sum != 0 {
			aq.Set(r, sum)
		}
	}
	return nil
}

// UnitBtran reads row r of B^{-1} directly: B^T·row_ep = e_r is solved
// by (B^{-1})^T's column r, which for a dense inverse is just B^{-1}'s
// row r transposed back into a row, i.e. binv[r] itself (B^{-1} here is
// not separately transposed because the dense update keeps it as the
// true inverse, not its transpose).
func (b *Basis) UnitBtran(r int, rowEp *vecset.SparseVector) error {
	for j := 0; j < b.nRow; j++ {
		if v := b.binv[r][j]; v != 0 {
			rowEp.Set(j, v)
		}
	}
	return nil
}

// TableauRowPrice forms rowAp[v] = rowEp · column(v) for every v in the
// full nonbasic space, structural and logical/slack columns alike.
func (b *Basis) TableauRowPrice(rowEp *vecset.SparseVector, rowAp *vecset.SparseVector) error {
	nTot := b.nCol + b.nRow
	for v := 0; v < nTot; v++ {
		col := b.column(v)
		var sum float64
		for _, j := range rowEp.Index() {
			sum += rowEp.Get(j) * col[j]
		}
		if sum != 0 {
			rowAp.Set(v, sum)
		}
	}
	return nil
}

// FullBtran solves B^T·out = v for a dense v: out[j] = Σ_r binv[r][j]·v[r].
func (b *Basis) FullBtran(v []float64, out *vecset.SparseVector) error {
	for j := 0; j < b.nRow; j++ {
		var sum float64
		for r := 0; r < b.nRow; r++ {
			sum += b.binv[r][j] * v[r]
		}
		if sum != 0 {
			out.Set(j, sum)
		}
	}
	return nil
}

// FullPrice forms out[col] = v · column(col) for every nonbasic column.
func (b *Basis) FullPrice(v []float64, out *vecset.SparseVector) error {
	nTot := b.nCol + b.nRow
	for col := 0; col < nTot; col++ {
		c := b.column(col)
		var sum float64
		for r := 0; r < b.nRow; r++ {
			sum += v[r] * c[r]
		}
		if sum != 0 {
			out.Set(col, sum)
		}
	}
	return nil
}

// ComputeFactor inverts the current basis matrix (columns named by
// basicIndex) from scratch via Gauss-Jordan elimination with partial
// pivoting. A zero pivot column is reported as rank deficiency rather
// than an error, per Basis.ComputeFactor's contract.
func (b *Basis) ComputeFactor() (int, error) {
	n := b.nRow
	work := make([][]float64, n)
	for r := 0; r < n; r++ {
		work[r] = make([]float64, n)
	}
	for c := 0; c < n; c++ {
		col := b.column(b.basicIndex[c])
		for r := 0; r < n; r++ {
			work[r][c] = col[r]
		}
	}
	inv := newIdentity(n)

	rankDeficiency := 0
	for pivotCol := 0; pivotCol < n; pivotCol++ {
		pivotRow := -1
		best := 0.0
		for r := pivotCol; r < n; r++ {
			if abs(work[r][pivotCol]) > best {
				best = abs(work[r][pivotCol])
				pivotRow = r
			}
		}
		if pivotRow == -1 || best < 1e-12 {
			rankDeficiency++
			continue
		}
		work[pivotCol], work[pivotRow] = work[pivotRow], work[pivotCol]
		inv[pivotCol], inv[pivotRow] = inv[pivotRow], inv[pivotCol]

		pivotVal := work[pivotCol][pivotCol]
		for c := 0; c < n; c++ {
			work[pivotCol][c] /= pivotVal
			inv[pivotCol][c] /= pivotVal
		}
		for r := 0; r < n; r++ {
			if r == pivotCol {
				continue
			}
			factor := work[r][pivotCol]
			if factor == 0 {
				continue
			}
			for c := 0; c < n; c++ {
				work[r][c] -= factor * work[pivotCol][c]
				inv[r][c] -= factor * inv[pivotCol][c]
			}
		}
	}
	if rankDeficiency > 0 {
		return rankDeficiency, nil
	}
	b.binv = inv
	return 0, nil
}

// ComputePrimal solves B·x_B = b − N·x_N from scratch: rhs starts at
// the structural right-hand side (zero here, since this reference
// collaborator carries no separate RHS vector — callers encode it as
// the bound on each row's logical variable) and subtracts each
// nonbasic column's contribution, then applies B^{-1}.
func (b *Basis) ComputePrimal(workValue []float64, baseValue []float64) error {
	nTot := b.nCol + b.nRow
	rhs := make([]float64, b.nRow)
	for v := 0; v < nTot; v++ {
		if b.nonbasicFlag[v] != simplexmodel.Nonbasic || workValue[v] == 0 {
			continue
		}
		col := b.column(v)
		for r := 0; r < b.nRow; r++ {
			rhs[r] -= col[r] * workValue[v]
		}
	}
	for r := 0; r < b.nRow; r++ {
		var sum float64
		row := b.binv[r]
		for j := 0; j < b.nRow; j++ {
			sum += row[j] * rhs[j]
		}
		baseValue[r] = sum
	}
	return nil
}

// UpdateFactor folds pivot column aq (entering at row rOut) into
// binv by the standard elementary row operations: divide row rOut by
// the pivot element, then eliminate aq's entry from every other row.
// This reference collaborator never asks for a reinversion on its own
// clock and never returns RebuildSyntheticClockSaysInvert; a zero pivot
// entry is reported as RebuildPossiblySingularBasis.
func (b *Basis) UpdateFactor(aq *vecset.SparseVector, rowEp *vecset.SparseVector, rOut int) (simplexmodel.RebuildReason, error) {
	pivotVal := aq.Get(rOut)
	if pivotVal == 0 {
		return simplexmodel.RebuildPossiblySingularBasis, nil
	}
	pivotRow := b.binv[rOut]
	for c := 0; c < b.nRow; c++ {
		pivotRow[c] /= pivotVal
	}
	for r := 0; r < b.nRow; r++ {
		if r == rOut {
			continue
		}
		factor := aq.Get(r)
		if factor == 0 {
			continue
		}
		row := b.binv[r]
		for c := 0; c < b.nRow; c++ {
			row[c] -= factor * pivotRow[c]
		}
	}
	return simplexmodel.RebuildNone, nil
}

// UpdatePivots performs the symbolic basis change: q becomes basic in
// row rOut, and the variable that used to occupy rOut becomes nonbasic
// with moveOut. vOut is captured before basicIndex is overwritten.
func (b *Basis) UpdatePivots(q, rOut int, moveOut simplexmodel.NonbasicMove) error {
	vOut := b.basicIndex[rOut]
	b.nonbasicFlag[vOut] = simplexmodel.Nonbasic
	b.nonbasicMove[vOut] = moveOut
	b.nonbasicFlag[q] = simplexmodel.Basic
	b.nonbasicMove[q] = simplexmodel.MoveNone
	b.basicIndex[rOut] = q
	return nil
}

// UpdateMatrix is a no-op: this collaborator's PRICE path (column
// lookup by index) depends on nothing that changes when q and vOut
// trade basic/nonbasic roles.
func (b *Basis) UpdateMatrix(q, vOut int) error {
	return nil
}

// FlipNonbasic performs the symbolic bound-swap of a nonbasic variable:
// it stays nonbasic, but now sits at newMove's bound.
func (b *Basis) FlipNonbasic(v int, newMove simplexmodel.NonbasicMove) error {
	b.nonbasicMove[v] = newMove
	return nil
}

// NonbasicFlag reports whether v is currently basic or nonbasic.
func (b *Basis) NonbasicFlag(v int) simplexmodel.NonbasicFlag { return b.nonbasicFlag[v] }

// NonbasicMove reports which bound a nonbasic v currently sits at.
func (b *Basis) NonbasicMove(v int) simplexmodel.NonbasicMove { return b.nonbasicMove[v] }

// BasicIndex reports which variable occupies basic row r.
func (b *Basis) BasicIndex(r int) int { return b.basicIndex[r] }

// NumCols returns the number of structural columns.
func (b *Basis) NumCols() int { return b.nCol }

// NumRows returns the number of rows (and logical/slack columns).
func (b *Basis) NumRows() int { return b.nRow }

// WorkLower returns the original lower bound of variable v. This
// reference collaborator does not track perturbation itself — the
// engine owns its own perturbed copy (§3) — so this is the baseline
// value read once at NewEngine.
func (b *Basis) WorkLower(v int) float64 { return b.lower[v] }

// WorkUpper returns the original upper bound of variable v.
func (b *Basis) WorkUpper(v int) float64 { return b.upper[v] }

// WorkCost returns the original cost coefficient of variable v.
func (b *Basis) WorkCost(v int) float64 { return b.cost[v] }

// BaseLower returns the lower bound of the basic variable in row r.
func (b *Basis) BaseLower(r int) float64 { return b.lower[b.basicIndex[r]] }

// BaseUpper returns the upper bound of the basic variable in row r.
func (b *Basis) BaseUpper(r int) float64 { return b.upper[b.basicIndex[r]] }

// ComputeDual recomputes dual[v] = workCost[v] − y·column(v), where
// y = cB·B^{-1}, for every v; basic entries are forced to exactly 0.
func (b *Basis) ComputeDual(workCost []float64, dual []float64) error {
	y := make([]float64, b.nRow)
	for j := 0; j < b.nRow; j++ {
		var sum float64
		for r := 0; r < b.nRow; r++ {
			sum += workCost[b.basicIndex[r]] * b.binv[r][j]
		}
		y[j] = sum
	}
	nTot := b.nCol + b.nRow
	for v := 0; v < nTot; v++ {
		if b.nonbasicFlag[v] == simplexmodel.Basic {
			dual[v] = 0
			continue
		}
		col := b.column(v)
		var dot float64
		for r := 0; r < b.nRow; r++ {
			dot += y[r] * col[r]
		}
		dual[v] = workCost[v] - dot
	}
	return nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
