package densebasis

import "github.com/katalvlaran/ekkprimal/simplexmodel"

// Basis is the dense reference collaborator. Columns [0, nCol) are
// structural; columns [nCol, nCol+nRow) are implicit unit columns (one
// logical/slack variable per row).
type Basis struct {
	nCol, nRow int
	structural [][]float64 // structural[col] is a length-nRow column

	binv [][]float64 // current B^{-1}, nRow x nRow

	basicIndex   []int
	nonbasicFlag []simplexmodel.NonbasicFlag
	nonbasicMove []simplexmodel.NonbasicMove

	lower, upper []float64 // original, unperturbed, length nCol+nRow
	cost         []float64 // objective cost, length nCol+nRow
}

// NewBasis builds a Basis over the given structural columns. basicIndex
// lists, one per row, which variable starts basic in that row
// (typically the row's own logical/slack variable, nCol+r); every other
// variable starts nonbasic, at its lower bound if finite, else its
// upper bound, else free at 0. B^{-1} starts as the identity, which is
// only correct when row r's basic variable is its own logical, nCol+r;
// otherwise ComputeFactor must be called before the basis is used
// (neither NewEngine nor the engine's first rebuild calls it).
func NewBasis(structural [][]float64, lower, upper, cost []float64, basicIndex []int) (*Basis, error) {
	nCol := len(structural)
	if nCol == 0 {
		return nil, ErrDimensionMismatch
	}
	nRow := len(structural[0])
	for _, col := range structural {
		if len(col) != nRow {
			return nil, ErrDimensionMismatch
		}
	}
	nTot := nCol + nRow
	if len(lower) != nTot || len(upper) != nTot || len(cost) != nTot || len(basicIndex) != nRow {
		return nil, ErrDimensionMismatch
	}

	b := &Basis{
		nCol:         nCol,
		nRow:         nRow,
		structural:   structural,
		binv:         newIdentity(nRow),
		basicIndex:   append([]int(nil), basicIndex...),
		nonbasicFlag: make([]simplexmodel.NonbasicFlag, nTot),
		nonbasicMove: make([]simplexmodel.NonbasicMove, nTot),
		lower:        append([]float64(nil), lower...),
		upper:        append([]float64(nil), upper...),
		cost:         append([]float64(nil), cost...),
	}
	for v := 0; v < nTot; v++ {
		b.nonbasicFlag[v] = simplexmodel.Nonbasic
	}
	for _, v := range basicIndex {
		b.nonbasicFlag[v] = simplexmodel.Basic
	}
	for v := 0; v < nTot; v++ {
		if b.nonbasicFlag[v] == simplexmodel.Basic {
			continue
		}
		switch {
		case lower[v] > -simplexmodel.Inf:
			b.nonbasicMove[v] = simplexmodel.MoveUp
		case upper[v] < simplexmodel.Inf:
			b.nonbasicMove[v] = simplexmodel.MoveDown
		default:
			b.nonbasicMove[v] = simplexmodel.MoveNone
		}
	}
	return b, nil
}

func newIdentity(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}
	return m
}

// column returns the length-nRow column for variable v: a structural
// column, or a unit column for a logical/slack variable.
func (b *Basis) column(v int) []float64 {
	if v < b.nCol {
		return b.structural[v]
	}
	col := make([]float64, b.nRow)
	col[v-b.nCol] = 1
	return col
}
