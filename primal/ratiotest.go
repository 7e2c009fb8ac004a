package primal

import (
	"math"

	"github.com/katalvlaran/ekkprimal/simplexmodel"
	"github.com/katalvlaran/ekkprimal/sortutil"
	"github.com/katalvlaran/ekkprimal/vecset"
)

// pivotTolerance is α_tol of §4.5: it tightens as the factorization
// accumulates updates, trusting a freshly rebuilt basis with a looser
// bound than one many updates old.
func pivotTolerance(updateCount int) float64 {
	switch {
	case updateCount < 10:
		return 1e-9
	case updateCount < 20:
		return 1e-8
	default:
		return 1e-7
	}
}

// chuzrPhase2 is the standard Harris two-pass ratio test (§4.5 Phase 2).
// moveIn is sign(-work_dual[q]) as a ±1 float. It returns found = false
// if no row bounds the step (a legitimate outcome only in Phase 2).
func (e *Engine) chuzrPhase2(aq *vecset.SparseVector, moveIn float64) (rOut int, alphaCol float64, moveOut simplexmodel.NonbasicMove, found bool) {
	tol := pivotTolerance(e.updateCount)
	rOut = -1
	relaxTheta := math.Inf(1)

	for _, r := range aq.Index() {
		ar := aq.Get(r) * moveIn
		var cand float64
		switch {
		case ar > tol:
			cand = (e.baseValue[r] - e.baseLower[r] + e.opts.PrimalFeasibilityTolerance) / ar
		case ar < -tol:
			cand = (e.baseValue[r] - e.baseUpper[r] - e.opts.PrimalFeasibilityTolerance) / ar
		default:
			continue
		}
		if cand < relaxTheta {
			relaxTheta = cand
		}
	}
	if math.IsInf(relaxTheta, 1) {
		return -1, 0, 0, false
	}

	bestAlphaSigned := 0.0
	for _, r := range aq.Index() {
		ar := aq.Get(r) * moveIn
		var tight float64
		switch {
		case ar > tol:
			tight = (e.baseValue[r] - e.baseLower[r]) / ar
		case ar < -tol:
			tight = (e.baseValue[r] - e.baseUpper[r]) / ar
		default:
			continue
		}
		if tight > relaxTheta {
			continue
		}
		if rOut == -1 || math.Abs(ar) > math.Abs(bestAlphaSigned) {
			rOut = r
			bestAlphaSigned = ar
		}
	}
	if rOut == -1 {
		return -1, 0, 0, false
	}

	alphaCol = aq.Get(rOut)
	// bestAlphaSigned carries the sign of the branch that bounded rOut:
	// positive means the chosen candidate raced toward baseLower (exits
	// at Lower), negative means it raced toward baseUpper (exits Upper).
	if bestAlphaSigned > 0 {
		moveOut = simplexmodel.MoveUp
	} else {
		moveOut = simplexmodel.MoveDown
	}
	return rOut, alphaCol, moveOut, true
}

// chuzrPhase1 is the expand-style two-sorted-list ratio test (§4.5
// Phase 1). An empty relaxed list R is a hard error in Phase 1 (only
// Phase 2 may legitimately report "no leaving row").
func (e *Engine) chuzrPhase1(q int, aq *vecset.SparseVector, moveIn float64) (rOut int, alphaCol float64, moveOut simplexmodel.NonbasicMove, err error) {
	tol := pivotTolerance(e.updateCount)
	var listR, listT []sortutil.Breakpoint

	rowAlpha := func(r int) float64 { return aq.Get(r) * moveIn }
	decode := func(signedRow int) int {
		if signedRow >= 0 {
			return signedRow
		}
		return signedRow + e.nRow
	}

	for _, r := range aq.Index() {
		ar := rowAlpha(r)
		switch {
		case ar > tol:
			// Decreasing basicValue as theta grows: a row already above
			// its upper bound is heading toward it (hits Upper, leaves
			// nonbasic at Upper -> MoveDown, encoded SignedRow < 0).
			if e.baseValue[r] > e.baseUpper[r]+e.opts.PrimalFeasibilityTolerance {
				bp := sortutil.Breakpoint{
					Theta:     (e.baseValue[r] - e.baseUpper[r]) / ar,
					SignedRow: r - e.nRow,
				}
				listR = append(listR, bp)
				listT = append(listT, bp)
			}
			// A row sitting near its lower bound is heading toward
			// violating it (hits Lower, leaves nonbasic at Lower ->
			// MoveUp, encoded SignedRow >= 0).
			if e.baseLower[r] > -simplexmodel.Inf && e.baseValue[r] > e.baseLower[r]-e.opts.PrimalFeasibilityTolerance {
				listR = append(listR, sortutil.Breakpoint{
					Theta:     (e.baseValue[r] - e.baseLower[r] + e.opts.PrimalFeasibilityTolerance) / ar,
					SignedRow: r,
				})
				listT = append(listT, sortutil.Breakpoint{
					Theta:     (e.baseValue[r] - e.baseLower[r]) / ar,
					SignedRow: r,
				})
			}
		case ar < -tol:
			// Increasing basicValue as theta grows: a row already below
			// its lower bound is heading toward it (hits Lower -> MoveUp).
			if e.baseValue[r] < e.baseLower[r]-e.opts.PrimalFeasibilityTolerance {
				bp := sortutil.Breakpoint{
					Theta:     (e.baseValue[r] - e.baseLower[r]) / ar,
					SignedRow: r,
				}
				listR = append(listR, bp)
				listT = append(listT, bp)
			}
			// A row sitting near its upper bound is heading toward
			// violating it (hits Upper -> MoveDown).
			if e.baseUpper[r] < simplexmodel.Inf && e.baseValue[r] < e.baseUpper[r]+e.opts.PrimalFeasibilityTolerance {
				listR = append(listR, sortutil.Breakpoint{
					Theta:     (e.baseValue[r] - e.baseUpper[r] - e.opts.PrimalFeasibilityTolerance) / ar,
					SignedRow: r - e.nRow,
				})
				listT = append(listT, sortutil.Breakpoint{
					Theta:     (e.baseValue[r] - e.baseUpper[r]) / ar,
					SignedRow: r - e.nRow,
				})
			}
		}
	}

	if len(listR) == 0 {
		return -1, 0, 0, ErrPhase1NoLeavingRow
	}
	sortutil.SortBreakpointsAscending(listR)
	sortutil.SortBreakpointsAscending(listT)

	gradient := math.Abs(e.dual[q])
	thetaMax := listR[len(listR)-1].Theta
	for _, bp := range listR {
		r := decode(bp.SignedRow)
		gradient -= math.Abs(rowAlpha(r))
		if gradient <= 0 {
			thetaMax = bp.Theta
			break
		}
	}

	alphaMax := 0.0
	for _, bp := range listT {
		if bp.Theta > thetaMax {
			break
		}
		r := decode(bp.SignedRow)
		if a := math.Abs(rowAlpha(r)); a > alphaMax {
			alphaMax = a
		}
	}

	chosen := -1
	for i := len(listT) - 1; i >= 0; i-- {
		bp := listT[i]
		if bp.Theta > thetaMax {
			continue
		}
		r := decode(bp.SignedRow)
		if math.Abs(rowAlpha(r)) >= 0.1*alphaMax {
			chosen = i
			break
		}
	}
	if chosen == -1 {
		return -1, 0, 0, ErrPhase1NoLeavingRow
	}

	bp := listT[chosen]
	rOut = decode(bp.SignedRow)
	alphaCol = aq.Get(rOut)
	if bp.SignedRow >= 0 {
		moveOut = simplexmodel.MoveUp
	} else {
		moveOut = simplexmodel.MoveDown
	}
	return rOut, alphaCol, moveOut, nil
}
