package primal

// shiftBound is the bound-shift helper (C9, §4.6 GLOSSARY): it widens
// the violated bound of v by infeasibility + (1+r)·tol, where r is the
// deterministic per-variable random offset, and accumulates the amount
// into work_lower_shift/work_upper_shift so cleanup can reverse it
// exactly (§8 property 8).
func (e *Engine) shiftBound(v int, atLower bool, infeasibility float64) error {
	r := 0.0
	if e.random != nil {
		r = e.random.Float64(v)
	}
	widen := infeasibility + (1+r)*e.opts.PrimalFeasibilityTolerance

	if atLower {
		e.lowerShift[v] += widen
		e.lower[v] -= widen
	} else {
		e.upperShift[v] += widen
		e.upper[v] += widen
	}
	e.boundsPerturbed = true
	return nil
}
