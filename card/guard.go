package card

// Observe records one tick that ran from start to end on the hardware
// microsecond clock and reports whether it exceeded the budget. Clock
// wraparound is handled by unsigned subtraction.
func (g *GuardState) Observe(start, end uint32) bool {
	elapsed := end - start

	g.LastMicros = elapsed
	if elapsed > g.WorstMicros {
		g.WorstMicros = elapsed
	}

	if elapsed > g.BudgetMicros {
		g.Overruns++
		return true
	}

	return false
}
