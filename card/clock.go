package card

// Advance steps the clock by one tick for the active delay time.
//
// A change of delay time resynchronises the clock: the counter restarts
// from zero, the output is forced low, and the tick ends there. Otherwise,
// unless frozen, the counter runs and the output rises every delayTime
// ticks and falls width ticks after rising. A delay shorter than width
// keeps the output high.
func (c *ClockState) Advance(delayTime int, frozen bool, width int) ClockEdge {
	if delayTime != c.LastDelay {
		c.Counter = 0
		c.LastDelay = delayTime
		c.High = false
		return ClockFall
	}

	if frozen {
		return ClockHold
	}

	c.Counter++
	if c.Counter >= delayTime {
		c.Counter = 0
		c.High = true
		return ClockRise
	}

	if c.High && c.Counter == width {
		c.High = false
		return ClockFall
	}

	return ClockHold
}
