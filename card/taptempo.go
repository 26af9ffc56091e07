package card

const (
	tapMinInterval = 2400  // 50 ms
	tapMaxInterval = 96000 // 2 s
)

var tapPresets = [...]int{2400, 4800, 9600, 14400, 24000, 38400, 48000, 67200, 81600, 96000}

// NearestTapPreset returns the tap preset closest to interval. Ties go to
// the shorter preset.
func NearestTapPreset(interval int) int {
	best := tapPresets[0]
	bestDiff := absDiff(interval, best)

	for _, p := range tapPresets[1:] {
		if d := absDiff(interval, p); d < bestDiff {
			best, bestDiff = p, d
		}
	}

	return best
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// Observe registers a tap at timestamp now and reports whether it locked a
// new preset. The first tap, and any tap following a zero timestamp, only
// arms the detector.
func (t *TapTempoState) Observe(now uint32) bool {
	t.Counter++

	accepted := false
	if t.Previous > 0 {
		interval := now - t.Previous
		if interval >= tapMinInterval && interval <= tapMaxInterval {
			t.Interval = interval
			t.Preset = NearestTapPreset(int(interval))
			t.Active = true
			accepted = true
		}
	}

	t.Previous = now

	return accepted
}

// tap handles a rising edge on the tap input using the configured time base.
func (t *TapTempoState) tap(clock TapClock, tick uint32) bool {
	now := t.Counter
	if clock == TapClockTicks {
		now = tick
	}
	return t.Observe(now)
}
