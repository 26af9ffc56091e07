package card

const ledFull = 4095

// Advance counts one tick and, every tm.LEDInterval ticks, renders the LED
// levels for fx into levels and returns true.
//
// LEDs 0-1 show the band of the selected segment, LEDs 2-3 the feedback
// amount and LEDs 4-5 the wet amount. While bypassed all six flash together.
func (l *LEDState) Advance(fx *EffectState, tm Timing, levels *[NumLEDs]uint16) bool {
	l.Counter++
	if l.Counter < tm.LEDInterval {
		return false
	}
	l.Counter = 0

	switch {
	case fx.Segment <= 4:
		levels[0], levels[1] = ledFull, 0
	case fx.Segment <= 9:
		levels[0], levels[1] = 1024, ledFull
	default:
		levels[0], levels[1] = 2048, 2048
	}

	fb := uint16(int(fx.Feedback) * ledFull / MaxFeedback)
	levels[2], levels[3] = fb, fb/2

	wet := uint16(int(fx.Wet) * ledFull / 1024)
	levels[4], levels[5] = wet, wet/2

	if fx.Bypass {
		l.Flash++
		if l.Flash >= tm.FlashToggle {
			l.Dark = !l.Dark
			l.Flash = 0
		}

		var v uint16 = ledFull
		if l.Dark {
			v = 0
		}
		for i := range levels {
			levels[i] = v
		}
	}

	return true
}
