package card

import "github.com/cwbudde/algo-delaycard/dsp/core"

const (
	// MinDelay is the shortest delay the card will run (0.5 ms).
	MinDelay = 24
	// MaxFeedback caps the loop gain at about 90% of unity.
	MaxFeedback = 922

	// Band limits on the unmodulated delay length.
	FlangerMaxDelay = 768
	ChorusMaxDelay  = 7200

	// NumSegments is the number of delay presets on CV1 / Main.
	NumSegments = 20

	segmentWidth = 205
	knobMax      = 4095
)

// Delay presets from flanger (1 ms) to long delay (2 s) at 48 kHz.
var delayPresets = [NumSegments]int{
	48, 96, 192, 384, 768, // flanger
	1440, 2400, 3600, 4800, 7200, // chorus
	12000, 19200, 28800, 43200, 62400, // short delay
	72000, 76800, 81600, 86400, 96000, // long delay
}

// DelayPreset returns the delay length of a segment, clamping the index.
func DelayPreset(segment int) int {
	return delayPresets[core.ClampInt(segment, 0, NumSegments-1)]
}

// SegmentForCV maps a bipolar CV reading to a preset segment.
func SegmentForCV(cv int16) int {
	return min((int(cv)+2048)/segmentWidth, NumSegments-1)
}

// SegmentForKnob maps a knob reading to a preset segment.
func SegmentForKnob(knob uint16) int {
	return min(int(knob)/segmentWidth, NumSegments-1)
}

// Segment selects the preset from CV1 when patched, else the Main knob.
func Segment(in *Inputs) int {
	if in.CV1Connected {
		return SegmentForCV(in.CV1)
	}
	return SegmentForKnob(in.Main)
}

// Modulate applies CV2 to a delay length with a depth chosen by band and
// clamps the result to [MinDelay, maxDelay].
func Modulate(base int, cv int16, maxDelay int) int {
	v := int(cv)

	var mod int
	switch {
	case base <= FlangerMaxDelay:
		mod = (base * v * 3) >> 13 // ±75%
	case base <= ChorusMaxDelay:
		mod = base * v / 163840 // ±1.25%
	default:
		mod = base * v / 81920 // ±2.5%
	}

	return core.ClampInt(base+mod, MinDelay, maxDelay)
}

// FeedbackFromKnob scales a knob reading to [0, MaxFeedback].
func FeedbackFromKnob(knob uint16) int32 {
	return int32(min(int(knob), knobMax)*MaxFeedback) >> 12
}

// WetFromKnob scales a knob reading to a Q10 wet amount.
func WetFromKnob(knob uint16) int32 {
	return int32(min(int(knob), knobMax)*core.Unity) >> 12
}

// SecondTap returns the read offset of the second output: half the delay in
// the flanger band for stereo spread, three quarters above it.
func SecondTap(delayTime, maxDelay int) int {
	var d int
	if delayTime <= FlangerMaxDelay {
		d = delayTime / 2
	} else {
		d = delayTime * 3 / 4
	}
	return core.ClampInt(d, MinDelay, maxDelay)
}

// updateParams maps the tick's control inputs onto st.Effect. A bypass
// engage clears the delay buffer once, on the switch edge only.
func updateParams(st *State, in *Inputs) {
	fx := &st.Effect

	fx.Segment = Segment(in)

	base := DelayPreset(fx.Segment)
	if st.Tap.Active {
		base = st.Tap.Preset
	}
	delayTime := core.ClampInt(base, MinDelay, st.Timing.MaxDelay)

	if in.CV2Connected {
		delayTime = Modulate(delayTime, in.CV2, st.Timing.MaxDelay)
	}
	fx.DelayTime = delayTime

	fx.Feedback = FeedbackFromKnob(in.X)
	fx.Wet = WetFromKnob(in.Y)

	if in.SwitchChanged {
		if in.Switch == SwitchUp {
			fx.Bypass = true
			st.Buffer.Clear()
		} else {
			fx.Bypass = false
		}
	}
}
