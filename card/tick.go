package card

// Tick advances st by one sample for the inputs in and returns the new
// state with the frame to emit. Apart from the delay buffer st points to,
// Tick has no side effects; it never allocates.
//
// Order within a tick: pulse inputs (tap tempo, freeze toggle), parameter
// mapping, signal chain, clock.
func Tick(st State, in Inputs) (State, Frame) {
	st.Ticks++

	if in.Pulse1Rising {
		st.Tap.tap(st.Timing.TapClock, st.Ticks)
	}
	if in.Pulse2Rising {
		st.Effect.Freeze = !st.Effect.Freeze
	}

	updateParams(&st, &in)

	out1, out2 := Process(&st.Effect, st.Buffer, &st.Filter, in.Audio1)

	edge := st.Clock.Advance(st.Effect.DelayTime, st.Effect.Freeze, st.Timing.PulseWidth)

	return st, Frame{Out1: out1, Out2: out2, Clock: edge}
}
