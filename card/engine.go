package card

import (
	"errors"
	"fmt"
)

// ErrNilHardware is returned by New when no hardware is supplied.
var ErrNilHardware = errors.New("card: nil hardware")

// Diagnostics is a read-only summary of the engine's runtime state.
type Diagnostics struct {
	Ticks           uint32
	Overruns        uint32
	LastTickMicros  uint32
	WorstTickMicros uint32
	DelayTime       int
	TapActive       bool
	TapPreset       int
	Bypass          bool
	Freeze          bool
}

// Engine runs the card on a Hardware implementation. It is not safe for
// concurrent use: exactly one caller invokes Tick once per sample period.
type Engine struct {
	hw    Hardware
	state State
	in    Inputs
	leds  [NumLEDs]uint16
}

// New allocates the card state and binds it to hw. Allocation failure is
// reported here and never again.
func New(hw Hardware, opts ...Option) (*Engine, error) {
	if hw == nil {
		return nil, ErrNilHardware
	}

	st, err := NewState(opts...)
	if err != nil {
		return nil, fmt.Errorf("card: new engine: %w", err)
	}

	return &Engine{hw: hw, state: st}, nil
}

// Startup prepares the hardware before the first tick: jack detection on,
// outputs silent, pulse outputs low, LEDs off.
func (e *Engine) Startup() {
	e.hw.EnableNormalisationProbe()
	e.hw.CommitOutputs(0, 0)
	e.hw.SetPulse(PulseClock, false)
	e.hw.SetPulse(PulseOverrun, false)
	for i := range NumLEDs {
		e.hw.SetLED(i, 0)
	}
}

// Tick processes one sample period.
func (e *Engine) Tick() {
	e.hw.ReadInputs(&e.in)
	start := e.hw.Micros()

	var f Frame
	e.state, f = Tick(e.state, e.in)

	e.hw.CommitOutputs(f.Out1, f.Out2)

	switch f.Clock {
	case ClockRise:
		e.hw.SetPulse(PulseClock, true)
	case ClockFall:
		e.hw.SetPulse(PulseClock, false)
	}

	if e.state.Guard.Observe(start, e.hw.Micros()) {
		e.hw.TriggerPulse(PulseOverrun, e.state.Timing.OverrunPulse)
	}

	if e.state.LED.Advance(&e.state.Effect, e.state.Timing, &e.leds) {
		for i, v := range e.leds {
			e.hw.SetLED(i, v)
		}
	}
}

// State returns a copy of the current state. The copy shares the delay
// buffer with the engine.
func (e *Engine) State() State {
	return e.state
}

// Diagnostics returns a snapshot of counters and the active settings.
func (e *Engine) Diagnostics() Diagnostics {
	st := &e.state
	return Diagnostics{
		Ticks:           st.Ticks,
		Overruns:        st.Guard.Overruns,
		LastTickMicros:  st.Guard.LastMicros,
		WorstTickMicros: st.Guard.WorstMicros,
		DelayTime:       st.Effect.DelayTime,
		TapActive:       st.Tap.Active,
		TapPreset:       st.Tap.Preset,
		Bypass:          st.Effect.Bypass,
		Freeze:          st.Effect.Freeze,
	}
}
