package card

import (
	"fmt"

	"github.com/cwbudde/algo-delaycard/dsp/delay"
	"github.com/cwbudde/algo-delaycard/dsp/filter/onepole"
)

// EffectState is the mapped parameter set the signal chain runs with.
type EffectState struct {
	DelayTime int   // samples, [MinDelay, MaxDelay]
	Feedback  int32 // Q10, [0, MaxFeedback]
	Wet       int32 // Q10, [0, 1024]
	InputGain int32 // Q10, unity 1024
	Bypass    bool
	Freeze    bool

	// Segment is the preset bucket selected by CV1 or the Main knob,
	// kept for the LED mode display even while tap tempo owns the delay.
	Segment int
}

// TapTempoState tracks tap events. Once Active it stays active for the
// lifetime of the state; Preset then replaces the knob/CV preset.
type TapTempoState struct {
	Counter  uint32
	Previous uint32
	Active   bool
	Interval uint32
	Preset   int
}

// ClockState drives the delay-synchronised pulse output.
type ClockState struct {
	Counter   int
	LastDelay int
	High      bool
}

// LEDState holds the decimation counter and the bypass flash toggle.
type LEDState struct {
	Counter int
	Flash   int
	Dark    bool
}

// GuardState records tick durations against the budget.
type GuardState struct {
	BudgetMicros uint32
	Overruns     uint32
	LastMicros   uint32
	WorstMicros  uint32
}

// ClockEdge is the clock output change requested by a tick.
type ClockEdge uint8

const (
	ClockHold ClockEdge = iota
	ClockRise
	ClockFall
)

// Frame is what one tick emits.
type Frame struct {
	Out1, Out2 int16
	Clock      ClockEdge
}

// State is the complete card state advanced by Tick. Buffer is shared by
// every copy of a State; everything else is plain data.
type State struct {
	Effect EffectState
	Tap    TapTempoState
	Clock  ClockState
	Filter onepole.Stereo
	LED    LEDState
	Guard  GuardState

	Buffer *delay.Line
	Timing Timing
	Ticks  uint32
}

// initialDelay is the power-on delay time (500 ms).
const initialDelay = 24000

// NewState allocates the delay buffer and returns the power-on state.
func NewState(opts ...Option) (State, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return State{}, err
		}
	}

	buf, err := delay.New(cfg.proc.BufferSamples)
	if err != nil {
		return State{}, fmt.Errorf("card: allocate delay buffer: %w", err)
	}

	filt, err := onepole.NewStereo(cfg.filterCoeff)
	if err != nil {
		return State{}, fmt.Errorf("card: output filter: %w", err)
	}

	tm := cfg.timing()
	start := min(initialDelay, tm.MaxDelay)

	return State{
		Effect: EffectState{
			DelayTime: start,
			Feedback:  512,
			Wet:       512,
			InputGain: int32(cfg.inputGain),
		},
		Tap:    TapTempoState{Preset: start},
		Clock:  ClockState{LastDelay: start},
		Filter: filt,
		Guard:  GuardState{BudgetMicros: uint32(cfg.tickBudget.Microseconds())},
		Buffer: buf,
		Timing: tm,
	}, nil
}
