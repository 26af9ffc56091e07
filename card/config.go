package card

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-delaycard/dsp/core"
	"github.com/cwbudde/algo-delaycard/dsp/filter/onepole"
)

const (
	defaultInputGain  = core.Unity
	defaultTickBudget = 21 * time.Microsecond

	pulseWidthMs   = 10
	overrunPulseMs = 50
	ledIntervalMs  = 100
	// Bypass flash toggles every 5 LED renders: 1 Hz at the 10 Hz cadence.
	flashToggleRenders = 5
)

// TapClock selects the time base used to measure tap intervals.
type TapClock uint8

const (
	// TapClockEvents timestamps each tap with the running tap count. The
	// interval between consecutive taps is therefore always 1 and never
	// falls inside the accepted window.
	TapClockEvents TapClock = iota
	// TapClockTicks timestamps each tap with the running tick count, so
	// intervals are measured in samples.
	TapClockTicks
)

func (c TapClock) String() string {
	switch c {
	case TapClockEvents:
		return "events"
	case TapClockTicks:
		return "ticks"
	default:
		return "unknown"
	}
}

// Option mutates card construction parameters.
type Option func(*config) error

type config struct {
	proc        core.ProcessorConfig
	inputGain   int
	filterCoeff int
	tickBudget  time.Duration
	tapClock    TapClock
}

func defaultConfig() config {
	return config{
		proc:        core.DefaultProcessorConfig(),
		inputGain:   defaultInputGain,
		filterCoeff: onepole.DefaultCoeff,
		tickBudget:  defaultTickBudget,
		tapClock:    TapClockEvents,
	}
}

// WithProcessorOptions sets sample rate and delay memory.
func WithProcessorOptions(opts ...core.ProcessorOption) Option {
	return func(cfg *config) error {
		cfg.proc = core.ApplyProcessorOptions(opts...)
		if cfg.proc.BufferSamples < MinDelay {
			return fmt.Errorf("card buffer must hold at least %d samples: %d", MinDelay, cfg.proc.BufferSamples)
		}
		if cfg.proc.SampleRate < 100 {
			return fmt.Errorf("card sample rate must be >= 100: %d", cfg.proc.SampleRate)
		}

		return nil
	}
}

// WithInputGain sets the Q10 input gain in (0, 1024].
func WithInputGain(gain int) Option {
	return func(cfg *config) error {
		if gain <= 0 || gain > core.Unity {
			return fmt.Errorf("card input gain must be in (0, %d]: %d", core.Unity, gain)
		}

		cfg.inputGain = gain

		return nil
	}
}

// WithFilterCoeff sets the Q10 output smoothing coefficient in [0, 1024].
func WithFilterCoeff(coeff int) Option {
	return func(cfg *config) error {
		if coeff < 0 || coeff > core.Unity {
			return fmt.Errorf("card filter coefficient must be in [0, %d]: %d", core.Unity, coeff)
		}

		cfg.filterCoeff = coeff

		return nil
	}
}

// WithTickBudget sets the per-tick time budget checked by the timing guard.
func WithTickBudget(budget time.Duration) Option {
	return func(cfg *config) error {
		if budget < time.Microsecond {
			return fmt.Errorf("card tick budget must be >= 1µs: %v", budget)
		}

		cfg.tickBudget = budget

		return nil
	}
}

// WithTapClock selects the tap tempo time base.
func WithTapClock(clock TapClock) Option {
	return func(cfg *config) error {
		if clock != TapClockEvents && clock != TapClockTicks {
			return fmt.Errorf("card tap clock unknown: %d", clock)
		}

		cfg.tapClock = clock

		return nil
	}
}

// Timing holds the constants a tick needs, derived once from the config.
type Timing struct {
	MaxDelay     int
	PulseWidth   int
	OverrunPulse int
	LEDInterval  int
	FlashToggle  int
	TapClock     TapClock
}

func (c config) timing() Timing {
	return Timing{
		MaxDelay:     c.proc.BufferSamples,
		PulseWidth:   c.proc.Ticks(pulseWidthMs),
		OverrunPulse: c.proc.Ticks(overrunPulseMs),
		LEDInterval:  c.proc.Ticks(ledIntervalMs),
		FlashToggle:  flashToggleRenders,
		TapClock:     c.tapClock,
	}
}
