package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/cwbudde/algo-delaycard/card"
)

// ErrBootloaderRequested is returned by Run when the switch has been held
// down long enough to request a reboot into the bootloader.
var ErrBootloaderRequested = errors.New("driver: bootloader requested")

const (
	defaultHalfBeatTicks = 12000 // 0.25 s at 48 kHz, 120 BPM
	defaultBootHoldTicks = 96000 // 2 s at 48 kHz
	ledOn                = 4095
)

// Card is the per-sample routine the driver runs.
type Card interface {
	Startup()
	Tick()
}

// Host is the hardware plus the sample clock. Await blocks until the next
// sample period and latches that period's inputs.
type Host interface {
	card.Hardware
	Await(ctx context.Context) error
}

// Option configures a Driver.
type Option func(*Driver) error

// WithPattern sets the startup pattern. The default is EffectCard.
func WithPattern(p Pattern) Option {
	return func(d *Driver) error {
		d.pattern = p
		return nil
	}
}

// WithHalfBeatTicks sets the duration of one pattern step.
func WithHalfBeatTicks(n int) Option {
	return func(d *Driver) error {
		if n <= 0 {
			return fmt.Errorf("driver half-beat must be > 0 ticks: %d", n)
		}
		d.halfBeat = n
		return nil
	}
}

// WithBootHoldTicks sets how long the switch must be held down to request
// the bootloader.
func WithBootHoldTicks(n int) Option {
	return func(d *Driver) error {
		if n < 3 {
			return fmt.Errorf("driver boot hold must be >= 3 ticks: %d", n)
		}
		d.holdTicks = n
		return nil
	}
}

// WithoutBootSupport disables the bootloader hold gesture.
func WithoutBootSupport() Option {
	return func(d *Driver) error {
		d.bootSupport = false
		return nil
	}
}

// WithoutStartupPattern skips the LED startup pattern.
func WithoutStartupPattern() Option {
	return func(d *Driver) error {
		d.patternDone = true
		return nil
	}
}

// Driver sequences boot handling, the startup pattern and card ticks.
type Driver struct {
	host Host
	card Card

	pattern     Pattern
	halfBeat    int
	holdTicks   int
	bootSupport bool

	held        int
	step        int
	stepTicks   int
	shownStep   int
	patternDone bool

	in card.Inputs
}

// New returns a driver for c running on host.
func New(host Host, c Card, opts ...Option) (*Driver, error) {
	if host == nil || c == nil {
		return nil, errors.New("driver: nil host or card")
	}

	d := &Driver{
		host:        host,
		card:        c,
		pattern:     EffectCard,
		halfBeat:    defaultHalfBeatTicks,
		holdTicks:   defaultBootHoldTicks,
		bootSupport: true,
		shownStep:   -1,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Run calls the card's startup hook and then steps once per sample period
// until ctx ends, the host fails, or the bootloader is requested.
func (d *Driver) Run(ctx context.Context) error {
	d.card.Startup()

	for {
		if err := d.host.Await(ctx); err != nil {
			return fmt.Errorf("driver: await sample: %w", err)
		}
		if err := d.Step(); err != nil {
			return err
		}
	}
}

// Step handles one latched sample period.
func (d *Driver) Step() error {
	d.host.ReadInputs(&d.in)

	if d.bootSupport {
		if d.in.Switch == card.SwitchDown {
			d.held++
		} else {
			d.held = 0
		}

		if d.held > 0 {
			d.showBootProgress()
			if d.held >= d.holdTicks {
				return ErrBootloaderRequested
			}
			return nil
		}
	}

	if !d.patternDone {
		d.advancePattern()
		return nil
	}

	d.card.Tick()

	return nil
}

// PatternDone reports whether the startup pattern has finished.
func (d *Driver) PatternDone() bool {
	return d.patternDone
}

// SwitchHeld reports whether the switch is currently held down.
func (d *Driver) SwitchHeld() bool {
	return d.held > 0
}

// Pattern returns the configured startup pattern.
func (d *Driver) Pattern() Pattern {
	return d.pattern
}

// showBootProgress lights the left column bottom to top as the hold
// approaches the bootloader threshold.
func (d *Driver) showBootProgress() {
	third := d.holdTicks / 3
	d.setLEDs(Note{
		0: d.held > 2*third,
		2: d.held > third,
		4: true,
	})
	// Force the pattern to redraw once the switch is released.
	d.shownStep = -1
}

func (d *Driver) advancePattern() {
	d.stepTicks++
	if d.stepTicks >= d.halfBeat {
		d.stepTicks = 0
		d.step++
		if d.step >= PatternSteps {
			d.patternDone = true
			d.setLEDs(Rest)
			return
		}
	}

	if d.step != d.shownStep {
		d.setLEDs(d.pattern.Notes[d.step])
		d.shownStep = d.step
	}
}

func (d *Driver) setLEDs(n Note) {
	for i, on := range n {
		var v uint16
		if on {
			v = ledOn
		}
		d.host.SetLED(i, v)
	}
}
