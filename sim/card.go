package sim

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cwbudde/algo-delaycard/card"
	"github.com/go-audio/audio"
)

// ErrTickLimit is returned by Await once the configured tick limit is hit.
var ErrTickLimit = errors.New("sim: tick limit reached")

// Knob identifies a knob.
type Knob uint8

const (
	KnobMain Knob = iota
	KnobX
	KnobY
)

// Option configures a Card.
type Option func(*Card)

// WithClock replaces the microsecond clock. The default is wall time since
// the card was created.
func WithClock(clock func() uint32) Option {
	return func(c *Card) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithTickLimit makes Await fail with ErrTickLimit after n ticks.
func WithTickLimit(n int) Option {
	return func(c *Card) {
		c.limit = n
	}
}

type pulseOut struct {
	high      bool
	remaining int
}

// Card is a simulated card. Controls and getters other than Outputs are
// meant for the goroutine that drives the ticks.
type Card struct {
	mu   sync.Mutex
	outs [2]int16

	controls   card.Inputs
	latched    card.Inputs
	prevSwitch card.Switch
	rising     [2]bool

	source    *audio.IntBuffer
	sourcePos int
	capture   *audio.IntBuffer

	pulses [2]pulseOut
	leds   [card.NumLEDs]uint16
	probe  bool

	clock func() uint32
	ticks int
	limit int
}

// New returns a card with all controls at zero, the switch in the middle
// and no jacks patched.
func New(opts ...Option) *Card {
	start := time.Now()
	c := &Card{
		clock: func() uint32 { return uint32(time.Since(start).Microseconds()) },
	}
	c.controls.Switch = card.SwitchMiddle
	c.prevSwitch = card.SwitchMiddle
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// SetKnob sets a knob reading in [0, 4095].
func (c *Card) SetKnob(k Knob, v uint16) {
	switch k {
	case KnobMain:
		c.controls.Main = v
	case KnobX:
		c.controls.X = v
	case KnobY:
		c.controls.Y = v
	}
}

// SetCV patches CV input ch (1 or 2) with value v.
func (c *Card) SetCV(ch int, v int16) {
	switch ch {
	case 1:
		c.controls.CV1, c.controls.CV1Connected = v, true
	case 2:
		c.controls.CV2, c.controls.CV2Connected = v, true
	}
}

// UnplugCV removes the patch cable from CV input ch.
func (c *Card) UnplugCV(ch int) {
	switch ch {
	case 1:
		c.controls.CV1, c.controls.CV1Connected = 0, false
	case 2:
		c.controls.CV2, c.controls.CV2Connected = 0, false
	}
}

// SetSwitch moves the toggle switch.
func (c *Card) SetSwitch(s card.Switch) {
	c.controls.Switch = s
}

// SetAudio sets the audio inputs used when no source buffer is attached.
func (c *Card) SetAudio(in1, in2 int16) {
	c.controls.Audio1, c.controls.Audio2 = in1, in2
}

// Pulse queues a rising edge on pulse input ch (1 or 2) for the next tick.
func (c *Card) Pulse(ch int) {
	if ch == 1 || ch == 2 {
		c.rising[ch-1] = true
	}
}

// SetSource feeds audio from buf, one frame per tick. Mono buffers drive
// input 1 only. Frames past the end read as silence.
func (c *Card) SetSource(buf *audio.IntBuffer) {
	c.source = buf
	c.sourcePos = 0
}

// SetCapture appends every committed output pair to buf as an interleaved
// stereo frame. Preallocate buf.Data capacity to keep ticks allocation free.
func (c *Card) SetCapture(buf *audio.IntBuffer) {
	c.mu.Lock()
	c.capture = buf
	c.mu.Unlock()
}

// Latch captures the inputs for the next tick and advances timed pulses.
func (c *Card) Latch() {
	in := c.controls
	in.SwitchChanged = in.Switch != c.prevSwitch
	c.prevSwitch = in.Switch
	in.Pulse1Rising, in.Pulse2Rising = c.rising[0], c.rising[1]
	c.rising = [2]bool{}

	if c.source != nil && c.source.Format != nil {
		ch := max(c.source.Format.NumChannels, 1)
		i := c.sourcePos * ch
		if i+ch <= len(c.source.Data) {
			in.Audio1 = int16(c.source.Data[i])
			in.Audio2 = 0
			if ch > 1 {
				in.Audio2 = int16(c.source.Data[i+1])
			}
		} else {
			in.Audio1, in.Audio2 = 0, 0
		}
		c.sourcePos++
	}

	for i := range c.pulses {
		p := &c.pulses[i]
		if p.remaining > 0 {
			p.remaining--
			if p.remaining == 0 {
				p.high = false
			}
		}
	}

	c.latched = in
	c.ticks++
}

// Await latches the next tick's inputs. It fails when ctx is done or the
// tick limit has been reached.
func (c *Card) Await(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.limit > 0 && c.ticks >= c.limit {
		return ErrTickLimit
	}
	c.Latch()
	return nil
}

// ReadInputs implements card.Hardware.
func (c *Card) ReadInputs(in *card.Inputs) {
	*in = c.latched
}

// CommitOutputs implements card.Hardware. Both outputs change together
// under the card's mutex.
func (c *Card) CommitOutputs(out1, out2 int16) {
	c.mu.Lock()
	c.outs = [2]int16{out1, out2}
	if c.capture != nil {
		c.capture.Data = append(c.capture.Data, int(out1), int(out2))
	}
	c.mu.Unlock()
}

// Outputs returns the last committed output pair. Safe for concurrent use.
func (c *Card) Outputs() (out1, out2 int16) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outs[0], c.outs[1]
}

// SetPulse implements card.Hardware.
func (c *Card) SetPulse(ch int, high bool) {
	if ch < 0 || ch >= len(c.pulses) {
		return
	}
	c.pulses[ch] = pulseOut{high: high}
}

// TriggerPulse implements card.Hardware.
func (c *Card) TriggerPulse(ch int, ticks int) {
	if ch < 0 || ch >= len(c.pulses) || ticks <= 0 {
		return
	}
	c.pulses[ch] = pulseOut{high: true, remaining: ticks}
}

// PulseOut reports the level of pulse output ch.
func (c *Card) PulseOut(ch int) bool {
	if ch < 0 || ch >= len(c.pulses) {
		return false
	}
	return c.pulses[ch].high
}

// SetLED implements card.Hardware.
func (c *Card) SetLED(index int, brightness uint16) {
	if index < 0 || index >= len(c.leds) {
		return
	}
	c.leds[index] = min(brightness, 4095)
}

// LEDs returns the current LED levels.
func (c *Card) LEDs() [card.NumLEDs]uint16 {
	return c.leds
}

// Micros implements card.Hardware.
func (c *Card) Micros() uint32 {
	return c.clock()
}

// EnableNormalisationProbe implements card.Hardware.
func (c *Card) EnableNormalisationProbe() {
	c.probe = true
}

// ProbeEnabled reports whether the normalisation probe was enabled.
func (c *Card) ProbeEnabled() bool {
	return c.probe
}

// Ticks returns the number of latched ticks.
func (c *Card) Ticks() int {
	return c.ticks
}
