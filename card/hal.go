package card

// Switch is the position of the three-way toggle.
type Switch uint8

const (
	SwitchDown Switch = iota
	SwitchMiddle
	SwitchUp
)

func (s Switch) String() string {
	switch s {
	case SwitchDown:
		return "down"
	case SwitchMiddle:
		return "middle"
	case SwitchUp:
		return "up"
	default:
		return "unknown"
	}
}

// NumLEDs is the number of independently dimmable LEDs.
const NumLEDs = 6

// Pulse output channels.
const (
	PulseClock   = 0 // delay-synchronised clock
	PulseOverrun = 1 // tick budget overrun indicator
)

// Inputs is one tick's snapshot of the hardware inputs. Audio and CV are
// signed 12-bit; knobs are unsigned 12-bit.
type Inputs struct {
	Audio1, Audio2 int16

	CV1, CV2                   int16
	CV1Connected, CV2Connected bool

	Main, X, Y uint16

	Switch        Switch
	SwitchChanged bool

	Pulse1Rising, Pulse2Rising bool
}

// Hardware is the per-sample hardware abstraction the card runs on.
//
// ReadInputs must return the same latched snapshot for every call within a
// tick. CommitOutputs must update both audio outputs as a single critical
// section, so that no concurrent reader ever observes a half-written pair.
type Hardware interface {
	ReadInputs(in *Inputs)
	CommitOutputs(out1, out2 int16)

	// SetPulse sets the level of a pulse output; TriggerPulse raises it
	// for the given number of ticks.
	SetPulse(ch int, high bool)
	TriggerPulse(ch int, ticks int)

	SetLED(index int, brightness uint16)

	// Micros is a free-running microsecond clock; it may wrap.
	Micros() uint32

	// EnableNormalisationProbe turns on jack detection for the CV inputs.
	EnableNormalisationProbe()
}
