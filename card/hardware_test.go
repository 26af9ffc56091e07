package card

type pulseCall struct {
	ch    int
	high  bool
	ticks int
}

// fakeHardware records everything the engine does to it. Micros advances
// by step on every call.
type fakeHardware struct {
	in      Inputs
	outs    [][2]int16
	pulses  []pulseCall
	leds    [NumLEDs]uint16
	ledSets int
	probe   bool
	now     uint32
	step    uint32
}

func (h *fakeHardware) ReadInputs(in *Inputs) {
	*in = h.in
	// Edges last for one tick.
	h.in.SwitchChanged = false
	h.in.Pulse1Rising = false
	h.in.Pulse2Rising = false
}

func (h *fakeHardware) CommitOutputs(out1, out2 int16) {
	h.outs = append(h.outs, [2]int16{out1, out2})
}

func (h *fakeHardware) SetPulse(ch int, high bool) {
	h.pulses = append(h.pulses, pulseCall{ch: ch, high: high})
}

func (h *fakeHardware) TriggerPulse(ch, ticks int) {
	h.pulses = append(h.pulses, pulseCall{ch: ch, high: true, ticks: ticks})
}

func (h *fakeHardware) SetLED(index int, brightness uint16) {
	h.leds[index] = brightness
	h.ledSets++
}

func (h *fakeHardware) Micros() uint32 {
	h.now += h.step
	return h.now
}

func (h *fakeHardware) EnableNormalisationProbe() {
	h.probe = true
}

func (h *fakeHardware) pulsesOn(ch int) []pulseCall {
	var out []pulseCall
	for _, p := range h.pulses {
		if p.ch == ch {
			out = append(out, p)
		}
	}
	return out
}
