package onepole

import (
	"fmt"

	"github.com/cwbudde/algo-delaycard/dsp/core"
)

// DefaultCoeff is the smoothing coefficient used by the card.
const DefaultCoeff = 819

// State contains the filter accumulator for save/restore workflows.
type State struct {
	Acc int32
}

// Filter is a single-channel one-pole low-pass.
type Filter struct {
	coeff int32
	state State
}

// New returns a filter with the given Q10 coefficient in [0, 1024].
// A coefficient of 0 passes input through unchanged.
func New(coeff int) (Filter, error) {
	if coeff < 0 || coeff > core.Unity {
		return Filter{}, fmt.Errorf("onepole coefficient must be in [0, %d]: %d", core.Unity, coeff)
	}
	return Filter{coeff: int32(coeff)}, nil
}

// Coeff returns the Q10 coefficient.
func (f *Filter) Coeff() int { return int(f.coeff) }

// ProcessSample filters one sample and returns the new accumulator.
func (f *Filter) ProcessSample(x int16) int16 {
	f.state.Acc = (f.state.Acc*f.coeff + int32(x)*(core.Unity-f.coeff)) >> core.UnityShift
	return int16(f.state.Acc)
}

// ProcessInPlace filters buf in place.
func (f *Filter) ProcessInPlace(buf []int16) {
	for i := range buf {
		buf[i] = f.ProcessSample(buf[i])
	}
}

// Reset clears the accumulator.
func (f *Filter) Reset() {
	f.state = State{}
}

// State returns a copy of the current processor state.
func (f *Filter) State() State {
	return f.state
}

// SetState restores an externally saved processor state.
func (f *Filter) SetState(state State) {
	f.state = state
}

// Stereo runs one filter state per channel with a shared coefficient.
type Stereo struct {
	left  Filter
	right Filter
}

// NewStereo constructs a stereo helper with independent left/right state.
func NewStereo(coeff int) (Stereo, error) {
	left, err := New(coeff)
	if err != nil {
		return Stereo{}, err
	}
	return Stereo{left: left, right: left}, nil
}

// Left returns the left channel filter.
func (s *Stereo) Left() *Filter { return &s.left }

// Right returns the right channel filter.
func (s *Stereo) Right() *Filter { return &s.right }

// Reset clears both channels.
func (s *Stereo) Reset() {
	s.left.Reset()
	s.right.Reset()
}

// ProcessSample filters one frame.
func (s *Stereo) ProcessSample(leftIn, rightIn int16) (leftOut, rightOut int16) {
	return s.left.ProcessSample(leftIn), s.right.ProcessSample(rightIn)
}
