package testutil

import (
	"math"
	"math/rand"
)

// Sine generates a deterministic 12-bit sine wave.
func Sine(freqHz, sampleRate float64, amplitude int16, length int) []int16 {
	out := make([]int16, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = int16(math.Round(float64(amplitude) * math.Sin(step*float64(i))))
	}
	return out
}

// Noise generates white noise in [-amplitude, amplitude] with a fixed seed.
func Noise(seed int64, amplitude int16, length int) []int16 {
	out := make([]int16, length)
	rng := rand.New(rand.NewSource(seed))
	span := 2*int(amplitude) + 1
	for i := range out {
		out[i] = int16(rng.Intn(span) - int(amplitude))
	}
	return out
}

// Impulse generates a single sample of the given height at pos.
func Impulse(length, pos int, height int16) []int16 {
	out := make([]int16, length)
	if pos >= 0 && pos < length {
		out[pos] = height
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value int16, length int) []int16 {
	out := make([]int16, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Float converts samples to float64 for analysis helpers.
func Float(in []int16) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}
