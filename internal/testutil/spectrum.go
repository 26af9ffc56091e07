package testutil

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// MagnitudeResponse returns |H(k)| for bins 0..fftSize/2 of a real impulse
// response, zero-padded to the next power of two >= max(fftSize, len(h)).
func MagnitudeResponse(h []float64, fftSize int) ([]float64, error) {
	if len(h) == 0 {
		return nil, fmt.Errorf("testutil: empty impulse response")
	}
	n := nextPowerOf2(max(fftSize, len(h)))

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("testutil: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range h {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("testutil: forward FFT: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

// BinFrequency returns the centre frequency in Hz of bin k for an FFT of
// bins (n/2+1) magnitude values.
func BinFrequency(k, bins int, sampleRate float64) float64 {
	n := 2 * (bins - 1)
	return float64(k) * sampleRate / float64(n)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
