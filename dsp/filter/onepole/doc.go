// Package onepole provides a fixed-point one-pole low-pass used to smooth
// the card's output against quantization steps from parameter changes and
// feedback clipping.
//
// The recurrence is
//
//	state = (state*coeff + input*(1024-coeff)) >> 10
//
// with coeff in Q10. The default coefficient 819 (about 0.8) puts the -3 dB
// point near 1.7 kHz at 48 kHz. DC settles a few LSB below the input
// because of the truncating shift.
//
// Filters are stateful and deterministic and support explicit state
// save/restore. Stereo runs one independent accumulator per channel.
package onepole
