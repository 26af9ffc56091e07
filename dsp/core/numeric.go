package core

// Fixed-point conventions shared by the card. A Q10 coefficient uses 1024 as
// unity; samples are effectively 12-bit signed.
const (
	UnityShift = 10
	Unity      = 1 << UnityShift

	SampleMin = -2048
	SampleMax = 2047
)

// ClampInt limits value to the inclusive range [lo, hi].
func ClampInt(value, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}

	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}

// ClipSample saturates v to the 12-bit sample range [-2048, 2047].
func ClipSample(v int32) int16 {
	if v > SampleMax {
		return SampleMax
	}

	if v < SampleMin {
		return SampleMin
	}

	return int16(v)
}

// MulQ10 scales x by a Q10 coefficient: (x * coeff) >> 10.
// The shift is arithmetic, so negative products round toward -Inf.
func MulQ10(x, coeff int32) int32 {
	return (x * coeff) >> UnityShift
}

// Crossfade blends dry and wet with a Q10 wet amount in [0, 1024]:
// (dry*(1024-wet) + wetSample*wet) >> 10.
func Crossfade(dry, wetSample, wet int32) int32 {
	return (dry*(Unity-wet) + wetSample*wet) >> UnityShift
}

// AbsInt returns |v|.
func AbsInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
