package testutil

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// PeakIndex returns the index of the largest |sample| in data[from:to] and
// the sample at that index. Bounds are clamped to the slice.
func PeakIndex(data []int16, from, to int) (int, int16) {
	from = max(from, 0)
	to = min(to, len(data))
	if from >= to {
		return -1, 0
	}
	window := make([]float64, to-from)
	for i, v := range data[from:to] {
		window[i] = math.Abs(float64(v))
	}
	idx := floats.MaxIdx(window) + from
	return idx, data[idx]
}

// Energy returns the sum of squares of data[from:to].
func Energy(data []int16, from, to int) float64 {
	from = max(from, 0)
	to = min(to, len(data))
	if from >= to {
		return 0
	}
	f := Float(data[from:to])
	return floats.Dot(f, f)
}
