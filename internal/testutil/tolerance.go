package testutil

import (
	"fmt"
	"testing"
)

// RequireSliceWithin fails t if got and want differ in length or if any
// element pair differs by more than tol.
func RequireSliceWithin(t *testing.T, got, want []int16, tol int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := absInt(int(got[i]) - int(want[i]))
		if diff > tol {
			t.Fatalf("index %d: got %v, want %v (diff %v > tol %v)", i, got[i], want[i], diff, tol)
		}
	}
}

// RequireSampleRange fails t if any element leaves the 12-bit range.
func RequireSampleRange(t *testing.T, data []int16) {
	t.Helper()
	for i, v := range data {
		if v < -2048 || v > 2047 {
			t.Fatalf("index %d: sample %d outside [-2048, 2047]", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []int16) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0
	for i := range a {
		d := absInt(int(a[i]) - int(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
