package core

import "testing"

func TestZero(t *testing.T) {
	buf := []int16{SampleMax, SampleMin, 3}
	Zero(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("index %d = %d, want 0", i, v)
		}
	}
}

func TestCopyInto(t *testing.T) {
	tests := []struct {
		name string
		dst  int
		src  []int16
		want int
	}{
		{"short dst", 2, []int16{1, 2, 3}, 2},
		{"short src", 4, []int16{5}, 1},
		{"empty", 0, []int16{1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]int16, tt.dst)
			n := CopyInto(dst, tt.src)
			if n != tt.want {
				t.Fatalf("n = %d, want %d", n, tt.want)
			}
			for i := range n {
				if dst[i] != tt.src[i] {
					t.Fatalf("dst[%d] = %d, want %d", i, dst[i], tt.src[i])
				}
			}
		})
	}
}
