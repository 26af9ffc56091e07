// Package delay provides the card's fixed-capacity sample delay line.
package delay

import (
	"fmt"

	"github.com/cwbudde/algo-delaycard/dsp/core"
)

// Line is a circular delay line of 12-bit samples stored as int16.
// Writes are gated by a freeze flag; reads are always wrapped into range.
type Line struct {
	buffer   []int16
	writePos int
	frozen   bool
}

// New returns a delay line of fixed size. It is the only allocation the
// line ever makes.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}
	return &Line{buffer: make([]int16, size)}, nil
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Cursor returns the write position.
func (d *Line) Cursor() int {
	return d.writePos
}

// Frozen reports whether writes are currently suppressed.
func (d *Line) Frozen() bool {
	return d.frozen
}

// SetFrozen enables or disables write gating.
func (d *Line) SetFrozen(frozen bool) {
	d.frozen = frozen
}

// Write stores one sample at the cursor and advances it. No-op while frozen.
func (d *Line) Write(sample int16) {
	if d.frozen {
		return
	}
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// ReadAt returns the sample offset positions behind the cursor.
// Any offset resolves into [0, Len()).
func (d *Line) ReadAt(offset int) int16 {
	return d.buffer[d.index(offset)]
}

func (d *Line) index(offset int) int {
	size := len(d.buffer)
	idx := (d.writePos - offset%size + size) % size
	return idx
}

// Snapshot copies the stored samples in storage order into dst and returns
// the number copied.
func (d *Line) Snapshot(dst []int16) int {
	return core.CopyInto(dst, d.buffer)
}

// Clear zeroes every stored sample. The cursor and freeze flag are kept.
func (d *Line) Clear() {
	core.Zero(d.buffer)
}
