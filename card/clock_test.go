package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockRiseAndFall(t *testing.T) {
	c := ClockState{LastDelay: 100}

	var rises, falls []int
	for i := 1; i <= 250; i++ {
		switch c.Advance(100, false, 10) {
		case ClockRise:
			rises = append(rises, i)
		case ClockFall:
			falls = append(falls, i)
		}
	}

	assert.Equal(t, []int{100, 200}, rises)
	assert.Equal(t, []int{110, 210}, falls, "no fall before the first rise")
}

func TestClockResyncOnDelayChange(t *testing.T) {
	c := ClockState{LastDelay: 100}
	for range 40 {
		c.Advance(100, false, 10)
	}
	require.Equal(t, 40, c.Counter)

	assert.Equal(t, ClockFall, c.Advance(50, false, 10))
	assert.Equal(t, 0, c.Counter)
	assert.False(t, c.High)
	assert.Equal(t, 50, c.LastDelay)

	assert.Equal(t, ClockHold, c.Advance(50, false, 10))
	assert.Equal(t, 1, c.Counter)
}

func TestClockFrozenHolds(t *testing.T) {
	c := ClockState{LastDelay: 100}
	for range 30 {
		c.Advance(100, false, 10)
	}

	for range 1000 {
		assert.Equal(t, ClockHold, c.Advance(100, true, 10))
	}
	assert.Equal(t, 30, c.Counter)
}

func TestClockShortDelayStaysHigh(t *testing.T) {
	c := ClockState{LastDelay: 48}
	for i := 1; i <= 480; i++ {
		edge := c.Advance(48, false, 480)
		assert.NotEqual(t, ClockFall, edge)
	}
	assert.True(t, c.High)
}
