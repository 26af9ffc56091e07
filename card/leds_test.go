package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLEDDecimation(t *testing.T) {
	var l LEDState
	var levels [NumLEDs]uint16
	fx := EffectState{}
	tm := Timing{LEDInterval: 3, FlashToggle: 5}

	assert.False(t, l.Advance(&fx, tm, &levels))
	assert.False(t, l.Advance(&fx, tm, &levels))
	assert.True(t, l.Advance(&fx, tm, &levels))
	assert.False(t, l.Advance(&fx, tm, &levels))
}

func TestLEDLevels(t *testing.T) {
	tm := Timing{LEDInterval: 1, FlashToggle: 5}

	tests := []struct {
		name string
		fx   EffectState
		want [NumLEDs]uint16
	}{
		{"flanger full", EffectState{Segment: 0, Feedback: MaxFeedback, Wet: 1024}, [NumLEDs]uint16{4095, 0, 4095, 2047, 4095, 2047}},
		{"chorus half", EffectState{Segment: 7, Feedback: 461, Wet: 512}, [NumLEDs]uint16{1024, 4095, 2047, 1023, 2047, 1023}},
		{"delay dry", EffectState{Segment: 15}, [NumLEDs]uint16{2048, 2048, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l LEDState
			var levels [NumLEDs]uint16
			require.True(t, l.Advance(&tt.fx, tm, &levels))
			assert.Equal(t, tt.want, levels)
		})
	}
}

func TestLEDBypassFlash(t *testing.T) {
	var l LEDState
	var levels [NumLEDs]uint16
	fx := EffectState{Bypass: true, Segment: 3}
	tm := Timing{LEDInterval: 1, FlashToggle: 2}

	var seen []uint16
	for range 6 {
		require.True(t, l.Advance(&fx, tm, &levels))
		for _, v := range levels[1:] {
			require.Equal(t, levels[0], v, "all LEDs flash together")
		}
		seen = append(seen, levels[0])
	}

	assert.Equal(t, []uint16{4095, 0, 0, 4095, 4095, 0}, seen)
}
