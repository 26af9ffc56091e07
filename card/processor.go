package card

import (
	"github.com/cwbudde/algo-delaycard/dsp/core"
	"github.com/cwbudde/algo-delaycard/dsp/delay"
	"github.com/cwbudde/algo-delaycard/dsp/filter/onepole"
)

// Process runs one sample through the delay chain:
//
//	input gain -> dual-tap read -> feedback + clip -> buffer write
//	-> wet/dry mix (or bypass) -> output smoothing
//
// The first output mixes the primary tap at fx.DelayTime, the second the
// secondary tap at SecondTap. The buffer is not written while fx.Freeze is
// set.
func Process(fx *EffectState, line *delay.Line, filt *onepole.Stereo, raw int16) (out1, out2 int16) {
	scaled := core.MulQ10(int32(raw), fx.InputGain)

	tap1 := int32(line.ReadAt(fx.DelayTime))
	tap2 := int32(line.ReadAt(SecondTap(fx.DelayTime, line.Len())))

	line.SetFrozen(fx.Freeze)
	line.Write(core.ClipSample(scaled + core.MulQ10(tap1, fx.Feedback)))

	var mix1, mix2 int16
	if fx.Bypass {
		mix1 = int16(scaled)
		mix2 = int16(scaled)
	} else {
		mix1 = int16(core.Crossfade(scaled, tap1, fx.Wet))
		mix2 = int16(core.Crossfade(scaled, tap2, fx.Wet))
	}

	return filt.ProcessSample(mix1, mix2)
}
