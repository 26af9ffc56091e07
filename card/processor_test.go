package card

import (
	"testing"

	"github.com/cwbudde/algo-delaycard/dsp/delay"
	"github.com/cwbudde/algo-delaycard/dsp/filter/onepole"
	"github.com/cwbudde/algo-delaycard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChain(t *testing.T) (*delay.Line, onepole.Stereo) {
	t.Helper()

	line, err := delay.New(96000)
	require.NoError(t, err)

	filt, err := onepole.NewStereo(onepole.DefaultCoeff)
	require.NoError(t, err)

	return line, filt
}

func runChain(fx *EffectState, line *delay.Line, filt *onepole.Stereo, in []int16) (out1, out2 []int16) {
	out1 = make([]int16, len(in))
	out2 = make([]int16, len(in))
	for i, x := range in {
		out1[i], out2[i] = Process(fx, line, filt, x)
	}
	return out1, out2
}

func TestProcessEchoImpulse(t *testing.T) {
	line, filt := newChain(t)
	fx := EffectState{DelayTime: 24000, Feedback: 512, Wet: 1024, InputGain: 1024}

	out1, out2 := runChain(&fx, line, &filt, testutil.Impulse(50000, 0, 2047))

	testutil.RequireSampleRange(t, out1)
	testutil.RequireSampleRange(t, out2)

	assert.Zero(t, testutil.Energy(out1, 0, 24000), "fully wet output is silent before the first echo")
	assert.Zero(t, testutil.Energy(out2, 0, 18000))

	idx, v := testutil.PeakIndex(out1, 20000, 30000)
	assert.Equal(t, 24000, idx)
	assert.Equal(t, int16(409), v)

	idx, v = testutil.PeakIndex(out2, 15000, 21000)
	assert.Equal(t, 18000, idx)
	assert.Equal(t, int16(409), v)

	idx, v = testutil.PeakIndex(out1, 44000, 50000)
	assert.Equal(t, 48000, idx)
	assert.Equal(t, int16(204), v)

	idx, v = testutil.PeakIndex(out2, 38000, 46000)
	assert.Equal(t, 42000, idx)
	assert.Equal(t, int16(204), v)
}

func TestProcessDryPassThrough(t *testing.T) {
	line, filt := newChain(t)
	fx := EffectState{DelayTime: 480, Feedback: MaxFeedback, Wet: 0, InputGain: 1024}

	in := testutil.Sine(440, 48000, 1500, 4000)
	out1, out2 := runChain(&fx, line, &filt, in)

	ref, err := onepole.New(onepole.DefaultCoeff)
	require.NoError(t, err)
	want := append([]int16(nil), in...)
	ref.ProcessInPlace(want)

	assert.Equal(t, want, out1)
	diff, err := testutil.MaxAbsDiff(out1, out2)
	require.NoError(t, err)
	assert.Zero(t, diff, "both outputs carry the same dry signal")
}

func TestProcessInputGain(t *testing.T) {
	line, filt := newChain(t)
	fx := EffectState{DelayTime: 100, InputGain: 512}

	Process(&fx, line, &filt, 2000)
	assert.Equal(t, int16(1000), line.ReadAt(1))
}

func TestProcessFeedbackClips(t *testing.T) {
	line, filt := newChain(t)
	fx := EffectState{DelayTime: MinDelay, Feedback: MaxFeedback, Wet: 512, InputGain: 1024}

	out1, out2 := runChain(&fx, line, &filt, testutil.DC(2047, 5000))

	testutil.RequireSampleRange(t, out1)
	testutil.RequireSampleRange(t, out2)
	assert.Equal(t, int16(2047), line.ReadAt(1))
}

func TestProcessFreezeLeavesBufferUntouched(t *testing.T) {
	line, filt := newChain(t)
	fx := EffectState{DelayTime: 1000, Feedback: 700, Wet: 1024, InputGain: 1024}

	runChain(&fx, line, &filt, testutil.DC(1000, 3000))

	snapshot := make([]int16, line.Len())
	line.Snapshot(snapshot)
	cursor := line.Cursor()

	fx.Freeze = true
	out1, _ := runChain(&fx, line, &filt, testutil.Noise(2, 1800, 5000))

	assert.Equal(t, cursor, line.Cursor())
	after := make([]int16, line.Len())
	line.Snapshot(after)
	assert.Equal(t, snapshot, after)
	assert.NotZero(t, testutil.Energy(out1, 0, len(out1)), "frozen buffer keeps playing")
}

func TestProcessBypassIsDry(t *testing.T) {
	line, filt := newChain(t)
	fx := EffectState{DelayTime: 10, Feedback: 512, Wet: 1024, InputGain: 1024}

	runChain(&fx, line, &filt, testutil.Noise(3, 1000, 200))

	fx.Bypass = true
	filt.Reset()
	in := testutil.Noise(4, 1000, 500)
	out1, out2 := runChain(&fx, line, &filt, in)

	ref, err := onepole.New(onepole.DefaultCoeff)
	require.NoError(t, err)
	want := append([]int16(nil), in...)
	ref.ProcessInPlace(want)

	assert.Equal(t, want, out1)
	assert.Equal(t, want, out2)
}

func TestProcessWetOutputTracksDelayedInput(t *testing.T) {
	line, filt := newChain(t)
	fx := EffectState{DelayTime: 1000, Feedback: 0, Wet: 1024, InputGain: 1024}

	in := append(testutil.DC(1500, 3000), testutil.DC(-700, 3000)...)
	out1, _ := runChain(&fx, line, &filt, in)

	ref, err := onepole.New(onepole.DefaultCoeff)
	require.NoError(t, err)
	want := append([]int16(nil), in[:len(in)-1000]...)
	ref.ProcessInPlace(want)
	testutil.RequireSliceWithin(t, out1[1000:], want, 0)

	assert.InDelta(t, 1500, out1[3999], 10)
	assert.InDelta(t, -700, out1[5999], 10)
	assert.InDelta(t, 1500, out1[3000], 10, "step reaches the output after the delay")
}

func TestProcessWrittenSamplesStayInRange(t *testing.T) {
	for _, fb := range []int32{0, 461, MaxFeedback} {
		line, filt := newChain(t)
		fx := EffectState{DelayTime: 37, Feedback: fb, Wet: 700, InputGain: 1024}

		for _, x := range testutil.Noise(int64(fb), 2047, 5000) {
			Process(&fx, line, &filt, x)
			v := line.ReadAt(1)
			require.GreaterOrEqual(t, v, int16(-2048))
			require.LessOrEqual(t, v, int16(2047))
		}
	}
}
