package sim

import (
	"errors"
	"fmt"

	"github.com/go-audio/audio"
)

// Ticker is anything that processes one sample period per call.
type Ticker interface {
	Tick()
}

// Render runs t once per frame of in and returns the committed outputs as
// an interleaved stereo buffer with 12-bit source depth.
func (c *Card) Render(t Ticker, in *audio.IntBuffer) (*audio.IntBuffer, error) {
	if t == nil {
		return nil, errors.New("sim: nil ticker")
	}
	if in == nil || in.Format == nil {
		return nil, errors.New("sim: input buffer without format")
	}
	if in.Format.NumChannels < 1 || in.Format.NumChannels > 2 {
		return nil, fmt.Errorf("sim: unsupported channel count: %d", in.Format.NumChannels)
	}

	frames := in.NumFrames()
	out := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: in.Format.SampleRate},
		Data:           make([]int, 0, 2*frames),
		SourceBitDepth: 12,
	}

	c.SetSource(in)
	c.SetCapture(out)
	defer func() {
		c.SetCapture(nil)
		c.SetSource(nil)
	}()

	for range frames {
		c.Latch()
		t.Tick()
	}

	return out, nil
}
