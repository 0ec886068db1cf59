// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"io"

	"github.com/ik5/kira/audio"
	"github.com/ik5/kira/frame"
)

// LoadStatic decodes every frame from src (as produced by any
// formats.Decoder) into memory and returns a StaticSoundData ready to
// hand to NewStatic. This is the split point named in §6: the Decoder is
// an external collaborator; turning its output into Frame data the
// renderer can own is in scope.
func LoadStatic(src audio.Source, settings StaticSoundSettings) (StaticSoundData, error) {
	channels := src.Channels()
	buf := make([]float32, src.BufSize()*channels)
	var frames []frame.Frame

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			count := n / channels
			for i := 0; i < count; i++ {
				frames = append(frames, sampleToFrame(buf[i*channels:i*channels+channels], channels))
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return StaticSoundData{}, err
		}
	}

	return StaticSoundData{
		Frames:     frames,
		SampleRate: src.SampleRate(),
		Settings:   settings,
	}, nil
}

func sampleToFrame(samples []float32, channels int) frame.Frame {
	switch channels {
	case 1:
		v := float64(samples[0])
		return frame.Frame{Left: v, Right: v}
	case 2:
		return frame.Frame{Left: float64(samples[0]), Right: float64(samples[1])}
	default:
		var sum float64
		for _, s := range samples {
			sum += float64(s)
		}
		avg := sum / float64(channels)
		return frame.Frame{Left: avg, Right: avg}
	}
}
