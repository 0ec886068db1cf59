// SPDX-License-Identifier: EPL-2.0

package effect

import (
	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/tween"
)

// combTunings and allpassTunings are Freeverb's canonical delay-line
// lengths in samples at 44100Hz; reverb.go scales them to the engine's
// actual sample rate.
var combTunings = [8]int{1116, 1188, 1277, 1356, 1422, 1491, 1557, 1617}
var allpassTunings = [4]int{556, 441, 341, 225}

const freeverbSampleRate = 44100

type comb struct {
	buf    []float64
	pos    int
	filter float64 // one-pole damping state
}

func newComb(length int) *comb {
	if length < 1 {
		length = 1
	}
	return &comb{buf: make([]float64, length)}
}

func (c *comb) process(in, feedback, damp float64) float64 {
	out := c.buf[c.pos]
	c.filter = out*(1-damp) + c.filter*damp
	c.buf[c.pos] = in + c.filter*feedback
	c.pos++
	if c.pos >= len(c.buf) {
		c.pos = 0
	}
	return out
}

type allpass struct {
	buf []float64
	pos int
}

func newAllpass(length int) *allpass {
	if length < 1 {
		length = 1
	}
	return &allpass{buf: make([]float64, length)}
}

func (a *allpass) process(in float64) float64 {
	bufOut := a.buf[a.pos]
	out := -in + bufOut
	a.buf[a.pos] = in + bufOut*0.5
	a.pos++
	if a.pos >= len(a.buf) {
		a.pos = 0
	}
	return out
}

// Reverb is a Freeverb-style parallel-comb, series-allpass reverb, run
// identically (but independently) on each channel.
type Reverb struct {
	RoomSize *tween.Parameter[tween.Linear]
	Damping  *tween.Parameter[tween.Linear]
	MixWet   *tween.Parameter[tween.Linear]

	combs    [2][8]*comb
	allpasss [2][4]*allpass
}

// NewReverb constructs a Reverb sized for sampleRate.
func NewReverb(sampleRate int, roomSize, damping, wetMix float64) *Reverb {
	r := &Reverb{
		RoomSize: tween.New(tween.Linear(roomSize)),
		Damping:  tween.New(tween.Linear(damping)),
		MixWet:   tween.New(tween.Linear(wetMix)),
	}
	scale := float64(sampleRate) / freeverbSampleRate
	for ch := 0; ch < 2; ch++ {
		stereoSpread := 0
		if ch == 1 {
			stereoSpread = 23
		}
		for i, t := range combTunings {
			r.combs[ch][i] = newComb(int(float64(t+stereoSpread) * scale))
		}
		for i, t := range allpassTunings {
			r.allpasss[ch][i] = newAllpass(int(float64(t+stereoSpread) * scale))
		}
	}
	return r
}

// Process implements Effect.
func (r *Reverb) Process(buf []frame.Frame, info frame.BlockInfo) {
	r.RoomSize.Advance(info.BlockSeconds, info.Now, info.Modulators)
	r.Damping.Advance(info.BlockSeconds, info.Now, info.Modulators)
	r.MixWet.Advance(info.BlockSeconds, info.Now, info.Modulators)

	feedback := 0.28 + float64(r.RoomSize.Value())*0.7
	damp := float64(r.Damping.Value())
	wet := float64(r.MixWet.Value())

	for i := range buf {
		in := [2]float64{buf[i].Left, buf[i].Right}
		var out [2]float64
		for ch := 0; ch < 2; ch++ {
			var sum float64
			for _, c := range r.combs[ch] {
				sum += c.process(in[ch], feedback, damp)
			}
			for _, a := range r.allpasss[ch] {
				sum = a.process(sum)
			}
			out[ch] = sum
		}
		buf[i] = frame.Frame{
			Left:  in[0]*(1-wet) + out[0]*wet,
			Right: in[1]*(1-wet) + out[1]*wet,
		}
	}
}

// OnSampleRateChanged implements Effect by rebuilding every delay line for
// the new rate, which clears the reverb tail.
func (r *Reverb) OnSampleRateChanged(newRate int) {
	scale := float64(newRate) / freeverbSampleRate
	for ch := 0; ch < 2; ch++ {
		stereoSpread := 0
		if ch == 1 {
			stereoSpread = 23
		}
		for i, t := range combTunings {
			r.combs[ch][i] = newComb(int(float64(t+stereoSpread) * scale))
		}
		for i, t := range allpassTunings {
			r.allpasss[ch][i] = newAllpass(int(float64(t+stereoSpread) * scale))
		}
	}
}
