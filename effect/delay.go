// SPDX-License-Identifier: EPL-2.0

package effect

import (
	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/tween"
)

// Delay is a fixed-length feedback delay line. The delay time is fixed at
// construction and sized in samples for the sample rate given then; per
// §9's design note, changing the delay time requires building a new
// effect.Delay rather than resizing this one in place.
type Delay struct {
	FeedbackDB *tween.Parameter[frame.Decibels]
	MixWet     *tween.Parameter[tween.Linear]

	buf        []frame.Frame
	write      int
	sampleRate int
}

// NewDelay constructs a Delay holding delaySeconds of history at
// sampleRate, with the given initial feedback and wet mix.
func NewDelay(sampleRate int, delaySeconds float64, feedbackDB frame.Decibels, wetMix float64) *Delay {
	n := int(delaySeconds * float64(sampleRate))
	if n < 1 {
		n = 1
	}
	return &Delay{
		FeedbackDB: tween.New(feedbackDB),
		MixWet:     tween.New(tween.Linear(wetMix)),
		buf:        make([]frame.Frame, n),
		sampleRate: sampleRate,
	}
}

// Process implements Effect.
func (d *Delay) Process(buf []frame.Frame, info frame.BlockInfo) {
	d.FeedbackDB.Advance(info.BlockSeconds, info.Now, info.Modulators)
	d.MixWet.Advance(info.BlockSeconds, info.Now, info.Modulators)
	feedback := d.FeedbackDB.Value().Amplitude()
	wet := float64(d.MixWet.Value())
	n := len(d.buf)

	for i := range buf {
		delayed := d.buf[d.write]
		fedBack := buf[i].Add(delayed.Scale(feedback))
		d.buf[d.write] = fedBack
		buf[i] = buf[i].Scale(1 - wet).Add(delayed.Scale(wet))
		d.write++
		if d.write >= n {
			d.write = 0
		}
	}
}

// OnSampleRateChanged implements Effect. The delay line keeps its sample
// count, shortening or lengthening the delay time rather than resizing: a
// new rate with the same delay time requires a new effect.Delay.
func (d *Delay) OnSampleRateChanged(newRate int) {
	d.sampleRate = newRate
}
