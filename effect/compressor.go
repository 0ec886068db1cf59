// SPDX-License-Identifier: EPL-2.0

package effect

import (
	"math"

	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/tween"
)

// Compressor is a feed-forward RMS-envelope compressor: an RMS follower
// estimates the signal level, gain reduction is computed from the
// threshold/ratio once the envelope exceeds threshold, and the result is
// smoothed by separate attack/release time constants before being applied.
type Compressor struct {
	ThresholdDB *tween.Parameter[frame.Decibels]
	Ratio       *tween.Parameter[tween.Linear] // e.g. 4.0 means 4:1
	AttackMS    *tween.Parameter[tween.Linear]
	ReleaseMS   *tween.Parameter[tween.Linear]
	MakeupDB    *tween.Parameter[frame.Decibels]

	sampleRate int
	rms        float64
	gain       float64 // smoothed linear gain, starts at unity
}

// NewCompressor constructs a Compressor for the given sample rate.
func NewCompressor(sampleRate int, thresholdDB frame.Decibels, ratio, attackMS, releaseMS float64, makeupDB frame.Decibels) *Compressor {
	return &Compressor{
		ThresholdDB: tween.New(thresholdDB),
		Ratio:       tween.New(tween.Linear(ratio)),
		AttackMS:    tween.New(tween.Linear(attackMS)),
		ReleaseMS:   tween.New(tween.Linear(releaseMS)),
		MakeupDB:    tween.New(makeupDB),
		sampleRate:  sampleRate,
		gain:        1,
	}
}

// Process implements Effect.
func (c *Compressor) Process(buf []frame.Frame, info frame.BlockInfo) {
	c.ThresholdDB.Advance(info.BlockSeconds, info.Now, info.Modulators)
	c.Ratio.Advance(info.BlockSeconds, info.Now, info.Modulators)
	c.AttackMS.Advance(info.BlockSeconds, info.Now, info.Modulators)
	c.ReleaseMS.Advance(info.BlockSeconds, info.Now, info.Modulators)
	c.MakeupDB.Advance(info.BlockSeconds, info.Now, info.Modulators)

	thresholdAmp := c.ThresholdDB.Value().Amplitude()
	ratio := float64(c.Ratio.Value())
	if ratio < 1 {
		ratio = 1
	}
	makeup := c.MakeupDB.Value().Amplitude()
	attackCoef := timeConstant(float64(c.AttackMS.Value()), c.sampleRate)
	releaseCoef := timeConstant(float64(c.ReleaseMS.Value()), c.sampleRate)

	const rmsWindow = 0.01 // seconds, one-pole RMS smoothing
	rmsCoef := timeConstant(rmsWindow*1000, c.sampleRate)

	for i := range buf {
		level := (buf[i].Left*buf[i].Left + buf[i].Right*buf[i].Right) / 2
		c.rms = rmsCoef*c.rms + (1-rmsCoef)*level
		envelope := math.Sqrt(c.rms)

		targetGain := 1.0
		if envelope > thresholdAmp && envelope > 0 {
			excessDB := 20 * math.Log10(envelope/thresholdAmp)
			reducedDB := excessDB - excessDB/ratio
			targetGain = dbToAmplitude(-reducedDB)
		}

		coef := releaseCoef
		if targetGain < c.gain {
			coef = attackCoef
		}
		c.gain = coef*c.gain + (1-coef)*targetGain

		buf[i] = buf[i].Scale(c.gain * makeup)
	}
}

// OnSampleRateChanged implements Effect.
func (c *Compressor) OnSampleRateChanged(newRate int) {
	c.sampleRate = newRate
}

func timeConstant(ms float64, sampleRate int) float64 {
	if ms <= 0 {
		return 0
	}
	return math.Exp(-1 / (ms / 1000 * float64(sampleRate)))
}

func dbToAmplitude(db float64) float64 {
	return math.Pow(10, db/20)
}
