// SPDX-License-Identifier: EPL-2.0

package effect

import (
	"math"

	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/tween"
)

// EQ is a single-band peaking biquad EQ. Coefficients are recomputed
// whenever FrequencyHz, GainDB, or Q change block-to-block, following
// utils/cubic_interpolate.go's pattern of recomputing derived coefficients
// rather than caching a stale set.
type EQ struct {
	FrequencyHz *tween.Parameter[tween.Linear]
	GainDB      *tween.Parameter[frame.Decibels]
	Q           *tween.Parameter[tween.Linear]

	sampleRate int
	// biquad coefficients from the last recompute
	b0, b1, b2, a1, a2 float64
	// per-channel direct-form-II-transposed state
	z1, z2 [2]float64
}

// NewEQ constructs an EQ for the given sample rate.
func NewEQ(sampleRate int, frequencyHz float64, gainDB frame.Decibels, q float64) *EQ {
	e := &EQ{
		FrequencyHz: tween.New(tween.Linear(frequencyHz)),
		GainDB:      tween.New(gainDB),
		Q:           tween.New(tween.Linear(q)),
		sampleRate:  sampleRate,
	}
	e.recompute(frequencyHz, float64(gainDB), q)
	return e
}

func (e *EQ) recompute(freq, gainDB, q float64) {
	if q <= 0 {
		q = 0.0001
	}
	nyquist := float64(e.sampleRate) / 2
	if freq <= 0 {
		freq = 1
	} else if freq > nyquist-1 {
		freq = nyquist - 1
	}

	a := math.Pow(10, gainDB/40)
	w0 := 2 * math.Pi * freq / float64(e.sampleRate)
	cosW0 := math.Cos(w0)
	sinW0 := math.Sin(w0)
	alpha := sinW0 / (2 * q)

	b0 := 1 + alpha*a
	b1 := -2 * cosW0
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a1 := -2 * cosW0
	a2 := 1 - alpha/a

	e.b0 = b0 / a0
	e.b1 = b1 / a0
	e.b2 = b2 / a0
	e.a1 = a1 / a0
	e.a2 = a2 / a0
}

// Process implements Effect.
func (e *EQ) Process(buf []frame.Frame, info frame.BlockInfo) {
	e.FrequencyHz.Advance(info.BlockSeconds, info.Now, info.Modulators)
	e.GainDB.Advance(info.BlockSeconds, info.Now, info.Modulators)
	e.Q.Advance(info.BlockSeconds, info.Now, info.Modulators)
	e.recompute(float64(e.FrequencyHz.Value()), float64(e.GainDB.Value()), float64(e.Q.Value()))

	for i := range buf {
		in := [2]float64{buf[i].Left, buf[i].Right}
		var out [2]float64
		for c := 0; c < 2; c++ {
			o := e.b0*in[c] + e.z1[c]
			e.z1[c] = e.b1*in[c] - e.a1*o + e.z2[c]
			e.z2[c] = e.b2*in[c] - e.a2*o
			out[c] = o
		}
		buf[i] = frame.Frame{Left: out[0], Right: out[1]}
	}
}

// OnSampleRateChanged implements Effect.
func (e *EQ) OnSampleRateChanged(newRate int) {
	e.sampleRate = newRate
	e.recompute(float64(e.FrequencyHz.Value()), float64(e.GainDB.Value()), float64(e.Q.Value()))
}
