// SPDX-License-Identifier: EPL-2.0

package effect

import (
	"math"

	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/tween"
)

// FilterMode selects which output tap of the state-variable filter Process
// writes back into the buffer.
type FilterMode int

const (
	Low FilterMode = iota
	High
	Band
	Notch
)

// Filter is a Chamberlin-topology state-variable filter with a tweenable
// cutoff and resonance. Unlike the teacher's fixed one-pole anti-aliasing
// filter in the resampler, cutoff and Q can move every block.
type Filter struct {
	Mode      FilterMode
	CutoffHz  *tween.Parameter[tween.Linear]
	Resonance *tween.Parameter[tween.Linear]

	sampleRate int
	low, band  [2]float64 // per-channel state
}

// NewFilter constructs a Filter for the given sample rate.
func NewFilter(mode FilterMode, sampleRate int, cutoffHz, resonance float64) *Filter {
	return &Filter{
		Mode:       mode,
		CutoffHz:   tween.New(tween.Linear(cutoffHz)),
		Resonance:  tween.New(tween.Linear(resonance)),
		sampleRate: sampleRate,
	}
}

// OnSampleRateChanged implements Effect.
func (f *Filter) OnSampleRateChanged(newRate int) {
	f.sampleRate = newRate
}

// Process implements Effect.
func (f *Filter) Process(buf []frame.Frame, info frame.BlockInfo) {
	f.CutoffHz.Advance(info.BlockSeconds, info.Now, info.Modulators)
	f.Resonance.Advance(info.BlockSeconds, info.Now, info.Modulators)

	cutoff := float64(f.CutoffHz.Value())
	q := float64(f.Resonance.Value())
	if q <= 0 {
		q = 0.0001
	}
	nyquist := float64(f.sampleRate) / 2
	if cutoff > nyquist {
		cutoff = nyquist
	}
	freq := 2 * math.Sin(math.Pi*cutoff/float64(f.sampleRate))
	damp := 1 / q

	for i := range buf {
		in := [2]float64{buf[i].Left, buf[i].Right}
		var out [2]float64
		for c := 0; c < 2; c++ {
			low := f.low[c] + freq*f.band[c]
			high := in[c] - low - damp*f.band[c]
			band := freq*high + f.band[c]
			f.low[c] = low
			f.band[c] = band

			switch f.Mode {
			case Low:
				out[c] = low
			case High:
				out[c] = high
			case Band:
				out[c] = band
			case Notch:
				out[c] = low + high
			}
		}
		buf[i] = frame.Frame{Left: out[0], Right: out[1]}
	}
}
