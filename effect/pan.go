// SPDX-License-Identifier: EPL-2.0

package effect

import (
	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/tween"
)

// PanningControl re-pans an already-stereo buffer with equal-power panning.
type PanningControl struct {
	Panning *tween.Parameter[frame.Panning]
}

// NewPanningControl constructs a PanningControl at the given initial pan.
func NewPanningControl(initial frame.Panning) *PanningControl {
	return &PanningControl{Panning: tween.New(initial)}
}

// Process implements Effect.
func (p *PanningControl) Process(buf []frame.Frame, info frame.BlockInfo) {
	p.Panning.Advance(info.BlockSeconds, info.Now, info.Modulators)
	pan := float64(p.Panning.Value())
	for i := range buf {
		buf[i] = buf[i].Panned(pan)
	}
}

// OnSampleRateChanged implements Effect.
func (p *PanningControl) OnSampleRateChanged(int) {}
