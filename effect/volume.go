// SPDX-License-Identifier: EPL-2.0

package effect

import (
	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/tween"
)

// VolumeControl applies a decibel gain to the buffer.
type VolumeControl struct {
	VolumeDB *tween.Parameter[frame.Decibels]
}

// NewVolumeControl constructs a VolumeControl at the given initial gain.
func NewVolumeControl(initial frame.Decibels) *VolumeControl {
	return &VolumeControl{VolumeDB: tween.New(initial)}
}

// Process implements Effect.
func (v *VolumeControl) Process(buf []frame.Frame, info frame.BlockInfo) {
	v.VolumeDB.Advance(info.BlockSeconds, info.Now, info.Modulators)
	amp := v.VolumeDB.Value().Amplitude()
	for i := range buf {
		buf[i] = buf[i].Scale(amp)
	}
}

// OnSampleRateChanged implements Effect; VolumeControl has no
// sample-rate-dependent state.
func (v *VolumeControl) OnSampleRateChanged(int) {}
