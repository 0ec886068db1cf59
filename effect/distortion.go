// SPDX-License-Identifier: EPL-2.0

package effect

import (
	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/tween"
)

// DistortionShape selects a Distortion's waveshaping curve.
type DistortionShape int

const (
	HardClip DistortionShape = iota
	SoftClip
)

// Distortion waveshapes the signal, driven by a tweenable Drive amount.
// Drive is a unitless pre-gain applied before shaping; 1.0 is unity.
type Distortion struct {
	Shape DistortionShape
	Drive *tween.Parameter[tween.Linear]
}

// NewDistortion constructs a Distortion at the given initial drive.
func NewDistortion(shape DistortionShape, drive float64) *Distortion {
	return &Distortion{Shape: shape, Drive: tween.New(tween.Linear(drive))}
}

// Process implements Effect.
func (d *Distortion) Process(buf []frame.Frame, info frame.BlockInfo) {
	d.Drive.Advance(info.BlockSeconds, info.Now, info.Modulators)
	drive := float64(d.Drive.Value())
	shape := hardClip
	if d.Shape == SoftClip {
		shape = softClip
	}
	for i := range buf {
		buf[i] = frame.Frame{
			Left:  shape(buf[i].Left * drive),
			Right: shape(buf[i].Right * drive),
		}
	}
}

// OnSampleRateChanged implements Effect; Distortion is memoryless.
func (d *Distortion) OnSampleRateChanged(int) {}

func hardClip(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// softClip is a cubic soft-knee saturator, flat (derivative zero) at ±1.
func softClip(x float64) float64 {
	if x > 1 {
		return 2.0 / 3.0
	}
	if x < -1 {
		return -2.0 / 3.0
	}
	return x - (x*x*x)/3
}
