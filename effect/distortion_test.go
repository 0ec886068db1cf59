// SPDX-License-Identifier: EPL-2.0

package effect

import (
	"testing"

	"github.com/ik5/kira/frame"
)

func TestDistortionHardClipClampsToUnity(t *testing.T) {
	d := NewDistortion(HardClip, 4.0)
	buf := []frame.Frame{{Left: 0.5, Right: -0.5}}
	d.Process(buf, unitBlockInfo(1))

	if buf[0].Left != 1 {
		t.Fatalf("Left = %v, want clipped to 1", buf[0].Left)
	}
	if buf[0].Right != -1 {
		t.Fatalf("Right = %v, want clipped to -1", buf[0].Right)
	}
}

func TestDistortionSoftClipStaysWithinRange(t *testing.T) {
	d := NewDistortion(SoftClip, 10.0)
	buf := []frame.Frame{{Left: 1, Right: -1}}
	d.Process(buf, unitBlockInfo(1))

	if buf[0].Left < -1 || buf[0].Left > 1 {
		t.Fatalf("Left = %v, want within [-1,1]", buf[0].Left)
	}
	if buf[0].Right < -1 || buf[0].Right > 1 {
		t.Fatalf("Right = %v, want within [-1,1]", buf[0].Right)
	}
}

func TestDistortionUnityDriveIsTransparentBelowThreshold(t *testing.T) {
	d := NewDistortion(HardClip, 1.0)
	buf := []frame.Frame{{Left: 0.3, Right: -0.3}}
	d.Process(buf, unitBlockInfo(1))

	if buf[0].Left != 0.3 || buf[0].Right != -0.3 {
		t.Fatalf("buf[0] = %+v, want unchanged at unity drive below threshold", buf[0])
	}
}
