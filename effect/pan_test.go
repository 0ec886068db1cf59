// SPDX-License-Identifier: EPL-2.0

package effect

import (
	"math"
	"testing"

	"github.com/ik5/kira/frame"
)

func TestPanningControlHardLeft(t *testing.T) {
	p := NewPanningControl(-1)
	buf := []frame.Frame{{Left: 0.5, Right: 0.5}}
	p.Process(buf, unitBlockInfo(1))

	if buf[0].Right > 1e-9 {
		t.Fatalf("Right = %v, want ~0 panned hard left", buf[0].Right)
	}
	if buf[0].Left <= 0 {
		t.Fatalf("Left = %v, want positive", buf[0].Left)
	}
}

func TestPanningControlCenterPreservesPower(t *testing.T) {
	p := NewPanningControl(0)
	buf := []frame.Frame{{Left: 1, Right: 0}}
	p.Process(buf, unitBlockInfo(1))

	power := buf[0].Left*buf[0].Left + buf[0].Right*buf[0].Right
	if math.Abs(power-1) > 1e-6 {
		t.Fatalf("power = %v, want ~1 (equal-power law)", power)
	}
}
