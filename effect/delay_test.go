// SPDX-License-Identifier: EPL-2.0

package effect

import (
	"testing"

	"github.com/ik5/kira/frame"
)

func TestDelayEchoesAfterDelayTime(t *testing.T) {
	const sr = 1000
	d := NewDelay(sr, 0.01, frame.NegativeInfinity, 1.0) // 10 samples, no feedback, fully wet

	buf := make([]frame.Frame, 20)
	buf[0] = frame.Frame{Left: 1, Right: 1}
	d.Process(buf, unitBlockInfo(len(buf)))

	for i, v := range buf {
		if i == 10 {
			if v.Left != 1 {
				t.Fatalf("buf[10].Left = %v, want the impulse echoed back after 10 samples", v.Left)
			}
			continue
		}
		if v != frame.Silence {
			t.Fatalf("buf[%d] = %+v, want silence (fully wet, single impulse, no feedback)", i, v)
		}
	}
}

func TestDelayDryWhenFullyDry(t *testing.T) {
	d := NewDelay(1000, 0.01, frame.NegativeInfinity, 0.0)
	buf := []frame.Frame{{Left: 0.5, Right: 0.5}}
	d.Process(buf, unitBlockInfo(1))

	if buf[0].Left != 0.5 {
		t.Fatalf("Left = %v, want unchanged at wet=0", buf[0].Left)
	}
}
