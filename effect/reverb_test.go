// SPDX-License-Identifier: EPL-2.0

package effect

import (
	"math"
	"testing"

	"github.com/ik5/kira/frame"
)

func TestReverbDryWhenWetIsZero(t *testing.T) {
	r := NewReverb(48000, 0.5, 0.5, 0.0)
	buf := []frame.Frame{{Left: 0.4, Right: 0.4}}
	r.Process(buf, unitBlockInfo(1))

	if buf[0].Left != 0.4 || buf[0].Right != 0.4 {
		t.Fatalf("buf[0] = %+v, want unchanged at wet=0", buf[0])
	}
}

func TestReverbProducesTailAfterImpulse(t *testing.T) {
	const sr = 48000
	r := NewReverb(sr, 0.9, 0.3, 1.0)

	buf := make([]frame.Frame, sr/10)
	buf[0] = frame.Frame{Left: 1, Right: 1}
	r.Process(buf, unitBlockInfo(len(buf)))

	var energy float64
	for i := 1200; i < len(buf); i++ {
		energy += buf[i].Left * buf[i].Left
	}
	if energy == 0 {
		t.Fatal("expected nonzero reverb tail after the comb delay lines fill")
	}
	if math.IsNaN(energy) || math.IsInf(energy, 0) {
		t.Fatalf("reverb tail energy is not finite: %v", energy)
	}
}
