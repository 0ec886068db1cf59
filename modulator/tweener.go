// SPDX-License-Identifier: EPL-2.0

package modulator

import (
	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/schedule"
	"github.com/ik5/kira/tween"
)

// Tweener exposes a plain tween.Parameter[tween.Linear] as a Modulator, so
// effect parameters can link to an arbitrary control-driven value instead
// of only a fixed LFO shape.
type Tweener struct {
	param *tween.Parameter[tween.Linear]
}

// NewTweener constructs a Tweener starting at initial.
func NewTweener(initial float64) *Tweener {
	return &Tweener{param: tween.New(tween.Linear(initial))}
}

// Set schedules a tween of the underlying value, identical in shape to
// any other Parameter.
func (t *Tweener) Set(target float64, start schedule.StartTime, tw frame.Tween) {
	t.param.Set(tween.Linear(target), start, tw)
}

// Value implements Modulator.
func (t *Tweener) Value() float64 {
	return float64(t.param.Value())
}

// Advance implements Modulator.
func (t *Tweener) Advance(blockSeconds float64) {
	t.param.Advance(blockSeconds, schedule.Now{}, nil)
}
