// SPDX-License-Identifier: EPL-2.0

package track

import "testing"

func TestCurveInterpolatesBetweenKeys(t *testing.T) {
	c := Curve{Keys: []CurveKey{{At: 0, Value: 1}, {At: 10, Value: 0}}}

	if got := c.Evaluate(5); got != 0.5 {
		t.Fatalf("Evaluate(5) = %v, want 0.5", got)
	}
	if got := c.Evaluate(-5); got != 1 {
		t.Fatalf("Evaluate(-5) = %v, want clamped to 1", got)
	}
	if got := c.Evaluate(15); got != 0 {
		t.Fatalf("Evaluate(15) = %v, want clamped to 0", got)
	}
}

func TestCurveEmptyReturnsZero(t *testing.T) {
	var c Curve
	if got := c.Evaluate(1); got != 0 {
		t.Fatalf("Evaluate on empty curve = %v, want 0", got)
	}
}
