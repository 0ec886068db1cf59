// SPDX-License-Identifier: EPL-2.0

package schedule

import (
	"testing"
	"time"
)

func TestImmediateFiresOnFirstResolve(t *testing.T) {
	r := NewResolver(Immediate())
	if got := r.Resolve(Now{}); got != StartingNow {
		t.Fatalf("Resolve = %v, want StartingNow", got)
	}
	if got := r.Resolve(Now{}); got != AlreadyDue {
		t.Fatalf("second Resolve = %v, want AlreadyDue", got)
	}
}

func TestDelayedFiresAfterDeadline(t *testing.T) {
	r := NewResolver(Delayed(1 * time.Second))
	now := Now{SampleIndex: 0, SampleRate: 48000}
	if got := r.Resolve(now); got != NotYet {
		t.Fatalf("Resolve at 0 = %v, want NotYet", got)
	}
	now.SampleIndex = 47999
	if got := r.Resolve(now); got != NotYet {
		t.Fatalf("Resolve at 47999 = %v, want NotYet", got)
	}
	now.SampleIndex = 48000
	if got := r.Resolve(now); got != StartingNow {
		t.Fatalf("Resolve at 48000 = %v, want StartingNow", got)
	}
}

type fakeClocks struct {
	t       ClockTime
	running bool
	exists  bool
}

func (f fakeClocks) ClockTime(ClockKey) (ClockTime, bool, bool) {
	return f.t, f.running, f.exists
}

func TestClockTimeWaitsUntilReached(t *testing.T) {
	key := ClockKey{Index: 1, Generation: 1}
	r := NewResolver(AtClockTime(key, 4, 0))

	clocks := fakeClocks{t: ClockTime{Ticks: 2}, running: true, exists: true}
	if got := r.Resolve(Now{Clocks: clocks}); got != NotYet {
		t.Fatalf("Resolve before target = %v, want NotYet", got)
	}

	clocks.t = ClockTime{Ticks: 4}
	if got := r.Resolve(Now{Clocks: clocks}); got != StartingNow {
		t.Fatalf("Resolve at target = %v, want StartingNow", got)
	}
}

func TestClockTimeFiresEvenIfClockThenStops(t *testing.T) {
	key := ClockKey{Index: 1, Generation: 1}
	r := NewResolver(AtClockTime(key, 4, 0))

	clocks := fakeClocks{t: ClockTime{Ticks: 4}, running: false, exists: true}
	if got := r.Resolve(Now{Clocks: clocks}); got != StartingNow {
		t.Fatalf("Resolve at target on a stopped clock = %v, want StartingNow", got)
	}
}

func TestStoppedClockBelowTargetHoldsIndefinitely(t *testing.T) {
	key := ClockKey{Index: 1, Generation: 1}
	r := NewResolver(AtClockTime(key, 10, 0))

	clocks := fakeClocks{t: ClockTime{Ticks: 3}, running: false, exists: true}
	for i := 0; i < 5; i++ {
		if got := r.Resolve(Now{Clocks: clocks}); got != NotYet {
			t.Fatalf("iteration %d: Resolve = %v, want NotYet", i, got)
		}
	}
}

func TestClockDestructionCancels(t *testing.T) {
	key := ClockKey{Index: 1, Generation: 1}
	r := NewResolver(AtClockTime(key, 10, 0))

	clocks := fakeClocks{exists: false}
	if got := r.Resolve(Now{Clocks: clocks}); got != Cancelled {
		t.Fatalf("Resolve after clock destroyed = %v, want Cancelled", got)
	}
	if got := r.Resolve(Now{Clocks: clocks}); got != Cancelled {
		t.Fatalf("Resolve stays Cancelled, got %v", got)
	}
}
