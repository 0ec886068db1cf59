// SPDX-License-Identifier: EPL-2.0

package clock

import (
	"testing"

	"github.com/ik5/kira/schedule"
)

func TestTickZeroVisibleOnStart(t *testing.T) {
	c := New(TicksPerSecond(1))
	c.Start()
	if c.Time().Ticks != 0 {
		t.Fatalf("Time().Ticks = %d, want 0 before any Advance", c.Time().Ticks)
	}
}

func TestAdvanceIncrementsTicks(t *testing.T) {
	c := New(TicksPerSecond(2))
	c.Start()
	now := schedule.Now{}
	c.Advance(0.5, now, nil) // 1 tick worth
	if c.Time().Ticks != 1 {
		t.Fatalf("Ticks = %d, want 1", c.Time().Ticks)
	}
	c.Advance(0.25, now, nil)
	if c.Time().Ticks != 1 || c.Time().Fraction <= 0 {
		t.Fatalf("Time = %+v, want ticks=1 with a positive fraction", c.Time())
	}
}

func TestStopResetsFractionKeepsTicks(t *testing.T) {
	c := New(TicksPerSecond(2))
	c.Start()
	c.Advance(0.75, schedule.Now{}, nil) // 1 tick + 0.5 fraction
	c.Stop()
	if c.Time().Ticks != 1 {
		t.Fatalf("Ticks after Stop = %d, want 1", c.Time().Ticks)
	}
	if c.Time().Fraction != 0 {
		t.Fatalf("Fraction after Stop = %v, want 0", c.Time().Fraction)
	}
}

func TestPauseSuspendsAdvancement(t *testing.T) {
	c := New(TicksPerSecond(10))
	c.Start()
	c.Advance(0.1, schedule.Now{}, nil)
	before := c.Time()
	c.Pause()
	c.Advance(1, schedule.Now{}, nil)
	if c.Time() != before {
		t.Fatalf("time advanced while paused: %+v -> %+v", before, c.Time())
	}
}

func TestClockEquivalenceAcrossUnits(t *testing.T) {
	a := New(TicksPerMinute(120))
	b := New(TicksPerSecond(2))
	a.Start()
	b.Start()

	now := schedule.Now{}
	for i := 0; i < 100; i++ {
		a.Advance(0.017, now, nil)
		b.Advance(0.017, now, nil)
		if a.Time() != b.Time() {
			t.Fatalf("step %d: TicksPerMinute(120) = %+v, TicksPerSecond(2) = %+v", i, a.Time(), b.Time())
		}
	}
}

func TestArenaClockTimeReflectsDestruction(t *testing.T) {
	arena := NewArena(4)
	key, err := arena.Insert(New(TicksPerSecond(1)))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	sk := schedule.ClockKey{Index: key.Index, Generation: key.Generation}
	if _, _, exists := arena.ClockTime(sk); !exists {
		t.Fatal("expected clock to exist before removal")
	}

	arena.Remove(key)
	if _, _, exists := arena.ClockTime(sk); exists {
		t.Fatal("expected clock to no longer exist after removal")
	}
}
