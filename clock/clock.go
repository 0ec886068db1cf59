// SPDX-License-Identifier: EPL-2.0

package clock

import (
	"github.com/ik5/kira/rtcommand"
	"github.com/ik5/kira/schedule"
	"github.com/ik5/kira/tween"
)

// Clock is a tickable timebase. Tick indices are u64 with a sub-tick
// fraction in [0,1). It lives on the renderer side; the control side
// observes it through a triple-buffered Snapshot.
type Clock struct {
	ticks    uint64
	fraction float64
	speed    *tween.Parameter[Speed]
	running  bool

	snapshot *rtcommand.Snapshot[schedule.ClockTime]
}

// New constructs a stopped Clock at tick 0 with the given speed.
func New(speed Speed) *Clock {
	c := &Clock{
		speed:    tween.New(speed),
		snapshot: rtcommand.NewSnapshot(schedule.ClockTime{}),
	}
	return c
}

// Start sets the clock ticking. A new clock starts from tick 0; after Stop
// or Pause it continues from its preserved tick count. Tick 0 is visible
// immediately, so a StartTime targeting tick 0 on a new clock fires on the
// same block as Start (§4.E).
func (c *Clock) Start() {
	c.running = true
}

// Stop halts ticking and resets the sub-tick fraction to 0, preserving
// the tick count.
func (c *Clock) Stop() {
	c.running = false
	c.fraction = 0
}

// Pause suspends advancement, leaving ticks and fraction untouched.
func (c *Clock) Pause() {
	c.running = false
}

// Running reports whether the clock is currently advancing.
func (c *Clock) Running() bool {
	return c.running
}

// Speed exposes the underlying speed Parameter so callers can either set
// it immediately or schedule a full tween via Parameter.Set.
func (c *Clock) Speed() *tween.Parameter[Speed] {
	return c.speed
}

// Advance progresses the clock by blockSeconds, per §4.E: if running,
// advance fraction by blockSeconds * ticksPerSecond; while fraction >= 1,
// increment ticks and subtract 1.
func (c *Clock) Advance(blockSeconds float64, now schedule.Now, modulators tween.ModulatorReader) {
	c.speed.Advance(blockSeconds, now, modulators)

	if c.running {
		c.fraction += blockSeconds * c.speed.Value().TicksPerSecondValue()
		for c.fraction >= 1 {
			c.ticks++
			c.fraction -= 1
		}
	}

	c.snapshot.Publish(schedule.ClockTime{Ticks: c.ticks, Fraction: c.fraction})
}

// Time returns the clock's current reading directly (renderer-side use,
// e.g. feeding schedule.Resolver without going through the snapshot).
func (c *Clock) Time() schedule.ClockTime {
	return schedule.ClockTime{Ticks: c.ticks, Fraction: c.fraction}
}

// Snapshot returns the triple-buffered reading the control side observes.
func (c *Clock) Snapshot() schedule.ClockTime {
	return c.snapshot.Load()
}
