// SPDX-License-Identifier: EPL-2.0

package schedule

// Status is the per-block outcome of resolving a StartTime.
type Status int

const (
	// NotYet means the predicate has not fired and the action stays
	// pending.
	NotYet Status = iota
	// StartingNow means the predicate fires on this block.
	StartingNow
	// AlreadyDue means the predicate fired on an earlier block that the
	// owner failed to observe in time (equivalent to StartingNow for
	// every caller in this engine; kept distinct because §4.G names it).
	AlreadyDue
	// Cancelled means the clock the action depended on was destroyed
	// before the predicate fired; the owner must move to a terminal
	// state without audible playback.
	Cancelled
)

// ClockLookup is the minimal view of the clock arena a Resolver needs: the
// current reading of a clock, and whether it still exists. Defined here
// rather than depending on package clock to keep schedule a leaf package.
type ClockLookup interface {
	ClockTime(key ClockKey) (t ClockTime, running bool, exists bool)
}

// Now bundles the per-block context a Resolver needs to evaluate a
// StartTime: the engine's running sample position (for Delayed) and a
// way to read clocks (for AtClockTime).
type Now struct {
	SampleIndex int64
	SampleRate  int
	Clocks      ClockLookup
}

// Resolver holds the per-instance latched state a single StartTime needs
// across blocks: the computed deadline sample for Delayed, and whether an
// AtClockTime target has already been observed reached.
type Resolver struct {
	start StartTime

	deadlineSample int64
	haveDeadline   bool

	fired     bool
	cancelled bool
}

// NewResolver returns a Resolver for the given StartTime.
func NewResolver(start StartTime) *Resolver {
	return &Resolver{start: start}
}

// Resolve evaluates the StartTime against now and returns this block's
// Status. Once StartingNow/AlreadyDue/Cancelled has been returned, it is
// returned again on every subsequent call (the predicate does not
// un-fire).
func (r *Resolver) Resolve(now Now) Status {
	if r.cancelled {
		return Cancelled
	}
	if r.fired {
		return AlreadyDue
	}

	switch r.start.Kind {
	case KindImmediate:
		r.fired = true
		return StartingNow

	case KindDelayed:
		if !r.haveDeadline {
			samples := int64(r.start.Delay.Seconds() * float64(now.SampleRate))
			r.deadlineSample = now.SampleIndex + samples
			r.haveDeadline = true
		}
		if now.SampleIndex >= r.deadlineSample {
			r.fired = true
			return StartingNow
		}
		return NotYet

	case KindClockTime:
		if now.Clocks == nil {
			return NotYet
		}
		t, running, exists := now.Clocks.ClockTime(r.start.Clock)
		if !exists {
			r.cancelled = true
			return Cancelled
		}
		target := ClockTime{Ticks: r.start.Ticks, Fraction: r.start.Fraction}
		if t.Compare(target) >= 0 {
			r.fired = true
			return StartingNow
		}
		if !running {
			// A clock that has not yet reached the target holds the
			// action indefinitely without cancelling it (§4.G).
			return NotYet
		}
		return NotYet

	default:
		return NotYet
	}
}
