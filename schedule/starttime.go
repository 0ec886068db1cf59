// SPDX-License-Identifier: EPL-2.0

// Package schedule resolves StartTime predicates ("now", "after a
// duration", "at a clock tick") once per processing block, independent of
// whatever it is that is waiting to start.
package schedule

import "time"

// ClockKey identifies the clock a StartTime is relative to. It mirrors
// arena.Key's shape without importing the arena package, since schedule is
// a leaf package other leaves (tween) also depend on.
type ClockKey struct {
	Index      uint16
	Generation uint16
}

// Kind tags which variant a StartTime holds.
type Kind int

const (
	KindImmediate Kind = iota
	KindDelayed
	KindClockTime
)

// StartTime is the tagged "when should this begin" predicate from §3.
type StartTime struct {
	Kind     Kind
	Delay    time.Duration // valid when Kind == KindDelayed
	Clock    ClockKey      // valid when Kind == KindClockTime
	Ticks    uint64        // valid when Kind == KindClockTime
	Fraction float64       // valid when Kind == KindClockTime, in [0,1)
}

// Immediate returns a StartTime that fires on the block it is evaluated.
func Immediate() StartTime {
	return StartTime{Kind: KindImmediate}
}

// Delayed returns a StartTime that fires once d has elapsed on the
// engine's sample clock, counted from the first block it is evaluated on.
func Delayed(d time.Duration) StartTime {
	return StartTime{Kind: KindDelayed, Delay: d}
}

// AtClockTime returns a StartTime that fires once the named clock reaches
// or passes (ticks, fraction).
func AtClockTime(clock ClockKey, ticks uint64, fraction float64) StartTime {
	return StartTime{Kind: KindClockTime, Clock: clock, Ticks: ticks, Fraction: fraction}
}
