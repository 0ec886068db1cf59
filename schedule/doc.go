// SPDX-License-Identifier: EPL-2.0

// Package schedule resolves the three StartTime predicates named in the
// data model — Immediate, Delayed, and AtClockTime — into a per-block
// Status without the caller needing to know which predicate it holds.
//
//	r := schedule.NewResolver(schedule.Delayed(2 * time.Second))
//	switch r.Resolve(now) {
//	case schedule.StartingNow:
//	    // begin playback this block
//	case schedule.Cancelled:
//	    // the clock it depended on was destroyed; go terminal silently
//	}
package schedule
