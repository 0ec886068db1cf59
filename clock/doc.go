// SPDX-License-Identifier: EPL-2.0

// Package clock implements the engine's tickable timebase. A Clock
// advances once per block while running, publishing a triple-buffered
// (ticks, fraction) snapshot the control side can read wait-free:
//
//	c := clock.New(clock.TicksPerSecond(2))
//	c.Start()
//	c.Advance(blockSeconds, now, nil)
//	t := c.Snapshot()
package clock
