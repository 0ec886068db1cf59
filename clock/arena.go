// SPDX-License-Identifier: EPL-2.0

package clock

import (
	"github.com/ik5/kira/arena"
	"github.com/ik5/kira/schedule"
)

// Key identifies a Clock inside an Arena.
type Key = arena.Key

// Arena owns every live Clock for one engine instance and doubles as a
// schedule.ClockLookup so the scheduler can resolve AtClockTime predicates
// without depending on this package.
type Arena struct {
	clocks *arena.Arena[*Clock]
}

// NewArena constructs an Arena with room for capacity clocks.
func NewArena(capacity int) *Arena {
	return &Arena{clocks: arena.New[*Clock](capacity)}
}

// Insert adds c and returns its key.
func (a *Arena) Insert(c *Clock) (Key, error) {
	return a.clocks.Insert(c)
}

// Remove retires the clock at key. Any StartTime resolver waiting on it
// observes Cancelled on its next Resolve via ClockTime's exists=false.
func (a *Arena) Remove(key Key) (*Clock, bool) {
	return a.clocks.Remove(key)
}

// Get resolves key to its Clock.
func (a *Arena) Get(key Key) (*Clock, bool) {
	c, ok := a.clocks.Get(key)
	if !ok {
		return nil, false
	}
	return *c, true
}

// Each calls fn for every live clock.
func (a *Arena) Each(fn func(Key, *Clock)) {
	a.clocks.Each(func(k arena.Key, c **Clock) { fn(k, *c) })
}

// ClockTime implements schedule.ClockLookup.
func (a *Arena) ClockTime(key schedule.ClockKey) (schedule.ClockTime, bool, bool) {
	c, ok := a.Get(arena.Key{Index: key.Index, Generation: key.Generation})
	if !ok {
		return schedule.ClockTime{}, false, false
	}
	return c.Time(), c.Running(), true
}
