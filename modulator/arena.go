// SPDX-License-Identifier: EPL-2.0

package modulator

import (
	"github.com/ik5/kira/arena"
	"github.com/ik5/kira/tween"
)

// Key identifies a Modulator inside an Arena.
type Key = arena.Key

// Arena owns every live Modulator and doubles as a tween.ModulatorReader
// so Parameter.Advance can resolve a link without depending on this
// package.
type Arena struct {
	mods *arena.Arena[Modulator]
}

// NewArena constructs an Arena with room for capacity modulators.
func NewArena(capacity int) *Arena {
	return &Arena{mods: arena.New[Modulator](capacity)}
}

// Insert adds m and returns its key.
func (a *Arena) Insert(m Modulator) (Key, error) {
	return a.mods.Insert(m)
}

// Remove retires the modulator at key.
func (a *Arena) Remove(key Key) (Modulator, bool) {
	return a.mods.Remove(key)
}

// Each advances every live modulator by blockSeconds.
func (a *Arena) Each(blockSeconds float64) {
	a.mods.Each(func(_ arena.Key, m *Modulator) { (*m).Advance(blockSeconds) })
}

// ModulatorValue implements tween.ModulatorReader.
func (a *Arena) ModulatorValue(id tween.ModulatorID) (float64, bool) {
	m, ok := a.mods.Get(arena.Key{Index: id.Index, Generation: id.Generation})
	if !ok {
		return 0, false
	}
	return (*m).Value(), true
}
