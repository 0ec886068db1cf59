// SPDX-License-Identifier: EPL-2.0

// Package effect implements the per-block in-place buffer transforms a
// track's effect chain applies: filter, distortion, delay, reverb,
// compressor, EQ, volume, and pan. Every parameter is a tween.Parameter,
// so every effect setting is tweenable and linkable to a modulator.
package effect

import (
	"github.com/ik5/kira/arena"
	"github.com/ik5/kira/frame"
)

// Key identifies an Effect inside an Arena.
type Key = arena.Key

// Effect transforms a buffer of audio in place, once per block.
type Effect interface {
	// Process transforms buf in place.
	Process(buf []frame.Frame, info frame.BlockInfo)
	// OnSampleRateChanged recomputes any internal filter/delay-line state
	// for a new sample rate.
	OnSampleRateChanged(newRate int)
}

// Arena owns every live Effect for one engine instance. Effect chains on
// a track are stored as an ordered []Key resolved against this arena.
type Arena struct {
	effects *arena.Arena[Effect]
}

// NewArena constructs an Arena with room for capacity effects.
func NewArena(capacity int) *Arena {
	return &Arena{effects: arena.New[Effect](capacity)}
}

// Insert adds e and returns its key.
func (a *Arena) Insert(e Effect) (Key, error) {
	return a.effects.Insert(e)
}

// Remove retires the effect at key.
func (a *Arena) Remove(key Key) (Effect, bool) {
	return a.effects.Remove(key)
}

// Get resolves key to its Effect.
func (a *Arena) Get(key Key) (Effect, bool) {
	e, ok := a.effects.Get(key)
	if !ok {
		return nil, false
	}
	return *e, true
}
