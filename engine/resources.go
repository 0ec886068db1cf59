// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"github.com/ik5/kira/arena"
	"github.com/ik5/kira/rtcommand"
	"github.com/ik5/kira/sound"
	"github.com/ik5/kira/track"
)

// soundEntry is everything the renderer keeps for one live sound: the
// realtime implementation, the track it mixes into, and the command ring
// plus observation snapshots its Handle was built against.
type soundEntry struct {
	sound sound.Sound
	track track.Key

	commands *rtcommand.Ring[rtcommand.Command]
	state    *rtcommand.Snapshot[sound.PlaybackState]
	position *rtcommand.Snapshot[float64]
}

// soundLookup adapts the renderer's sound arena to track.SoundLookup so
// the track package never needs to import sound's concrete arena type.
type soundLookup struct {
	arena *arena.Arena[*soundEntry]
}

func (l soundLookup) Get(key sound.Key) (sound.Sound, bool) {
	e, ok := l.arena.Get(key)
	if !ok {
		return nil, false
	}
	return (*e).sound, true
}
