// SPDX-License-Identifier: EPL-2.0

package track

import (
	"github.com/ik5/kira/arena"
	"github.com/ik5/kira/effect"
	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/sound"
	"github.com/ik5/kira/tween"
)

// MainKey is the implicit main track: reserved at index 0, never freed.
var MainKey = Key{Index: 0, Generation: 0}

// SoundLookup resolves a sound.Key to the live sound.Sound instance owned
// by the renderer. The renderer's sound arena satisfies this.
type SoundLookup interface {
	Get(key sound.Key) (sound.Sound, bool)
}

// EffectLookup resolves an effect.Key to the live effect.Effect instance.
type EffectLookup interface {
	Get(key effect.Key) (effect.Effect, bool)
}

// Graph owns every Track and the cached topological order Process walks.
// Structural edits (AddSubTrack, AddRoute, RemoveRoute, RemoveTrack) rebuild the cached
// order; Process never does, keeping the realtime path allocation-free.
type Graph struct {
	tracks *arena.Arena[*Track]
	order  []Key // cached post-order traversal, leaves first

	aux []frame.Frame // scratch buffer for per-sound rendering, grown not shrunk
}

// NewGraph constructs a Graph with room for capacity tracks (including
// MAIN) and inserts MAIN as the first (index 0) track.
func NewGraph(capacity int) *Graph {
	g := &Graph{tracks: arena.New[*Track](capacity)}
	main := NewTrack()
	main.Key = MainKey
	key, err := g.tracks.Insert(main)
	if err != nil || key != MainKey {
		panic("track: MAIN track did not land at index 0; arena free-list invariant broke")
	}
	g.rebuildOrder()
	return g
}

// Get resolves key to its Track.
func (g *Graph) Get(key Key) (*Track, bool) {
	t, ok := g.tracks.Get(key)
	if !ok {
		return nil, false
	}
	return *t, true
}

// AddSubTrack inserts a new track parented to parent and rebuilds the
// cached traversal order.
func (g *Graph) AddSubTrack(parent Key) (Key, error) {
	if _, ok := g.tracks.Get(parent); !ok {
		return Key{}, ErrUnknownTrack
	}
	t := NewTrack()
	t.Parent = parent
	key, err := g.tracks.Insert(t)
	if err != nil {
		return Key{}, ErrCapacityExceeded
	}
	t.Key = key
	g.rebuildOrder()
	return key, nil
}

// RemoveTrack retires a non-MAIN track. Fails if key has children or live
// routes pointing at it; the caller must detach those first.
func (g *Graph) RemoveTrack(key Key) error {
	if key == MainKey {
		return ErrUnknownTrack
	}
	if _, ok := g.tracks.Get(key); !ok {
		return ErrUnknownTrack
	}
	hasDependents := false
	g.tracks.Each(func(k Key, t **Track) {
		if k == key {
			return
		}
		tr := *t
		if tr.Parent == key {
			hasDependents = true
		}
		if _, routed := tr.Routes[key]; routed {
			hasDependents = true
		}
	})
	if hasDependents {
		return ErrUnknownTrack
	}
	g.tracks.Remove(key)
	g.rebuildOrder()
	return nil
}

// AddRoute adds (or replaces) a route from src to dest with the given
// initial weight. Rejects the edit if it would create a cycle.
func (g *Graph) AddRoute(src, dest Key, weightDB frame.Decibels) error {
	srcTrack, ok := g.tracks.Get(src)
	if !ok {
		return ErrUnknownTrack
	}
	if _, ok := g.tracks.Get(dest); !ok {
		return ErrUnknownTrack
	}
	if g.wouldCycle(src, dest) {
		return ErrCycle
	}
	if existing, ok := (*srcTrack).Routes[dest]; ok {
		existing.SetImmediate(weightDB)
		return nil
	}
	(*srcTrack).Routes[dest] = tween.New(weightDB)
	g.rebuildOrder()
	return nil
}

// RemoveRoute removes any route from src to dest.
func (g *Graph) RemoveRoute(src, dest Key) {
	if srcTrack, ok := g.tracks.Get(src); ok {
		delete((*srcTrack).Routes, dest)
		g.rebuildOrder()
	}
}

// wouldCycle reports whether adding an edge src->dest would create a
// cycle, i.e. whether dest can already reach src via parent or route
// edges.
func (g *Graph) wouldCycle(src, dest Key) bool {
	if src == dest {
		return true
	}
	visited := make(map[Key]bool)
	var reaches func(from, target Key) bool
	reaches = func(from, target Key) bool {
		if from == target {
			return true
		}
		if visited[from] {
			return false
		}
		visited[from] = true
		t, ok := g.tracks.Get(from)
		if !ok {
			return false
		}
		if (*t).Parent != (Key{}) && (*t).Parent != from {
			if reaches((*t).Parent, target) {
				return true
			}
		}
		for r := range (*t).Routes {
			if reaches(r, target) {
				return true
			}
		}
		return false
	}
	return reaches(dest, src)
}

// effectivePaused reports whether key, or any ancestor up its Parent
// chain (including MAIN), has PausedSubtree set. A track's own sounds
// must freeze whenever a paused ancestor silences its contribution,
// not just when it is the one directly marked paused (see Process).
func (g *Graph) effectivePaused(key Key) bool {
	for {
		tp, ok := g.tracks.Get(key)
		if !ok {
			return false
		}
		t := *tp
		if t.PausedSubtree {
			return true
		}
		if t.Parent == key {
			return false // reached MAIN
		}
		key = t.Parent
	}
}

// rebuildOrder recomputes the post-order traversal (children, including
// routed predecessors, before parents) and caches it. Called only from
// control-side structural edits, never from Process.
func (g *Graph) rebuildOrder() {
	visited := make(map[Key]bool)
	order := make([]Key, 0, g.tracks.Len())

	var visit func(key Key)
	visit = func(key Key) {
		if visited[key] {
			return
		}
		visited[key] = true
		if _, ok := g.tracks.Get(key); !ok {
			return
		}
		// Children (tracks parented to this one) and routed predecessors
		// (tracks that route into this one) must both be processed first.
		g.tracks.Each(func(childKey Key, child **Track) {
			if childKey != key && (*child).Parent == key {
				visit(childKey)
			}
		})
		for predKey := range g.routesInto(key) {
			visit(predKey)
		}
		order = append(order, key)
	}

	g.tracks.Each(func(key Key, _ **Track) {
		visit(key)
	})

	g.order = order
}

func (g *Graph) routesInto(dest Key) map[Key]*Track {
	result := make(map[Key]*Track)
	g.tracks.Each(func(key Key, t **Track) {
		if _, ok := (*t).Routes[dest]; ok {
			result[key] = *t
		}
	})
	return result
}
