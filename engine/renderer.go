// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"sync"

	"github.com/ik5/kira/arena"
	"github.com/ik5/kira/clock"
	"github.com/ik5/kira/effect"
	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/modulator"
	"github.com/ik5/kira/rtcommand"
	"github.com/ik5/kira/schedule"
	"github.com/ik5/kira/sound"
	"github.com/ik5/kira/track"
)

// Renderer owns every resource arena and the mixer graph, and is driven
// once per block by whatever Backend is in use. Structural mutation
// (inserting/removing a resource, editing the graph) is synchronized with
// Render by a single mutex: these calls are rare relative to block
// processing, so one coarse lock is simpler than the fully lock-free
// inbox-ring scheme §4.K sketches, at the cost of Render occasionally
// blocking on a control-side mutation. Each sound's own high-frequency
// Pause/Resume/Stop traffic still goes through its dedicated lock-free
// ring (see soundEntry), and a sound's state and position reads stay
// wait-free via rtcommand.Snapshot. Parameter edits and clock reads
// (ClockHandle.Time) take the same mutex as resource creation and
// topology edits. See DESIGN.md.
type Renderer struct {
	mu sync.Mutex

	sampleRate  int
	sampleIndex int64

	sounds *arena.Arena[*soundEntry]
	lookup soundLookup
	done   []sound.Key // reapFinished scratch, grown not shrunk

	graph   *track.Graph
	clocks  *clock.Arena
	mods    *modulator.Arena
	effects *effect.Arena
}

func newRenderer(settings Settings) *Renderer {
	sounds := arena.New[*soundEntry](settings.Capacities.Sounds)
	r := &Renderer{
		sampleRate: settings.SampleRate,
		sounds:     sounds,
		graph:      track.NewGraph(settings.Capacities.SubTracks + 1), // +1 for MAIN
		clocks:     clock.NewArena(settings.Capacities.Clocks),
		mods:       modulator.NewArena(settings.Capacities.Modulators),
		effects:    effect.NewArena(settings.Capacities.Effects),
	}
	r.lookup = soundLookup{arena: sounds}
	return r
}

// Render fills out with the next block of audio, implementing §4.K's
// five-step pseudocode as five private phases.
func (r *Renderer) Render(out []frame.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(out)
	if n == 0 {
		return
	}
	if r.sampleRate <= 0 {
		clear(out)
		return
	}

	blockSeconds := float64(n) / float64(r.sampleRate)
	now := schedule.Now{SampleIndex: r.sampleIndex, SampleRate: r.sampleRate, Clocks: r.clocks}
	info := frame.BlockInfo{SampleRate: r.sampleRate, BlockSeconds: blockSeconds, Now: now, Modulators: r.mods}

	r.drainCommands()
	r.acceptNewResources()
	r.advance(blockSeconds)
	r.processGraph(out, info)
	r.reapFinished()

	r.sampleIndex += int64(n)
}

// drainCommands applies every queued Pause/Resume/Stop command against
// each live sound, bounded by that sound's own ring capacity.
func (r *Renderer) drainCommands() {
	r.sounds.Each(func(_ arena.Key, ep **soundEntry) {
		e := *ep
		if e.commands == nil {
			return
		}
		transport, ok := e.sound.(sound.Transport)
		if !ok {
			return
		}
		e.commands.Drain(func(cmd rtcommand.Command) {
			sound.Dispatch(transport, cmd)
		})
	})
}

// acceptNewResources is a no-op under the synchronous-insert simplification
// above: AudioManager inserts new resources directly (under r.mu) rather
// than queuing them here, so by the time Render observes them they are
// already live. Kept as its own phase to preserve the pseudocode's shape
// and as the natural seam if a lock-free inbox ring replaces direct
// insertion later.
func (r *Renderer) acceptNewResources() {}

// advance steps every clock and modulator by one block.
func (r *Renderer) advance(blockSeconds float64) {
	now := schedule.Now{SampleIndex: r.sampleIndex, SampleRate: r.sampleRate, Clocks: r.clocks}
	r.mods.Each(blockSeconds)
	r.clocks.Each(func(_ clock.Key, c *clock.Clock) {
		c.Advance(blockSeconds, now, r.mods)
	})
}

// processGraph walks the mixer graph once, writing MAIN's output to out.
func (r *Renderer) processGraph(out []frame.Frame, info frame.BlockInfo) {
	r.graph.Process(out, info, r.lookup, r.effects)
}

// reapFinished publishes every live sound's latest state/position, then
// detaches and removes any sound that finished this block.
func (r *Renderer) reapFinished() {
	r.done = r.done[:0]
	r.sounds.Each(func(k arena.Key, ep **soundEntry) {
		e := *ep
		if e.state != nil {
			e.state.Publish(e.sound.State())
		}
		if e.position != nil {
			if p, ok := e.sound.(sound.Positioned); ok {
				e.position.Publish(p.Position())
			}
		}
		if e.sound.Finished() {
			r.done = append(r.done, k)
		}
	})
	for _, k := range r.done {
		e, ok := r.sounds.Remove(k)
		if !ok {
			continue
		}
		if t, ok := r.graph.Get(e.track); ok {
			delete(t.Sounds, k)
		}
	}
}
