// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"github.com/ik5/kira/clock"
	"github.com/ik5/kira/effect"
	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/modulator"
	"github.com/ik5/kira/schedule"
	"github.com/ik5/kira/track"
)

// TrackHandle is the control-side reference to a sub-track. Unlike
// sound.Handle it has no dedicated ring: track edits are rare enough that
// routing them through Renderer's structural mutex (see structural.go) is
// simpler than giving every track its own command channel.
type TrackHandle struct {
	Key      track.Key
	renderer *Renderer
}

// AddRoute routes this track's output into dest, weighted by weightDB.
func (h TrackHandle) AddRoute(dest TrackHandle, weightDB frame.Decibels) error {
	return h.renderer.addRoute(h.Key, dest.Key, weightDB)
}

// RemoveRoute removes any route from this track into dest.
func (h TrackHandle) RemoveRoute(dest TrackHandle) {
	h.renderer.removeRoute(h.Key, dest.Key)
}

// SetVolume schedules this track's volume to tween to target starting at
// start.
func (h TrackHandle) SetVolume(target frame.Decibels, start schedule.StartTime, tw frame.Tween) error {
	return h.renderer.setTrackVolume(h.Key, target, start, tw)
}

// PauseSubtree silences this track and every descendant while leaving
// their playhead positions untouched.
func (h TrackHandle) PauseSubtree() error {
	return h.renderer.setSubtreePaused(h.Key, true)
}

// ResumeSubtree reverses PauseSubtree.
func (h TrackHandle) ResumeSubtree() error {
	return h.renderer.setSubtreePaused(h.Key, false)
}

// AttachEffect appends effectKey to this track's effect chain.
func (h TrackHandle) AttachEffect(e EffectHandle) error {
	return h.renderer.attachEffect(h.Key, e.Key)
}

// Remove retires this track. Fails if it still has children or routes
// pointing at it.
func (h TrackHandle) Remove() error {
	return h.renderer.removeTrack(h.Key)
}

// EffectHandle is the control-side reference to an effect living in the
// renderer's effect arena.
type EffectHandle struct {
	Key      effect.Key
	renderer *Renderer
}

// Remove retires this effect.
func (h EffectHandle) Remove() error {
	return h.renderer.removeEffect(h.Key)
}

// ClockHandle is the control-side reference to a clock. Time() is
// synchronized by the same structural mutex as every other control call
// rather than reading Clock's own lock-free Snapshot directly, keeping a
// single concurrency story for this package (see Renderer's doc comment).
type ClockHandle struct {
	Key      clock.Key
	renderer *Renderer
}

// Start sets the clock ticking: from tick 0 for a new clock, from its
// preserved tick count after Stop or Pause.
func (h ClockHandle) Start() error { return h.renderer.startClock(h.Key) }

// Stop halts the clock, resetting its sub-tick fraction but not its tick
// count.
func (h ClockHandle) Stop() error { return h.renderer.stopClock(h.Key) }

// Pause suspends the clock without resetting anything.
func (h ClockHandle) Pause() error { return h.renderer.pauseClock(h.Key) }

// SetSpeed schedules the clock's tick rate to tween to target.
func (h ClockHandle) SetSpeed(target clock.Speed, start schedule.StartTime, tw frame.Tween) error {
	return h.renderer.setClockSpeed(h.Key, target, start, tw)
}

// Time returns the clock's current (ticks, fraction) reading.
func (h ClockHandle) Time() schedule.ClockTime {
	return h.renderer.clockTime(h.Key)
}

// Remove retires the clock. Any StartTime waiting on it observes
// Cancelled on its next resolve.
func (h ClockHandle) Remove() error { return h.renderer.removeClock(h.Key) }

// ModulatorHandle is the control-side reference to a modulator, used
// mainly to build a tween.ModulatorID for Parameter.LinkTo.
type ModulatorHandle struct {
	Key      modulator.Key
	renderer *Renderer
}

// ID returns the tween.ModulatorID a Parameter links against.
func (h ModulatorHandle) ID() frame.ModulatorID {
	return frame.ModulatorID{Index: h.Key.Index, Generation: h.Key.Generation}
}

// Remove retires the modulator.
func (h ModulatorHandle) Remove() error { return h.renderer.removeModulator(h.Key) }

// ListenerHandle is the control-side reference to a listener track,
// passed as the ListenerRef a spatialized emitter track points at.
type ListenerHandle struct {
	Key      track.Key
	renderer *Renderer
}

// Remove retires the listener track, same rules as TrackHandle.Remove.
// Emitters that still hold its Key as SpatialProps.ListenerRef will fail
// to resolve a listener and stop spatializing; detach them first if that
// isn't the intent.
func (h ListenerHandle) Remove() error { return h.renderer.removeTrack(h.Key) }
