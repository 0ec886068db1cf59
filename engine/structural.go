// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"errors"

	"github.com/ik5/kira/clock"
	"github.com/ik5/kira/effect"
	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/modulator"
	"github.com/ik5/kira/schedule"
	"github.com/ik5/kira/sound"
	"github.com/ik5/kira/track"
)

// The methods in this file are the mutex-protected structural surface
// Render's lock also guards (see Renderer's doc comment): resource
// creation/removal and graph/clock/parameter edits initiated from the
// control side.

func (r *Renderer) insertSound(e *soundEntry, trackKey track.Key) (sound.Key, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.graph.Get(trackKey)
	if !ok {
		return sound.Key{}, ErrInvalidConfiguration
	}
	key, err := r.sounds.Insert(e)
	if err != nil {
		return sound.Key{}, ErrCapacityExceeded
	}
	e.track = trackKey
	t.Sounds[key] = struct{}{}
	return key, nil
}

func (r *Renderer) addSubTrack(parent track.Key) (track.Key, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, err := r.graph.AddSubTrack(parent)
	if err != nil {
		return track.Key{}, translateTrackErr(err)
	}
	return key, nil
}

func (r *Renderer) removeTrack(key track.Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return translateTrackErr(r.graph.RemoveTrack(key))
}

func (r *Renderer) addRoute(src, dest track.Key, weightDB frame.Decibels) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return translateTrackErr(r.graph.AddRoute(src, dest, weightDB))
}

func (r *Renderer) removeRoute(src, dest track.Key) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.graph.RemoveRoute(src, dest)
}

func (r *Renderer) setSubtreePaused(key track.Key, paused bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.graph.Get(key)
	if !ok {
		return ErrInvalidConfiguration
	}
	t.PausedSubtree = paused
	return nil
}

func (r *Renderer) setTrackVolume(key track.Key, target frame.Decibels, start schedule.StartTime, tw frame.Tween) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.graph.Get(key)
	if !ok {
		return ErrInvalidConfiguration
	}
	t.Volume.Set(target, start, tw)
	return nil
}

func (r *Renderer) attachEffect(key track.Key, ek effect.Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.graph.Get(key)
	if !ok {
		return ErrInvalidConfiguration
	}
	t.Effects = append(t.Effects, ek)
	return nil
}

func (r *Renderer) addListener(pos [3]float32, orientation [4]float32) (track.Key, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, err := r.graph.AddSubTrack(track.MainKey)
	if err != nil {
		return track.Key{}, translateTrackErr(err)
	}
	t, _ := r.graph.Get(key)
	t.Spatial = &track.SpatialProps{
		Position:    pos,
		Orientation: orientation,
		IsListener:  true,
		ListenerRef: key,
		DistanceAttenuation: track.Curve{
			Keys: []track.CurveKey{{At: 0, Value: 1}, {At: 1, Value: 1}},
		},
	}
	return key, nil
}

func (r *Renderer) addEffect(e effect.Effect) (effect.Key, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key, err := r.effects.Insert(e)
	if err != nil {
		return effect.Key{}, ErrCapacityExceeded
	}
	return key, nil
}

func (r *Renderer) removeEffect(key effect.Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.effects.Remove(key); !ok {
		return ErrInvalidConfiguration
	}
	return nil
}

func (r *Renderer) addClock(speed clock.Speed) (clock.Key, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key, err := r.clocks.Insert(clock.New(speed))
	if err != nil {
		return clock.Key{}, ErrCapacityExceeded
	}
	return key, nil
}

func (r *Renderer) removeClock(key clock.Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clocks.Remove(key); !ok {
		return ErrInvalidConfiguration
	}
	return nil
}

func (r *Renderer) startClock(key clock.Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clocks.Get(key)
	if !ok {
		return ErrInvalidConfiguration
	}
	c.Start()
	return nil
}

func (r *Renderer) stopClock(key clock.Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clocks.Get(key)
	if !ok {
		return ErrInvalidConfiguration
	}
	c.Stop()
	return nil
}

func (r *Renderer) pauseClock(key clock.Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clocks.Get(key)
	if !ok {
		return ErrInvalidConfiguration
	}
	c.Pause()
	return nil
}

func (r *Renderer) setClockSpeed(key clock.Key, target clock.Speed, start schedule.StartTime, tw frame.Tween) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clocks.Get(key)
	if !ok {
		return ErrInvalidConfiguration
	}
	c.Speed().Set(target, start, tw)
	return nil
}

func (r *Renderer) clockTime(key clock.Key) schedule.ClockTime {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clocks.Get(key)
	if !ok {
		return schedule.ClockTime{}
	}
	return c.Snapshot()
}

func (r *Renderer) addModulator(m modulator.Modulator) (modulator.Key, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key, err := r.mods.Insert(m)
	if err != nil {
		return modulator.Key{}, ErrCapacityExceeded
	}
	return key, nil
}

func (r *Renderer) removeModulator(key modulator.Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.mods.Remove(key); !ok {
		return ErrInvalidConfiguration
	}
	return nil
}

func translateTrackErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, track.ErrCycle):
		return ErrInvalidConfiguration
	case errors.Is(err, track.ErrUnknownTrack):
		return ErrInvalidConfiguration
	case errors.Is(err, track.ErrCapacityExceeded):
		return ErrCapacityExceeded
	default:
		return err
	}
}
