// SPDX-License-Identifier: EPL-2.0

package modulator

import "math"

// PositionSource supplies a track's current spatial position, keyed by
// whatever identifies a track to the caller. Defined as a function type so
// this leaf package never has to import the track package.
type PositionSource func() (pos [3]float32, ok bool)

// ListenerDistance samples the Euclidean distance between an emitter and
// a listener position each block. It is how Value::FromListenerDistance
// (§4.J "Spatial") is exposed as a linkable modulator input, e.g. for a
// filter's cutoff frequency modeling underwater occlusion.
type ListenerDistance struct {
	Emitter  PositionSource
	Listener PositionSource

	distance float64
}

// NewListenerDistance constructs a ListenerDistance modulator between
// emitter and listener position sources.
func NewListenerDistance(emitter, listener PositionSource) *ListenerDistance {
	return &ListenerDistance{Emitter: emitter, Listener: listener}
}

// Value implements Modulator; returns the last-computed distance.
func (d *ListenerDistance) Value() float64 {
	return d.distance
}

// Advance implements Modulator: recomputes the distance from the current
// emitter/listener positions. If either is unavailable the distance holds
// its last value.
func (d *ListenerDistance) Advance(float64) {
	e, ok1 := d.Emitter()
	l, ok2 := d.Listener()
	if !ok1 || !ok2 {
		return
	}
	dx := float64(e[0] - l[0])
	dy := float64(e[1] - l[1])
	dz := float64(e[2] - l[2])
	d.distance = math.Sqrt(dx*dx + dy*dy + dz*dz)
}
