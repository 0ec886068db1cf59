// SPDX-License-Identifier: EPL-2.0

// Package track implements the mixer graph: tracks arranged in a DAG,
// each summing its children (weighted by route), its own attached sounds,
// and its effect chain, before being consumed by its parent or (for the
// reserved MAIN track) written to the device.
package track

import (
	"github.com/ik5/kira/arena"
	"github.com/ik5/kira/effect"
	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/sound"
	"github.com/ik5/kira/tween"
)

// Key identifies a Track inside a Graph.
type Key = arena.Key

// Curve is a small keyframe lookup table, linearly interpolated between
// neighboring keys. It is POD (no closures) so it can cross the command
// ring by value.
type Curve struct {
	Keys []CurveKey
}

// CurveKey is one (input, output) pair in a Curve.
type CurveKey struct {
	At    float64
	Value float64
}

// Evaluate linearly interpolates c at x, clamping to the curve's domain.
func (c Curve) Evaluate(x float64) float64 {
	if len(c.Keys) == 0 {
		return 0
	}
	if x <= c.Keys[0].At {
		return c.Keys[0].Value
	}
	last := c.Keys[len(c.Keys)-1]
	if x >= last.At {
		return last.Value
	}
	for i := 1; i < len(c.Keys); i++ {
		if x <= c.Keys[i].At {
			prev := c.Keys[i-1]
			span := c.Keys[i].At - prev.At
			if span == 0 {
				return prev.Value
			}
			t := (x - prev.At) / span
			return prev.Value + t*(c.Keys[i].Value-prev.Value)
		}
	}
	return last.Value
}

// SpatialProps marks a track as spatialized: its output is attenuated and
// panned relative to a listener track's position.
type SpatialProps struct {
	Position               [3]float32
	ListenerRef            Key
	SpatializationStrength float64
	DistanceAttenuation    Curve
	// IsListener marks this track as a listener position/orientation
	// source rather than (or in addition to) an emitter.
	IsListener  bool
	Orientation [4]float32 // quaternion, identity {0,0,0,1} if unused
}

// Track is one node in the mixer graph.
type Track struct {
	Key    Key
	Parent Key

	// Routes maps a destination track to the route's weight, applied as
	// Routes[dest].Value().Amplitude() * trackOutput before summing into
	// dest's pre-effect input.
	Routes map[Key]*tween.Parameter[frame.Decibels]

	Volume  *tween.Parameter[frame.Decibels]
	Effects []effect.Key
	Sounds  map[sound.Key]struct{}

	Spatial *SpatialProps

	PausedSubtree              bool
	PersistUntilSoundsFinished bool

	buf []frame.Frame // block-sized working buffer, grown not shrunk
}

// NewTrack constructs a Track with no routes, unity volume, and no
// effects or sounds.
func NewTrack() *Track {
	return &Track{
		Routes: make(map[Key]*tween.Parameter[frame.Decibels]),
		Volume: tween.New(frame.Decibels(0)),
		Sounds: make(map[sound.Key]struct{}),
	}
}

func (t *Track) ensureBuf(n int) []frame.Frame {
	if cap(t.buf) < n {
		newCap := cap(t.buf) * 2
		if newCap < n {
			newCap = n
		}
		t.buf = make([]frame.Frame, newCap)
	} else if len(t.buf) != n {
		t.buf = t.buf[:n]
	}
	clear(t.buf)
	return t.buf
}
