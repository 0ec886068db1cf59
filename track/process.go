// SPDX-License-Identifier: EPL-2.0

package track

import (
	"math"

	"github.com/ik5/kira/frame"
)

// Process walks the cached post-order traversal once, implementing §4.J's
// eight steps per track. sounds and effects resolve the renderer-owned
// instances a track references by key. out receives MAIN's final buffer.
func (g *Graph) Process(out []frame.Frame, info frame.BlockInfo, sounds SoundLookup, effects EffectLookup) {
	n := len(out)
	soundBuf := g.ensureAux(n)

	for _, key := range g.order {
		tp, ok := g.tracks.Get(key)
		if !ok {
			continue
		}
		t := *tp
		buf := t.ensureBuf(n)

		// Step 1: a paused track stops absorbing its subtree's output (step
		// 3), so the whole subtree goes silent at this track's level. A
		// track reached only via a cross-graph Route (not a parent/child
		// edge) isn't part of this subtree and still passes through
		// untouched. Freezing sounds (step 4) uses the ancestor-inclusive
		// effectivePaused instead of this flag, since descendants several
		// levels down also need to freeze even though nothing marks them
		// paused directly.
		paused := t.PausedSubtree

		// Step 2: buf was already zeroed by ensureBuf/clear.

		// Step 3: sum children's outputs scaled by route weight.
		g.tracks.Each(func(childKey Key, childP **Track) {
			if childKey == key {
				return
			}
			child := *childP
			var weightAmp float64
			if child.Parent == key {
				if paused {
					return
				}
				weightAmp = 1
			} else if w, routed := child.Routes[key]; routed {
				w.Advance(info.BlockSeconds, info.Now, info.Modulators)
				weightAmp = w.Value().Amplitude()
			} else {
				return
			}
			for i := 0; i < n; i++ {
				buf[i] = buf[i].Add(child.buf[i].Scale(weightAmp))
			}
		})

		// Step 4: process this track's own sounds into soundBuf and add.
		// Gated on the effective (ancestor-inclusive) paused state, not
		// just this track's own flag: a track several levels under a
		// paused ancestor must freeze its sounds' playheads too, even
		// though nothing marks it paused directly.
		if !g.effectivePaused(key) && sounds != nil {
			for sk := range t.Sounds {
				s, ok := sounds.Get(sk)
				if !ok {
					continue
				}
				s.OnStartProcessing()
				s.Process(soundBuf[:n], info)
				for i := 0; i < n; i++ {
					buf[i] = buf[i].Add(soundBuf[i])
				}
			}
		}

		// Step 5: effect chain, in order.
		if effects != nil {
			for _, ek := range t.Effects {
				e, ok := effects.Get(ek)
				if !ok {
					continue
				}
				e.Process(buf, info)
			}
		}

		// Step 6: track volume.
		t.Volume.Advance(info.BlockSeconds, info.Now, info.Modulators)
		amp := t.Volume.Value().Amplitude()
		for i := 0; i < n; i++ {
			buf[i] = buf[i].Scale(amp)
		}

		// Step 7: spatialization.
		if t.Spatial != nil {
			g.applySpatial(t, buf, n)
		}
	}

	// Step 8: MAIN's buffer is the renderer's device output.
	main, ok := g.tracks.Get(MainKey)
	if !ok {
		clear(out)
		return
	}
	copy(out, (*main).buf[:n])
}

func (g *Graph) ensureAux(n int) []frame.Frame {
	if cap(g.aux) < n {
		newCap := cap(g.aux) * 2
		if newCap < n {
			newCap = n
		}
		g.aux = make([]frame.Frame, newCap)
	}
	return g.aux[:n]
}

// applySpatial attenuates and pans buf based on the distance and azimuth
// between t's position and its registered listener's position.
func (g *Graph) applySpatial(t *Track, buf []frame.Frame, n int) {
	sp := t.Spatial
	listener, ok := g.tracks.Get(sp.ListenerRef)
	if !ok || (*listener).Spatial == nil {
		return
	}
	lp := (*listener).Spatial.Position
	dx := float64(sp.Position[0] - lp[0])
	dy := float64(sp.Position[1] - lp[1])
	dz := float64(sp.Position[2] - lp[2])
	distance := dx*dx + dy*dy + dz*dz
	if distance > 0 {
		distance = math.Sqrt(distance)
	}

	gain := sp.DistanceAttenuation.Evaluate(distance)
	gain = 1 + sp.SpatializationStrength*(gain-1)

	pan := 0.0
	if distance > 1e-9 {
		pan = clampPan(dx / distance)
	}

	for i := 0; i < n; i++ {
		mono := (buf[i].Left + buf[i].Right) / 2
		buf[i] = frame.Panned(mono*gain, pan)
	}
}

func clampPan(p float64) float64 {
	if p < -1 {
		return -1
	}
	if p > 1 {
		return 1
	}
	return p
}
