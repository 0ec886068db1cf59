// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/schedule"
	"github.com/ik5/kira/tween"
)

// StaticSoundData owns a shared, immutable buffer of decoded audio plus
// its playback settings. Frames is a plain Go slice; sharing it across
// clones is already O(1) and allocation-free, the same guarantee §9 asks
// of an Arc<[Frame]> in the original design.
type StaticSoundData struct {
	Frames     []frame.Frame
	SampleRate int
	Settings   StaticSoundSettings
}

// staticSound is the renderer-side realization of StaticSoundData.
type staticSound struct {
	data StaticSoundData

	state    PlaybackState
	position float64 // source-local seconds

	volume       *tween.Parameter[frame.Decibels]
	playbackRate *tween.Parameter[frame.PlaybackRate]
	panning      *tween.Parameter[frame.Panning]

	startResolver   *schedule.Resolver
	resumeResolver  *schedule.Resolver
	resumeFadeTween frame.Tween
	pausedAt        float64 // position when Pause was requested, for ResumeSeekBack

	finished bool
}

// NewStatic constructs the renderer-side sound from data. It starts
// Playing if StartTime is Immediate, otherwise WaitingToResume, per §4.H.
func NewStatic(data StaticSoundData) *staticSound {
	s := &staticSound{
		data:         data,
		position:     data.Settings.StartPosition,
		volume:       tween.New(data.Settings.Volume),
		playbackRate: tween.New(data.Settings.PlaybackRate),
		panning:      tween.New(data.Settings.Panning),
	}
	if data.Settings.StartTime.Kind == schedule.KindImmediate {
		s.state = Playing
	} else {
		s.state = WaitingToResume
		s.startResolver = schedule.NewResolver(data.Settings.StartTime)
	}
	return s
}

// Pause fades volume to silence over tw then freezes the playhead.
func (s *staticSound) Pause(tw frame.Tween) {
	if s.state == Stopped || s.state == Stopping {
		return
	}
	s.pausedAt = s.position
	s.state = Pausing
	s.volume.Set(frame.NegativeInfinity, schedule.Immediate(), tw)
}

// Resume moves the sound to Resuming; once the implicit immediate start
// fires (on the next block) it fades volume back in.
func (s *staticSound) Resume(tw frame.Tween) {
	s.ResumeAt(schedule.Immediate(), tw)
}

// ResumeAt moves the sound to Resuming, deferring the actual resumption
// until start fires.
func (s *staticSound) ResumeAt(start schedule.StartTime, tw frame.Tween) {
	if s.state == Stopped || s.state == Stopping {
		return
	}
	if s.data.Settings.ResumeSeekBack {
		s.position = s.pausedAt
	}
	s.state = Resuming
	s.resumeResolver = schedule.NewResolver(start)
	s.resumeFadeTween = tw
}

// Stop fades volume out over tw then moves to Stopped. Issued while
// WaitingToResume, it takes effect immediately (§4.H).
func (s *staticSound) Stop(tw frame.Tween) {
	if s.state == Stopped {
		return
	}
	if s.state == WaitingToResume {
		s.state = Stopped
		s.finished = true
		return
	}
	s.state = Stopping
	s.volume.Set(frame.NegativeInfinity, schedule.Immediate(), tw)
}

// State implements sound.Sound.
func (s *staticSound) State() PlaybackState { return s.state }

// Finished implements sound.Sound.
func (s *staticSound) Finished() bool { return s.finished }

// Position implements Positioned.
func (s *staticSound) Position() float64 { return s.position }

// OnStartProcessing implements sound.Sound; static sounds have nothing to
// refill.
func (s *staticSound) OnStartProcessing() {}

// Process implements sound.Sound.
func (s *staticSound) Process(out []frame.Frame, info frame.BlockInfo) {
	s.volume.Advance(info.BlockSeconds, info.Now, info.Modulators)
	s.playbackRate.Advance(info.BlockSeconds, info.Now, info.Modulators)
	s.panning.Advance(info.BlockSeconds, info.Now, info.Modulators)

	switch s.state {
	case Stopped, Paused:
		clear(out)
		return

	case WaitingToResume:
		clear(out)
		switch s.startResolver.Resolve(info.Now) {
		case schedule.StartingNow, schedule.AlreadyDue:
			s.state = Playing
		case schedule.Cancelled:
			s.state = Stopped
			s.finished = true
		}
		return

	case Resuming:
		clear(out)
		switch s.resumeResolver.Resolve(info.Now) {
		case schedule.StartingNow, schedule.AlreadyDue:
			s.state = Playing
			s.volume.Set(0, schedule.Immediate(), s.resumeFadeTween)
		case schedule.Cancelled:
			s.state = Stopped
			s.finished = true
		}
		return

	case Pausing:
		s.render(out, info)
		if s.volume.Value() == frame.NegativeInfinity {
			s.state = Paused
		}
		return

	case Stopping:
		s.render(out, info)
		if s.volume.Value() == frame.NegativeInfinity {
			s.state = Stopped
			s.finished = true
		}
		return

	case Playing:
		s.render(out, info)
	}
}

func (s *staticSound) render(out []frame.Frame, info frame.BlockInfo) {
	n := len(s.data.Frames)
	if n == 0 {
		clear(out)
		return
	}

	// dt is expressed in source-local seconds per output sample: one
	// output sample spans 1/info.SampleRate seconds of wall clock, scaled
	// by the playback rate.
	rate := s.playbackRate.Value()
	dt := float64(rate) / float64(info.SampleRate)

	loop := s.data.Settings.LoopRegion
	region := s.data.Settings.PlaybackRegion
	reverse := s.data.Settings.Reverse

	for i := range out {
		out[i] = s.sampleAt(s.position, n)

		if reverse {
			s.position -= dt
		} else {
			s.position += dt
		}

		if loop != nil {
			loopEnd := loop.EndOr(float64(n) / float64(s.data.SampleRate))
			if reverse {
				if s.position <= loop.Start {
					// Open question (§9): reverse playback reaching the
					// loop's lower bound wraps to the loop's end,
					// symmetric with forward looping wrapping end->start.
					overflow := loop.Start - s.position
					s.position = loopEnd - overflow
				}
			} else if s.position >= loopEnd {
				overflow := s.position - loopEnd
				s.position = loop.Start + overflow
			}
		} else {
			end := region.EndOr(float64(n) / float64(s.data.SampleRate))
			if reverse {
				if s.position < region.Start {
					s.finishNonLooping(out, i+1)
					return
				}
			} else if s.position >= end {
				s.finishNonLooping(out, i+1)
				return
			}
		}
	}
}

func (s *staticSound) finishNonLooping(out []frame.Frame, from int) {
	clear(out[from:])
	s.state = Stopped
	s.finished = true
}

// sampleAt returns the frame at position (source-local seconds), applying
// volume and panning. It nearest-neighbor samples; the block-rate
// parameter advance already accepted as a throughput tradeoff (§9) makes
// higher-order interpolation unnecessary here.
func (s *staticSound) sampleAt(position float64, n int) frame.Frame {
	idx := int(position * float64(s.data.SampleRate))
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	amp := s.volume.Value().Amplitude()
	src := s.data.Frames[idx].Scale(amp)
	pan := float64(s.panning.Value())
	if pan == 0 {
		return src
	}
	mono := (src.Left + src.Right) / 2
	return frame.Panned(mono, pan)
}
