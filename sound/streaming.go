// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/kira/audio"
	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/rtcommand"
	"github.com/ik5/kira/schedule"
	"github.com/ik5/kira/tween"
)

// StreamingSoundSettings configures a streaming sound. It is the same
// shape as StaticSoundSettings minus the fields streaming cannot support:
// no LoopRegion (a decoder thread can't be asked to seek backward
// cheaply) and Reverse must be false.
type StreamingSoundSettings struct {
	Volume       frame.Decibels
	PlaybackRate frame.PlaybackRate
	Panning      frame.Panning
	StartTime    schedule.StartTime
	Reverse      bool // must be false; validated by NewStreaming
	RingCapacity int  // frames buffered between decoder and renderer
}

// DefaultStreamingSoundSettings returns the engine's defaults.
func DefaultStreamingSoundSettings() StreamingSoundSettings {
	return StreamingSoundSettings{
		Volume:       0,
		PlaybackRate: 1,
		StartTime:    schedule.Immediate(),
		RingCapacity: 8192,
	}
}

// streamingSound consumes frames produced by a decoder goroutine through
// a bounded ring. Underrun emits silence and leaves the sound Playing,
// per §4.H; a fatal decode error stops it immediately.
type streamingSound struct {
	ring *rtcommand.Ring[frame.Frame]
	src  audio.Source

	cancel context.CancelFunc
	group  *errgroup.Group

	state         PlaybackState
	decodeFailed  bool
	sourceDrained bool

	volume         *tween.Parameter[frame.Decibels]
	panning        *tween.Parameter[frame.Panning]
	startResolver  *schedule.Resolver
	resumeResolver *schedule.Resolver
	resumeFadeTw   frame.Tween

	finished bool
}

// NewStreaming starts a decoder goroutine pulling from src into a bounded
// ring, and returns the renderer-side sound consuming it. Reverse
// playback is rejected up front, not queued, so it never reaches the
// ring (§4.H).
func NewStreaming(src audio.Source, settings StreamingSoundSettings) (*streamingSound, error) {
	if settings.Reverse {
		return nil, ErrReverseUnsupported
	}
	if settings.RingCapacity <= 0 {
		settings.RingCapacity = 8192
	}

	ctx, cancel := context.WithCancel(context.Background())
	group, gctx := errgroup.WithContext(ctx)

	s := &streamingSound{
		ring:    rtcommand.NewRing[frame.Frame](settings.RingCapacity),
		src:     src,
		cancel:  cancel,
		group:   group,
		volume:  tween.New(settings.Volume),
		panning: tween.New(settings.Panning),
	}
	if settings.StartTime.Kind == schedule.KindImmediate {
		s.state = Playing
	} else {
		s.state = WaitingToResume
		s.startResolver = schedule.NewResolver(settings.StartTime)
	}

	group.Go(func() error { return s.decodeLoop(gctx) })

	return s, nil
}

// decodeLoop runs on its own goroutine, reading from src and pushing
// decoded frames into the ring until the context is cancelled, the
// source is exhausted, or a fatal decode error occurs.
func (s *streamingSound) decodeLoop(ctx context.Context) error {
	channels := s.src.Channels()
	buf := make([]float32, s.src.BufSize()*channels)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n, err := s.src.ReadSamples(buf)
		count := n / channels
		for i := 0; i < count; i++ {
			fr := sampleToFrame(buf[i*channels:i*channels+channels], channels)
			for s.ring.TryPush(fr) != nil {
				select {
				case <-ctx.Done():
					return nil
				default:
				}
			}
		}

		if err == io.EOF {
			s.sourceDrained = true
			return nil
		}
		if err != nil {
			s.decodeFailed = true
			return err
		}
	}
}

// Close stops the decoder goroutine and releases the source. Called by
// the control side once the renderer reports Stopped and ships the
// retired sound back for destruction.
func (s *streamingSound) Close() error {
	s.cancel()
	_ = s.group.Wait()
	return s.src.Close()
}

func (s *streamingSound) Pause(tw frame.Tween) {
	if s.state == Stopped || s.state == Stopping {
		return
	}
	s.state = Pausing
	s.volume.Set(frame.NegativeInfinity, schedule.Immediate(), tw)
}

func (s *streamingSound) Resume(tw frame.Tween) { s.ResumeAt(schedule.Immediate(), tw) }

func (s *streamingSound) ResumeAt(start schedule.StartTime, tw frame.Tween) {
	if s.state == Stopped || s.state == Stopping {
		return
	}
	s.state = Resuming
	s.resumeResolver = schedule.NewResolver(start)
	s.resumeFadeTw = tw
}

func (s *streamingSound) Stop(tw frame.Tween) {
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

func (s *streamingSound) State() PlaybackState { return s.state }
func (s *streamingSound) Finished() bool       { return s.finished }
func (s *streamingSound) OnStartProcessing()   {} // decoder refills itself via its own goroutine

func (s *streamingSound) Process(out []frame.Frame, info frame.BlockInfo) {
	s.volume.Advance(info.BlockSeconds, info.Now, info.Modulators)
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
			s.volume.Set(0, schedule.Immediate(), s.resumeFadeTw)
		case schedule.Cancelled:
			s.state = Stopped
			s.finished = true
		}
		return
	}

	if s.decodeFailed {
		clear(out)
		s.state = Stopped
		s.finished = true
		return
	}

	for i := range out {
		fr, ok := s.take()
		if !ok {
			out[i] = frame.Silence
			if s.sourceDrained && s.ring.Len() == 0 {
				s.finishNonLooping(out, i+1)
				return
			}
			continue
		}
		out[i] = s.applyVolumePan(fr)
	}

	if s.state == Pausing || s.state == Stopping {
		if s.volume.Value() == frame.NegativeInfinity {
			if s.state == Pausing {
				s.state = Paused
			} else {
				s.state = Stopped
				s.finished = true
			}
		}
	}
}

func (s *streamingSound) finishNonLooping(out []frame.Frame, from int) {
	clear(out[from:])
	s.state = Stopped
	s.finished = true
}

func (s *streamingSound) take() (frame.Frame, bool) {
	return s.ring.TryPop()
}

func (s *streamingSound) applyVolumePan(fr frame.Frame) frame.Frame {
	amp := s.volume.Value().Amplitude()
	fr = fr.Scale(amp)
	pan := float64(s.panning.Value())
	if pan == 0 {
		return fr
	}
	mono := (fr.Left + fr.Right) / 2
	return frame.Panned(mono, pan)
}
