// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"math"
	"testing"
	"time"

	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/schedule"
)

func sineData(sampleRate int, freq float64, seconds float64) StaticSoundData {
	n := int(float64(sampleRate) * seconds)
	frames := make([]frame.Frame, n)
	for i := range frames {
		t := float64(i) / float64(sampleRate)
		v := math.Sin(2 * math.Pi * freq * t)
		frames[i] = frame.Frame{Left: v, Right: v}
	}
	return StaticSoundData{Frames: frames, SampleRate: sampleRate, Settings: DefaultStaticSoundSettings()}
}

func blockInfo(sampleRate, n int) frame.BlockInfo {
	return frame.BlockInfo{SampleRate: sampleRate, BlockSeconds: float64(n) / float64(sampleRate)}
}

func TestStaticSoundPlaysThenStops(t *testing.T) {
	const sr = 48000
	data := sineData(sr, 1000, 1.0)
	s := NewStatic(data)

	block := make([]frame.Frame, 256)
	rendered := 0
	for s.State() != Stopped && rendered < sr*2 {
		s.Process(block, blockInfo(sr, len(block)))
		rendered += len(block)
	}

	if s.State() != Stopped {
		t.Fatalf("sound never stopped after %d frames", rendered)
	}
	if !s.Finished() {
		t.Fatal("Finished() should be true once Stopped")
	}
	if rendered < sr || rendered > sr+len(block) {
		t.Fatalf("stopped after %d frames, want close to %d", rendered, sr)
	}
}

func TestStaticSoundLoopsAndNeverStops(t *testing.T) {
	const sr = 48000
	data := sineData(sr, 1000, 0.1)
	end := 0.05
	data.Settings.LoopRegion = &Region{Start: 0, End: &end}
	s := NewStatic(data)

	block := make([]frame.Frame, 256)
	for i := 0; i < 2000; i++ {
		s.Process(block, blockInfo(sr, len(block)))
		if s.State() == Stopped {
			t.Fatalf("looping sound stopped after %d blocks", i)
		}
	}
}

func TestStaticSoundWaitingToResumeOnClockStart(t *testing.T) {
	const sr = 48000
	data := sineData(sr, 1000, 1.0)
	key := schedule.ClockKey{Index: 1, Generation: 1}
	data.Settings.StartTime = schedule.AtClockTime(key, 1, 0)
	s := NewStatic(data)

	if s.State() != WaitingToResume {
		t.Fatalf("State() = %v, want WaitingToResume", s.State())
	}

	block := make([]frame.Frame, 64)
	clocks := fakeClocks{t: schedule.ClockTime{Ticks: 0}, running: true, exists: true}
	s.Process(block, frame.BlockInfo{SampleRate: sr, BlockSeconds: 0.001, Now: schedule.Now{Clocks: clocks}})
	if s.State() != WaitingToResume {
		t.Fatalf("State() = %v, want still WaitingToResume before clock reaches target", s.State())
	}
	for _, v := range block {
		if v != frame.Silence {
			t.Fatal("expected silence while waiting to resume")
		}
	}

	clocks.t = schedule.ClockTime{Ticks: 1}
	s.Process(block, frame.BlockInfo{SampleRate: sr, BlockSeconds: 0.001, Now: schedule.Now{Clocks: clocks}})
	if s.State() != Playing {
		t.Fatalf("State() = %v, want Playing once clock reached target", s.State())
	}
}

func TestStopTwiceIsIdempotent(t *testing.T) {
	const sr = 48000
	s := NewStatic(sineData(sr, 1000, 1.0))
	tw := frame.Tween{Duration: 5 * time.Millisecond}

	s.Stop(tw)
	first := s.State()
	s.Stop(tw)
	second := s.State()
	if first != second {
		t.Fatalf("calling Stop twice changed state from %v to %v", first, second)
	}
}

func TestPauseFreezesPlayhead(t *testing.T) {
	const sr = 48000
	s := NewStatic(sineData(sr, 1000, 1.0))
	block := make([]frame.Frame, 256)
	info := blockInfo(sr, len(block))

	s.Process(block, info)
	s.Pause(frame.Tween{Duration: 0})
	for i := 0; i < 5; i++ {
		s.Process(block, info)
	}
	if s.State() != Paused {
		t.Fatalf("State() = %v, want Paused", s.State())
	}
	frozen := s.position
	s.Process(block, info)
	if s.position != frozen {
		t.Fatalf("position moved while paused: %v -> %v", frozen, s.position)
	}
}

type fakeClocks struct {
	t       schedule.ClockTime
	running bool
	exists  bool
}

func (f fakeClocks) ClockTime(schedule.ClockKey) (schedule.ClockTime, bool, bool) {
	return f.t, f.running, f.exists
}
