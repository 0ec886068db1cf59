// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/schedule"
)

// StaticSoundSettings configures a StaticSoundData's playback.
type StaticSoundSettings struct {
	Volume         frame.Decibels
	PlaybackRate   frame.PlaybackRate
	Panning        frame.Panning
	StartTime      schedule.StartTime
	StartPosition  float64 // seconds, source-local
	LoopRegion     *Region // nil disables looping
	PlaybackRegion Region  // End=nil means "until end of source"
	Reverse        bool

	// ResumeSeekBack resolves the open question in §9: when true, Resume
	// rewinds the playhead back to the position it was at when Pause was
	// called, discarding time spent paused; when false (the default), the
	// playhead stays exactly where it froze and playback continues from
	// there with no seek. Kira's own history is ambiguous here, so it is
	// a policy flag rather than a guess.
	ResumeSeekBack bool
}

// DefaultStaticSoundSettings returns the engine's defaults: 0dB, native
// rate, centered, immediate start, from position 0, no loop, whole-source
// playback region, forward, no seek-back on resume.
func DefaultStaticSoundSettings() StaticSoundSettings {
	return StaticSoundSettings{
		Volume:       0,
		PlaybackRate: 1,
		Panning:      0,
		StartTime:    schedule.Immediate(),
	}
}
