// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/rtcommand"
	"github.com/ik5/kira/schedule"
)

// Handle is the control-side reference to a sound living in the
// renderer's arena. It never touches the Sound implementation directly;
// every mutation goes through the command ring, and every observation
// comes from a triple-buffered snapshot the renderer publishes.
type Handle struct {
	Key Key

	commands *rtcommand.Ring[rtcommand.Command]
	state    *rtcommand.Snapshot[PlaybackState]
	position *rtcommand.Snapshot[float64]
}

// NewHandle is used by package engine to build a Handle once a sound has
// been inserted into the renderer's arena.
func NewHandle(key Key, commands *rtcommand.Ring[rtcommand.Command], state *rtcommand.Snapshot[PlaybackState], position *rtcommand.Snapshot[float64]) Handle {
	return Handle{Key: key, commands: commands, state: state, position: position}
}

// State returns the sound's last-published PlaybackState.
func (h Handle) State() PlaybackState {
	if h.state == nil {
		return Stopped
	}
	return h.state.Load()
}

// Position returns the sound's last-published playhead position in
// source-local seconds.
func (h Handle) Position() float64 {
	if h.position == nil {
		return 0
	}
	return h.position.Load()
}

// Pause enqueues a pause command with the given fade tween.
func (h Handle) Pause(tw frame.Tween) error {
	return h.push(rtcommand.KindPauseSound, pausePayload{Key: h.Key, Tween: tw})
}

// Resume enqueues a resume command, firing immediately once applied.
func (h Handle) Resume(tw frame.Tween) error {
	return h.push(rtcommand.KindResumeSound, resumePayload{Key: h.Key, Start: schedule.Immediate(), Tween: tw})
}

// ResumeAt enqueues a resume command deferred until start fires.
func (h Handle) ResumeAt(start schedule.StartTime, tw frame.Tween) error {
	return h.push(rtcommand.KindResumeSound, resumePayload{Key: h.Key, Start: start, Tween: tw})
}

// Stop enqueues a stop command with the given fade tween.
func (h Handle) Stop(tw frame.Tween) error {
	return h.push(rtcommand.KindStopSound, stopPayload{Key: h.Key, Tween: tw})
}

func (h Handle) push(kind rtcommand.Kind, payload any) error {
	if h.commands == nil {
		return nil
	}
	return h.commands.TryPush(rtcommand.Command{Kind: kind, Payload: payload})
}

// pausePayload, resumePayload and stopPayload are the POD command bodies
// the renderer switches on when draining the ring.
type pausePayload struct {
	Key   Key
	Tween frame.Tween
}

type resumePayload struct {
	Key   Key
	Start schedule.StartTime
	Tween frame.Tween
}

type stopPayload struct {
	Key   Key
	Tween frame.Tween
}

// Transport is implemented by every built-in sound (static and
// streaming); it is the subset of their control surface that a Handle
// command can target.
type Transport interface {
	Pause(tw frame.Tween)
	ResumeAt(start schedule.StartTime, tw frame.Tween)
	Stop(tw frame.Tween)
}

// ApplyPause, ApplyResume and ApplyStop are called by the renderer after
// resolving a payload's Key to a live Sound implementing Transport. They
// live here (not in engine) so the command payload shapes and their
// interpretation stay next to each other.
func ApplyPause(s Transport, p pausePayload)   { s.Pause(p.Tween) }
func ApplyResume(s Transport, p resumePayload) { s.ResumeAt(p.Start, p.Tween) }
func ApplyStop(s Transport, p stopPayload)     { s.Stop(p.Tween) }

// Dispatch applies cmd to s if s implements Transport and cmd carries one
// of this package's own payload kinds, ignoring anything else. Package
// engine calls this while draining each sound's command ring so the
// payload types here never need to be exported.
func Dispatch(s Transport, cmd rtcommand.Command) {
	switch cmd.Kind {
	case rtcommand.KindPauseSound:
		if p, ok := cmd.Payload.(pausePayload); ok {
			ApplyPause(s, p)
		}
	case rtcommand.KindResumeSound:
		if p, ok := cmd.Payload.(resumePayload); ok {
			ApplyResume(s, p)
		}
	case rtcommand.KindStopSound:
		if p, ok := cmd.Payload.(stopPayload); ok {
			ApplyStop(s, p)
		}
	}
}
