// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"errors"

	"github.com/ik5/kira/clock"
	"github.com/ik5/kira/effect"
	"github.com/ik5/kira/modulator"
	"github.com/ik5/kira/rtcommand"
	"github.com/ik5/kira/sound"
	"github.com/ik5/kira/track"
)

// defaultSoundRingCapacity bounds each sound's own Pause/Resume/Stop
// command ring. A sound rarely receives more than a couple of these per
// block; this is generous headroom, not a hot-path sizing concern.
const defaultSoundRingCapacity = 16

// AudioManager is the control-side entry point: every exported method
// either inserts/removes a resource or schedules a parameter change, per
// §6. It owns the Renderer a Backend drives and never touches its arenas
// except through the synchronized methods in structural.go.
type AudioManager struct {
	settings Settings
	backend  Backend
	renderer *Renderer
}

// New builds an AudioManager and its Renderer, negotiates the sample rate
// with backend, and starts it rendering.
func New(settings Settings, backend Backend) (*AudioManager, error) {
	if (settings.Capacities == Capacities{}) {
		settings.Capacities = DefaultCapacities()
	}
	if settings.InternalBufferSize == 0 {
		settings.InternalBufferSize = 128
	}
	if settings.CommandQueueCapacity == 0 {
		settings.CommandQueueCapacity = 256
	}

	sampleRate, _, err := backend.Setup(settings)
	if err != nil {
		return nil, err
	}
	settings.SampleRate = sampleRate

	renderer := newRenderer(settings)
	m := &AudioManager{settings: settings, backend: backend, renderer: renderer}
	if err := backend.Start(renderer.Render); err != nil {
		return nil, err
	}
	return m, nil
}

// MainTrack returns a handle to the implicit root of the mixer graph.
func (m *AudioManager) MainTrack() TrackHandle {
	return TrackHandle{Key: track.MainKey, renderer: m.renderer}
}

// Play constructs a renderer-side Sound from data and attaches it to
// MAIN, returning a Handle that controls it independent of the sound's
// arena key (see soundEntry/Renderer.insertSound).
func (m *AudioManager) Play(data sound.Data) (sound.Handle, error) {
	return m.PlayOn(data, m.MainTrack())
}

// PlayOn is Play but attaches the new sound to dest instead of MAIN.
func (m *AudioManager) PlayOn(data sound.Data, dest TrackHandle) (sound.Handle, error) {
	s, err := data.IntoSound()
	if err != nil {
		if errors.Is(err, sound.ErrReverseUnsupported) {
			return sound.Handle{}, ErrInvalidConfiguration
		}
		return sound.Handle{}, ErrDecodeFailure
	}

	commands := rtcommand.NewRing[rtcommand.Command](defaultSoundRingCapacity)
	state := rtcommand.NewSnapshot(s.State())
	position := rtcommand.NewSnapshot(0.0)
	entry := &soundEntry{sound: s, commands: commands, state: state, position: position}

	key, err := m.renderer.insertSound(entry, dest.Key)
	if err != nil {
		return sound.Handle{}, err
	}
	return sound.NewHandle(key, commands, state, position), nil
}

// AddSubTrack inserts a new track parented to parent.
func (m *AudioManager) AddSubTrack(parent TrackHandle) (TrackHandle, error) {
	key, err := m.renderer.addSubTrack(parent.Key)
	if err != nil {
		return TrackHandle{}, err
	}
	return TrackHandle{Key: key, renderer: m.renderer}, nil
}

// AddClock inserts a new, stopped clock ticking at speed once started.
func (m *AudioManager) AddClock(speed clock.Speed) (ClockHandle, error) {
	key, err := m.renderer.addClock(speed)
	if err != nil {
		return ClockHandle{}, err
	}
	return ClockHandle{Key: key, renderer: m.renderer}, nil
}

// AddModulator inserts a new live modulator (LFO, Tweener, or
// ListenerDistance), returning a handle Parameters can link to via ID().
func (m *AudioManager) AddModulator(mod modulator.Modulator) (ModulatorHandle, error) {
	key, err := m.renderer.addModulator(mod)
	if err != nil {
		return ModulatorHandle{}, err
	}
	return ModulatorHandle{Key: key, renderer: m.renderer}, nil
}

// AddEffect inserts a new effect into the shared effect arena. Attach it
// to a track's chain with TrackHandle.AttachEffect.
func (m *AudioManager) AddEffect(e effect.Effect) (EffectHandle, error) {
	key, err := m.renderer.addEffect(e)
	if err != nil {
		return EffectHandle{}, err
	}
	return EffectHandle{Key: key, renderer: m.renderer}, nil
}

// AddListener inserts a new listener track at pos/orientation. Emitter
// tracks spatialize against it by setting SpatialProps.ListenerRef to its
// Key.
func (m *AudioManager) AddListener(pos [3]float32, orientation [4]float32) (ListenerHandle, error) {
	key, err := m.renderer.addListener(pos, orientation)
	if err != nil {
		return ListenerHandle{}, err
	}
	return ListenerHandle{Key: key, renderer: m.renderer}, nil
}
