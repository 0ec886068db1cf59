// SPDX-License-Identifier: EPL-2.0

package sound

import "github.com/ik5/kira/audio"

// Data is the split point between a value describing a sound and the
// realtime Sound that will actually run inside the renderer: AudioManager
// accepts a Data, constructs the Sound on the renderer side, and hands
// the caller back a Handle.
type Data interface {
	IntoSound() (Sound, error)
}

// IntoSound implements Data for a whole-buffer sound.
func (d StaticSoundData) IntoSound() (Sound, error) {
	return NewStatic(d), nil
}

// StreamingSoundData pairs a decoder-backed audio.Source with the
// settings NewStreaming needs. Unlike StaticSoundData it owns no sample
// buffer; IntoSound starts the decode goroutine.
type StreamingSoundData struct {
	Source   audio.Source
	Settings StreamingSoundSettings
}

// IntoSound implements Data for a decoder-fed sound.
func (d StreamingSoundData) IntoSound() (Sound, error) {
	return NewStreaming(d.Source, d.Settings)
}
