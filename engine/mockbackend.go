// SPDX-License-Identifier: EPL-2.0

package engine

import "github.com/ik5/kira/frame"

// MockBackend is the no-op, caller-driven backend §6 requires for tests:
// a fixed sample rate and a Tick method that invokes the installed
// callback synchronously, as many times as the caller likes.
type MockBackend struct {
	SampleRate int

	callback func([]frame.Frame)
}

// NewMockBackend constructs a MockBackend reporting the given sample
// rate from Setup.
func NewMockBackend(sampleRate int) *MockBackend {
	return &MockBackend{SampleRate: sampleRate}
}

// Setup implements Backend.
func (m *MockBackend) Setup(settings Settings) (int, int, error) {
	if m.SampleRate == 0 {
		m.SampleRate = 48000
	}
	frames := settings.InternalBufferSize
	if frames == 0 {
		frames = 128
	}
	return m.SampleRate, frames, nil
}

// Start implements Backend, recording callback for Tick to drive.
func (m *MockBackend) Start(callback func([]frame.Frame)) error {
	m.callback = callback
	return nil
}

// SampleRateChanged implements Backend; the mock never changes rate on
// its own, so this only matters if a test calls it directly.
func (m *MockBackend) SampleRateChanged(newRate int) {
	m.SampleRate = newRate
}

// Tick synchronously renders nFrames by invoking the installed callback
// once with a buffer of that length. It is the test-driven equivalent of
// the real device calling back whenever it wants more audio.
func (m *MockBackend) Tick(nFrames int) []frame.Frame {
	buf := make([]frame.Frame, nFrames)
	if m.callback != nil {
		m.callback(buf)
	}
	return buf
}
