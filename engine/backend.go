// SPDX-License-Identifier: EPL-2.0

// Package engine wires every other package into a renderer (the realtime
// side, driven by a Backend callback) and an AudioManager (the control
// side applications call into).
package engine

import "github.com/ik5/kira/frame"

// Backend is the device adapter per §6. Setup negotiates the actual
// sample rate and a hint for the device's natural block size; Start
// installs the callback the device will invoke with each block it wants
// filled; SampleRateChanged notifies of a rate change the backend itself
// observed (e.g. the OS switched output devices).
type Backend interface {
	Setup(settings Settings) (sampleRate int, framesPerBlockHint int, err error)
	Start(callback func([]frame.Frame)) error
	SampleRateChanged(newRate int)
}
