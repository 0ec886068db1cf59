// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"github.com/ik5/kira/arena"
	"github.com/ik5/kira/frame"
)

// Key identifies a Sound inside the renderer's sound arena.
type Key = arena.Key

// Sound is any value that can be driven by the renderer's per-block
// processing loop. Static and streaming sounds below are the two
// built-ins; user code can implement it directly for synthesized sources.
type Sound interface {
	// Process overwrites out with the next block of audio.
	Process(out []frame.Frame, info frame.BlockInfo)
	// State reports the sound's current PlaybackState.
	State() PlaybackState
	// OnStartProcessing is a cheap per-block notification. The built-in
	// sounds do nothing with it; a streaming sound's decoder goroutine
	// refills on its own.
	OnStartProcessing()
	// Finished reports whether the renderer should detach this sound
	// after the current block.
	Finished() bool
}

// Positioned is implemented by sounds that track a source-local playhead
// in seconds. The renderer publishes it to Handle.Position each block;
// sounds that don't track one (e.g. streamingSound) simply don't
// implement it, and Handle.Position reads 0.
type Positioned interface {
	Position() float64
}
