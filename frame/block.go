// SPDX-License-Identifier: EPL-2.0

package frame

import "github.com/ik5/kira/schedule"

// BlockInfo carries the per-block context a Sound or Effect needs to
// process one buffer: the engine's sample rate and this block's length in
// seconds, plus what a Parameter needs to advance its own tween/link state
// — the scheduler's Now and a way to read modulators — so that advancing
// parameters stays entirely inside the Sound/Effect implementation instead
// of the renderer reaching into their internals every block.
type BlockInfo struct {
	SampleRate   int
	BlockSeconds float64
	Now          schedule.Now
	Modulators   ModulatorReader
}
