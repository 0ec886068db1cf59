// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

// ErrCapacityExceeded is returned when a resource arena is already at its
// configured capacity.
var ErrCapacityExceeded = errors.New("engine: arena is at capacity")

// ErrCommandQueueFull names a saturated command queue. No call in this
// package returns it; sound.Handle methods report a full per-sound ring
// as rtcommand.ErrFull.
var ErrCommandQueueFull = errors.New("engine: command queue is full")

// ErrInvalidConfiguration is returned for statically rejectable requests:
// reverse playback on a streaming sound, a route that would create a
// cycle, an unknown resource key, and similar. A StartTime's Fraction is
// not range-checked.
var ErrInvalidConfiguration = errors.New("engine: invalid configuration")

// ErrDecodeFailure surfaces a fatal streaming decode error. The sound's
// Handle.State() also settles to Stopped; this is reported out-of-band.
var ErrDecodeFailure = errors.New("engine: streaming sound decode failed")

// ErrDeviceLost is surfaced by a Backend when the underlying audio device
// disappears; the manager may attempt to re-init with new parameters.
var ErrDeviceLost = errors.New("engine: audio device lost")
