// SPDX-License-Identifier: EPL-2.0

package rtcommand

import "errors"

var (
	// ErrFull is returned by TryPush when the ring has no free slot.
	ErrFull = errors.New("rtcommand: ring is full")
)
