// SPDX-License-Identifier: EPL-2.0

package arena

import "errors"

var (
	// ErrCapacityExceeded is returned by Insert when the arena has no
	// free slot.
	ErrCapacityExceeded = errors.New("arena: capacity exceeded")
)
