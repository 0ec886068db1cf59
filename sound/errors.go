// SPDX-License-Identifier: EPL-2.0

package sound

import "errors"

var (
	// ErrReverseUnsupported is returned at construction when a streaming
	// sound's settings request reverse playback, which streaming cannot
	// support (§4.H).
	ErrReverseUnsupported = errors.New("sound: reverse playback is not supported on streaming sounds")
	// ErrDecodeFailure marks a streaming sound's fatal decoder error.
	ErrDecodeFailure = errors.New("sound: decoder reported a fatal error")
)
