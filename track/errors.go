// SPDX-License-Identifier: EPL-2.0

package track

import "errors"

// ErrCycle is returned by Graph.AddRoute when the edit
// would introduce a cycle in the mixer graph. The caller (engine) maps
// this to its own ErrInvalidConfiguration.
var ErrCycle = errors.New("track: edit would introduce a routing cycle")

// ErrUnknownTrack is returned when a Key does not resolve in the Graph.
// RemoveTrack also returns it for MAIN and for a track that still has
// sub-tracks or incoming routes.
var ErrUnknownTrack = errors.New("track: unknown track key")

// ErrCapacityExceeded is returned by AddSubTrack when the graph is full.
var ErrCapacityExceeded = errors.New("track: graph is at capacity")
