// SPDX-License-Identifier: EPL-2.0

package track

// Graph's traversal order is recomputed only on structural edits
// (AddSubTrack, AddRoute, RemoveRoute, RemoveTrack) and cached for
// Process, so the realtime render path never walks the graph looking for
// an order — it just replays the cached []Key.
