// SPDX-License-Identifier: EPL-2.0

package engine

// Capacities bounds every resource arena the renderer owns. Each kind is
// fixed at construction; exceeding it returns ErrCapacityExceeded rather
// than growing, per §3's invariant that capacity is never exceeded.
type Capacities struct {
	Sounds           int
	SubTracks        int
	Clocks           int
	Modulators       int
	Effects          int
	SpatialListeners int
}

// DefaultCapacities returns capacities generous enough for a small game
// without being wasteful.
func DefaultCapacities() Capacities {
	return Capacities{
		Sounds:           256,
		SubTracks:        64,
		Clocks:           16,
		Modulators:       32,
		Effects:          128,
		SpatialListeners: 8,
	}
}

// Settings configures a new AudioManager/Renderer pair.
type Settings struct {
	Capacities Capacities

	// InternalBufferSize is the block size the bundled backends request
	// per Render call. Default 128. The renderer itself processes each
	// block a backend hands it in one pass, whatever its size.
	InternalBufferSize int

	SampleRate int

	// CommandQueueCapacity is defaulted to 256 but not read by the
	// renderer: structural edits take the renderer's mutex, and each
	// sound's command ring has its own fixed capacity.
	CommandQueueCapacity int

	// BackendSettings is forwarded to Backend.Setup verbatim; its shape
	// is backend-specific (e.g. device name, oto buffer size).
	BackendSettings any
}

// DefaultSettings returns Settings with sensible defaults and
// DefaultCapacities; SampleRate still must be set by the caller or left
// at 0 to accept whatever the backend reports from Setup.
func DefaultSettings() Settings {
	return Settings{
		Capacities:           DefaultCapacities(),
		InternalBufferSize:   128,
		CommandQueueCapacity: 256,
	}
}
