// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"encoding/binary"
	"math"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/kira/frame"
)

// OtoBackend is the real device backend, wiring github.com/ebitengine/oto/v3.
// oto is pull-based (the player reads PCM bytes from an io.Reader) rather
// than callback-based, so reader wraps the installed render callback and
// oto's own playback goroutine becomes the realtime thread per §5.
type OtoBackend struct {
	ctx    *oto.Context
	player *oto.Player
	reader *otoReader
}

// NewOtoBackend constructs an unconfigured OtoBackend; Setup finishes
// initialization once the engine's sample rate is known.
func NewOtoBackend() *OtoBackend {
	return &OtoBackend{}
}

// Setup implements Backend.
func (o *OtoBackend) Setup(settings Settings) (int, int, error) {
	sampleRate := settings.SampleRate
	if sampleRate == 0 {
		sampleRate = 48000
	}
	framesHint := settings.InternalBufferSize
	if framesHint == 0 {
		framesHint = 128
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return 0, 0, err
	}
	<-ready

	o.ctx = ctx
	return sampleRate, framesHint, nil
}

// Start implements Backend: it installs callback as the frame source and
// begins playback.
func (o *OtoBackend) Start(callback func([]frame.Frame)) error {
	o.reader = &otoReader{callback: callback}
	o.player = o.ctx.NewPlayer(o.reader)
	o.player.Play()
	return nil
}

// SampleRateChanged implements Backend. oto does not support a live
// sample-rate change on an open context; callers that need one must tear
// down and recreate the OtoBackend.
func (o *OtoBackend) SampleRateChanged(newRate int) {}

// otoReader adapts the engine's []frame.Frame-filling callback into the
// io.Reader oto.Player pulls interleaved float32LE stereo bytes from.
type otoReader struct {
	callback func([]frame.Frame)
	scratch  []frame.Frame // grown not shrunk, mirroring audio/mono_mixer.go
}

const bytesPerFrame = 2 * 4 // stereo, 4 bytes per float32 channel

func (r *otoReader) Read(p []byte) (int, error) {
	n := len(p) / bytesPerFrame
	if n == 0 {
		return 0, nil
	}
	if cap(r.scratch) < n {
		r.scratch = make([]frame.Frame, n)
	}
	buf := r.scratch[:n]
	clear(buf)
	if r.callback != nil {
		r.callback(buf)
	}

	for i, f := range buf {
		off := i * bytesPerFrame
		binary.LittleEndian.PutUint32(p[off:], math.Float32bits(float32(f.Left)))
		binary.LittleEndian.PutUint32(p[off+4:], math.Float32bits(float32(f.Right)))
	}
	return n * bytesPerFrame, nil
}
