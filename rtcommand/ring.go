// SPDX-License-Identifier: EPL-2.0

// Package rtcommand provides the allocation-free, lock-free transport used
// to cross the control/renderer thread boundary: a bounded SPSC ring for
// command records, and a triple-buffered snapshot slot for values that must
// never fail to publish.
package rtcommand

import "sync/atomic"

// Ring is a single-producer/single-consumer bounded queue. Capacity is
// fixed at construction and rounded up to the next power of two so index
// wrapping can use a mask instead of a modulo. The zero value is not
// usable; use NewRing.
type Ring[T any] struct {
	buf  []T
	mask uint64

	writeIdx atomic.Uint64 // owned by the producer
	readIdx  atomic.Uint64 // owned by the consumer
}

// NewRing constructs a ring able to hold at least capacity items without
// blocking.
func NewRing[T any](capacity int) *Ring[T] {
	size := nextPowerOfTwo(capacity)
	return &Ring[T]{
		buf:  make([]T, size),
		mask: uint64(size - 1),
	}
}

func nextPowerOfTwo(n int) int {
	if n < 1 {
		n = 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// TryPush appends v to the ring. It never blocks; it returns ErrFull if
// the ring has no free slot.
func (r *Ring[T]) TryPush(v T) error {
	w := r.writeIdx.Load()
	read := r.readIdx.Load()
	if w-read >= uint64(len(r.buf)) {
		return ErrFull
	}
	r.buf[w&r.mask] = v
	r.writeIdx.Store(w + 1)
	return nil
}

// TryPop removes and returns the oldest queued item, or the zero value
// and false if the ring is empty. Intended for consumers that pull one
// item at a time (e.g. a streaming sound draining decoded frames),
// complementing Drain's "consume everything now" shape.
func (r *Ring[T]) TryPop() (T, bool) {
	read := r.readIdx.Load()
	w := r.writeIdx.Load()
	if read == w {
		var zero T
		return zero, false
	}
	v := r.buf[read&r.mask]
	r.readIdx.Store(read + 1)
	return v, true
}

// Drain invokes fn once for every item currently queued, in push order,
// removing each as it is delivered. It is intended to be called once per
// block from the consumer side with capacity bounded by the ring's own
// size, satisfying §4.B's "N bounded by queue capacity" rule automatically.
func (r *Ring[T]) Drain(fn func(T)) int {
	read := r.readIdx.Load()
	w := r.writeIdx.Load()
	n := 0
	for read != w {
		fn(r.buf[read&r.mask])
		read++
		n++
	}
	r.readIdx.Store(read)
	return n
}

// Len reports the number of items currently queued. It is a snapshot and
// may be stale by the time the caller acts on it.
func (r *Ring[T]) Len() int {
	return int(r.writeIdx.Load() - r.readIdx.Load())
}

// Cap reports the ring's fixed capacity.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}
