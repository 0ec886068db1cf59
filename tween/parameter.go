// SPDX-License-Identifier: EPL-2.0

// Package tween implements the Parameter value from §4.D: anything that
// can be set immediately, tweened over a duration with easing, linked to
// a modulator, or all three at once with the tween taking priority until
// it completes.
package tween

import (
	"github.com/ik5/kira/frame"
	"github.com/ik5/kira/schedule"
)

// Tweenable is any type that can be linearly blended between two values.
type Tweenable[T any] interface {
	Lerp(target T, t float64) T
}

// Linear is a plain float64 wrapper implementing Tweenable, used for
// modulator frequencies, mix ratios, and any other bare scalar parameter.
type Linear float64

// Lerp implements Tweenable.
func (l Linear) Lerp(target Linear, t float64) Linear {
	return l + Linear(t)*(target-l)
}

type activeTween[T any] struct {
	source, target T
	resolver        *schedule.Resolver
	easing          frame.Easing
	duration        float64 // seconds
	elapsed         float64 // seconds, only counts once started
	started         bool
}

// ModulatorID identifies a modulator a Parameter may be linked to. Alias
// of frame.ModulatorID so callers can spell either name.
type ModulatorID = frame.ModulatorID

// Mapping describes how a linked modulator's value is remapped before it
// overrides the tween for the block: clamp to InputRange, then map
// linearly into OutputRange.
type Mapping struct {
	InputMin, InputMax   float64
	OutputMin, OutputMax float64
}

// Apply clamps v to the input range and maps it into the output range.
func (m Mapping) Apply(v float64) float64 {
	if v < m.InputMin {
		v = m.InputMin
	} else if v > m.InputMax {
		v = m.InputMax
	}
	span := m.InputMax - m.InputMin
	if span == 0 {
		return m.OutputMin
	}
	t := (v - m.InputMin) / span
	return m.OutputMin + t*(m.OutputMax-m.OutputMin)
}

type link[T any] struct {
	modulator ModulatorID
	mapping   Mapping
	easing    frame.Easing
	toValue   func(float64) T
}

// Parameter holds a tweenable value and the machinery to animate it: an
// immediate set, an in-flight tween, or a live link to a modulator. It is
// generic over T via the Tweenable constraint, standing in for Rust's
// `T: Tweenable`.
type Parameter[T Tweenable[T]] struct {
	current T
	prev    T // previous block's current, for Interpolated
	tween   *activeTween[T]
	link    *link[T]
}

// New constructs a Parameter fixed at initial with no tween or link
// active.
func New[T Tweenable[T]](initial T) *Parameter[T] {
	return &Parameter[T]{current: initial, prev: initial}
}

// Value returns the parameter's current block value.
func (p *Parameter[T]) Value() T {
	return p.current
}

// Interpolated blends the previous block's value into the current one by
// blockProgress in [0,1], hiding the block boundary from sounds and
// effects that sample the parameter more than once per block.
func (p *Parameter[T]) Interpolated(blockProgress float64) T {
	return p.prev.Lerp(p.current, blockProgress)
}

// Set stores the parameter's current value as the tween's source, and
// schedules an interpolation to target starting at start and following
// tw. Any in-flight tween or link on this parameter is replaced: Set
// always wins immediately (§4.D, §5: "starts a new tween immediately and
// cancels any in-flight tween").
func (p *Parameter[T]) Set(target T, start schedule.StartTime, tw frame.Tween) {
	p.link = nil
	p.tween = &activeTween[T]{
		source:   p.current,
		target:   target,
		resolver: schedule.NewResolver(start),
		easing:   tw.Easing,
		duration: tw.Duration.Seconds(),
	}
}

// SetImmediate sets the value with no tween, cancelling anything in
// flight.
func (p *Parameter[T]) SetImmediate(value T) {
	p.link = nil
	p.tween = nil
	p.current = value
}

// LinkTo attaches a live link to a modulator's value, replacing any
// in-flight tween. toValue converts the mapped float64 into T.
func (p *Parameter[T]) LinkTo(modulator ModulatorID, mapping Mapping, easing frame.Easing, toValue func(float64) T) {
	p.tween = nil
	p.link = &link[T]{modulator: modulator, mapping: mapping, easing: easing, toValue: toValue}
}

// Unlink removes any modulator link, leaving the current value in place.
func (p *Parameter[T]) Unlink() {
	p.link = nil
}

// ModulatorReader resolves a modulator's current sampled value, read once
// per block by Advance. Alias of frame.ModulatorReader.
type ModulatorReader = frame.ModulatorReader

// Advance progresses the parameter by one block of blockSeconds. now and
// clocks resolve a pending tween's StartTime; modulators resolves a live
// link's source value. This implements §4.D's three numbered steps.
func (p *Parameter[T]) Advance(blockSeconds float64, now schedule.Now, modulators ModulatorReader) {
	p.prev = p.current

	if p.link != nil {
		if modulators != nil {
			if raw, ok := modulators.ModulatorValue(p.link.modulator); ok {
				m := p.link.mapping
				v := m.Apply(raw)
				if span := m.OutputMax - m.OutputMin; span != 0 {
					v = m.OutputMin + p.link.easing.Ease((v-m.OutputMin)/span)*span
				}
				p.current = p.link.toValue(v)
				return
			}
		}
		return
	}

	at := p.tween
	if at == nil {
		return
	}

	if !at.started {
		switch at.resolver.Resolve(now) {
		case schedule.StartingNow, schedule.AlreadyDue:
			at.started = true
		case schedule.Cancelled:
			p.tween = nil
			return
		default:
			return // not yet; current stays at source
		}
	}

	if at.duration <= 0 {
		p.current = at.target
		p.tween = nil
		return
	}

	at.elapsed += blockSeconds
	t := at.elapsed / at.duration
	if t >= 1 {
		p.current = at.target
		p.tween = nil
		return
	}
	p.current = at.source.Lerp(at.target, at.easing.Ease(t))
}
