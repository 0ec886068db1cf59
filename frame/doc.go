// SPDX-License-Identifier: EPL-2.0

// Package frame provides the stereo sample type and the small set of DSP
// value types every other engine package shares: Decibels, PlaybackRate,
// Panning, and Easing curves.
//
// # Frame
//
// Frame is a stereo sample pair, closed under addition and scalar
// multiplication:
//
//	out := a.Add(b).Scale(0.5)
//
// Panned maps a mono amplitude into stereo using an equal-power pan law:
//
//	f := frame.Panned(amp, -0.3) // slightly left of center
//
// # Decibels and amplitude
//
// Decibels is a linear dB scalar; 0.0 is unity gain. NegativeInfinity
// converts to silence:
//
//	amp := frame.Decibels(-6).Amplitude()
//
// # Easing
//
// Easing composes a Function (Linear, Power2..Power4) with a Direction
// (In, Out, InOut) into a monotone curve from 0 to 1:
//
//	e := frame.Easing{Function: frame.Power2, Direction: frame.Out}
//	v := e.Ease(0.25)
package frame
