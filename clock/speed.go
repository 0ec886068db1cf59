// SPDX-License-Identifier: EPL-2.0

// Package clock implements the tickable timebase sounds, tweens, and
// effect parameters can schedule against: a monotonically advancing tick
// counter with a sub-tick fraction, expressible in three equivalent speed
// units.
package clock

// Mode tags which unit a Speed was expressed in. The renderer never
// switches on this directly; every mode converts to TicksPerSecond for the
// one advance formula in Advance.
type Mode int

const (
	ModeSecondsPerTick Mode = iota
	ModeTicksPerSecond
	ModeTicksPerMinute
)

// Speed is the clock's tick rate, expressible in any of three units. All
// three reduce to the same TicksPerSecond() conversion, which is also why
// add_clock(TicksPerMinute(120)) and add_clock(TicksPerSecond(2)) produce
// bit-identical tick sequences (§8, "Clock equivalence").
type Speed struct {
	Mode  Mode
	Value float64
}

// SecondsPerTick constructs a Speed of s seconds per tick.
func SecondsPerTick(s float64) Speed { return Speed{Mode: ModeSecondsPerTick, Value: s} }

// TicksPerSecond constructs a Speed of r ticks per second.
func TicksPerSecond(r float64) Speed { return Speed{Mode: ModeTicksPerSecond, Value: r} }

// TicksPerMinute constructs a Speed of b ticks per minute.
func TicksPerMinute(b float64) Speed { return Speed{Mode: ModeTicksPerMinute, Value: b} }

// TicksPerSecondValue converts s to ticks-per-second regardless of the
// unit it was expressed in.
func (s Speed) TicksPerSecondValue() float64 {
	switch s.Mode {
	case ModeSecondsPerTick:
		if s.Value <= 0 {
			return 0
		}
		return 1 / s.Value
	case ModeTicksPerMinute:
		return s.Value / 60
	default: // ModeTicksPerSecond
		return s.Value
	}
}

// Lerp implements tween.Tweenable by blending in ticks-per-second space
// and re-expressing the result in the target's unit, so a speed tween
// never produces a mid-blend value in an ambiguous unit.
func (s Speed) Lerp(target Speed, t float64) Speed {
	a := s.TicksPerSecondValue()
	b := target.TicksPerSecondValue()
	blended := a + t*(b-a)
	return Speed{Mode: target.Mode, Value: fromTicksPerSecond(blended, target.Mode)}
}

func fromTicksPerSecond(tps float64, mode Mode) float64 {
	switch mode {
	case ModeSecondsPerTick:
		if tps <= 0 {
			return 0
		}
		return 1 / tps
	case ModeTicksPerMinute:
		return tps * 60
	default:
		return tps
	}
}
