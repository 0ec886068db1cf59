// SPDX-License-Identifier: EPL-2.0

// Package tween implements Parameter, the engine's one animatable value
// type. Every continuous setting in the engine — track volume, a filter's
// cutoff, a sound's playback rate — is a Parameter.
//
//	vol := tween.New[frame.Decibels](0)
//	vol.Set(-12, schedule.Immediate(), frame.Tween{Duration: 2 * time.Second})
//	vol.Advance(blockSeconds, now, nil)
//	amp := vol.Value().Amplitude()
package tween
