// SPDX-License-Identifier: EPL-2.0

// Package modulator implements global value streams — LFOs, a hand-driven
// Tweener, and listener-distance sampling — that Parameters can link to
// instead of following a fixed tween.
package modulator
