// SPDX-License-Identifier: EPL-2.0

package effect

// Every built-in effect is a plain struct holding tween.Parameter fields
// and satisfying the Effect interface with a Process and an
// OnSampleRateChanged method. None allocate in Process; delay lines,
// filter state, and comb/allpass buffers are all sized at construction or
// at OnSampleRateChanged.
