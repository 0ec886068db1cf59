// SPDX-License-Identifier: EPL-2.0

// Package sound implements the Sound contract the renderer drives once
// per block, plus the two built-in implementations: static (whole buffer
// resident in memory) and streaming (fed from a decoder goroutine).
//
//	data, _ := sound.LoadStatic(src, sound.DefaultStaticSoundSettings())
//	s := sound.NewStatic(data)
//	s.Process(out, info)
package sound
