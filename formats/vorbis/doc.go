// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// Most converted BMS packs ship their samples as .ogg, so this is the second
// format every registry should carry next to WAV. Samples are interleaved
// float32 at the stream's rate and channel count; reads always return whole
// frames.
//
//	reg.Register("ogg", vorbis.Decoder{})
package vorbis
