// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer III files with github.com/hajimehoshi/go-mp3.
//
// The decoder always produces interleaved stereo float32 samples in [-1, 1]
// at the file's own rate. Charts use MP3 mostly for long background tracks;
// sample.Cache downmixes and resamples them with audio.Collect like any
// other format:
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	buf, err := audio.Collect(src, 44100)
//
// Decoding only; there is no MP3 encoder.
package mp3
