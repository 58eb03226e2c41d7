// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files.
//
// # Decoding
//
// Decoder handles integer PCM at 8, 16, 24 and 32 bits, any channel count
// and any rate, through github.com/go-audio/wav. Chunks other than "fmt "
// and "data" are skipped. Compressed and float formats are rejected with
// ErrOnlyPCMSupported.
//
//	src, err := wav.Decoder{}.Decode(f)
//
// # Encoding
//
// Encode streams any audio.Source into a seekable writer, which is how the
// bmsplay render command writes a mixed chart to disk:
//
//	out, _ := os.Create("song.wav")
//	frames, err := wav.Encode(out, song.Mixer(), 16)
//
// WriteWAV16 writes already converted 16-bit samples to any io.Writer. It
// does not need to seek, so it also works on pipes and in-memory buffers.
package wav
