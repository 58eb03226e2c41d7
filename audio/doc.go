// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-level building blocks shared by the
// chart player.
//
//   - Source is the streaming contract every decoder, converter and mixer implements
//   - Decoder and Registry pick a container decoder by file extension
//   - Resampler and MonoMixer convert decoded audio to the player's fixed format
//   - Buffer and Voice hold decoded one-shot samples for repeated playback
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0]. ReadSamples returns
// io.EOF once the stream is finished.
//
// # Shared Buffers
//
// A chart triggers the same sample many times, often overlapping itself.
// Collect decodes a Source once into an immutable mono Buffer at the player
// rate; every trigger then gets its own Voice:
//
//	buf, err := audio.Collect(src, 44100)
//	a := buf.NewVoice()
//	b := buf.NewVoice() // independent of a
//
// Voices only hold a read position, so creating one is cheap and nothing is
// decoded twice.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForFile("drums/kick.wav")
package audio
