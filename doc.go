// SPDX-License-Identifier: EPL-2.0

// Package bmsmix plays and renders BMS-style rhythm charts.
//
// A chart names its samples with #WAVxx lines and places them on a measure
// grid with data lines. bmsmix parses the chart, schedules every note at an
// exact millisecond offset for the chart tempo, decodes each referenced
// sample once and mixes all sounding samples into a single mono stream.
//
// # Quick Start
//
//	song, err := bmsmix.Load("songs/demo/demo.bms")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Optional: decode every sample up front instead of on first use.
//	if err := song.Prefetch(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Real time: the mixer is an audio.Source.
//	err = playback.Play(ctx, song.Mixer())
//
//	// Offline: everything as 16-bit PCM.
//	pcm, err := song.Render()
//
// # Pipeline
//
// The stages live in their own packages and can be used separately:
//
//   - chart: parses the text format and groups records by measure
//   - sample: resolves sample ids to decoded, shared buffers
//   - sequencer: turns measures into time ordered events
//   - mixer: sums the voices of started events, one sample per call
//   - audio: Source, Decoder and Registry, plus resampling and downmixing
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: decoders
//   - playback: the output device
//
// # Supported Formats
//
// DefaultRegistry knows WAV (integer PCM), MP3, Ogg Vorbis and AIFF. Every
// sample is converted to mono at the song rate when it is first decoded.
//
// # Errors
//
// Only a broken chart stops loading (see chart.ParseError). Samples that are
// undefined, missing or undecodable are logged once and stay silent.
package bmsmix
