// SPDX-License-Identifier: EPL-2.0

// Package sample resolves chart sample ids to playable voices.
//
// A Cache is built from a chart's #WAVxx table and an fs.FS holding the
// audio files. The first request for a file decodes it into an
// audio.Buffer at the cache rate (mono); every request after that returns a
// new audio.Voice over the same buffer, so one decoded sample can play many
// times at once.
//
// Missing definitions, missing files and undecodable files are logged once
// and reported as unplayable. They never stop the caller.
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	cache := sample.New(c.Samples, os.DirFS(dir), reg)
//	if err := cache.Prefetch(ctx, c.ReferencedIDs()...); err != nil {
//	    return err
//	}
//	voice, ok := cache.Resolve(1)
package sample
