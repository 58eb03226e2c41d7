// SPDX-License-Identifier: EPL-2.0

package bmsmix

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ik5/bmsmix/audio"
	"github.com/ik5/bmsmix/chart"
	"github.com/ik5/bmsmix/mixer"
	"github.com/ik5/bmsmix/sample"
	"github.com/ik5/bmsmix/sequencer"
)

// Song is a parsed chart bound to its samples.
// Decoded samples are kept, so a song can be played or rendered many times.
type Song struct {
	Chart   *chart.Chart
	Samples *sample.Cache

	rate int
	gain float32
}

// Load parses the chart at path. Samples are looked up next to the chart
// unless WithAssets says otherwise.
func Load(path string, opts ...Option) (*Song, error) {
	c, err := chart.ParseFile(path)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	cfg.assets = os.DirFS(filepath.Dir(path))
	for _, opt := range opts {
		opt(&cfg)
	}

	return newSong(c, cfg), nil
}

// New binds an already parsed chart to the sample files in assets.
func New(c *chart.Chart, assets fs.FS, opts ...Option) *Song {
	cfg := defaultConfig()
	cfg.assets = assets
	for _, opt := range opts {
		opt(&cfg)
	}

	return newSong(c, cfg)
}

func newSong(c *chart.Chart, cfg config) *Song {
	reg := cfg.registry
	if reg == nil {
		reg = DefaultRegistry()
	}

	cacheOpts := []sample.Option{
		sample.WithSampleRate(cfg.rate),
		sample.WithLogger(cfg.logger),
	}
	if cfg.concurrency > 0 {
		cacheOpts = append(cacheOpts, sample.WithConcurrency(cfg.concurrency))
	}

	return &Song{
		Chart:   c,
		Samples: sample.New(c.Samples, cfg.assets, reg, cacheOpts...),
		rate:    cfg.rate,
		gain:    cfg.gain,
	}
}

func (s *Song) SampleRate() int { return s.rate }

// Prefetch decodes every sample the chart uses.
func (s *Song) Prefetch(ctx context.Context) error {
	return s.Samples.Prefetch(ctx, s.Chart.ReferencedIDs()...)
}

// Events starts a new pass over the chart's notes.
func (s *Song) Events() *sequencer.Sequencer {
	return sequencer.New(s.Chart, s.Samples)
}

// Mixer starts a new mono stream of the whole song at the song rate.
func (s *Song) Mixer() *mixer.Mixer {
	return mixer.New(s.Events(), s.rate, mixer.WithGain(s.gain))
}

// Render mixes the whole song into 16-bit mono PCM at the song rate.
func (s *Song) Render() ([]int16, error) {
	return ToMono16(s.Mixer(), s.rate, 4096)
}

// Length is the start time of the last note whose sample is defined.
// Samples may ring past it. Nothing is decoded or logged.
func (s *Song) Length() time.Duration {
	var last int64
	for ev := range sequencer.New(s.Chart, definedOnly(s.Chart.Samples)).All() {
		last = ev.OffsetMs
	}
	return time.Duration(last) * time.Millisecond
}

// definedOnly schedules every id with a #WAV line, without voices.
type definedOnly map[int]string

func (d definedOnly) Resolve(id int) (*audio.Voice, bool) {
	_, ok := d[id]
	return nil, ok
}
