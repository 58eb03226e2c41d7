// SPDX-License-Identifier: EPL-2.0

package bmsmix

import (
	"io/fs"
	"log"

	"github.com/ik5/bmsmix/audio"
	"github.com/ik5/bmsmix/mixer"
	"github.com/ik5/bmsmix/sample"
)

// DefaultSampleRate is the output rate of a song unless WithSampleRate is used.
const DefaultSampleRate = sample.DefaultSampleRate

type config struct {
	rate        int
	gain        float32
	logger      *log.Logger
	registry    *audio.Registry
	assets      fs.FS
	concurrency int
}

func defaultConfig() config {
	return config{
		rate:   DefaultSampleRate,
		gain:   mixer.DefaultGain,
		logger: log.Default(),
	}
}

// Option configures Load and New.
type Option func(*config)

// WithSampleRate sets the rate samples are decoded to and the mixer runs at.
func WithSampleRate(rate int) Option {
	return func(c *config) {
		if rate > 0 {
			c.rate = rate
		}
	}
}

// WithGain sets the per-voice gain of the mixer.
func WithGain(gain float32) Option {
	return func(c *config) { c.gain = gain }
}

// WithLogger receives sample failures. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRegistry replaces DefaultRegistry.
func WithRegistry(r *audio.Registry) Option {
	return func(c *config) { c.registry = r }
}

// WithAssets sets where sample files are looked up. Load defaults to the
// directory of the chart file.
func WithAssets(fsys fs.FS) Option {
	return func(c *config) { c.assets = fsys }
}

// WithConcurrency bounds parallel decoding in Prefetch.
func WithConcurrency(n int) Option {
	return func(c *config) { c.concurrency = n }
}
