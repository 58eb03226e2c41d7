// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"log"
	"runtime"
)

// DefaultSampleRate is the rate every cached buffer is converted to unless overridden.
const DefaultSampleRate = 44100

type Option func(*Cache)

// WithSampleRate sets the rate decoded samples are resampled to.
// Non-positive values are ignored.
func WithSampleRate(rate int) Option {
	return func(c *Cache) {
		if rate > 0 {
			c.rate = rate
		}
	}
}

// WithLogger routes resource failures to l. A nil logger keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithConcurrency bounds the number of parallel decodes during Prefetch.
func WithConcurrency(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

func defaultConcurrency() int {
	return runtime.GOMAXPROCS(0)
}
