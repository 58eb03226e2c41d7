// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/ik5/bmsmix/audio"
)

// Stats counts what the cache has done so far.
type Stats struct {
	// Decodes is the number of files decoded, successful or not.
	Decodes int
	// Failures is the number of distinct ids or files that could not be resolved.
	Failures int
	// Cached is the number of decoded buffers held.
	Cached int
}

type entry struct {
	buf *audio.Buffer
	err error
}

// Cache turns sample ids into playable voices.
//
// Each file is decoded at most once; every later request for it gets a new
// Voice over the same Buffer. Failures are remembered too, so a broken file
// is opened once and reported once.
type Cache struct {
	table       map[int]string
	fsys        fs.FS
	reg         *audio.Registry
	rate        int
	logger      *log.Logger
	concurrency int

	mtx       sync.Mutex
	entries   map[string]entry
	undefined map[int]struct{}
	decodes   int
	group     singleflight.Group
}

// New creates a cache over the id -> file name table of a chart.
// Names are resolved inside fsys and decoded with the decoders of reg.
func New(table map[int]string, fsys fs.FS, reg *audio.Registry, opts ...Option) *Cache {
	c := &Cache{
		table:       table,
		fsys:        fsys,
		reg:         reg,
		rate:        DefaultSampleRate,
		logger:      log.Default(),
		concurrency: defaultConcurrency(),
		entries:     make(map[string]entry),
		undefined:   make(map[int]struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Cache) SampleRate() int { return c.rate }

// Resolve returns a fresh voice for id, or false if the sample is not
// playable. The reason is logged the first time it is seen.
func (c *Cache) Resolve(id int) (*audio.Voice, bool) {
	name, ok := c.lookup(id)
	if !ok {
		return nil, false
	}

	buf, err := c.load(id, name)
	if err != nil {
		return nil, false
	}

	return buf.NewVoice(), true
}

// Prefetch decodes the files behind ids in parallel so that later calls to
// Resolve never block on decoding. Unplayable samples are logged and skipped;
// the only error returned is the context's.
func (c *Cache) Prefetch(ctx context.Context, ids ...int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			break
		}

		name, ok := c.lookup(id)
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, _ = c.load(id, name)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (c *Cache) Stats() Stats {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	s := Stats{Decodes: c.decodes, Failures: len(c.undefined)}
	for _, e := range c.entries {
		if e.err != nil {
			s.Failures++
		} else {
			s.Cached++
		}
	}

	return s
}

// lookup maps id to its cleaned asset path, so every spelling of one file
// shares a cache entry.
func (c *Cache) lookup(id int) (string, bool) {
	name, ok := c.table[id]
	if ok {
		return cleanName(name), true
	}

	c.mtx.Lock()
	_, reported := c.undefined[id]
	c.undefined[id] = struct{}{}
	c.mtx.Unlock()

	if !reported {
		c.logger.Printf("%v", &ResourceError{ID: id, Err: ErrUndefined})
	}

	return "", false
}

func (c *Cache) cached(name string) (entry, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	e, ok := c.entries[name]
	return e, ok
}

// load returns the buffer for the cleaned path name, decoding it on first use.
// Concurrent callers for the same name share one decode.
func (c *Cache) load(id int, name string) (*audio.Buffer, error) {
	if e, ok := c.cached(name); ok {
		return e.buf, e.err
	}

	v, _, _ := c.group.Do(name, func() (any, error) {
		if e, ok := c.cached(name); ok {
			return e, nil
		}

		buf, err := c.decode(name)

		c.mtx.Lock()
		c.decodes++
		e := entry{buf: buf, err: err}
		c.entries[name] = e
		c.mtx.Unlock()

		if err != nil {
			c.logger.Printf("%v", &ResourceError{ID: id, Name: name, Err: err})
		}

		return e, nil
	})

	e := v.(entry)
	return e.buf, e.err
}

func (c *Cache) decode(name string) (*audio.Buffer, error) {
	if c.fsys == nil {
		return nil, fs.ErrNotExist
	}

	f, actual, err := c.open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := c.reg.ForFile(actual)
	if err != nil {
		return nil, err
	}

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", actual, err)
	}

	return audio.Collect(src, c.rate)
}

// open finds name in the asset tree. Charts often reference a file whose
// extension was changed after conversion (kick.wav shipped as kick.ogg), so
// when name is missing the other registered extensions are tried.
func (c *Cache) open(clean string) (fs.File, string, error) {
	if !fs.ValidPath(clean) {
		return nil, "", fmt.Errorf("invalid path %q: %w", clean, fs.ErrInvalid)
	}

	f, err := c.fsys.Open(clean)
	if err == nil {
		return f, clean, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, "", err
	}

	ext := path.Ext(clean)
	stem := strings.TrimSuffix(clean, ext)
	for _, format := range c.reg.Formats() {
		alt := stem + "." + format
		if strings.EqualFold(alt, clean) {
			continue
		}
		if f, altErr := c.fsys.Open(alt); altErr == nil {
			return f, alt, nil
		}
	}

	return nil, "", err
}

// cleanName maps a chart file name to an fs.FS path.
func cleanName(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), `\`, "/")
	name = path.Clean("/" + name)
	return strings.TrimPrefix(name, "/")
}
