// SPDX-License-Identifier: EPL-2.0

// Package playback plays an audio.Source on the default output device.
package playback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/bmsmix/audio"
)

const pollInterval = 20 * time.Millisecond

// Sink owns the output device. The device allows one context per process,
// so a Sink is opened once and reused for every stream of the same format.
type Sink struct {
	ctx        *oto.Context
	sampleRate int
	channels   int
	mtx        sync.Mutex
}

var (
	shared     *Sink
	sharedErr  error
	sharedOnce sync.Once
)

// Open returns the process wide sink, creating it on first use.
// Later calls must ask for the same format.
func Open(sampleRate, channels int) (*Sink, error) {
	sharedOnce.Do(func() {
		shared, sharedErr = newSink(sampleRate, channels)
	})
	if sharedErr != nil {
		return nil, sharedErr
	}

	if shared.sampleRate != sampleRate || shared.channels != channels {
		return nil, fmt.Errorf("%w: open %d Hz x %d, want %d Hz x %d", ErrFormatMismatch,
			shared.sampleRate, shared.channels, sampleRate, channels)
	}

	return shared, nil
}

func newSink(sampleRate, channels int) (*Sink, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("playback: creating context: %w", err)
	}
	<-ready

	return &Sink{ctx: ctx, sampleRate: sampleRate, channels: channels}, nil
}

// Play streams src until it ends or ctx is cancelled. Streams on one sink
// are played one after another.
func (s *Sink) Play(ctx context.Context, src audio.Source) error {
	if src.SampleRate() != s.sampleRate || src.Channels() != s.channels {
		return fmt.Errorf("%w: source %d Hz x %d", ErrFormatMismatch, src.SampleRate(), src.Channels())
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	r := NewReader(src)
	p := s.ctx.NewPlayer(r)
	defer p.Close()

	p.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.Pause()
			return ctx.Err()
		case <-ticker.C:
			if p.IsPlaying() {
				continue
			}
			if err := p.Err(); err != nil {
				return err
			}
			return r.Err()
		}
	}
}

// Play opens the shared sink in the format of src and plays it.
func Play(ctx context.Context, src audio.Source) error {
	s, err := Open(src.SampleRate(), src.Channels())
	if err != nil {
		return err
	}
	return s.Play(ctx, src)
}
