// SPDX-License-Identifier: EPL-2.0

// Package mixer sums the voices started by a sequencer into one mono stream.
package mixer

import (
	"io"

	"github.com/ik5/bmsmix/audio"
	"github.com/ik5/bmsmix/sequencer"
)

// DefaultGain is applied to every voice. It keeps up to five full scale
// voices from clipping.
const DefaultGain float32 = 1.0 / 5

// EventSource yields events with non-decreasing offsets.
type EventSource interface {
	Next() (sequencer.Event, bool)
}

type Option func(*Mixer)

// WithGain sets the per-voice gain.
func WithGain(gain float32) Option {
	return func(m *Mixer) {
		m.gain = gain
	}
}

// Mixer produces one output sample per call by starting due events and
// summing the active voices. The stream ends once the event source is
// exhausted and the last voice has finished.
//
// Mixer implements audio.Source as a mono stream at the rate given to New.
type Mixer struct {
	events EventSource
	rate   int
	gain   float32

	pending    sequencer.Event
	hasPending bool
	drained    bool

	voices []*audio.Voice
	pos    int64
}

func New(events EventSource, sampleRate int, opts ...Option) *Mixer {
	m := &Mixer{
		events: events,
		rate:   sampleRate,
		gain:   DefaultGain,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Next returns the next output sample, or false when the stream is over.
func (m *Mixer) Next() (float32, bool) {
	m.startDue()

	if !m.hasPending && len(m.voices) == 0 {
		return 0, false
	}

	var sum float32
	live := m.voices[:0]
	for _, v := range m.voices {
		s, ok := v.Next()
		if !ok {
			continue
		}
		sum += m.gain * s
		if v.Remaining() > 0 {
			live = append(live, v)
		}
	}
	clear(m.voices[len(live):])
	m.voices = live

	m.pos++

	return sum, true
}

// startDue starts every pending event whose start sample has been reached.
// An event that is already late starts immediately instead of being lost.
func (m *Mixer) startDue() {
	for {
		m.peek()
		if !m.hasPending || m.startSample(m.pending) > m.pos {
			return
		}

		if m.pending.Voice != nil {
			m.voices = append(m.voices, m.pending.Voice)
		}
		m.hasPending = false
	}
}

func (m *Mixer) peek() {
	if m.hasPending || m.drained {
		return
	}

	ev, ok := m.events.Next()
	if !ok {
		m.drained = true
		return
	}

	m.pending = ev
	m.hasPending = true
}

func (m *Mixer) startSample(ev sequencer.Event) int64 {
	return ev.OffsetMs * int64(m.rate) / 1000
}

// Position is the index of the next sample Next will return.
func (m *Mixer) Position() int64 { return m.pos }

// Active is the number of voices currently playing.
func (m *Mixer) Active() int { return len(m.voices) }

func (m *Mixer) Gain() float32 { return m.gain }

func (m *Mixer) SampleRate() int { return m.rate }
func (m *Mixer) Channels() int   { return 1 }
func (m *Mixer) BufSize() int    { return 4096 }
func (m *Mixer) Close() error    { return nil }

// ReadSamples fills dst from Next. It returns io.EOF together with the last
// samples of the stream.
func (m *Mixer) ReadSamples(dst []float32) (int, error) {
	for i := range dst {
		s, ok := m.Next()
		if !ok {
			return i, io.EOF
		}
		dst[i] = s
	}

	return len(dst), nil
}

var _ audio.Source = (*Mixer)(nil)
