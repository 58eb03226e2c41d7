// SPDX-License-Identifier: EPL-2.0

// Package sequencer turns a chart into a time ordered stream of sample triggers.
package sequencer

import (
	"iter"

	"github.com/ik5/bmsmix/audio"
	"github.com/ik5/bmsmix/chart"
)

// Resolver supplies a fresh voice for a sample id.
// sample.Cache is the usual implementation.
type Resolver interface {
	Resolve(id int) (*audio.Voice, bool)
}

// Event is one sample trigger.
type Event struct {
	// OffsetMs is the start time, in milliseconds from the start of the chart.
	OffsetMs int64
	// Channel and SampleID come from the record that produced the event.
	Channel  int
	SampleID int
	Voice    *audio.Voice
}

// cursor tracks how far one record of the current measure has been read.
type cursor struct {
	rec  *chart.Record
	next int
}

func (c *cursor) pending() bool { return c.next < len(c.rec.Codes) }

// Sequencer walks a chart measure by measure and emits events with
// non-decreasing offsets. It is single pass; create a new one to replay.
type Sequencer struct {
	measures *chart.Measures
	resolver Resolver
	lengthMs int64

	number  int64
	cursors []cursor
	active  bool
	done    bool
}

func New(c *chart.Chart, r Resolver) *Sequencer {
	return &Sequencer{
		measures: c.Measures(),
		resolver: r,
		lengthMs: c.MeasureLengthMs(),
	}
}

// Next returns the following event, or false when the chart is exhausted.
// Empty slots and samples the resolver cannot provide produce no event.
func (s *Sequencer) Next() (Event, bool) {
	for !s.done {
		if !s.active {
			m, ok := s.measures.Next()
			if !ok {
				s.done = true
				break
			}
			s.load(m)
			continue
		}

		i := s.earliest()
		if i < 0 {
			s.active = false
			continue
		}

		c := &s.cursors[i]
		slot, slots := c.next, len(c.rec.Codes)
		code := c.rec.Codes[slot]
		c.next++

		if code == 0 {
			continue
		}

		voice, ok := s.resolver.Resolve(code)
		if !ok {
			continue
		}

		return Event{
			OffsetMs: s.offset(slot, slots),
			Channel:  c.rec.Channel,
			SampleID: code,
			Voice:    voice,
		}, true
	}

	return Event{}, false
}

// All adapts the sequencer for range loops. It consumes the sequencer.
func (s *Sequencer) All() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			ev, ok := s.Next()
			if !ok || !yield(ev) {
				return
			}
		}
	}
}

func (s *Sequencer) load(m chart.Measure) {
	s.number = int64(m.Number)
	s.cursors = s.cursors[:0]
	for i := range m.Records {
		s.cursors = append(s.cursors, cursor{rec: &m.Records[i]})
	}
	s.active = true
}

// earliest picks the pending cursor with the smallest next/len fraction,
// comparing by cross multiplication. Ties go to the first cursor, and a
// cursor at fraction zero wins immediately. It returns -1 when the measure
// is used up.
func (s *Sequencer) earliest() int {
	best := -1
	for i := range s.cursors {
		c := &s.cursors[i]
		if !c.pending() {
			continue
		}
		if c.next == 0 {
			return i
		}
		if best < 0 {
			best = i
			continue
		}

		b := &s.cursors[best]
		if c.next*len(b.rec.Codes) < b.next*len(c.rec.Codes) {
			best = i
		}
	}

	return best
}

// offset is lengthMs * (number + slot/slots) in integer arithmetic.
func (s *Sequencer) offset(slot, slots int) int64 {
	n := int64(slots)
	return (s.lengthMs*s.number*n + s.lengthMs*int64(slot)) / n
}
