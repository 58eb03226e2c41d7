// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"io"
	"math"
	"testing"

	"github.com/ik5/bmsmix/audio"
	"github.com/ik5/bmsmix/internal/audiotest"
	"github.com/ik5/bmsmix/sequencer"
)

const testRate = 1000

type eventList struct {
	events []sequencer.Event
	pulls  int
}

func (l *eventList) Next() (sequencer.Event, bool) {
	if len(l.events) == 0 {
		return sequencer.Event{}, false
	}
	l.pulls++
	ev := l.events[0]
	l.events = l.events[1:]
	return ev, true
}

func constant(value float32, n int) *audio.Buffer {
	s := make([]float32, n)
	for i := range s {
		s[i] = value
	}
	return audio.NewBuffer(testRate, s)
}

func event(offsetMs int64, buf *audio.Buffer) sequencer.Event {
	return sequencer.Event{OffsetMs: offsetMs, Voice: buf.NewVoice()}
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func drain(m *Mixer) []float32 {
	var out []float32
	for s, ok := m.Next(); ok; s, ok = m.Next() {
		out = append(out, s)
	}
	return out
}

func TestMixerOverlappingVoices(t *testing.T) {
	t.Parallel()

	const amp = 0.5
	long := constant(amp, testRate)
	short := constant(amp, testRate/2)

	m := New(&eventList{events: []sequencer.Event{event(0, long), event(0, short)}}, testRate)
	out := drain(m)

	if len(out) != testRate {
		t.Fatalf("got %d samples, want %d", len(out), testRate)
	}

	both := 2 * DefaultGain * amp
	single := DefaultGain * amp
	for i, s := range out {
		want := single
		if i < testRate/2 {
			want = both
		}
		if !near(s, want) {
			t.Fatalf("sample %d = %v, want %v", i, s, want)
		}
	}
}

func TestMixerStartsAtOffset(t *testing.T) {
	t.Parallel()

	buf := constant(1, 3)
	m := New(&eventList{events: []sequencer.Event{event(10, buf)}}, testRate, WithGain(1))
	out := drain(m)

	if len(out) != 13 {
		t.Fatalf("got %d samples, want 13", len(out))
	}
	for i, s := range out {
		want := float32(0)
		if i >= 10 {
			want = 1
		}
		if s != want {
			t.Errorf("sample %d = %v, want %v", i, s, want)
		}
	}
}

func TestMixerOffsetToSampleIndex(t *testing.T) {
	t.Parallel()

	// 44100 Hz: 500 ms is sample 22050, 1 ms truncates to sample 44.
	tests := []struct {
		offset int64
		want   int64
	}{
		{0, 0},
		{1, 44},
		{500, 22050},
		{2769, 122112},
	}

	m := New(&eventList{}, 44100)
	for _, tt := range tests {
		if got := m.startSample(sequencer.Event{OffsetMs: tt.offset}); got != tt.want {
			t.Errorf("startSample(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestMixerLateEventStillStarts(t *testing.T) {
	t.Parallel()

	buf := constant(1, 2)
	events := &eventList{events: []sequencer.Event{event(5, buf), event(3, buf)}}
	m := New(events, testRate, WithGain(1))

	out := drain(m)
	want := []float32{0, 0, 0, 0, 0, 2, 2}
	if len(out) != len(want) {
		t.Fatalf("got %v, want %v", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestMixerPullsEventsLazily(t *testing.T) {
	t.Parallel()

	buf := constant(1, 1)
	events := &eventList{events: []sequencer.Event{event(0, buf), event(100, buf), event(200, buf)}}
	m := New(events, testRate)

	m.Next()
	if events.pulls != 2 {
		t.Errorf("pulls after first sample = %d, want 2", events.pulls)
	}
	if m.Active() != 0 {
		t.Errorf("Active() = %d, want 0 after a one sample voice", m.Active())
	}
	if m.Position() != 1 {
		t.Errorf("Position() = %d, want 1", m.Position())
	}
}

func TestMixerEmpty(t *testing.T) {
	t.Parallel()

	m := New(&eventList{}, testRate)
	if s, ok := m.Next(); ok {
		t.Errorf("Next() = %v, true, want end of stream", s)
	}

	n, err := m.ReadSamples(make([]float32, 16))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = %d, %v, want 0, EOF", n, err)
	}
}

func TestMixerSkipsEventsWithoutVoice(t *testing.T) {
	t.Parallel()

	buf := constant(1, 2)
	events := &eventList{events: []sequencer.Event{{OffsetMs: 0}, event(1, buf)}}
	out := drain(New(events, testRate, WithGain(1)))

	want := []float32{0, 1, 1}
	if len(out) != len(want) {
		t.Fatalf("got %v, want %v", out, want)
	}
}

func TestMixerReadSamples(t *testing.T) {
	t.Parallel()

	buf := constant(1, 100)
	m := New(&eventList{events: []sequencer.Event{event(0, buf), event(50, buf)}}, testRate)

	if m.SampleRate() != testRate || m.Channels() != 1 {
		t.Fatalf("format = %d Hz x %d, want %d Hz mono", m.SampleRate(), m.Channels(), testRate)
	}

	out, err := audiotest.Drain(m, 7)
	if err != nil {
		t.Fatalf("Drain() error = %v", err)
	}
	if len(out) != 150 {
		t.Fatalf("got %d samples, want 150", len(out))
	}
	if !near(out[49], DefaultGain) || !near(out[50], 2*DefaultGain) || !near(out[149], DefaultGain) {
		t.Errorf("unexpected levels: %v %v %v", out[49], out[50], out[149])
	}
}

func TestMixerFeedsResampler(t *testing.T) {
	t.Parallel()

	buf := constant(1, testRate)
	m := New(&eventList{events: []sequencer.Event{event(0, buf)}}, testRate)

	out, err := audiotest.Drain(audio.NewResampler(m, 2*testRate), 256)
	if err != nil {
		t.Fatalf("Drain() error = %v", err)
	}
	if len(out) < 2*testRate-4 || len(out) > 2*testRate+4 {
		t.Errorf("got %d samples, want about %d", len(out), 2*testRate)
	}
}

func BenchmarkMixer(b *testing.B) {
	buf := constant(0.5, 4410)

	for b.Loop() {
		events := make([]sequencer.Event, 64)
		for i := range events {
			events[i] = event(int64(i*10), buf)
		}
		m := New(&eventList{events: events}, 44100)
		for _, ok := m.Next(); ok; _, ok = m.Next() {
		}
	}
}
