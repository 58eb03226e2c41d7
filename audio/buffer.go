// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"time"
)

// Buffer is a fully decoded mono stream held in memory.
// It is never written after NewBuffer returns, so any number of voices can
// read it at the same time without coordination.
type Buffer struct {
	rate    int
	samples []float32
}

// NewBuffer takes ownership of samples. Callers must not modify the slice afterwards.
func NewBuffer(rate int, samples []float32) *Buffer {
	return &Buffer{rate: rate, samples: samples}
}

func (b *Buffer) SampleRate() int { return b.rate }

// Len is the number of mono samples in the buffer.
func (b *Buffer) Len() int { return len(b.samples) }

func (b *Buffer) Duration() time.Duration {
	if b.rate <= 0 {
		return 0
	}
	return time.Duration(len(b.samples)) * time.Second / time.Duration(b.rate)
}

// NewVoice returns a cursor positioned at the first sample.
func (b *Buffer) NewVoice() *Voice {
	return &Voice{buf: b}
}

// Voice is one playback position over a shared Buffer.
// Advancing a voice never affects other voices of the same buffer.
type Voice struct {
	buf *Buffer
	pos int
}

// Next returns the sample under the cursor and advances it.
// ok is false once the buffer is exhausted.
func (v *Voice) Next() (sample float32, ok bool) {
	if v.pos >= len(v.buf.samples) {
		return 0, false
	}

	sample = v.buf.samples[v.pos]
	v.pos++

	return sample, true
}

// Remaining is the number of samples left before the voice is exhausted.
func (v *Voice) Remaining() int { return len(v.buf.samples) - v.pos }

// Buffer is the shared data this voice reads from.
func (v *Voice) Buffer() *Buffer { return v.buf }

func (v *Voice) SampleRate() int { return v.buf.rate }
func (v *Voice) Channels() int   { return 1 }
func (v *Voice) BufSize() int    { return 4096 }
func (v *Voice) Close() error    { return nil }

func (v *Voice) ReadSamples(dst []float32) (int, error) {
	if v.pos >= len(v.buf.samples) {
		return 0, io.EOF
	}

	n := copy(dst, v.buf.samples[v.pos:])
	v.pos += n

	if v.pos >= len(v.buf.samples) {
		return n, io.EOF
	}

	return n, nil
}
