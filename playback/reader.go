// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/ik5/bmsmix/audio"
	"github.com/ik5/bmsmix/utils"
)

const bytesPerSample = 2

// Reader serves an audio.Source as signed 16-bit little endian PCM bytes,
// the layout the output device is opened with.
type Reader struct {
	src     audio.Source
	buf     []float32
	pending []byte
	err     error
}

func NewReader(src audio.Source) *Reader {
	return &Reader{src: src}
}

// Read never splits a sample across calls: bytes of a converted sample that
// do not fit in p are kept for the next call.
func (r *Reader) Read(p []byte) (int, error) {
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	if n == len(p) {
		return n, nil
	}
	if r.err != nil {
		return n, r.err
	}

	want := (len(p) - n + bytesPerSample - 1) / bytesPerSample
	if cap(r.buf) < want {
		r.buf = make([]float32, want)
	}
	buf := r.buf[:want]

	got, err := r.src.ReadSamples(buf)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			err = errors.Join(ErrSource, err)
		}
		r.err = err
	}

	var tmp [bytesPerSample]byte
	for _, s := range buf[:got] {
		binary.LittleEndian.PutUint16(tmp[:], uint16(utils.Float32ToInt16(s)))
		if n+bytesPerSample <= len(p) {
			copy(p[n:], tmp[:])
			n += bytesPerSample
			continue
		}
		k := copy(p[n:], tmp[:])
		n += k
		r.pending = append(r.pending, tmp[k:]...)
	}

	if n == 0 && r.err != nil {
		return 0, r.err
	}

	return n, nil
}

// Err reports the source failure that ended the stream, if any.
func (r *Reader) Err() error {
	if errors.Is(r.err, io.EOF) {
		return nil
	}
	return r.err
}
