// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/bmsmix/utils"
)

// Resampler converts src to a different sample rate using Catmull-Rom cubic
// interpolation over a four frame window. Channel count is preserved.
// When downsampling, a one-pole low-pass runs on the input to tame aliasing.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// window[0] = t-1, window[1] = t0, window[2] = t+1, window[3] = t+2
	window [4][]float32
	filled [4]bool
	primed bool

	// fractional position between window[1] and window[2]
	pos float64

	frame []float32
	eof   bool

	lowPass bool
	alpha   float32
	lpState []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		frame:    make([]float32, channels),
		lowPass:  step > 1.0,
		alpha:    0.5,
		lpState:  make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("resampler: %w", err)
	}
	return nil
}

// readFrame pulls exactly one frame from src into r.frame.
func (r *Resampler) readFrame() (bool, error) {
	n, err := r.src.ReadSamples(r.frame)
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("resampler: %w", err)
	}
	if err == io.EOF {
		r.eof = true
	}

	if n < r.channels {
		return false, nil
	}

	if r.lowPass {
		for c := range r.channels {
			r.frame[c] = r.alpha*r.frame[c] + (1-r.alpha)*r.lpState[c]
			r.lpState[c] = r.frame[c]
		}
	}

	return true, nil
}

// prime loads the first frame into both t-1 and t0, then reads ahead.
func (r *Resampler) prime() error {
	r.primed = true

	// Seed the filter with the raw first frame to avoid a fade-in transient.
	lowPass := r.lowPass
	r.lowPass = false
	ok, err := r.readFrame()
	r.lowPass = lowPass
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}

	copy(r.lpState, r.frame)
	copy(r.window[0], r.frame)
	copy(r.window[1], r.frame)
	r.filled[0], r.filled[1] = true, true

	for i := 2; i < len(r.window); i++ {
		if err := r.fill(i); err != nil {
			return err
		}
	}

	return nil
}

// fill reads the next source frame into window slot i.
func (r *Resampler) fill(i int) error {
	r.filled[i] = false
	if r.eof {
		return nil
	}

	ok, err := r.readFrame()
	if err != nil {
		return err
	}
	if ok {
		copy(r.window[i], r.frame)
		r.filled[i] = true
	}

	return nil
}

// advance shifts the window by one frame.
func (r *Resampler) advance() error {
	r.window[0], r.window[1], r.window[2], r.window[3] = r.window[1], r.window[2], r.window[3], r.window[0]
	r.filled[0], r.filled[1], r.filled[2] = r.filled[1], r.filled[2], r.filled[3]

	if err := r.fill(3); err != nil {
		return err
	}

	if !r.filled[1] {
		return io.EOF
	}

	return nil
}

// ReadSamples produces dst samples at the destination rate.
// dst length should be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	if !r.filled[1] {
		return 0, io.EOF
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range r.channels {
			y1 := r.window[1][c]
			y2 := y1
			if r.filled[2] {
				y2 = r.window[2][c]
			}
			y3 := y2
			if r.filled[3] {
				y3 = r.window[3][c]
			}
			out[c] = utils.CubicInterpolate(r.window[0][c], y1, y2, y3, x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
