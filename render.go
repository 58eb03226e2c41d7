// SPDX-License-Identifier: EPL-2.0

package bmsmix

import (
	"fmt"
	"io"

	"github.com/ik5/bmsmix/audio"
	"github.com/ik5/bmsmix/utils"
)

// ToMono16 drains src into mono 16-bit PCM at targetRate.
//
// The pipeline is:
//  1. Resample to targetRate with cubic interpolation (skipped when the rate already matches)
//  2. Average the channels down to mono
//  3. Clip to [-1, 1] and scale to int16
//
// bufferSize is the number of samples requested per read. src is closed
// before ToMono16 returns.
func ToMono16(src audio.Source, targetRate, bufferSize int) ([]int16, error) {
	if targetRate <= 0 {
		return nil, audio.ErrInvalidRate
	}
	if bufferSize <= 0 {
		return nil, audio.ErrInvalidDstSize
	}

	var stage audio.Source = src
	if src.SampleRate() != targetRate {
		stage = audio.NewResampler(src, targetRate)
	}
	mono := audio.NewMonoMixer(stage)
	defer mono.Close()

	pcm16 := make([]int16, 0, targetRate)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(x))
		}

		if err == io.EOF {
			return pcm16, nil
		}

		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
	}
}
