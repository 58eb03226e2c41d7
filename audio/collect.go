// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

const maxEmptyReads = 64

// Collect drains src into a mono Buffer at targetRate.
//
// The pipeline is the same one used for streaming conversion:
//  1. Resample to targetRate with cubic interpolation (skipped when the rates already match)
//  2. Average all channels down to mono
//  3. Read everything into memory
//
// src is closed before Collect returns.
func Collect(src Source, targetRate int) (*Buffer, error) {
	if targetRate <= 0 {
		return nil, ErrInvalidRate
	}

	var stage Source = src
	if src.SampleRate() != targetRate {
		stage = NewResampler(src, targetRate)
	}
	mono := NewMonoMixer(stage)
	defer mono.Close()

	// Pre-size for roughly one second, most one-shot samples are shorter.
	samples := make([]float32, 0, targetRate)
	buf := make([]float32, 4096)
	empty := 0

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("collect: %w", err)
		}

		// Some decoders report (0, nil) before EOF, tolerate a few of those.
		if n == 0 {
			empty++
			if empty > maxEmptyReads {
				return nil, ErrSourceStalled
			}
			continue
		}
		empty = 0
	}

	return NewBuffer(targetRate, samples), nil
}
