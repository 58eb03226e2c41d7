// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/bmsmix/audio"
	"github.com/ik5/bmsmix/utils"
)

// Encode streams src into ws as signed integer PCM at bitDepth (16, 24 or 32).
// The header sizes are patched on completion, which is why ws must seek.
// It returns the number of frames written.
func Encode(ws io.WriteSeeker, src audio.Source, bitDepth int) (int, error) {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	channels := src.Channels()
	enc := gowav.NewEncoder(ws, src.SampleRate(), bitDepth, channels, formatPCM)

	floats := make([]float32, 4096*channels)
	intBuf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: src.SampleRate()},
		Data:           make([]int, len(floats)),
		SourceBitDepth: bitDepth,
	}

	total := 0
	for {
		n, err := src.ReadSamples(floats)
		if n > 0 {
			intBuf.Data = intBuf.Data[:n]
			for i, f := range floats[:n] {
				intBuf.Data[i] = utils.Float32ToInt(f, bitDepth)
			}
			if werr := enc.Write(intBuf); werr != nil {
				return total, fmt.Errorf("wav: writing samples: %w", werr)
			}
			total += n / channels
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return total, fmt.Errorf("wav: reading source: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return total, fmt.Errorf("wav: finalizing: %w", err)
	}

	return total, nil
}
