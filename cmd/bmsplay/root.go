// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/bmsmix"
	"github.com/ik5/bmsmix/mixer"
)

var (
	assetsDir string
	rate      int
	gain      float32
	prefetch  bool
)

var rootCmd = &cobra.Command{
	Use:   "bmsplay",
	Short: "Play BMS charts",
	Long: `bmsplay reads a BMS chart, decodes the samples it references and
mixes them into one stream, either to the speakers or to a WAV file.`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&assetsDir, "assets", "", "directory holding the samples (default: the chart's directory)")
	pf.IntVar(&rate, "rate", bmsmix.DefaultSampleRate, "output sample rate in Hz")
	pf.Float32Var(&gain, "gain", mixer.DefaultGain, "gain applied to every voice")
	pf.BoolVar(&prefetch, "prefetch", true, "decode every sample before starting")
}

// loadSong applies the shared flags.
func loadSong(ctx context.Context, path string) (*bmsmix.Song, error) {
	opts := []bmsmix.Option{
		bmsmix.WithSampleRate(rate),
		bmsmix.WithGain(gain),
	}
	if assetsDir != "" {
		opts = append(opts, bmsmix.WithAssets(os.DirFS(assetsDir)))
	}

	song, err := bmsmix.Load(path, opts...)
	if err != nil {
		return nil, err
	}

	if prefetch {
		if err := song.Prefetch(ctx); err != nil {
			return nil, err
		}
	}

	return song, nil
}
