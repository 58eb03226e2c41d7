// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/bmsmix/formats/wav"
)

var (
	outPath  string
	bitDepth int
)

func init() {
	renderCmd.Flags().StringVarP(&outPath, "output", "o", "out.wav", "WAV file to write")
	renderCmd.Flags().IntVar(&bitDepth, "bits", 16, "bit depth of the WAV file (16, 24 or 32)")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <chart>",
	Short: "Render a chart to a mono WAV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		song, err := loadSong(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		f, err := os.Create(outPath)
		if err != nil {
			return err
		}

		frames, err := wav.Encode(f, song.Mixer(), bitDepth)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		log.Printf("wrote %s: %d samples at %d Hz", outPath, frames, song.SampleRate())
		return nil
	},
}
