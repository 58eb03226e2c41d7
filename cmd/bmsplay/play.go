// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ik5/bmsmix/playback"
)

func init() {
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <chart>",
	Short: "Play a chart on the default output device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		song, err := loadSong(ctx, args[0])
		if err != nil {
			return err
		}

		log.Printf("playing %q by %q, %d bpm", song.Chart.Title(), song.Chart.Artist(), song.Chart.BPM)

		err = playback.Play(ctx, song.Mixer())
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}
