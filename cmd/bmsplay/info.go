// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ik5/bmsmix/chart"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info <chart>",
	Short: "Print chart headers and sample usage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := chart.ParseFile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, key := range slices.Sorted(maps.Keys(c.Metadata)) {
			fmt.Fprintf(out, "%-10s %s\n", key, c.Metadata[key])
		}

		var measures int
		m := c.Measures()
		for _, ok := m.Next(); ok; _, ok = m.Next() {
			measures++
		}

		ids := c.ReferencedIDs()
		undefined := 0
		for _, id := range ids {
			if _, ok := c.Samples[id]; !ok {
				undefined++
			}
		}

		fmt.Fprintf(out, "\ntempo      %d bpm (%d ms per measure)\n", c.BPM, c.MeasureLengthMs())
		fmt.Fprintf(out, "records    %d in %d measures\n", len(c.Records), measures)
		fmt.Fprintf(out, "samples    %d defined, %d used, %d used but undefined\n", len(c.Samples), len(ids), undefined)

		return nil
	},
}
