// SPDX-License-Identifier: EPL-2.0

package chart

import (
	"slices"
	"strconv"
	"strings"
)

const (
	// DefaultBPM applies when a chart carries no BPM header.
	DefaultBPM = 130

	// MaxSampleID is the largest id two base-36 digits can express.
	MaxSampleID = 36*36 - 1

	// beatsPerMeasure is fixed, charts in this format are always 4/4.
	beatsPerMeasure = 4
)

// Record is one data line: the object codes of a single channel in a single measure.
// The number of codes sets the subdivision of the measure for this record.
type Record struct {
	Measure int
	Channel int
	Codes   []int
}

// Chart is a parsed chart. It is not modified after Parse returns.
type Chart struct {
	// Metadata holds every "#KEY value" header, the last occurrence wins.
	Metadata map[string]string
	// Samples maps sample ids to file names relative to the chart's asset root.
	Samples map[int]string
	// Records are sorted by measure; records of one measure keep file order.
	Records []Record
	// BPM is the fixed tempo of the whole chart.
	BPM int
}

func (c *Chart) Title() string  { return c.Metadata["TITLE"] }
func (c *Chart) Artist() string { return c.Metadata["ARTIST"] }
func (c *Chart) Genre() string  { return c.Metadata["GENRE"] }

// MeasureLengthMs is the duration of one measure in whole milliseconds.
func (c *Chart) MeasureLengthMs() int64 {
	return beatsPerMeasure * 60 * 1000 / int64(c.BPM)
}

// Measures returns a fresh single-pass grouper over the chart's records.
func (c *Chart) Measures() *Measures {
	return NewMeasures(c.Records)
}

// ReferencedIDs lists the distinct non-zero object codes used by any record, ascending.
func (c *Chart) ReferencedIDs() []int {
	seen := make(map[int]struct{})
	for _, r := range c.Records {
		for _, code := range r.Codes {
			if code != 0 {
				seen[code] = struct{}{}
			}
		}
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// FormatID renders a sample id the way charts spell it, e.g. 1 -> "01", 1295 -> "ZZ".
func FormatID(id int) string {
	s := strconv.FormatInt(int64(id), 36)
	if len(s) < 2 {
		s = "0" + s
	}
	return strings.ToUpper(s)
}
