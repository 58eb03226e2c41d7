// SPDX-License-Identifier: EPL-2.0

package chart

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	dataLine   = regexp.MustCompile(`^(\d{3})(\d{2}):((?:[0-9A-Za-z]{2})+)$`)
	sampleLine = regexp.MustCompile(`^#WAV([0-9A-Za-z]{2}) (.+)$`)
	metaLine   = regexp.MustCompile(`^#([A-Z]+) (.*)$`)
)

const maxLineSize = 1 << 20

// parser accumulates one chart while lines are fed to it.
type parser struct {
	chart   *Chart
	bpmLine int
}

func newParser() *parser {
	return &parser{chart: &Chart{
		Metadata: make(map[string]string),
		Samples:  make(map[int]string),
	}}
}

// Parse reads a chart from r.
func Parse(r io.Reader) (*Chart, error) {
	p := newParser()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if n == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		p.line(n, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("chart: reading: %w", err)
	}

	return p.finish()
}

// ParseLines parses a chart that is already split into lines.
func ParseLines(lines []string) (*Chart, error) {
	p := newParser()
	for i, line := range lines {
		p.line(i+1, line)
	}
	return p.finish()
}

// ParseFile opens and parses the chart at path.
func ParseFile(path string) (*Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// line classifies one line. The first matching form wins; anything else is skipped.
// Trailing whitespace is only dropped from values, so "#BPM " still counts as a
// BPM header with an empty value.
func (p *parser) line(n int, raw string) {
	line := strings.TrimRight(strings.TrimLeft(raw, " \t"), "\r\n")
	if strings.TrimSpace(line) == "" {
		return
	}

	if m := dataLine.FindStringSubmatch(strings.TrimRight(line, " \t")); m != nil {
		p.chart.Records = append(p.chart.Records, Record{
			Measure: atoi(m[1]),
			Channel: atoi(m[2]),
			Codes:   parseCodes(m[3]),
		})
		return
	}

	if m := sampleLine.FindStringSubmatch(line); m != nil {
		if name := strings.TrimSpace(m[2]); name != "" {
			p.chart.Samples[parseID(m[1])] = name
		}
		return
	}

	if m := metaLine.FindStringSubmatch(line); m != nil {
		p.chart.Metadata[m[1]] = strings.TrimRight(m[2], " \t")
		if m[1] == "BPM" {
			p.bpmLine = n
		}
	}
}

func (p *parser) finish() (*Chart, error) {
	c := p.chart

	c.BPM = DefaultBPM
	if v, ok := c.Metadata["BPM"]; ok {
		bpm, err := parseTempo(v)
		if err != nil || bpm <= 0 {
			return nil, &ParseError{Line: p.bpmLine, Key: "BPM", Value: v, Err: ErrInvalidTempo}
		}
		c.BPM = bpm
	}

	slices.SortStableFunc(c.Records, func(a, b Record) int {
		return a.Measure - b.Measure
	})

	return c, nil
}

// parseTempo accepts plain decimal digits only, no sign.
func parseTempo(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" || strings.TrimLeft(v, "0123456789") != "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(v)
}

// parseCodes splits an even-length base-36 string into two-digit codes.
func parseCodes(s string) []int {
	codes := make([]int, len(s)/2)
	for i := range codes {
		codes[i] = parseID(s[2*i : 2*i+2])
	}
	return codes
}

// parseID decodes two base-36 digits. Inputs come from the line patterns, so they are always valid.
func parseID(s string) int {
	v, _ := strconv.ParseUint(s, 36, 16)
	return int(v)
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
