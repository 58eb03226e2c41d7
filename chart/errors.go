// SPDX-License-Identifier: EPL-2.0

package chart

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTempo is returned when a BPM header is present but not a positive integer.
	ErrInvalidTempo = errors.New("invalid tempo")
)

// ParseError reports a chart line that makes the whole chart unusable.
type ParseError struct {
	Line  int // 1-based, 0 when the problem is not tied to one line
	Key   string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("chart: line %d: #%s %q: %v", e.Line, e.Key, e.Value, e.Err)
	}
	return fmt.Sprintf("chart: #%s %q: %v", e.Key, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
