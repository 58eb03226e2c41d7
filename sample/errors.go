// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"errors"
	"fmt"

	"github.com/ik5/bmsmix/chart"
)

var ErrUndefined = errors.New("no sample definition")

// ResourceError describes a sample that could not be made playable.
// It never stops playback; the cache logs it and the event is dropped.
// The id is printed the way charts spell it, e.g. "0Z".
type ResourceError struct {
	ID   int
	Name string
	Err  error
}

func (e *ResourceError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("sample %s: %v", chart.FormatID(e.ID), e.Err)
	}
	return fmt.Sprintf("sample %s (%s): %v", chart.FormatID(e.ID), e.Name, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }
