// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var (
	ErrSource         = errors.New("playback: source failed")
	ErrFormatMismatch = errors.New("playback: source format differs from the open device")
)
