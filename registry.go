// SPDX-License-Identifier: EPL-2.0

package bmsmix

import (
	"github.com/ik5/bmsmix/audio"
	"github.com/ik5/bmsmix/formats/aiff"
	"github.com/ik5/bmsmix/formats/mp3"
	"github.com/ik5/bmsmix/formats/vorbis"
	"github.com/ik5/bmsmix/formats/wav"
)

// DefaultRegistry returns a new registry with every bundled decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}
