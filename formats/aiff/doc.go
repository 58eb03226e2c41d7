// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files with github.com/go-audio/aiff.
//
// Integer PCM of 8, 16, 24 and 32 bits is supported; AIFF stores 8-bit data
// signed, unlike WAV. The decoder is registered for both the .aiff and the
// .aif extension by bmsmix.DefaultRegistry.
package aiff
