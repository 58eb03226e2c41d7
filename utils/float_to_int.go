// SPDX-License-Identifier: EPL-2.0

package utils

// Clamp limits x to the normalized sample range [-1, 1].
func Clamp(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// Float32ToInt16 converts a normalized sample to 16-bit PCM, clipping
// anything outside [-1, 1]. 32767 is used for both signs so +1 does not overflow.
func Float32ToInt16(x float32) int16 {
	return int16(Clamp(x) * 32767.0)
}

// Float32ToInt converts a normalized sample to a signed integer of the given bit depth.
func Float32ToInt(x float32, bitDepth int) int {
	full := float64(int64(1)<<(bitDepth-1) - 1)
	return int(float64(Clamp(x)) * full)
}
