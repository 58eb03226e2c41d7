// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"zero", 0, 0},
		{"max positive", 1, math.MaxInt16},
		{"max negative", -1, -math.MaxInt16},
		{"half positive", 0.5, 16383},
		{"half negative", -0.5, -16383},
		{"clamp over max", 1.5, math.MaxInt16},
		{"clamp under min", -100, -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    float32
		bitDepth int
		want     int
	}{
		{1, 8, 127},
		{-1, 16, -32767},
		{0.5, 24, 4194303},
		{2, 32, math.MaxInt32},
	}

	for _, tt := range tests {
		if got := Float32ToInt(tt.input, tt.bitDepth); got != tt.want {
			t.Errorf("Float32ToInt(%v, %d) = %d, want %d", tt.input, tt.bitDepth, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	for in, want := range map[float32]float32{-3: -1, -0.25: -0.25, 0: 0, 0.9: 0.9, 7: 1} {
		if got := Clamp(in); got != want {
			t.Errorf("Clamp(%v) = %v, want %v", in, got, want)
		}
	}
}
