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
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "half positive", input: 0.5, want: 16383},
		{name: "half negative", input: -0.5, want: -16383},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp under min", input: -1.5, want: -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToInt16(tt.input)
			// Allow for rounding differences of ±1
			if diff := math.Abs(float64(got) - float64(tt.want)); diff > 1 {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInt16ToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input int16
		want  float32
	}{
		{name: "zero", input: 0, want: 0.0},
		{name: "max", input: math.MaxInt16, want: 32767.0 / 32768.0},
		{name: "min", input: math.MinInt16, want: -1.0},
		{name: "mid", input: 16384, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Int16ToFloat32(tt.input)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("Int16ToFloat32(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestConversionRoundTrip checks that converting back and forth stays within
// two quantization steps (truncation plus the 32767/32768 scale mismatch).
func TestConversionRoundTrip(t *testing.T) {
	t.Parallel()

	for f := float32(-1.0); f <= 1.0; f += 0.01 {
		back := Int16ToFloat32(Float32ToInt16(f))
		if math.Abs(float64(back-f)) > 2.0/32768.0 {
			t.Fatalf("round trip of %v drifted to %v", f, back)
		}
	}
}

func TestRoundUpToMultiple(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		m    int
		want int
	}{
		{name: "already aligned", n: 2048, m: 1024, want: 2048},
		{name: "round up", n: 1025, m: 1024, want: 2048},
		{name: "zero", n: 0, m: 1024, want: 0},
		{name: "one", n: 1, m: 1024, want: 1024},
		{name: "unit period", n: 37, m: 1, want: 37},
		{name: "non-positive multiple", n: 37, m: 0, want: 37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RoundUpToMultiple(tt.n, tt.m); got != tt.want {
				t.Errorf("RoundUpToMultiple(%d, %d) = %d, want %d", tt.n, tt.m, got, tt.want)
			}
		})
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	var result int16

	b.ReportAllocs()

	for b.Loop() {
		result = Float32ToInt16(0.5)
	}

	_ = result
}
