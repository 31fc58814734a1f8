// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package color

import (
	"math"
	"testing"
)

// TestSRGBToLinearEdgeCases tests edge cases for sRGB to linear conversion.
func TestSRGBToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"knee", 0.04045, 0.04045 / 12.92},
		{"just above knee", 0.04046, float32(math.Pow((0.04046+0.055)/1.055, 2.4))},
		{"mid gray", 0.5, float32(math.Pow((0.5+0.055)/1.055, 2.4))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.input)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSRGBToLinearMonotonic(t *testing.T) {
	prev := SRGBToLinear(0)
	for i := 1; i <= 4096; i++ {
		v := SRGBToLinear(float32(i) / 4096)
		if v < prev {
			t.Fatalf("decode not monotonic at %d/4096: %v < %v", i, v, prev)
		}
		prev = v
	}
}

// TestSRGBKneeContinuity checks both branches agree where they meet.
func TestSRGBKneeContinuity(t *testing.T) {
	linear := float32(srgbKnee / 12.92)
	power := float32(math.Pow((srgbKnee+0.055)/1.055, 2.4))
	if !floatNear(linear, power, 1e-5) {
		t.Errorf("branches disagree at knee: linear=%v power=%v", linear, power)
	}
}

func TestU8ToF32(t *testing.T) {
	got := U8ToF32(ColorU8{R: 0, G: 51, B: 255, A: 128})
	want := ColorF32{R: 0, G: 0.2, B: 1, A: float32(128) / 255}
	if !floatNear(got.R, want.R, 1e-7) || !floatNear(got.G, want.G, 1e-7) ||
		!floatNear(got.B, want.B, 1e-7) || !floatNear(got.A, want.A, 1e-7) {
		t.Errorf("U8ToF32() = %+v, want %+v", got, want)
	}
}

func TestMul(t *testing.T) {
	got := ColorF32{R: 1, G: 0.5, B: 0.25, A: 0.5}.Mul(ColorF32{R: 0.5, G: 1, B: 0, A: 0.5})
	want := [4]float32{0.5, 0.5, 0, 0.25}
	if got.RGBA() != want {
		t.Errorf("Mul() = %v, want %v", got.RGBA(), want)
	}
}

func TestSpaceString(t *testing.T) {
	if SpaceLinear.String() != "linear" || SpaceSRGBDecode.String() != "srgb-decode" {
		t.Errorf("unexpected names: %q %q", SpaceLinear, SpaceSRGBDecode)
	}
	if Space(9).String() != "unknown" {
		t.Errorf("out of range space should be unknown")
	}
}

func floatNear(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
