// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package color

import "github.com/chewxy/math32"

// srgbKnee is the encoded value where the sRGB curve switches from the
// linear segment to the power segment.
const srgbKnee = 0.04045

// SRGBToLinear converts an sRGB component to linear (EOTF).
// Formula: if s > 0.04045: ((s+0.055)/1.055)^2.4; else: s/12.92
// Input and output are in range [0,1].
func SRGBToLinear(s float32) float32 {
	if s > srgbKnee {
		return math32.Pow((s+0.055)/1.055, 2.4)
	}
	return s / 12.92
}

// U8ToF32 converts ColorU8 to ColorF32 the way a unorm8x4 vertex attribute
// is widened by the GPU.
func U8ToF32(c ColorU8) ColorF32 {
	return ColorF32{
		R: float32(c.R) / 255.0,
		G: float32(c.G) / 255.0,
		B: float32(c.B) / 255.0,
		A: float32(c.A) / 255.0,
	}
}
