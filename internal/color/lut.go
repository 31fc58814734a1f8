// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package color

// decodeLUT maps an 8-bit sRGB channel to linear float32.
// 256 entries, computed with the same curve as SRGBToLinear.
var decodeLUT [256]float32

func init() {
	for i := range decodeLUT {
		decodeLUT[i] = SRGBToLinear(float32(i) / 255.0)
	}
}

// DecodeU8 widens an rgba8 vertex color and applies the color stage.
func DecodeU8(c ColorU8, space Space) ColorF32 {
	if space != SpaceSRGBDecode {
		return U8ToF32(c)
	}
	return ColorF32{
		R: decodeLUT[c.R],
		G: decodeLUT[c.G],
		B: decodeLUT[c.B],
		A: float32(c.A) / 255.0,
	}
}
