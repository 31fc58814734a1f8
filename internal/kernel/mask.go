// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package kernel

// MaskCoord maps a window-space fragment position to mask texture
// coordinates. The mask is always viewport-sized.
func MaskCoord(fragX, fragY, viewportW, viewportH float32) (float32, float32) {
	return fragX / viewportW, fragY / viewportH
}

// Renormalize recovers mask alpha from a quantized sample.
func Renormalize(sample, bias, scale float32) float32 {
	return (sample - bias) * scale
}

// MaskAlpha is the factor multiplied into a masked variant's output.
func MaskAlpha(sample, bias, scale float32) float32 {
	return Clamp01(Renormalize(sample, bias, scale))
}

// ApplyMask multiplies a premultiplied color by mask alpha.
func ApplyMask(rgba [4]float32, m float32) [4]float32 {
	return [4]float32{rgba[0] * m, rgba[1] * m, rgba[2] * m, rgba[3] * m}
}
