// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package kernel

// Premultiply returns rgba with color channels scaled by alpha.
func Premultiply(rgba [4]float32) [4]float32 {
	return [4]float32{rgba[0] * rgba[3], rgba[1] * rgba[3], rgba[2] * rgba[3], rgba[3]}
}

// Modulate multiplies two colors component-wise.
func Modulate(a, b [4]float32) [4]float32 {
	return [4]float32{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// GlyphFragment is the premultiplied output of the single-tap glyph path
// for a straight-alpha color.
func GlyphFragment(color [4]float32, sample float32, g Glyph) [4]float32 {
	a := Coverage(sample, g)
	p := Premultiply(color)
	return [4]float32{p[0] * a, p[1] * a, p[2] * a, p[3] * a}
}

// SubpixelFragment is the premultiplied output of the three-tap path.
// Each color channel takes its own tap; alpha takes the green tap.
func SubpixelFragment(color [4]float32, samples [3]float32, g Glyph) [4]float32 {
	a := SubpixelCoverage(samples, g)
	p := Premultiply(color)
	return [4]float32{p[0] * a[0], p[1] * a[1], p[2] * a[2], p[3] * a[1]}
}
