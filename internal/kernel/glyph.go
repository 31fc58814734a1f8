// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package kernel

import "github.com/chewxy/math32"

// Glyph holds the per-vertex scalars read by the distance-field path.
// They come from Vertex.Config (offset, peak, flag) and Vertex.Smoothing.
type Glyph struct {
	// Offset shifts the edge; 0.5 leaves it at the field's midpoint.
	Offset float32
	// Peak is stored at half scale: the fold happens at 2*Peak, so the
	// default 0.5 folds at full coverage and never reflects.
	Peak float32
	// Flag is 1 for distance-field sources and 0 for plain coverage.
	Flag float32
	// Smoothing converts the field ramp into a one-pixel screen ramp.
	Smoothing float32
}

// Clamp01 clamps x to [0, 1].
func Clamp01(x float32) float32 {
	return math32.Min(math32.Max(x, 0), 1)
}

// Channel selects the coverage of one texel through a channel mask, as
// dot(texel, mask). A one-hot mask picks a single channel, so up to four
// glyph sets can share one RGBA atlas.
func Channel(texel, mask [4]float32) float32 {
	return texel[0]*mask[0] + texel[1]*mask[1] + texel[2]*mask[2] + texel[3]*mask[3]
}

// Coverage converts one raw sample into final alpha.
//
//	c = max(sample, 1 - flag)
//	f = p - |c - p|        p = 2*peak
//	a = clamp((f + 2*offset - 1) * smoothing, 0, 1)
func Coverage(sample float32, g Glyph) float32 {
	c := math32.Max(sample, 1-g.Flag)
	p := 2 * g.Peak
	folded := p - math32.Abs(c-p)
	return Clamp01((folded + 2*g.Offset - 1) * g.Smoothing)
}

// SubpixelTaps are the horizontal tap positions, in screen texels, used by
// the subpixel path for the red, green and blue channels.
var SubpixelTaps = [3]float32{-1.0 / 3.0, 0, 1.0 / 3.0}

// TapUV returns the sample position for one subpixel tap given the
// horizontal screen-space derivative of the texture coordinate.
func TapUV(u, v, dudx, dvdx, tap float32) (float32, float32) {
	return u + dudx*tap, v + dvdx*tap
}

// SubpixelCoverage runs Coverage once per tap sample. samples are ordered
// red, green, blue.
func SubpixelCoverage(samples [3]float32, g Glyph) [3]float32 {
	return [3]float32{
		Coverage(samples[0], g),
		Coverage(samples[1], g),
		Coverage(samples[2], g),
	}
}
