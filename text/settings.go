// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import "github.com/gogpu/uirender"

// RenderSettings control how laid out text is shaded.
type RenderSettings struct {
	// TextColor is the straight-alpha fill color.
	TextColor [4]uint8

	// OutlineColor is the straight-alpha outline color.
	OutlineColor [4]float32

	// PseudoBold thickens (above 0.5) or thins (below 0.5) glyphs without
	// a bolder font. 0.5 draws the glyph as designed.
	PseudoBold float32

	// OutlineWidth is the outline edge on the same scale as PseudoBold.
	// An outline is drawn only when it is greater than PseudoBold.
	OutlineWidth float32

	// Smoothing is the width of the glyph edge ramp in field units.
	// Smaller is sharper, larger is blurrier.
	Smoothing float32

	// OutlineSmoothing is the width of the outline edge ramp.
	OutlineSmoothing float32

	// Subpixel requests per-channel coverage where the device allows it.
	Subpixel bool

	// Channel is the atlas channel holding this text's field, 0 for red.
	// Several fonts can share one RGBA atlas, one per channel.
	Channel int

	// X and Y offset the text origin, the left end of the baseline.
	X, Y float32
}

// DefaultRenderSettings returns white text with no outline.
func DefaultRenderSettings() RenderSettings {
	return RenderSettings{
		TextColor:        [4]uint8{255, 255, 255, 255},
		OutlineColor:     [4]float32{1, 1, 1, 0},
		PseudoBold:       0.5,
		Smoothing:        0.07,
		OutlineSmoothing: 0.07,
	}
}

// HasOutline reports whether the settings draw an outline.
func (s *RenderSettings) HasOutline() bool {
	return s.OutlineWidth > s.PseudoBold
}

// GlyphConfig returns the vertex config that puts the glyph edge at
// field value 1-PseudoBold with a ramp Smoothing wide centered on it.
func (s *RenderSettings) GlyphConfig() [4]float32 {
	return uirender.GlyphConfig((s.PseudoBold+s.Smoothing/2)/2, 0.5)
}

// VertexSmoothing is the distance-to-alpha multiplier for Smoothing.
func (s *RenderSettings) VertexSmoothing() float32 {
	if s.Smoothing <= 0 {
		return 1 << 16
	}
	return 1 / s.Smoothing
}

// OutlineThresholds returns the ascending zone boundaries of the outline
// program in outward distance (1 - field value). The fill blends into the
// outline across the glyph edge and the outline fades out across its own
// edge.
func (s *RenderSettings) OutlineThresholds() [4]float32 {
	t1 := s.PseudoBold - s.Smoothing/2
	t2 := s.PseudoBold + s.Smoothing/2
	t3 := max(t2, s.OutlineWidth-s.OutlineSmoothing/2)
	return [4]float32{t1 - s.OutlineSmoothing, t1, t2, t3}
}
