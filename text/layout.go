// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"github.com/gogpu/uirender"
	"golang.org/x/image/font/sfnt"
)

// Layout turns shaped runs into one glyph batch: a quad per visible glyph
// sampling atlas a. Text drawn with an outline becomes a shape batch. The
// caller sets the batch transform and content texture.
//
// Glyphs missing from the atlas are skipped.
func Layout(runs []Run, a *Atlas, size float32, s RenderSettings) (uirender.Batch, error) {
	b := uirender.Batch{
		Kind:     uirender.KindGlyph,
		Subpixel: s.Subpixel,
		Uniforms: uirender.DefaultUniforms(uirender.Identity()),
	}
	b.Uniforms.ChannelMask = uirender.ChannelMaskFor(s.Channel)
	if s.HasOutline() {
		b.Kind = uirender.KindShape
		b.Subpixel = false
		b.Uniforms.Outline = s.OutlineColor
		b.Uniforms.Thresholds = s.OutlineThresholds()
	}

	tmpl := uirender.Vertex{
		Color:     s.TextColor,
		Config:    s.GlyphConfig(),
		Smoothing: s.VertexSmoothing(),
	}
	scale := size / float32(a.PPEM)
	missing := 0
	for _, run := range runs {
		for _, g := range run.Glyphs {
			cell, ok := a.Glyph(sfnt.GlyphIndex(g.ID))
			if !ok {
				missing++
				continue
			}
			if cell.Empty() {
				continue
			}
			x := s.X + g.X
			y := s.Y + g.Y
			q := uirender.Quad(
				x+float32(cell.Bounds.Min.X)*scale, y+float32(cell.Bounds.Min.Y)*scale,
				x+float32(cell.Bounds.Max.X)*scale, y+float32(cell.Bounds.Max.Y)*scale,
				cell.UV[0], cell.UV[1], cell.UV[2], cell.UV[3],
				tmpl,
			)
			if err := b.AddQuad(q); err != nil {
				return uirender.Batch{}, err
			}
		}
	}
	if missing > 0 {
		uirender.Logger().Debug("text: glyphs missing from atlas", "count", missing)
	}
	return b, nil
}
