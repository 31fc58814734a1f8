// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"testing"

	"github.com/gogpu/uirender"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func newShaper(t *testing.T) *Shaper {
	t.Helper()
	sh, err := NewShaper(goregular.TTF)
	require.NoError(t, err)
	return sh
}

func TestShapeLatin(t *testing.T) {
	sh := newShaper(t)
	runs := sh.Shape("Hello", 16)
	require.Len(t, runs, 1)
	run := runs[0]
	assert.Equal(t, LTR, run.Direction)
	require.Len(t, run.Glyphs, 5)

	for i := 1; i < len(run.Glyphs); i++ {
		assert.Greater(t, run.Glyphs[i].X, run.Glyphs[i-1].X)
	}
	assert.Greater(t, run.Advance, float32(0))
	assert.Equal(t, 0, run.Glyphs[0].Cluster)
}

func TestShapeEmpty(t *testing.T) {
	assert.Nil(t, newShaper(t).Shape("", 16))
}

func TestShapeScalesWithSize(t *testing.T) {
	sh := newShaper(t)
	small := sh.Shape("WWW", 10)[0].Advance
	large := sh.Shape("WWW", 20)[0].Advance
	assert.InDelta(t, 2*small, large, 1)
}

func TestShapeCachesRuns(t *testing.T) {
	sh := newShaper(t)
	first := sh.Shape("cached", 16)
	second := sh.Shape("cached", 16)
	require.Len(t, second, len(first))
	assert.Equal(t, first[0].Advance, second[0].Advance)

	sh.Shape("cached", 18)
	stats := sh.CacheStats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(2), stats.Misses)
	assert.Equal(t, 2, stats.Len)
}

func TestShapeMixedDirection(t *testing.T) {
	runs := newShaper(t).Shape("abc אבג", 16)
	require.GreaterOrEqual(t, len(runs), 2)

	var sawRTL bool
	var pen float32
	for _, r := range runs {
		if r.Direction == RTL {
			sawRTL = true
		}
		if len(r.Glyphs) > 0 {
			assert.GreaterOrEqual(t, r.Glyphs[0].X, pen-1e-3, "runs follow each other")
		}
		pen += r.Advance
	}
	assert.True(t, sawRTL)
}

func TestNewShaperRejectsGarbage(t *testing.T) {
	_, err := NewShaper([]byte("not a font"))
	assert.Error(t, err)
}

func TestDefaultRenderSettings(t *testing.T) {
	s := DefaultRenderSettings()
	assert.Equal(t, float32(0.5), s.PseudoBold)
	assert.Equal(t, float32(0.07), s.Smoothing)
	assert.Equal(t, float32(0.07), s.OutlineSmoothing)
	assert.False(t, s.HasOutline())
}

// TestGlyphEdgeAtFieldMidpoint shades the default glyph config through the
// text program: the atlas edge (0.5) lands on half coverage and the ramp
// spans Smoothing.
func TestGlyphEdgeAtFieldMidpoint(t *testing.T) {
	s := DefaultRenderSettings()
	v := uirender.Variant{Program: uirender.ProgramSDFText}
	u := uirender.DefaultUniforms(uirender.Identity())

	alpha := func(sample float32) float32 {
		rgba, _ := v.Shade(uirender.Fragment{
			Color:     s.TextColor,
			Config:    s.GlyphConfig(),
			Smoothing: s.VertexSmoothing(),
			Content:   [4]float32{sample, sample, sample, 1},
		}, &u)
		return rgba[3]
	}
	assert.InDelta(t, 0.5, alpha(0.5), 1e-4)
	assert.InDelta(t, 0, alpha(0.5-0.035), 1e-4)
	assert.InDelta(t, 1, alpha(0.5+0.035), 1e-4)

	bold := s
	bold.PseudoBold = 0.6
	assert.Greater(t, func() float32 {
		rgba, _ := v.Shade(uirender.Fragment{
			Color: s.TextColor, Config: bold.GlyphConfig(), Smoothing: bold.VertexSmoothing(),
			Content: [4]float32{0.45, 0, 0, 1},
		}, &u)
		return rgba[3]
	}(), alpha(0.45))
}

func TestOutlineThresholds(t *testing.T) {
	s := DefaultRenderSettings()
	s.OutlineWidth = 0.7
	s.OutlineColor = [4]float32{0, 0, 0, 1}
	require.True(t, s.HasOutline())

	th := s.OutlineThresholds()
	for i := 1; i < 4; i++ {
		assert.LessOrEqual(t, th[i-1], th[i])
	}

	v := uirender.Variant{Program: uirender.ProgramSDFOutline}
	u := uirender.DefaultUniforms(uirender.Identity())
	u.Thresholds = th
	u.Outline = s.OutlineColor
	shade := func(sample float32) ([4]float32, bool) {
		return v.Shade(uirender.Fragment{
			Color:   s.TextColor,
			Config:  s.GlyphConfig(),
			Content: [4]float32{sample, 0, 0, 1},
		}, &u)
	}

	fill, _ := shade(1)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, fill)

	outline, _ := shade(0.4)
	assert.InDelta(t, 0, outline[0], 1e-6)
	assert.InDelta(t, 1, outline[3], 1e-6)

	edge, _ := shade(0.3)
	assert.InDelta(t, 0.5, edge[3], 1e-3)

	_, discard := shade(0)
	assert.True(t, discard)
}

func TestOutlineThresholdsNarrowOutline(t *testing.T) {
	s := DefaultRenderSettings()
	s.OutlineWidth = 0.51
	th := s.OutlineThresholds()
	assert.Equal(t, th[2], th[3], "outline zone collapses onto the glyph edge")
}

func TestLayout(t *testing.T) {
	sh := newShaper(t)
	a, err := NewAtlas(goregular.TTF, "Hi there", DefaultAtlasOptions())
	require.NoError(t, err)

	s := DefaultRenderSettings()
	s.X, s.Y = 10, 40
	s.Subpixel = true
	b, err := Layout(sh.Shape("Hi there", 16), a, 16, s)
	require.NoError(t, err)

	assert.Equal(t, uirender.KindGlyph, b.Kind)
	assert.True(t, b.Subpixel)
	// Seven visible glyphs; the space has no cell.
	assert.Len(t, b.Vertices, 7*4)
	assert.Nil(t, b.Indices)
	assert.Equal(t, [4]float32{1, 0, 0, 0}, b.Uniforms.ChannelMask)

	first := b.Vertices[0]
	assert.Equal(t, s.GlyphConfig(), first.Config)
	assert.Less(t, first.Pos[1], float32(40), "cap top is above the baseline")
	assert.Greater(t, b.Vertices[2].Pos[1], first.Pos[1])
	for _, v := range b.Vertices {
		assert.GreaterOrEqual(t, v.UV[0], float32(0))
		assert.LessOrEqual(t, v.UV[0], float32(1))
	}
}

func TestLayoutChannel(t *testing.T) {
	sh := newShaper(t)
	a, err := NewAtlas(goregular.TTF, "g", DefaultAtlasOptions())
	require.NoError(t, err)

	s := DefaultRenderSettings()
	s.Channel = 1
	b, err := Layout(sh.Shape("g", 16), a, 16, s)
	require.NoError(t, err)
	assert.Equal(t, [4]float32{0, 1, 0, 0}, b.Uniforms.ChannelMask)
}

func TestLayoutSkipsMissingGlyphs(t *testing.T) {
	sh := newShaper(t)
	a, err := NewAtlas(goregular.TTF, "a", DefaultAtlasOptions())
	require.NoError(t, err)

	b, err := Layout(sh.Shape("abc", 16), a, 16, DefaultRenderSettings())
	require.NoError(t, err)
	assert.Len(t, b.Vertices, 4)
}

func TestLayoutOutlineMakesShapeBatch(t *testing.T) {
	sh := newShaper(t)
	a, err := NewAtlas(goregular.TTF, "o", DefaultAtlasOptions())
	require.NoError(t, err)

	s := DefaultRenderSettings()
	s.OutlineWidth = 0.7
	s.Subpixel = true
	b, err := Layout(sh.Shape("o", 16), a, 16, s)
	require.NoError(t, err)
	assert.Equal(t, uirender.KindShape, b.Kind)
	assert.False(t, b.Subpixel)
	assert.Equal(t, s.OutlineThresholds(), b.Uniforms.Thresholds)
}
