// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uirender

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectProgramPerKind(t *testing.T) {
	caps := DefaultCapabilities()
	tests := []struct {
		kind ContentKind
		want Program
	}{
		{KindPlain, ProgramStandard},
		{KindGlyphBinary, ProgramTextSimple},
		{KindGlyph, ProgramSDFText},
		{KindShape, ProgramSDFOutline},
		{KindMaskLayer, ProgramMaskWrite},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			v := Select(tt.kind, false, false, caps)
			assert.Equal(t, tt.want, v.Program)
			assert.False(t, v.Masked)
			assert.False(t, v.Subpixel)
		})
	}
}

func TestSelectSubpixelOnlyForGlyphs(t *testing.T) {
	caps := DefaultCapabilities()
	for _, kind := range []ContentKind{KindPlain, KindGlyphBinary, KindShape, KindMaskLayer} {
		assert.False(t, Select(kind, false, true, caps).Subpixel, kind.String())
	}
	assert.True(t, Select(KindGlyph, false, true, caps).Subpixel)
}

func TestSelectDerivativeFallback(t *testing.T) {
	caps := DefaultCapabilities()
	caps.Derivatives = false

	got := Select(KindGlyph, true, true, caps)
	want := Variant{Program: ProgramSDFText, Masked: true}
	assert.Equal(t, want, got)
	assert.False(t, got.UsesDerivatives())
}

func TestSelectMaskLayerNeverMasked(t *testing.T) {
	v := Select(KindMaskLayer, true, false, DefaultCapabilities())
	assert.False(t, v.Masked)
}

func TestSelectCarriesColorSpace(t *testing.T) {
	caps := DefaultCapabilities()
	caps.ColorSpace = ColorSpaceSRGB
	v := Select(KindPlain, true, false, caps)
	assert.Equal(t, ColorSpaceSRGB, v.ColorSpace)
	assert.Equal(t, "standard+mask+srgb", v.String())
}

// TestSelectIsPure checks that repeated and interleaved calls agree.
func TestSelectIsPure(t *testing.T) {
	gles := GLES2Capabilities()
	full := DefaultCapabilities()
	first := Select(KindGlyph, false, true, gles)
	_ = Select(KindGlyph, false, true, full)
	assert.Equal(t, first, Select(KindGlyph, false, true, gles))
}

// TestSelectReachesOnlyListedVariants checks that every selectable variant
// is one AllVariants builds.
func TestSelectReachesOnlyListedVariants(t *testing.T) {
	for _, caps := range []Capabilities{DefaultCapabilities(), GLES2Capabilities()} {
		listed := make(map[Variant]bool)
		for _, v := range AllVariants(caps) {
			listed[v] = true
		}
		for kind := KindPlain; kind <= KindMaskLayer; kind++ {
			for _, masked := range []bool{false, true} {
				for _, sub := range []bool{false, true} {
					v := Select(kind, masked, sub, caps)
					assert.True(t, listed[v], "%s not in AllVariants(%+v)", v, caps)
				}
			}
		}
	}
}

func TestAllVariants(t *testing.T) {
	assert.Len(t, AllVariants(DefaultCapabilities()), 11)
	assert.Len(t, AllVariants(GLES2Capabilities()), 9)

	srgb := DefaultCapabilities()
	srgb.ColorSpace = ColorSpaceSRGB
	for _, v := range AllVariants(srgb) {
		assert.Equal(t, ColorSpaceSRGB, v.ColorSpace)
	}
}

func TestVariantKeyRoundTrip(t *testing.T) {
	for _, v := range AllVariants(DefaultCapabilities()) {
		assert.Equal(t, v, variantOf(v.key()))
	}
}

func TestParseLanguage(t *testing.T) {
	for _, l := range []Language{LanguageWGSL, LanguageSPIRV, LanguageGLSL100, LanguageGLSL330} {
		got, err := ParseLanguage(l.String())
		assert.NoError(t, err)
		assert.Equal(t, l, got)
	}
	_, err := ParseLanguage("hlsl")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestProgramSource(t *testing.T) {
	v := Variant{Program: ProgramSDFText, Subpixel: true}

	vs, fs, err := ProgramSource(v, LanguageGLSL100)
	assert.NoError(t, err)
	assert.Contains(t, vs, "attribute")
	assert.Contains(t, fs, "GL_OES_standard_derivatives")

	vs, fs, err = ProgramSource(v, LanguageWGSL)
	assert.NoError(t, err)
	assert.Equal(t, vs, fs)
	assert.Contains(t, vs, "@fragment")

	_, _, err = ProgramSource(Variant{Program: ProgramStandard, Subpixel: true}, LanguageWGSL)
	var pe *ProgramError
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, StageGenerate, pe.Stage)
}
