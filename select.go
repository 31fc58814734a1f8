// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uirender

// ContentKind is what a batch draws.
type ContentKind uint8

const (
	// KindPlain is an image or solid color.
	KindPlain ContentKind = iota
	// KindGlyphBinary is a glyph rasterized to plain coverage.
	KindGlyphBinary
	// KindGlyph is a distance-field glyph.
	KindGlyph
	// KindShape is a distance-field shape with fill and outline.
	KindShape
	// KindMaskLayer is a clip layer drawn into the mask target.
	KindMaskLayer
)

var kindNames = [...]string{"plain", "glyph_binary", "glyph", "shape", "mask_layer"}

func (k ContentKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Select picks the program variant for a batch. It is a pure function of
// its arguments.
//
// Subpixel only applies to distance-field glyphs and is dropped when the
// device has no derivatives. Mask layers are never masked themselves.
func Select(kind ContentKind, masked, subpixel bool, caps Capabilities) Variant {
	v := Variant{Masked: masked, ColorSpace: caps.ColorSpace}
	switch kind {
	case KindGlyphBinary:
		v.Program = ProgramTextSimple
	case KindGlyph:
		v.Program = ProgramSDFText
		v.Subpixel = subpixel && caps.Derivatives
	case KindShape:
		v.Program = ProgramSDFOutline
	case KindMaskLayer:
		v.Program = ProgramMaskWrite
		v.Masked = false
	default:
		v.Program = ProgramStandard
	}
	return v
}
