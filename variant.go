// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uirender

import (
	"github.com/gogpu/uirender/internal/color"
	"github.com/gogpu/uirender/internal/shadergen"
)

// Program is one of the fragment programs.
type Program uint8

const (
	// ProgramStandard modulates the content texture by the vertex color.
	ProgramStandard Program = iota
	// ProgramTextSimple uses the content red channel as binary coverage.
	ProgramTextSimple
	// ProgramSDFText turns a distance sample into glyph alpha.
	ProgramSDFText
	// ProgramSDFOutline shades distance-field shapes with fill and outline.
	ProgramSDFOutline
	// ProgramMaskWrite draws a clip layer into the mask target.
	ProgramMaskWrite
)

func (p Program) String() string { return p.gen().String() }

func (p Program) gen() shadergen.Program {
	switch p {
	case ProgramTextSimple:
		return shadergen.ProgramTextSimple
	case ProgramSDFText:
		return shadergen.ProgramSDFText
	case ProgramSDFOutline:
		return shadergen.ProgramSDFOutline
	case ProgramMaskWrite:
		return shadergen.ProgramMaskWrite
	default:
		return shadergen.ProgramStandard
	}
}

// ColorSpace is how vertex colors are interpreted.
type ColorSpace uint8

const (
	// ColorSpaceLinear passes vertex colors through.
	ColorSpaceLinear ColorSpace = iota
	// ColorSpaceSRGB decodes vertex RGB from sRGB to linear in the vertex
	// stage, for linear framebuffers. Alpha is never decoded.
	ColorSpaceSRGB
)

func (s ColorSpace) String() string { return s.space().String() }

func (s ColorSpace) space() color.Space {
	if s == ColorSpaceSRGB {
		return color.SpaceSRGBDecode
	}
	return color.SpaceLinear
}

// Variant is one compiled program: a Program plus the flags that change
// its code.
type Variant struct {
	Program    Program
	Masked     bool
	Subpixel   bool
	ColorSpace ColorSpace
}

// String returns the variant name, e.g. "sdf_text+mask+subpixel".
func (v Variant) String() string { return v.key().Name() }

// UsesDerivatives reports whether the variant needs screen-space
// derivatives.
func (v Variant) UsesDerivatives() bool { return v.key().UsesDerivatives() }

func (v Variant) key() shadergen.Key {
	return shadergen.Key{
		Program:  v.Program.gen(),
		Masked:   v.Masked,
		Subpixel: v.Subpixel,
		SRGB:     v.ColorSpace == ColorSpaceSRGB,
	}
}

func variantOf(k shadergen.Key) Variant {
	v := Variant{Masked: k.Masked, Subpixel: k.Subpixel}
	if k.SRGB {
		v.ColorSpace = ColorSpaceSRGB
	}
	switch k.Program {
	case shadergen.ProgramTextSimple:
		v.Program = ProgramTextSimple
	case shadergen.ProgramSDFText:
		v.Program = ProgramSDFText
	case shadergen.ProgramSDFOutline:
		v.Program = ProgramSDFOutline
	case shadergen.ProgramMaskWrite:
		v.Program = ProgramMaskWrite
	}
	return v
}

// AllVariants returns every valid variant in caps.ColorSpace. Subpixel
// variants are left out when caps has no derivative support, since
// Select never returns them there.
func AllVariants(caps Capabilities) []Variant {
	var out []Variant
	for _, k := range shadergen.AllKeys() {
		v := variantOf(k)
		if v.ColorSpace != caps.ColorSpace {
			continue
		}
		if v.UsesDerivatives() && !caps.Derivatives {
			continue
		}
		out = append(out, v)
	}
	return out
}
