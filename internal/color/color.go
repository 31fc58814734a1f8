// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package color provides the color types and sRGB transfer functions used
// by the vertex color stage.
package color

// Space selects how vertex colors are interpreted before blending.
type Space uint8

const (
	// SpaceLinear passes vertex colors through unchanged.
	SpaceLinear Space = iota
	// SpaceSRGBDecode decodes gamma-encoded vertex colors to linear light.
	SpaceSRGBDecode
)

// String returns the space name.
func (s Space) String() string {
	switch s {
	case SpaceLinear:
		return "linear"
	case SpaceSRGBDecode:
		return "srgb-decode"
	default:
		return "unknown"
	}
}

// ColorF32 represents a color with float32 components in [0,1].
// Alpha is always linear (never gamma-encoded).
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 represents a color with uint8 components in [0,255].
// Alpha is always linear (never gamma-encoded).
type ColorU8 struct {
	R, G, B, A uint8
}

// Mul multiplies two colors component-wise.
func (c ColorF32) Mul(o ColorF32) ColorF32 {
	return ColorF32{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// RGBA returns the components as an array.
func (c ColorF32) RGBA() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
