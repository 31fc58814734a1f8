// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uirender

import (
	"github.com/gogpu/uirender/internal/color"
	"github.com/gogpu/uirender/internal/kernel"
)

// Fragment is what one fragment of a variant reads: the interpolated
// vertex attributes and its texture samples.
type Fragment struct {
	Color     [4]uint8
	Config    [4]float32
	Smoothing float32

	// Content is the content texel at the fragment's UV.
	Content [4]float32
	// Taps are the content texels at the left, center and right subpixel
	// taps. Only subpixel variants read them.
	Taps [3][4]float32
	// MaskSample is the mask red channel at the fragment's window
	// position. Only masked variants read it.
	MaskSample float32
}

// Shade evaluates v for one fragment with uniforms u and returns the
// premultiplied output. discard reports a fragment the program drops.
func (v Variant) Shade(f Fragment, u *UniformSet) (rgba [4]float32, discard bool) {
	decoded := color.DecodeU8(color.ColorU8{R: f.Color[0], G: f.Color[1], B: f.Color[2], A: f.Color[3]},
		v.ColorSpace.space())
	col := decoded.Mul(color.ColorF32{R: u.Tint[0], G: u.Tint[1], B: u.Tint[2], A: u.Tint[3]}).RGBA()
	coverage := kernel.Channel(f.Content, u.ChannelMask)

	switch v.Program {
	case ProgramStandard:
		rgba = kernel.Modulate(kernel.Premultiply(col), f.Content)
	case ProgramTextSimple:
		rgba = scale4(kernel.Premultiply(col), coverage)
	case ProgramSDFText:
		g := kernel.Glyph{
			Offset:    f.Config[ConfigOffset],
			Peak:      f.Config[ConfigPeak],
			Flag:      f.Config[ConfigFlag],
			Smoothing: f.Smoothing,
		}
		if v.Subpixel {
			taps := [3]float32{
				kernel.Channel(f.Taps[0], u.ChannelMask),
				kernel.Channel(f.Taps[1], u.ChannelMask),
				kernel.Channel(f.Taps[2], u.ChannelMask),
			}
			rgba = kernel.SubpixelFragment(col, taps, g)
		} else {
			rgba = kernel.GlyphFragment(col, coverage, g)
		}
	case ProgramSDFOutline:
		d := kernel.OutlineDistance(coverage, f.Config[ConfigFlag])
		shaded, drop := kernel.Outline(d, kernel.Thresholds(u.Thresholds), col, u.Outline)
		if drop {
			return [4]float32{}, true
		}
		rgba = kernel.Premultiply(shaded)
	case ProgramMaskWrite:
		m := f.Content[0] * col[3]
		rgba = [4]float32{m, m, m, m}
	}
	if v.Masked {
		rgba = kernel.ApplyMask(rgba, kernel.MaskAlpha(f.MaskSample, u.Mask.Bias, u.Mask.Scale))
	}
	return rgba, false
}

func scale4(c [4]float32, s float32) [4]float32 {
	return [4]float32{c[0] * s, c[1] * s, c[2] * s, c[3] * s}
}
