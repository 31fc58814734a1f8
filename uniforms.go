// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uirender

import "github.com/gogpu/uirender/internal/pipeline"

// UniformSize is the packed size of a UniformSet in bytes.
const UniformSize = pipeline.UniformSize

// TextureID names a texture registered with a Renderer.
type TextureID uint32

const (
	// WhiteTexture is a 1x1 opaque white texture, always registered.
	WhiteTexture TextureID = 0
	// MaskTexture is the renderer's screen-sized mask target.
	MaskTexture TextureID = 1

	firstUserTexture TextureID = 2
)

// TextureBindings selects the textures a batch samples. They are bound
// per draw, not packed into the uniform block.
type TextureBindings struct {
	Content TextureID
	// Mask is the mask a masked batch samples. WhiteTexture selects the
	// renderer's own mask target.
	Mask TextureID
}

// MaskBounds renormalizes mask samples: alpha = (sample - Bias) * Scale,
// sampled at window coordinate / (Width, Height).
type MaskBounds struct {
	Bias, Scale   float32
	Width, Height float32
}

// NoMask returns bounds under which every sample in [0,1] maps to full
// alpha.
func NoMask(w, h float32) MaskBounds {
	return MaskBounds{Bias: -1, Scale: 1, Width: w, Height: h}
}

// IdentityMaskBounds passes the mask sample through unchanged.
func IdentityMaskBounds(w, h float32) MaskBounds {
	return MaskBounds{Bias: 0, Scale: 1, Width: w, Height: h}
}

// UniformSet is the per-batch constant block.
type UniformSet struct {
	Transform Mat4
	// Tint multiplies the vertex color.
	Tint [4]float32
	// Outline is the straight-alpha outline color of shape variants.
	Outline [4]float32
	// Thresholds are the ascending outline zone boundaries t0..t3.
	Thresholds [4]float32
	Mask       MaskBounds
	// ChannelMask selects the content channel read as coverage by the
	// text and outline variants. See ChannelMaskFor.
	ChannelMask [4]float32

	Textures TextureBindings
}

// DefaultUniforms returns a white-tinted, unmasked set with transform t.
func DefaultUniforms(t Mat4) UniformSet {
	return UniformSet{
		Transform:   t,
		Tint:        [4]float32{1, 1, 1, 1},
		Mask:        NoMask(1, 1),
		ChannelMask: ChannelMaskFor(0),
	}
}

// ChannelMaskFor returns the one-hot mask selecting content channel c,
// 0 for red through 3 for alpha. Out of range channels select red.
func ChannelMaskFor(c int) [4]float32 {
	var m [4]float32
	if c < 0 || c > 3 {
		c = 0
	}
	m[c] = 1
	return m
}

// AppendBytes appends the UniformSize byte std140 block to dst.
func (u *UniformSet) AppendBytes(dst []byte) []byte {
	dst = appendF32(dst, u.Transform[:]...)
	dst = appendF32(dst, u.Tint[:]...)
	dst = appendF32(dst, u.Outline[:]...)
	dst = appendF32(dst, u.Thresholds[:]...)
	dst = appendF32(dst, u.Mask.Bias, u.Mask.Scale, u.Mask.Width, u.Mask.Height)
	return appendF32(dst, u.ChannelMask[:]...)
}

// Bytes returns the packed uniform block.
func (u *UniformSet) Bytes() []byte {
	return u.AppendBytes(make([]byte, 0, UniformSize))
}
