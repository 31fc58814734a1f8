// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// VertexStride is the byte stride of the shared vertex record.
// Layout per vertex:
//
//	position  (vec2<f32>)   = 8 bytes  (location 0)
//	uv        (vec2<f32>)   = 8 bytes  (location 1)
//	color     (unorm8x4)    = 4 bytes  (location 2)
//	config    (vec4<f32>)   = 16 bytes (location 3)
//	smoothing (f32)         = 4 bytes  (location 4)
//
// Total = 40 bytes per vertex.
const VertexStride = 40

// UniformSize is the byte size of the uniform block.
// Layout: transform (mat4x4<f32>) = 64 bytes + tint, outline, thresholds,
// mask_bounds, chan_mask (vec4<f32> each) = 80 bytes = 144 bytes.
const UniformSize = 144

// Bind group slots, matching the generated sources.
const (
	bindingUniforms = iota
	bindingContent
	bindingContentSampler
	bindingMask
	bindingMaskSampler
)

// VertexLayout returns the single vertex buffer layout used by every
// variant.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},  // uv
				{Format: gputypes.VertexFormatUnorm8x4, Offset: 16, ShaderLocation: 2},  // color
				{Format: gputypes.VertexFormatFloat32x4, Offset: 20, ShaderLocation: 3}, // config
				{Format: gputypes.VertexFormatFloat32, Offset: 36, ShaderLocation: 4},   // smoothing
			},
		},
	}
}

func bindGroupLayoutDescriptor() *hal.BindGroupLayoutDescriptor {
	texture := &gputypes.TextureBindingLayout{
		SampleType:    gputypes.TextureSampleTypeFloat,
		ViewDimension: gputypes.TextureViewDimension2D,
	}
	sampler := &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering}
	return &hal.BindGroupLayoutDescriptor{
		Label: "uirender_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    bindingUniforms,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{Binding: bindingContent, Visibility: gputypes.ShaderStageFragment, Texture: texture},
			{Binding: bindingContentSampler, Visibility: gputypes.ShaderStageFragment, Sampler: sampler},
			{Binding: bindingMask, Visibility: gputypes.ShaderStageFragment, Texture: texture},
			{Binding: bindingMaskSampler, Visibility: gputypes.ShaderStageFragment, Sampler: sampler},
		},
	}
}

// Blend selects the color target blend state of a pipeline.
type Blend uint8

const (
	// BlendPremultiplied is source-over for premultiplied color.
	BlendPremultiplied Blend = iota
	// BlendAdd accumulates coverage into the mask target.
	BlendAdd
	// BlendReverseSubtract removes coverage from the mask target.
	BlendReverseSubtract
)

func (b Blend) String() string {
	switch b {
	case BlendPremultiplied:
		return "premultiplied"
	case BlendAdd:
		return "add"
	case BlendReverseSubtract:
		return "reverse_subtract"
	default:
		return "unknown"
	}
}

func (b Blend) state() gputypes.BlendState {
	switch b {
	case BlendAdd:
		c := gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOne,
			Operation: gputypes.BlendOperationAdd,
		}
		return gputypes.BlendState{Color: c, Alpha: c}
	case BlendReverseSubtract:
		// dst - src
		c := gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOne,
			Operation: gputypes.BlendOperationReverseSubtract,
		}
		return gputypes.BlendState{Color: c, Alpha: c}
	default:
		return gputypes.BlendStatePremultiplied()
	}
}
