// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Texture is a 2D texture with its default view.
type Texture struct {
	Texture hal.Texture
	View    hal.TextureView
	Width   uint32
	Height  uint32
	Format  gputypes.TextureFormat
}

// CreateTexture creates a single-sample, single-mip 2D texture and view.
func CreateTexture(device hal.Device, label string, w, h uint32,
	format gputypes.TextureFormat, usage gputypes.TextureUsage,
) (*Texture, error) {
	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create texture %s: %w", label, err)
	}
	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label + "_view",
		Format:        format,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		device.DestroyTexture(tex)
		return nil, fmt.Errorf("create texture view %s: %w", label, err)
	}
	return &Texture{Texture: tex, View: view, Width: w, Height: h, Format: format}, nil
}

// Upload writes tightly packed pixel rows covering the whole texture.
func (t *Texture) Upload(queue hal.Queue, data []byte, bytesPerPixel uint32) error {
	err := queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  t.Texture,
			MipLevel: 0,
		},
		data,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  t.Width * bytesPerPixel,
			RowsPerImage: t.Height,
		},
		&hal.Extent3D{Width: t.Width, Height: t.Height, DepthOrArrayLayers: 1},
	)
	if err != nil {
		return fmt.Errorf("write texture: %w", err)
	}
	return nil
}

// Destroy releases the view and texture.
func (t *Texture) Destroy(device hal.Device) {
	if t == nil {
		return
	}
	if t.View != nil {
		device.DestroyTextureView(t.View)
		t.View = nil
	}
	if t.Texture != nil {
		device.DestroyTexture(t.Texture)
		t.Texture = nil
	}
}

// NewWhiteTexture creates the 1x1 opaque white texture bound wherever a
// draw has no content or no mask.
func NewWhiteTexture(device hal.Device, queue hal.Queue) (*Texture, error) {
	t, err := CreateTexture(device, "uirender_white", 1, 1, gputypes.TextureFormatRGBA8Unorm,
		gputypes.TextureUsageTextureBinding|gputypes.TextureUsageCopyDst)
	if err != nil {
		return nil, err
	}
	if err := t.Upload(queue, []byte{255, 255, 255, 255}, 4); err != nil {
		t.Destroy(device)
		return nil, fmt.Errorf("uirender_white: %w", err)
	}
	return t, nil
}

// NewMaskTarget creates the screen-sized mask texture. It is rendered by
// mask passes and sampled by masked variants.
func NewMaskTarget(device hal.Device, w, h uint32, format gputypes.TextureFormat) (*Texture, error) {
	return CreateTexture(device, "uirender_mask", w, h, format,
		gputypes.TextureUsageRenderAttachment|gputypes.TextureUsageTextureBinding)
}

// NewR8Texture creates a single-channel texture and uploads pixels, as
// used for glyph atlases.
func NewR8Texture(device hal.Device, queue hal.Queue, label string, w, h uint32, pixels []byte) (*Texture, error) {
	t, err := CreateTexture(device, label, w, h, gputypes.TextureFormatR8Unorm,
		gputypes.TextureUsageTextureBinding|gputypes.TextureUsageCopyDst)
	if err != nil {
		return nil, err
	}
	if err := t.Upload(queue, pixels, 1); err != nil {
		t.Destroy(device)
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	return t, nil
}
