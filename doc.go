// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package uirender is the GPU shading layer of a widget toolkit.
//
// # Overview
//
// Widgets emit batches of quads. Each batch carries a content kind (plain
// image, binary glyph, distance-field glyph, distance-field shape or mask
// layer) and the renderer picks one program variant per batch, compiles
// it once and draws it through gogpu/wgpu HAL.
//
// The same vertex layout and uniform block feed every variant:
//
//	pos       float32x2   position in layout units
//	uv        float32x2   content texture coordinate
//	color     unorm8x4    straight-alpha RGBA
//	config    float32x4   offset, peak, sdf flag, reserved
//	smoothing float32     distance-to-alpha multiplier
//
// # Quick Start
//
//	r, err := uirender.New(provider, uirender.DefaultCapabilities())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Destroy()
//	if err := r.Init(); err != nil {
//	    log.Fatal(err) // compile and link errors are fatal
//	}
//	r.Resize(width, height)
//	err = r.Render(view, batches)
//
// # Variant selection
//
// [Select] is a pure function of the content kind, the masked and
// subpixel flags and the device [Capabilities]. Subpixel text silently
// falls back to single-coverage text when the device has no derivative
// support.
//
// # Masking
//
// Clip masks are drawn additively into a screen-sized single channel
// target by [MaskStack]. Each of up to [MaskLevels] nesting levels adds
// one 8-bit step (63/255) to the mask, and masked variants renormalize
// the sample so that only fragments inside every level keep their alpha.
//
// # Reference shading
//
// [Variant.Shade] evaluates a fragment of any variant on the CPU with the
// same arithmetic as the generated programs. It is used by the tests and
// by the uishaders tool to tabulate the distance-field functions.
package uirender
