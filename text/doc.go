// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package text shapes strings and lays them out as distance-field glyph
// batches for uirender.
//
// Shaping uses the HarfBuzz port of go-text/typesetting. Mixed direction
// strings are split into runs with the Unicode bidirectional algorithm and
// laid out in visual order.
//
//	sh, _ := text.NewShaper(goregular.TTF)
//	atlas, _ := text.NewAtlas(goregular.TTF, "Hello", text.DefaultAtlasOptions())
//	id, _ := renderer.UploadAlpha(uint32(atlas.Width), uint32(atlas.Height), atlas.Pixels)
//
//	batch, _ := text.Layout(sh.Shape("Hello", 16), atlas, 16, text.DefaultRenderSettings())
//	batch.Uniforms.Transform = uirender.Viewport(w, h)
//	batch.Uniforms.Textures.Content = id
package text
