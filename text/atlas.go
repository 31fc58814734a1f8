// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"fmt"

	"github.com/gogpu/uirender/internal/atlas"
	"golang.org/x/image/font/opentype"
)

// Atlas is a distance-field glyph atlas. Upload Pixels as a single
// channel texture of Width by Height.
type Atlas = atlas.Atlas

// AtlasOptions control atlas generation.
type AtlasOptions = atlas.Options

// DefaultAtlasOptions returns 32 pixel glyphs with a 4 pixel spread.
func DefaultAtlasOptions() AtlasOptions { return atlas.DefaultOptions() }

// NewAtlas builds an atlas holding the glyphs of chars from a TrueType or
// OpenType font.
func NewAtlas(ttf []byte, chars string, opts AtlasOptions) (*Atlas, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return atlas.Build(f, []rune(chars), opts)
}
