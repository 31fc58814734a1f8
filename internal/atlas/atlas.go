// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package atlas builds single-channel distance-field glyph atlases.
package atlas

import (
	"errors"
	"fmt"
	"image"
	"slices"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

var (
	// ErrAtlasFull is returned when the glyphs do not fit in MaxHeight.
	ErrAtlasFull = errors.New("atlas: glyphs do not fit")

	// ErrInvalidOptions is returned for non-positive sizes.
	ErrInvalidOptions = errors.New("atlas: invalid options")
)

// Options control atlas generation.
type Options struct {
	// PPEM is the pixel size glyphs are rasterized at.
	// Default: 32
	PPEM float64

	// Spread is the distance in pixels the field covers on each side of
	// the edge.
	// Default: 4
	Spread int

	// Padding separates glyph cells.
	// Default: 1
	Padding int

	// Width is the atlas width in pixels.
	// Default: 512
	Width int

	// MaxHeight bounds the atlas height.
	// Default: 4096
	MaxHeight int
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{PPEM: 32, Spread: 4, Padding: 1, Width: 512, MaxHeight: 4096}
}

func (o *Options) validate() error {
	if o.PPEM <= 0 || o.Spread <= 0 || o.Padding < 0 || o.Width <= 0 || o.MaxHeight <= 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidOptions, *o)
	}
	return nil
}

// Glyph is one glyph cell.
type Glyph struct {
	Index sfnt.GlyphIndex

	// Bounds is the cell relative to the pen position on the baseline, in
	// pixels at PPEM, y pointing down. It includes the spread.
	Bounds image.Rectangle

	// UV is the cell in normalized atlas coordinates: u0, v0, u1, v1.
	UV [4]float32

	// Advance is the pen advance in pixels at PPEM.
	Advance float32
}

// Empty reports whether the glyph has no cell, such as a space.
func (g Glyph) Empty() bool { return g.Bounds.Empty() }

// Atlas is an R8 distance field texture with its glyph table.
type Atlas struct {
	Width, Height int
	// Pixels are Width*Height bytes, 128 at glyph edges.
	Pixels []byte

	PPEM   float64
	Spread int

	glyphs map[sfnt.GlyphIndex]Glyph
	runes  map[rune]sfnt.GlyphIndex
	usage  float64
}

// Glyph returns the cell of glyph index i.
func (a *Atlas) Glyph(i sfnt.GlyphIndex) (Glyph, bool) {
	g, ok := a.glyphs[i]
	return g, ok
}

// Rune returns the cell of rune r.
func (a *Atlas) Rune(r rune) (Glyph, bool) {
	i, ok := a.runes[r]
	if !ok {
		return Glyph{}, false
	}
	return a.Glyph(i)
}

// Len returns the number of glyphs in the atlas.
func (a *Atlas) Len() int { return len(a.glyphs) }

// Utilization is the share of the atlas covered by glyph cells.
func (a *Atlas) Utilization() float64 { return a.usage }

type pendingGlyph struct {
	glyph Glyph
	field []byte
	w, h  int
	x, y  int
}

// Build rasterizes runes from f and packs their distance fields. Runes the
// font has no glyph for are skipped.
func Build(f *opentype.Font, runes []rune, opts Options) (*Atlas, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    opts.PPEM,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("atlas: create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	rs := slices.Clone(runes)
	slices.Sort(rs)
	rs = slices.Compact(rs)

	a := &Atlas{
		PPEM:   opts.PPEM,
		Spread: opts.Spread,
		glyphs: make(map[sfnt.GlyphIndex]Glyph),
		runes:  make(map[rune]sfnt.GlyphIndex),
	}
	packer := newShelfPacker(opts.Width, opts.MaxHeight, opts.Padding)
	var pending []pendingGlyph
	var buf sfnt.Buffer

	for _, r := range rs {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			continue
		}
		a.runes[r] = idx
		if _, done := a.glyphs[idx]; done {
			continue
		}
		dr, mask, maskp, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			// outline-less glyphs such as space still advance the pen
			if adv, ok := face.GlyphAdvance(r); ok {
				a.glyphs[idx] = Glyph{Index: idx, Advance: float32(adv) / 64}
			}
			continue
		}
		g := Glyph{Index: idx, Advance: float32(adv) / 64}
		if dr.Empty() {
			a.glyphs[idx] = g
			continue
		}

		cov := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
		draw.Draw(cov, cov.Bounds(), mask, maskp, draw.Src)
		field, w, h := distanceField(cov, opts.Spread)

		x, y, ok := packer.place(w, h)
		if !ok {
			return nil, fmt.Errorf("%w: rune %q at %vppem", ErrAtlasFull, r, opts.PPEM)
		}
		g.Bounds = dr.Inset(-opts.Spread)
		pending = append(pending, pendingGlyph{glyph: g, field: field, w: w, h: h, x: x, y: y})
	}

	a.Width = opts.Width
	a.Height = max(packer.bottom(), 1)
	a.Pixels = make([]byte, a.Width*a.Height)
	a.usage = packer.utilization()
	for i := range pending {
		p := &pending[i]
		for row := 0; row < p.h; row++ {
			copy(a.Pixels[(p.y+row)*a.Width+p.x:], p.field[row*p.w:(row+1)*p.w])
		}
		p.glyph.UV = [4]float32{
			float32(p.x) / float32(a.Width),
			float32(p.y) / float32(a.Height),
			float32(p.x+p.w) / float32(a.Width),
			float32(p.y+p.h) / float32(a.Height),
		}
		a.glyphs[p.glyph.Index] = p.glyph
	}
	return a, nil
}
