// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/uirender/internal/cache"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Direction is the writing direction of a run.
type Direction uint8

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// Glyph is one shaped glyph.
type Glyph struct {
	// ID is the font glyph index.
	ID uint16
	// Cluster is the rune index in the source text.
	Cluster int
	// X and Y are the pen position in pixels relative to the line origin,
	// y pointing down.
	X, Y float32
	// Advance is the horizontal pen advance in pixels.
	Advance float32
}

// Run is a shaped run of one direction.
type Run struct {
	Direction Direction
	Glyphs    []Glyph
	// Advance is the total width of the run in pixels.
	Advance float32
}

// runCacheSize bounds the number of shaped strings kept per Shaper.
const runCacheSize = 512

type runKey struct {
	text string
	size float32
}

// Shaper shapes text with one font. Safe for concurrent use.
type Shaper struct {
	font *font.Font
	// HarfbuzzShaper keeps mutable buffers, one per goroutine.
	pool sync.Pool
	lang language.Language
	runs *cache.Cache[runKey, []Run]
}

// NewShaper parses a TrueType or OpenType font.
func NewShaper(ttf []byte) (*Shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return &Shaper{
		font: face.Font,
		pool: sync.Pool{New: func() any { return &shaping.HarfbuzzShaper{} }},
		lang: language.NewLanguage("en"),
		runs: cache.New[runKey, []Run](runCacheSize),
	}, nil
}

// Shape shapes s at size pixels per em. Runs are returned in visual order
// and positioned one after another on a single line. Results are cached
// and shared between callers; they must not be modified.
func (sh *Shaper) Shape(s string, size float32) []Run {
	if s == "" {
		return nil
	}
	return sh.runs.GetOrCreate(runKey{text: s, size: size}, func() []Run {
		return sh.shape(s, size)
	})
}

// CacheStats reports hit and eviction counters of the shaped run cache.
func (sh *Shaper) CacheStats() cache.Stats { return sh.runs.Stats() }

func (sh *Shaper) shape(s string, size float32) []Run {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}
	var runs []Run
	var pen float32
	for _, seg := range bidiRuns(s, len(runes)) {
		r := sh.shapeRun(runes, seg, size)
		for i := range r.Glyphs {
			r.Glyphs[i].X += pen
		}
		pen += r.Advance
		runs = append(runs, r)
	}
	return runs
}

type segment struct {
	start, end int
	dir        Direction
}

// bidiRuns splits s into directional runs in visual order. Rune indices
// are half-open.
func bidiRuns(s string, n int) []segment {
	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return []segment{{0, n, LTR}}
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return []segment{{0, n, LTR}}
	}
	segs := make([]segment, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		dir := LTR
		if run.Direction() == bidi.RightToLeft {
			dir = RTL
		}
		segs = append(segs, segment{start: start, end: min(end+1, n), dir: dir})
	}
	return segs
}

func (sh *Shaper) shapeRun(runes []rune, seg segment, size float32) Run {
	dir := di.DirectionLTR
	if seg.dir == RTL {
		dir = di.DirectionRTL
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  seg.start,
		RunEnd:    seg.end,
		Direction: dir,
		Face:      font.NewFace(sh.font),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes[seg.start:seg.end]),
		Language:  sh.lang,
	}
	hb := sh.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	sh.pool.Put(hb)

	run := Run{Direction: seg.dir, Glyphs: make([]Glyph, len(out.Glyphs))}
	var x float32
	for i, g := range out.Glyphs {
		adv := fixedToFloat(g.XAdvance)
		run.Glyphs[i] = Glyph{
			ID:      uint16(g.GlyphID), //nolint:gosec // glyph indices fit in 16 bits
			Cluster: g.ClusterIndex,
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	run.Advance = x
	return run
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
