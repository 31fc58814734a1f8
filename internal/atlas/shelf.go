// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package atlas

// shelfPacker places rectangles left to right on horizontal shelves. A
// shelf is as tall as its first item; a taller item may still stretch the
// last shelf while there is room below it.
type shelfPacker struct {
	width   int
	height  int
	padding int
	shelves []shelf
	used    int
}

type shelf struct {
	y      int
	height int
	x      int
}

func newShelfPacker(width, height, padding int) *shelfPacker {
	return &shelfPacker{
		width:   width,
		height:  height,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// place returns the top-left corner for a w by h item.
func (p *shelfPacker) place(w, h int) (x, y int, ok bool) {
	pw, ph := w+p.padding, h+p.padding
	for i := range p.shelves {
		s := &p.shelves[i]
		if s.x+pw > p.width {
			continue
		}
		if h > s.height {
			// Only the last shelf can grow.
			if i != len(p.shelves)-1 || s.y+ph > p.height {
				continue
			}
			s.height = h
		}
		x, y = s.x, s.y
		s.x += pw
		p.used += w * h
		return x, y, true
	}

	top := 0
	if n := len(p.shelves); n > 0 {
		last := p.shelves[n-1]
		top = last.y + last.height + p.padding
	}
	if top+ph > p.height || pw > p.width {
		return -1, -1, false
	}
	p.shelves = append(p.shelves, shelf{y: top, height: h, x: pw})
	p.used += w * h
	return 0, top, true
}

// bottom is the first row below every placed item.
func (p *shelfPacker) bottom() int {
	if len(p.shelves) == 0 {
		return 0
	}
	last := p.shelves[len(p.shelves)-1]
	return last.y + last.height
}

// utilization is the placed area over the area up to bottom.
func (p *shelfPacker) utilization() float64 {
	area := p.width * p.bottom()
	if area == 0 {
		return 0
	}
	return float64(p.used) / float64(area)
}
