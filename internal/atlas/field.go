// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package atlas

import (
	"image"
	"math"
	"sync"
)

// insideThreshold is the coverage at which a pixel counts as inside.
const insideThreshold = 128

// distanceField converts coverage into an 8-bit signed distance field.
// The field is spread pixels larger than cov on every side. 128 is the
// edge, larger values are inside, and the ramp spans spread pixels each
// way.
func distanceField(cov *image.Alpha, spread int) (field []byte, w, h int) {
	b := cov.Bounds()
	w, h = b.Dx()+2*spread, b.Dy()+2*spread
	field = make([]byte, w*h)

	inside := func(x, y int) bool {
		x, y = x-spread, y-spread
		if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
			return false
		}
		return cov.Pix[y*cov.Stride+x] >= insideThreshold
	}

	// Rows are independent.
	const workers = 4
	rows := (h + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < h; start += rows {
		end := min(start+rows, h)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for y := start; y < end; y++ {
				for x := 0; x < w; x++ {
					in := inside(x, y)
					d := nearestOpposite(inside, x, y, in, spread)
					if !in {
						d = -d
					}
					field[y*w+x] = distanceToByte(d, float64(spread))
				}
			}
		}(start, end)
	}
	wg.Wait()
	return field, w, h
}

// nearestOpposite returns the distance from (x, y) to the closest pixel
// whose inside state differs from in, measured to the boundary between
// pixel centers. It is capped at spread.
func nearestOpposite(inside func(x, y int) bool, x, y int, in bool, spread int) float64 {
	best := float64(spread)
	for dy := -spread; dy <= spread; dy++ {
		for dx := -spread; dx <= spread; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			d := math.Hypot(float64(dx), float64(dy)) - 0.5
			if d >= best {
				continue
			}
			if inside(x+dx, y+dy) != in {
				best = d
			}
		}
	}
	return best
}

// distanceToByte maps a signed pixel distance to [0, 255] with 0.5 at the
// edge.
func distanceToByte(d, spread float64) byte {
	v := 0.5 + d/(2*spread)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return byte(math.Round(v * 255))
}
