// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package kernel

import "github.com/chewxy/math32"

// Zone is one band of the outline classifier.
type Zone uint8

const (
	// ZoneFill is solid fill color.
	ZoneFill Zone = iota
	// ZoneFillToOutline blends from fill to outline color.
	ZoneFillToOutline
	// ZoneOutline is solid outline color.
	ZoneOutline
	// ZoneOutlineToTransparent fades the outline out.
	ZoneOutlineToTransparent
)

var zoneNames = [...]string{"fill", "fill-to-outline", "outline", "outline-to-transparent"}

// String returns the zone name.
func (z Zone) String() string {
	if int(z) < len(zoneNames) {
		return zoneNames[z]
	}
	return "unknown"
}

// Thresholds are the four ordered distances t0 <= t1 <= t2 <= t3.
// Order is a caller precondition and is not checked.
type Thresholds [4]float32

// Classify returns the zone for an outward distance d. Zones are half-open,
// [lower, upper), so every d maps to exactly one zone.
func Classify(d float32, t Thresholds) Zone {
	switch {
	case d < t[1]:
		return ZoneFill
	case d < t[2]:
		return ZoneFillToOutline
	case d < t[3]:
		return ZoneOutline
	default:
		return ZoneOutlineToTransparent
	}
}

// Ramp is a Hermite step over [e0, e1]. A zero-width interval is widened
// to epsilon so equal thresholds produce a hard step instead of NaN.
func Ramp(e0, e1, x float32) float32 {
	w := math32.Max(e1-e0, 1e-6)
	t := Clamp01((x - e0) / w)
	return t * t * (3 - 2*t)
}

// Mix linearly interpolates a and b.
func Mix(a, b, t float32) float32 {
	return a + (b-a)*t
}

// OutlineDistance converts a raw field sample into outward distance,
// applying the same source flag clamp as Coverage.
func OutlineDistance(sample, flag float32) float32 {
	return 1 - math32.Max(sample, 1-flag)
}

// Outline evaluates the four-zone classifier. fill and outline are
// straight-alpha RGBA. The result is straight alpha; discard is true when
// the result is fully transparent, which past the fade is always the case.
//
// The fade width of the last zone mirrors the inner band (t1 - t0).
func Outline(d float32, t Thresholds, fill, outline [4]float32) (rgba [4]float32, discard bool) {
	switch Classify(d, t) {
	case ZoneFill:
		rgba = fill
	case ZoneFillToOutline:
		k := Ramp(t[1], t[2], d)
		for i := range rgba {
			rgba[i] = Mix(fill[i], outline[i], k)
		}
	case ZoneOutline:
		rgba = outline
	default:
		rgba = outline
		rgba[3] = outline[3] * (1 - Ramp(t[3], t[3]+(t[1]-t[0]), d))
	}
	return rgba, rgba[3] <= 0
}
