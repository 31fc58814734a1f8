// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testThresholds = Thresholds{0.2, 0.4, 0.6, 0.8}
	fillColor      = [4]float32{1, 1, 1, 1}
	outlineColor   = [4]float32{0, 0, 0, 0.8}
)

func TestClassifyZones(t *testing.T) {
	tests := []struct {
		d    float32
		want Zone
	}{
		{0.0, ZoneFill},
		{0.39, ZoneFill},
		{0.4, ZoneFillToOutline},
		{0.59, ZoneFillToOutline},
		{0.6, ZoneOutline},
		{0.8, ZoneOutlineToTransparent},
		{0.9, ZoneOutlineToTransparent},
		{5, ZoneOutlineToTransparent},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.d, testThresholds), "d=%v", tt.d)
		})
	}
}

func TestClassifyEqualThresholds(t *testing.T) {
	th := Thresholds{0.5, 0.5, 0.5, 0.5}
	assert.Equal(t, ZoneFill, Classify(0.49, th))
	assert.Equal(t, ZoneOutlineToTransparent, Classify(0.5, th))
}

// TestOutlineFadeZone covers a value past the last threshold: the outline
// is partly faded, neither discarded nor at full alpha.
func TestOutlineFadeZone(t *testing.T) {
	require.Equal(t, ZoneOutlineToTransparent, Classify(0.9, testThresholds))

	rgba, discard := Outline(0.9, testThresholds, fillColor, outlineColor)
	assert.False(t, discard)
	assert.Greater(t, rgba[3], float32(0))
	assert.Less(t, rgba[3], outlineColor[3])
	assert.InDelta(t, 0.4, rgba[3], 1e-5)
}

func TestOutlineDiscardBeyondFade(t *testing.T) {
	_, discard := Outline(1.1, testThresholds, fillColor, outlineColor)
	assert.True(t, discard)
}

func TestOutlineContinuousAtBoundaries(t *testing.T) {
	const eps = 1e-4
	for _, b := range testThresholds[1:] {
		below, _ := Outline(b-eps, testThresholds, fillColor, outlineColor)
		at, _ := Outline(b, testThresholds, fillColor, outlineColor)
		for i := range at {
			assert.InDelta(t, below[i], at[i], 1e-3, "boundary %v channel %d", b, i)
		}
	}
}

func TestOutlineSweepSingleZone(t *testing.T) {
	th := Thresholds{0.1, 0.3, 0.3, 0.7}
	for i := -10; i <= 110; i++ {
		d := float32(i) / 100
		z := Classify(d, th)
		assert.LessOrEqual(t, z, ZoneOutlineToTransparent)
		rgba, _ := Outline(d, th, fillColor, outlineColor)
		assert.GreaterOrEqual(t, rgba[3], float32(0))
		assert.LessOrEqual(t, rgba[3], float32(1))
	}
}

func TestOutlineDistance(t *testing.T) {
	assert.InDelta(t, 0.25, OutlineDistance(0.75, 1), 1e-7)
	assert.Equal(t, float32(0), OutlineDistance(0.2, 0))
}

func TestRamp(t *testing.T) {
	assert.Equal(t, float32(0), Ramp(0.2, 0.4, 0.1))
	assert.Equal(t, float32(1), Ramp(0.2, 0.4, 0.5))
	assert.InDelta(t, 0.5, Ramp(0.2, 0.4, 0.3), 1e-6)
	assert.Equal(t, float32(1), Ramp(0.5, 0.5, 0.6))
}

func TestZoneString(t *testing.T) {
	assert.Equal(t, "fill", ZoneFill.String())
	assert.Equal(t, "outline-to-transparent", ZoneOutlineToTransparent.String())
	assert.Equal(t, "unknown", Zone(7).String())
}
