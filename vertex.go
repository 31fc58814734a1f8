// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uirender

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/uirender/internal/pipeline"
)

// VertexStride is the packed size of one Vertex in bytes.
const VertexStride = pipeline.VertexStride

// Indices into Vertex.Config.
const (
	ConfigOffset = 0
	ConfigPeak   = 1
	ConfigFlag   = 2
)

// Vertex is the per-vertex record shared by every program variant.
type Vertex struct {
	// Pos is in layout units; the uniform transform maps it to clip space.
	Pos [2]float32
	// UV addresses the content texture, normalized.
	UV [2]float32
	// Color is straight-alpha RGBA. In the sRGB-decode color space the
	// RGB channels are decoded to linear before interpolation.
	Color [4]uint8
	// Config holds the distance-field parameters: offset, peak and the
	// sdf flag. The fourth component is reserved and written as zero.
	Config [4]float32
	// Smoothing scales the distance-to-alpha ramp. Larger is sharper.
	Smoothing float32
}

// GlyphConfig returns the Config of a distance-field vertex.
func GlyphConfig(offset, peak float32) [4]float32 {
	return [4]float32{offset, peak, 1, 0}
}

// PlainConfig returns the Config of a vertex whose content texture holds
// plain coverage rather than a distance field.
func PlainConfig() [4]float32 {
	return [4]float32{0.5, 0.5, 0, 0}
}

// Quad returns the four corners of an axis aligned rectangle in the
// order QuadIndices expects: top-left, top-right, bottom-right,
// bottom-left. All corners share color, config and smoothing.
func Quad(x0, y0, x1, y1, u0, v0, u1, v1 float32, tmpl Vertex) [4]Vertex {
	q := [4]Vertex{tmpl, tmpl, tmpl, tmpl}
	q[0].Pos, q[0].UV = [2]float32{x0, y0}, [2]float32{u0, v0}
	q[1].Pos, q[1].UV = [2]float32{x1, y0}, [2]float32{u1, v0}
	q[2].Pos, q[2].UV = [2]float32{x1, y1}, [2]float32{u1, v1}
	q[3].Pos, q[3].UV = [2]float32{x0, y1}, [2]float32{u0, v1}
	return q
}

// AppendBytes appends the little-endian packed vertex to dst.
func (v *Vertex) AppendBytes(dst []byte) []byte {
	dst = appendF32(dst, v.Pos[0], v.Pos[1], v.UV[0], v.UV[1])
	dst = append(dst, v.Color[0], v.Color[1], v.Color[2], v.Color[3])
	dst = appendF32(dst, v.Config[0], v.Config[1], v.Config[2], 0)
	return appendF32(dst, v.Smoothing)
}

// AppendVertices packs vs into dst at VertexStride bytes each.
func AppendVertices(dst []byte, vs []Vertex) []byte {
	if n := len(dst) + len(vs)*VertexStride; cap(dst) < n {
		grown := make([]byte, len(dst), n)
		copy(grown, dst)
		dst = grown
	}
	for i := range vs {
		dst = vs[i].AppendBytes(dst)
	}
	return dst
}

func appendF32(dst []byte, vs ...float32) []byte {
	for _, v := range vs {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
	}
	return dst
}
