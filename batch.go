// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uirender

import "fmt"

// MaxBatchVertices is the most vertices one batch can address with
// 16-bit indices.
const MaxBatchVertices = 1 << 16

// MaskOp is the direction of a mask layer batch.
type MaskOp uint8

const (
	// MaskPush adds the layer to the mask.
	MaskPush MaskOp = iota
	// MaskPop removes a previously pushed layer.
	MaskPop
)

func (op MaskOp) String() string {
	if op == MaskPop {
		return "pop"
	}
	return "push"
}

// Batch is a run of primitives drawn with one variant and one uniform set.
type Batch struct {
	Kind ContentKind
	// Subpixel requests per-channel coverage for KindGlyph.
	Subpixel bool
	// Masked composites the batch through the mask target.
	Masked bool
	// MaskOp applies to KindMaskLayer only.
	MaskOp MaskOp

	Vertices []Vertex
	// Indices are triangles into Vertices. Nil means Vertices are quads
	// as produced by Quad.
	Indices []uint16

	Uniforms UniformSet
}

// AddQuad appends a quad from Quad. It fails once the batch would address
// more than MaxBatchVertices vertices.
func (b *Batch) AddQuad(q [4]Vertex) error {
	base := len(b.Vertices)
	if base+4 > MaxBatchVertices {
		return fmt.Errorf("add quad at vertex %d: %w", base, ErrBatchTooLarge)
	}
	b.Vertices = append(b.Vertices, q[:]...)
	if b.Indices != nil {
		b.Indices = appendQuadIndices(b.Indices, uint16(base))
	}
	return nil
}

func (b *Batch) indices() []uint16 {
	if b.Indices != nil {
		return b.Indices
	}
	return QuadIndices(len(b.Vertices) / 4)
}

// QuadIndices returns two triangles per quad for n consecutive quads.
func QuadIndices(n int) []uint16 {
	idx := make([]uint16, 0, n*6)
	for i := 0; i < n; i++ {
		// #nosec G115 -- n*4 is bounded by MaxBatchVertices
		idx = appendQuadIndices(idx, uint16(i*4))
	}
	return idx
}

func appendQuadIndices(dst []uint16, base uint16) []uint16 {
	return append(dst, base, base+1, base+2, base, base+2, base+3)
}
