// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uirender

import "fmt"

// MaskLevels is the deepest supported clip nesting.
const MaskLevels = 4

// The mask target is 8-bit. Each layer adds exactly 63/255, which stays
// representable at every depth and never saturates. Bounds sit half a
// code below a level, so a fragment covered by one layer fewer maps to
// zero after quantization and a fully covered one maps to one.
const (
	maskStep      = float32(63) / 255
	maskHalfTexel = float32(0.5) / 255
)

// MaskStack tracks clip nesting for one frame. Push and Pop turn clip
// geometry into mask layer batches; Commit stamps the current level onto
// content batches.
type MaskStack struct {
	depth         int
	width, height float32
}

// NewMaskStack returns an empty stack for a w by h pixel target.
func NewMaskStack(w, h float32) *MaskStack {
	return &MaskStack{width: w, height: h}
}

// Resize updates the target size used by Bounds.
func (s *MaskStack) Resize(w, h float32) {
	s.width, s.height = w, h
}

// Depth returns the number of pushed layers.
func (s *MaskStack) Depth() int { return s.depth }

// Reset empties the stack, as at the start of a frame.
func (s *MaskStack) Reset() { s.depth = 0 }

// Bounds returns the mask renormalization for the current depth. At depth
// zero every sample maps to full alpha. At depth n only fragments covered
// by all n layers keep their alpha.
func (s *MaskStack) Bounds() MaskBounds {
	if s.depth == 0 {
		return NoMask(s.width, s.height)
	}
	return MaskBounds{
		Bias:   float32(s.depth-1)*maskStep + maskHalfTexel,
		Scale:  1 / (maskStep - maskHalfTexel),
		Width:  s.width,
		Height: s.height,
	}
}

// Push converts clip geometry into a layer added to the mask. The layer's
// vertex alpha times content coverage is the clip shape.
func (s *MaskStack) Push(clip Batch) (Batch, error) {
	if s.depth == MaskLevels {
		return Batch{}, fmt.Errorf("push at depth %d: %w", s.depth, ErrMaskOverflow)
	}
	s.depth++
	return maskLayer(clip, MaskPush), nil
}

// Pop removes the innermost layer. clip must be the geometry that was
// pushed.
func (s *MaskStack) Pop(clip Batch) (Batch, error) {
	if s.depth == 0 {
		return Batch{}, ErrMaskUnderflow
	}
	s.depth--
	return maskLayer(clip, MaskPop), nil
}

// Commit returns b masked by the current stack. Outside any clip the batch
// is drawn unmasked.
func (s *MaskStack) Commit(b Batch) Batch {
	b.Masked = s.depth > 0
	b.Uniforms.Mask = s.Bounds()
	return b
}

func maskLayer(clip Batch, op MaskOp) Batch {
	clip.Kind = KindMaskLayer
	clip.MaskOp = op
	clip.Masked = false
	clip.Subpixel = false
	clip.Uniforms.Tint = [4]float32{1, 1, 1, maskStep}
	return clip
}
