// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uirender

import (
	"errors"
	"fmt"

	"github.com/gogpu/uirender/internal/pipeline"
)

var (
	// ErrNotInitialized is returned by Render before a successful Init or
	// after a fatal program error.
	ErrNotInitialized = errors.New("uirender: renderer not initialized")

	// ErrNoDevice is returned when the provider exposes no HAL device.
	ErrNoDevice = errors.New("uirender: provider does not expose a HAL device")

	// ErrUnsupportedLanguage is returned when a Renderer is asked to run on
	// a device whose language it cannot feed through HAL.
	ErrUnsupportedLanguage = errors.New("uirender: shading language not supported by the HAL renderer")

	// ErrBatchTooLarge is returned for batches of more than
	// MaxBatchVertices vertices.
	ErrBatchTooLarge = errors.New("uirender: batch exceeds 65536 vertices")

	// ErrUnknownTexture is returned when a batch names an unregistered
	// TextureID.
	ErrUnknownTexture = errors.New("uirender: unknown texture")

	// ErrNoMaskTarget is returned when a frame uses masking before Resize.
	ErrNoMaskTarget = errors.New("uirender: mask target not sized")

	// ErrMaskOverflow is returned when clips nest deeper than MaskLevels.
	ErrMaskOverflow = errors.New("uirender: mask stack overflow")

	// ErrMaskUnderflow is returned when popping an empty mask stack.
	ErrMaskUnderflow = errors.New("uirender: mask stack underflow")
)

// Stage is the step at which a variant failed.
type Stage = pipeline.Stage

const (
	// StageGenerate is source generation for a variant.
	StageGenerate = pipeline.StageGenerate
	// StageCompile is shader module compilation.
	StageCompile = pipeline.StageCompile
	// StageLink is render pipeline creation.
	StageLink = pipeline.StageLink
)

// ProgramError reports a variant that failed to generate, compile or
// link. It is fatal: the renderer that returned it draws nothing further.
type ProgramError struct {
	Variant Variant
	Stage   Stage
	Err     error
}

func (e *ProgramError) Error() string {
	return fmt.Sprintf("uirender: %s %s: %v", e.Stage, e.Variant, e.Err)
}

func (e *ProgramError) Unwrap() error { return e.Err }

// programError converts a pipeline build failure into a *ProgramError.
func programError(v Variant, err error) error {
	var be *pipeline.BuildError
	if errors.As(err, &be) {
		return &ProgramError{Variant: variantOf(be.Key), Stage: be.Stage, Err: be.Err}
	}
	return &ProgramError{Variant: v, Stage: StageLink, Err: err}
}
