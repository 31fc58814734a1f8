// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shadergen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKey is returned for feature combinations no program supports.
var ErrInvalidKey = errors.New("shadergen: invalid variant key")

// ErrUnknownTarget is returned when parsing an unknown target name.
var ErrUnknownTarget = errors.New("shadergen: unknown target")

// Target is a shading language the generator can emit.
type Target uint8

const (
	// TargetWGSL emits WGSL with a uniform struct at group 0.
	TargetWGSL Target = iota
	// TargetGLSL100 emits GLSL ES 1.00 with loose uniforms.
	TargetGLSL100
	// TargetGLSL330 emits GLSL 3.30 with a std140 uniform block.
	TargetGLSL330
)

// Targets lists every source language.
var Targets = []Target{TargetWGSL, TargetGLSL100, TargetGLSL330}

func (t Target) String() string {
	switch t {
	case TargetWGSL:
		return "wgsl"
	case TargetGLSL100:
		return "glsl100"
	case TargetGLSL330:
		return "glsl330"
	default:
		return fmt.Sprintf("Target(%d)", uint8(t))
	}
}

// ParseTarget returns the target with the given name.
func ParseTarget(name string) (Target, error) {
	for _, t := range Targets {
		if strings.EqualFold(name, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
}

// Program is the fragment body of a variant.
type Program uint8

const (
	// ProgramStandard draws a tinted texture.
	ProgramStandard Program = iota
	// ProgramTextSimple uses the content red channel as glyph coverage.
	ProgramTextSimple
	// ProgramSDFText evaluates a distance-field glyph.
	ProgramSDFText
	// ProgramSDFOutline evaluates the four-zone fill/outline classifier.
	ProgramSDFOutline
	// ProgramMaskWrite accumulates coverage into the mask target.
	ProgramMaskWrite
)

// Programs lists every program in declaration order.
var Programs = []Program{
	ProgramStandard, ProgramTextSimple, ProgramSDFText, ProgramSDFOutline, ProgramMaskWrite,
}

var programNames = [...]string{"standard", "text_simple", "sdf_text", "sdf_outline", "mask_write"}

func (p Program) String() string {
	if int(p) < len(programNames) {
		return programNames[p]
	}
	return fmt.Sprintf("Program(%d)", uint8(p))
}

// Key identifies one program variant.
type Key struct {
	Program  Program
	Masked   bool
	Subpixel bool
	SRGB     bool
}

// Name returns a stable label such as "sdf_text+mask+subpixel".
func (k Key) Name() string {
	var b strings.Builder
	b.WriteString(k.Program.String())
	if k.Masked {
		b.WriteString("+mask")
	}
	if k.Subpixel {
		b.WriteString("+subpixel")
	}
	if k.SRGB {
		b.WriteString("+srgb")
	}
	return b.String()
}

// UsesDerivatives reports whether the fragment stage needs screen-space
// derivative instructions.
func (k Key) UsesDerivatives() bool {
	return k.Program == ProgramSDFText && k.Subpixel
}

// Validate rejects combinations that have no meaning.
func (k Key) Validate() error {
	if int(k.Program) >= len(programNames) {
		return fmt.Errorf("%w: %s", ErrInvalidKey, k.Program)
	}
	if k.Subpixel && k.Program != ProgramSDFText {
		return fmt.Errorf("%w: subpixel requires sdf_text, got %s", ErrInvalidKey, k.Name())
	}
	if k.Masked && k.Program == ProgramMaskWrite {
		return fmt.Errorf("%w: mask writes cannot be masked", ErrInvalidKey)
	}
	return nil
}
