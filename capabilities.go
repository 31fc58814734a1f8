// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uirender

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/uirender/internal/shadergen"
)

// Language is the shading language a device consumes.
type Language uint8

const (
	// LanguageWGSL is WebGPU shading language source.
	LanguageWGSL Language = iota
	// LanguageSPIRV is SPIR-V compiled from the WGSL variant.
	LanguageSPIRV
	// LanguageGLSL100 is GLSL ES 1.00, the WebGL 1 dialect.
	LanguageGLSL100
	// LanguageGLSL330 is GLSL 3.30 core.
	LanguageGLSL330
)

var languageNames = [...]string{"wgsl", "spirv", "glsl100", "glsl330"}

func (l Language) String() string {
	if int(l) < len(languageNames) {
		return languageNames[l]
	}
	return fmt.Sprintf("Language(%d)", l)
}

// ErrUnknownLanguage is returned by ParseLanguage.
var ErrUnknownLanguage = errors.New("uirender: unknown shading language")

// ParseLanguage parses a language name as printed by Language.String.
func ParseLanguage(s string) (Language, error) {
	for i, n := range languageNames {
		if strings.EqualFold(s, n) {
			return Language(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

// target is the source dialect for l. SPIR-V is produced from WGSL.
func (l Language) target() shadergen.Target {
	switch l {
	case LanguageGLSL100:
		return shadergen.TargetGLSL100
	case LanguageGLSL330:
		return shadergen.TargetGLSL330
	default:
		return shadergen.TargetWGSL
	}
}

// Capabilities describes what the device can do. Variant selection
// depends on nothing else.
type Capabilities struct {
	// Derivatives is true when fragment programs may use screen-space
	// derivatives. Subpixel text needs them.
	Derivatives bool
	Language    Language
	ColorSpace  ColorSpace
}

// DefaultCapabilities describes a WebGPU-class device with a non-sRGB
// framebuffer.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		Derivatives: true,
		Language:    LanguageWGSL,
		ColorSpace:  ColorSpaceLinear,
	}
}

// GLES2Capabilities describes a GLSL 1.00 device without the
// standard-derivatives extension.
func GLES2Capabilities() Capabilities {
	return Capabilities{Language: LanguageGLSL100}
}

// ProgramSource returns the vertex and fragment source of v in lang, for
// hosts that compile programs themselves. For WGSL and SPIR-V the two
// stages live in one module and vertex and fragment are equal.
func ProgramSource(v Variant, lang Language) (vertex, fragment string, err error) {
	src, err := shadergen.Generate(v.key(), lang.target())
	if err != nil {
		return "", "", &ProgramError{Variant: v, Stage: StageGenerate, Err: err}
	}
	if lang == LanguageWGSL || lang == LanguageSPIRV {
		m := src.Module()
		return m, m, nil
	}
	return src.Vertex, src.Fragment, nil
}

// ProgramSPIRV compiles the module of v to SPIR-V words with naga.
func ProgramSPIRV(v Variant) ([]uint32, error) {
	src, err := shadergen.Generate(v.key(), shadergen.TargetWGSL)
	if err != nil {
		return nil, &ProgramError{Variant: v, Stage: StageGenerate, Err: err}
	}
	code, err := shadergen.CompileSPIRV(src)
	if err != nil {
		return nil, &ProgramError{Variant: v, Stage: StageCompile, Err: err}
	}
	return code, nil
}
