// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shadergen generates the source text of every program variant.
//
// A variant is described by a Key (program, mask, subpixel, color space)
// and emitted for one Target language. The fragment math is written once,
// against a small dialect layer, and composed per variant:
//
//	vertex:   transform, optional sRGB decode of the vertex color
//	fragment: program body -> optional mask multiply -> output
//
// Targets:
//
//	TargetWGSL     WebGPU shading language, one module with vs_main/fs_main
//	TargetGLSL100  GLSL ES 1.00, attribute/varying with loose uniforms
//	TargetGLSL330  GLSL 3.30, std140 uniform block
//
// SPIR-V is produced from the WGSL output with naga (see CompileSPIRV).
package shadergen
