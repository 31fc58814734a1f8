// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shadergen

import "fmt"

// Entry point names shared by every target.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// AttributeNames are the GLSL vertex inputs in shader location order.
// WGSL uses the same order through @location.
var AttributeNames = [...]string{"a_position", "a_uv", "a_color", "a_config", "a_smoothing"}

// Sampler uniform names in GLSL targets.
const (
	ContentSampler = "u_content"
	MaskSampler    = "u_mask"
)

// UniformBlock is the std140 block name used by the GLSL 3.30 target.
const UniformBlock = "Uniforms"

// Source is the generated text of one variant for one target.
// For WGSL, Vertex and Fragment hold the same module.
type Source struct {
	Key      Key
	Target   Target
	Vertex   string
	Fragment string
}

// Module returns the single WGSL module. It is empty for GLSL targets.
func (s Source) Module() string {
	if s.Target != TargetWGSL {
		return ""
	}
	return s.Vertex
}

// Label is a stable name for logs and GPU object labels.
func (s Source) Label() string {
	return s.Key.Name() + "." + s.Target.String()
}

// Generate emits the sources for key k in target t.
func Generate(k Key, t Target) (Source, error) {
	if err := k.Validate(); err != nil {
		return Source{}, err
	}
	l := lang{target: t}
	switch t {
	case TargetWGSL:
		mod := wgslModule(l, k)
		return Source{Key: k, Target: t, Vertex: mod, Fragment: mod}, nil
	case TargetGLSL100, TargetGLSL330:
		return Source{Key: k, Target: t, Vertex: glslVertex(l, k), Fragment: glslFragment(l, k)}, nil
	default:
		return Source{}, fmt.Errorf("%w: %s", ErrUnknownTarget, t)
	}
}

// MustGenerate is like Generate but panics on an invalid key. It is meant
// for keys produced by AllKeys.
func MustGenerate(k Key, t Target) Source {
	s, err := Generate(k, t)
	if err != nil {
		panic(err)
	}
	return s
}

// AllKeys enumerates every valid variant key.
func AllKeys() []Key {
	var keys []Key
	for _, p := range Programs {
		for _, masked := range []bool{false, true} {
			for _, sub := range []bool{false, true} {
				for _, srgb := range []bool{false, true} {
					k := Key{Program: p, Masked: masked, Subpixel: sub, SRGB: srgb}
					if k.Validate() == nil {
						keys = append(keys, k)
					}
				}
			}
		}
	}
	return keys
}

func wgslModule(l lang, k Key) string {
	var w writer
	w.open("struct Uniforms {")
	w.lines(
		"transform: mat4x4<f32>,",
		"tint: vec4<f32>,",
		"outline: vec4<f32>,",
		"thresholds: vec4<f32>,",
		"mask_bounds: vec4<f32>,",
		"chan_mask: vec4<f32>,",
	)
	w.close()
	w.line("")
	w.lines(
		"@group(0) @binding(0) var<uniform> u: Uniforms;",
		"@group(0) @binding(1) var content_tex: texture_2d<f32>;",
		"@group(0) @binding(2) var content_smp: sampler;",
	)
	if k.Masked {
		w.lines(
			"@group(0) @binding(3) var mask_tex: texture_2d<f32>;",
			"@group(0) @binding(4) var mask_smp: sampler;",
		)
	}
	w.line("")
	w.open("struct VertexInput {")
	w.lines(
		"@location(0) position: vec2<f32>,",
		"@location(1) uv: vec2<f32>,",
		"@location(2) color: vec4<f32>,",
		"@location(3) config: vec4<f32>,",
		"@location(4) smoothing: f32,",
	)
	w.close()
	w.line("")
	w.open("struct VertexOutput {")
	w.lines(
		"@builtin(position) position: vec4<f32>,",
		"@location(0) uv: vec2<f32>,",
		"@location(1) color: vec4<f32>,",
		"@location(2) config: vec4<f32>,",
		"@location(3) smoothing: f32,",
	)
	w.close()
	w.line("")

	if k.SRGB {
		writeSRGBDecode(&w, l)
	}
	w.line("@vertex")
	w.open("fn " + VertexEntry + "(in: VertexInput) -> VertexOutput {")
	w.line("var v: VertexOutput;")
	writeVertexBody(&w, l, k)
	w.line("return v;")
	w.close()
	w.line("")

	writeFragmentHelpers(&w, l, k)
	w.line("@fragment")
	w.open("fn " + FragmentEntry + "(in: VertexOutput) -> @location(0) vec4<f32> {")
	writeFragmentBody(&w, l, k)
	w.close()
	return w.String()
}

func glslHeader(w *writer, t Target) {
	if t == TargetGLSL100 {
		w.line("#version 100")
	} else {
		w.line("#version 330 core")
	}
}

func glslUniforms(w *writer, t Target, stage string) {
	if t == TargetGLSL330 {
		w.open("layout(std140) uniform " + UniformBlock + " {")
		w.lines("mat4 transform;", "vec4 tint;", "vec4 outline;", "vec4 thresholds;", "vec4 mask_bounds;", "vec4 chan_mask;")
		w.indent--
		w.line("} u;")
		return
	}
	if stage == "vertex" {
		w.line("uniform mat4 u_transform;")
		return
	}
	w.lines(
		"uniform vec4 u_tint;",
		"uniform vec4 u_outline;",
		"uniform vec4 u_thresholds;",
		"uniform vec4 u_mask_bounds;",
		"uniform vec4 u_chan_mask;",
	)
}

// glslVaryings declares interpolated values; qualifier is "varying",
// "out" or "in".
func glslVaryings(w *writer, qualifier string) {
	w.lines(
		qualifier+" vec2 v_uv;",
		qualifier+" vec4 v_color;",
		qualifier+" vec4 v_config;",
		qualifier+" float v_smoothing;",
	)
}

var attributeTypes = [...]string{"vec2", "vec2", "vec4", "vec4", "float"}

func glslVertex(l lang, k Key) string {
	var w writer
	glslHeader(&w, l.target)
	w.line("")
	glslUniforms(&w, l.target, "vertex")
	w.line("")
	for i, name := range AttributeNames {
		if l.target == TargetGLSL100 {
			w.line(fmt.Sprintf("attribute %s %s;", attributeTypes[i], name))
		} else {
			w.line(fmt.Sprintf("layout(location = %d) in %s %s;", i, attributeTypes[i], name))
		}
	}
	w.line("")
	if l.target == TargetGLSL100 {
		glslVaryings(&w, "varying")
	} else {
		glslVaryings(&w, "out")
	}
	w.line("")
	if k.SRGB {
		writeSRGBDecode(&w, l)
	}
	w.open("void main() {")
	writeVertexBody(&w, l, k)
	w.close()
	return w.String()
}

func glslFragment(l lang, k Key) string {
	var w writer
	glslHeader(&w, l.target)
	if l.target == TargetGLSL100 {
		if k.UsesDerivatives() {
			w.line("#extension GL_OES_standard_derivatives : enable")
		}
		w.lines(
			"#ifdef GL_FRAGMENT_PRECISION_HIGH",
			"precision highp float;",
			"#else",
			"precision mediump float;",
			"#endif",
		)
	}
	w.line("")
	glslUniforms(&w, l.target, "fragment")
	w.line("uniform sampler2D " + ContentSampler + ";")
	if k.Masked {
		w.line("uniform sampler2D " + MaskSampler + ";")
	}
	w.line("")
	if l.target == TargetGLSL100 {
		glslVaryings(&w, "varying")
	} else {
		glslVaryings(&w, "in")
		w.line("out vec4 frag_color;")
	}
	w.line("")
	writeFragmentHelpers(&w, l, k)
	w.open("void main() {")
	writeFragmentBody(&w, l, k)
	w.close()
	return w.String()
}
