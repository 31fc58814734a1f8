// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shadergen

import (
	"fmt"
	"strings"
)

// lang renders the handful of constructs that differ between targets.
// Types are named in GLSL spelling ("float", "vec4", "mat4") and mapped
// for WGSL.
type lang struct {
	target Target
}

func (l lang) wgsl() bool { return l.target == TargetWGSL }

func (l lang) ty(t string) string {
	if !l.wgsl() {
		return t
	}
	switch t {
	case "float":
		return "f32"
	case "mat4":
		return "mat4x4<f32>"
	default:
		return t + "<f32>"
	}
}

// let declares an immutable local.
func (l lang) let(name, t, expr string) string {
	if l.wgsl() {
		return fmt.Sprintf("let %s: %s = %s;", name, l.ty(t), expr)
	}
	return fmt.Sprintf("%s %s = %s;", t, name, expr)
}

// mut declares a mutable local.
func (l lang) mut(name, t, expr string) string {
	if l.wgsl() {
		return fmt.Sprintf("var %s: %s = %s;", name, l.ty(t), expr)
	}
	return fmt.Sprintf("%s %s = %s;", t, name, expr)
}

// vec builds a vector constructor.
func (l lang) vec(t string, args ...string) string {
	return l.ty(t) + "(" + strings.Join(args, ", ") + ")"
}

// fn opens a function. params alternate type and name.
func (l lang) fn(ret, name string, params ...string) string {
	parts := make([]string, 0, len(params)/2)
	for i := 0; i+1 < len(params); i += 2 {
		if l.wgsl() {
			parts = append(parts, params[i+1]+": "+l.ty(params[i]))
		} else {
			parts = append(parts, params[i]+" "+params[i+1])
		}
	}
	if l.wgsl() {
		return fmt.Sprintf("fn %s(%s) -> %s {", name, strings.Join(parts, ", "), l.ty(ret))
	}
	return fmt.Sprintf("%s %s(%s) {", ret, name, strings.Join(parts, ", "))
}

// uniform names a field of the uniform set.
func (l lang) uniform(field string) string {
	if l.target == TargetGLSL100 {
		return "u_" + field
	}
	return "u." + field
}

// attr names a vertex input in the vertex stage.
func (l lang) attr(field string) string {
	if l.wgsl() {
		return "in." + field
	}
	return "a_" + field
}

// varyingOut names an interpolated output in the vertex stage.
func (l lang) varyingOut(field string) string {
	if l.wgsl() {
		return "v." + field
	}
	return "v_" + field
}

// varyingIn names an interpolated input in the fragment stage.
func (l lang) varyingIn(field string) string {
	if l.wgsl() {
		return "in." + field
	}
	return "v_" + field
}

func (l lang) clipPosition() string {
	if l.wgsl() {
		return "v.position"
	}
	return "gl_Position"
}

func (l lang) fragCoord() string {
	if l.wgsl() {
		return "in.position.xy"
	}
	return "gl_FragCoord.xy"
}

// sample reads the content texture. WGSL uses implicit-lod sampling, so
// callers only sample content in uniform control flow.
func (l lang) sample(uv string) string {
	switch l.target {
	case TargetWGSL:
		return "textureSample(content_tex, content_smp, " + uv + ")"
	case TargetGLSL100:
		return "texture2D(u_content, " + uv + ")"
	default:
		return "texture(u_content, " + uv + ")"
	}
}

// coverage reads one content channel at uv through the chan_mask uniform.
func (l lang) coverage(uv string) string {
	return "dot(" + l.sample(uv) + ", " + l.uniform("chan_mask") + ")"
}

// sampleMask reads the mask texture at an explicit level so it is legal
// after a discard.
func (l lang) sampleMask(uv string) string {
	switch l.target {
	case TargetWGSL:
		return "textureSampleLevel(mask_tex, mask_smp, " + uv + ", 0.0)"
	case TargetGLSL100:
		return "texture2D(u_mask, " + uv + ")"
	default:
		return "texture(u_mask, " + uv + ")"
	}
}

func (l lang) dfdx(e string) string {
	if l.wgsl() {
		return "dpdx(" + e + ")"
	}
	return "dFdx(" + e + ")"
}

func (l lang) fragOutput(e string) string {
	switch l.target {
	case TargetWGSL:
		return "return " + e + ";"
	case TargetGLSL100:
		return "gl_FragColor = " + e + ";"
	default:
		return "frag_color = " + e + ";"
	}
}
