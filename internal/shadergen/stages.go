// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shadergen

// helper names, in declaration order.
const (
	fnSRGBDecode   = "srgb_decode"
	fnPremul       = "premul"
	fnGlyphAlpha   = "glyph_alpha"
	fnRamp         = "ramp"
	fnOutlineColor = "outline_color"
	fnMaskAlpha    = "mask_alpha"
)

// writeSRGBDecode emits the per-channel sRGB to linear transfer.
func writeSRGBDecode(w *writer, l lang) {
	w.open(l.fn("float", fnSRGBDecode, "float", "c"))
	w.open("if (c > 0.04045) {")
	w.line("return pow((c + 0.055) / 1.055, 2.4);")
	w.close()
	w.line("return c / 12.92;")
	w.close()
	w.line("")
}

func writePremul(w *writer, l lang) {
	w.open(l.fn("vec4", fnPremul, "vec4", "c"))
	w.line("return " + l.vec("vec4", "c.rgb * c.a", "c.a") + ";")
	w.close()
	w.line("")
}

// writeGlyphAlpha emits the distance-field coverage function.
// config.x is the edge offset, config.y the half-scale fold point and
// config.z the field flag.
func writeGlyphAlpha(w *writer, l lang) {
	w.open(l.fn("float", fnGlyphAlpha, "float", "sample_value", "vec4", "config", "float", "smoothing"))
	w.lines(
		l.let("c", "float", "max(sample_value, 1.0 - config.z)"),
		l.let("p", "float", "2.0 * config.y"),
		l.let("folded", "float", "p - abs(c - p)"),
		"return clamp((folded + 2.0 * config.x - 1.0) * smoothing, 0.0, 1.0);",
	)
	w.close()
	w.line("")
}

func writeRamp(w *writer, l lang) {
	w.open(l.fn("float", fnRamp, "float", "e0", "float", "e1", "float", "x"))
	w.lines(
		l.let("width", "float", "max(e1 - e0, 0.000001)"),
		l.let("t", "float", "clamp((x - e0) / width, 0.0, 1.0)"),
		"return t * t * (3.0 - 2.0 * t);",
	)
	w.close()
	w.line("")
}

// writeOutlineColor emits the four-zone classifier over outward distance
// d. Zones are half-open; the last one fades over the inner band width.
func writeOutlineColor(w *writer, l lang) {
	w.open(l.fn("vec4", fnOutlineColor, "float", "d", "vec4", "t", "vec4", "fill", "vec4", "edge"))
	w.open("if (d < t.y) {")
	w.line("return fill;")
	w.close()
	w.open("if (d < t.z) {")
	w.line("return mix(fill, edge, " + l.vec("vec4", fnRamp+"(t.y, t.z, d)") + ");")
	w.close()
	w.open("if (d < t.w) {")
	w.line("return edge;")
	w.close()
	w.line(l.let("fade", "float", "1.0 - "+fnRamp+"(t.w, t.w + (t.y - t.x), d)"))
	w.line("return " + l.vec("vec4", "edge.rgb", "edge.a * fade") + ";")
	w.close()
	w.line("")
}

// writeMaskAlpha emits the window-space mask lookup and renormalization.
// bounds is (bias, scale, viewport width, viewport height).
func writeMaskAlpha(w *writer, l lang) {
	w.open(l.fn("float", fnMaskAlpha, "vec2", "frag", "vec4", "bounds"))
	w.lines(
		l.let("s", "float", l.sampleMask("frag / bounds.zw")+".r"),
		"return clamp((s - bounds.x) * bounds.y, 0.0, 1.0);",
	)
	w.close()
	w.line("")
}

// writeFragmentHelpers emits only the helpers the key's fragment body calls.
func writeFragmentHelpers(w *writer, l lang, k Key) {
	if k.Program != ProgramMaskWrite {
		writePremul(w, l)
	}
	switch k.Program {
	case ProgramSDFText:
		writeGlyphAlpha(w, l)
	case ProgramSDFOutline:
		writeRamp(w, l)
		writeOutlineColor(w, l)
	}
	if k.Masked {
		writeMaskAlpha(w, l)
	}
}

// writeVertexBody emits the statements of the vertex entry point.
func writeVertexBody(w *writer, l lang, k Key) {
	w.line(l.clipPosition() + " = " + l.uniform("transform") + " * " +
		l.vec("vec4", l.attr("position"), "0.0", "1.0") + ";")
	w.line(l.varyingOut("uv") + " = " + l.attr("uv") + ";")
	color := l.attr("color")
	if k.SRGB {
		w.line(l.varyingOut("color") + " = " + l.vec("vec4",
			fnSRGBDecode+"("+color+".r)",
			fnSRGBDecode+"("+color+".g)",
			fnSRGBDecode+"("+color+".b)",
			color+".a") + ";")
	} else {
		w.line(l.varyingOut("color") + " = " + color + ";")
	}
	w.line(l.varyingOut("config") + " = " + l.attr("config") + ";")
	w.line(l.varyingOut("smoothing") + " = " + l.attr("smoothing") + ";")
}

// writeFragmentBody emits the statements of the fragment entry point.
// Every content sample is taken before any discard.
func writeFragmentBody(w *writer, l lang, k Key) {
	uv := l.varyingIn("uv")
	config := l.varyingIn("config")
	smoothing := l.varyingIn("smoothing")

	w.line(l.let("color", "vec4", l.varyingIn("color")+" * "+l.uniform("tint")))
	switch k.Program {
	case ProgramStandard:
		w.line(l.let("tex", "vec4", l.sample(uv)))
		w.line(l.mut("result", "vec4", fnPremul+"(color) * tex"))
	case ProgramTextSimple:
		w.line(l.let("coverage", "float", l.coverage(uv)))
		w.line(l.mut("result", "vec4", fnPremul+"(color) * coverage"))
	case ProgramSDFText:
		if k.Subpixel {
			w.lines(
				l.let("tap", "vec2", l.dfdx(uv)+" / 3.0"),
				l.let("alpha_r", "float", fnGlyphAlpha+"("+l.coverage(uv+" - tap")+", "+config+", "+smoothing+")"),
				l.let("alpha_g", "float", fnGlyphAlpha+"("+l.coverage(uv)+", "+config+", "+smoothing+")"),
				l.let("alpha_b", "float", fnGlyphAlpha+"("+l.coverage(uv+" + tap")+", "+config+", "+smoothing+")"),
				l.let("pc", "vec4", fnPremul+"(color)"),
				l.mut("result", "vec4", l.vec("vec4",
					"pc.rgb * "+l.vec("vec3", "alpha_r", "alpha_g", "alpha_b"), "pc.a * alpha_g")),
			)
		} else {
			w.line(l.let("alpha", "float", fnGlyphAlpha+"("+l.coverage(uv)+", "+config+", "+smoothing+")"))
			w.line(l.mut("result", "vec4", fnPremul+"(color) * alpha"))
		}
	case ProgramSDFOutline:
		w.lines(
			l.let("d", "float", "1.0 - max("+l.coverage(uv)+", 1.0 - "+config+".z)"),
			l.let("shaded", "vec4", fnOutlineColor+"(d, "+l.uniform("thresholds")+", color, "+l.uniform("outline")+")"),
		)
		w.open("if (shaded.a <= 0.0) {")
		w.line("discard;")
		w.close()
		w.line(l.mut("result", "vec4", fnPremul+"(shaded)"))
	case ProgramMaskWrite:
		w.line(l.let("m", "float", l.sample(uv)+".r * color.a"))
		w.line(l.mut("result", "vec4", l.vec("vec4", "m", "m", "m", "m")))
	}
	if k.Masked {
		w.line("result = result * " + fnMaskAlpha + "(" + l.fragCoord() + ", " + l.uniform("mask_bounds") + ");")
	}
	w.line(l.fragOutput("result"))
}
