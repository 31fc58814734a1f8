// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command uishaders writes the generated program sources of every variant
// and tabulates the distance-field shading on the CPU.
//
// Usage:
//
//	uishaders -out shaders -target all
//	uishaders -config shaders.toml -table
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/gogpu/uirender"
	"github.com/gogpu/uirender/text"
)

func main() {
	var (
		out        = flag.String("out", "shaders", "output directory")
		configPath = flag.String("config", "", "TOML config file")
		target     = flag.String("target", "", "wgsl, spirv, glsl100, glsl330 or all (overrides config)")
		table      = flag.Bool("table", false, "print a shading table instead of writing sources")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *target != "" {
		cfg.Targets = []string{*target}
	}

	if *table {
		writeTable(os.Stdout, &cfg.Table)
		return
	}

	langs, err := cfg.languages()
	if err != nil {
		log.Fatalf("Bad target: %v", err)
	}
	variants, err := cfg.variants()
	if err != nil {
		log.Fatalf("Bad config: %v", err)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}

	files := 0
	for _, v := range variants {
		for _, l := range langs {
			n, err := emit(*out, v, l, cfg.Validate)
			if err != nil {
				log.Fatalf("%s/%s: %v", v, l, err)
			}
			files += n
		}
	}
	log.Printf("Wrote %d files for %d variants to %s", files, len(variants), *out)
}

// emit writes the sources of v in language l and returns the number of
// files written. WGSL is checked with naga when validate is set.
func emit(dir string, v uirender.Variant, l uirender.Language, validate bool) (int, error) {
	base := filepath.Join(dir, v.String())
	switch l {
	case uirender.LanguageSPIRV:
		code, err := uirender.ProgramSPIRV(v)
		if err != nil {
			return 0, err
		}
		buf := make([]byte, 0, len(code)*4)
		for _, w := range code {
			buf = binary.LittleEndian.AppendUint32(buf, w)
		}
		return 1, os.WriteFile(base+".spv", buf, 0o644)
	case uirender.LanguageWGSL:
		vs, _, err := uirender.ProgramSource(v, l)
		if err != nil {
			return 0, err
		}
		if validate {
			if _, err := uirender.ProgramSPIRV(v); err != nil {
				return 0, err
			}
		}
		return 1, os.WriteFile(base+".wgsl", []byte(vs), 0o644)
	default:
		vs, fs, err := uirender.ProgramSource(v, l)
		if err != nil {
			return 0, err
		}
		if err := os.WriteFile(base+"."+l.String()+".vert", []byte(vs), 0o644); err != nil {
			return 0, err
		}
		return 2, os.WriteFile(base+"."+l.String()+".frag", []byte(fs), 0o644)
	}
}

// writeTable prints glyph alpha and outline color across the field range
// for the table settings.
func writeTable(w io.Writer, p *tableConfig) {
	s := text.DefaultRenderSettings()
	s.PseudoBold = p.PseudoBold
	s.Smoothing = p.Smoothing
	s.OutlineWidth = p.OutlineWidth
	s.OutlineSmoothing = p.OutlineSmoothing
	s.OutlineColor = [4]float32{0, 0, 0, 1}

	glyph := uirender.Variant{Program: uirender.ProgramSDFText}
	shape := uirender.Variant{Program: uirender.ProgramSDFOutline}
	u := uirender.DefaultUniforms(uirender.Identity())
	u.Thresholds = s.OutlineThresholds()
	u.Outline = s.OutlineColor

	steps := max(p.Steps, 2)
	fmt.Fprintf(w, "thresholds %.4f %.4f %.4f %.4f\n", u.Thresholds[0], u.Thresholds[1], u.Thresholds[2], u.Thresholds[3])
	fmt.Fprintln(w, "field   text_alpha  outline_rgba")
	for i := 0; i < steps; i++ {
		sample := float32(i) / float32(steps-1)
		f := uirender.Fragment{
			Color:     s.TextColor,
			Config:    s.GlyphConfig(),
			Smoothing: s.VertexSmoothing(),
			Content:   [4]float32{sample, sample, sample, 1},
		}
		ta, _ := glyph.Shade(f, &u)
		oc, discard := shape.Shade(f, &u)
		if discard {
			fmt.Fprintf(w, "%.3f   %.4f      discard\n", sample, ta[3])
			continue
		}
		fmt.Fprintf(w, "%.3f   %.4f      %.3f %.3f %.3f %.3f\n", sample, ta[3], oc[0], oc[1], oc[2], oc[3])
	}
}
