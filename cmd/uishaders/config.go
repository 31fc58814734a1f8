// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/gogpu/uirender"
	"github.com/gogpu/uirender/text"
	"github.com/pelletier/go-toml/v2"
)

// config is the optional TOML file given with -config.
//
//	targets = ["wgsl", "glsl100"]
//	programs = ["sdf_text", "sdf_outline"]
//	color_space = "both"
//	derivatives = true
//
//	[table]
//	pseudo_bold = 0.5
//	smoothing = 0.07
//	outline_width = 0.7
//	steps = 11
type config struct {
	Targets     []string    `toml:"targets"`
	Programs    []string    `toml:"programs"`
	ColorSpace  string      `toml:"color_space"`
	Derivatives bool        `toml:"derivatives"`
	Validate    bool        `toml:"validate"`
	Table       tableConfig `toml:"table"`
}

type tableConfig struct {
	PseudoBold       float32 `toml:"pseudo_bold"`
	Smoothing        float32 `toml:"smoothing"`
	OutlineWidth     float32 `toml:"outline_width"`
	OutlineSmoothing float32 `toml:"outline_smoothing"`
	Steps            int     `toml:"steps"`
}

func defaultConfig() config {
	s := text.DefaultRenderSettings()
	return config{
		ColorSpace:  "linear",
		Derivatives: true,
		Validate:    true,
		Table: tableConfig{
			PseudoBold:       s.PseudoBold,
			Smoothing:        s.Smoothing,
			OutlineWidth:     0.7,
			OutlineSmoothing: s.OutlineSmoothing,
			Steps:            11,
		},
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// languages resolves the target list; "all" or nothing means every one.
func (c *config) languages() ([]uirender.Language, error) {
	all := []uirender.Language{uirender.LanguageWGSL, uirender.LanguageSPIRV,
		uirender.LanguageGLSL100, uirender.LanguageGLSL330}
	if len(c.Targets) == 0 || slices.Contains(c.Targets, "all") {
		return all, nil
	}
	out := make([]uirender.Language, 0, len(c.Targets))
	for _, t := range c.Targets {
		l, err := uirender.ParseLanguage(t)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// colorSpaces resolves color_space: linear, srgb or both.
func (c *config) colorSpaces() ([]uirender.ColorSpace, error) {
	switch c.ColorSpace {
	case "", "linear":
		return []uirender.ColorSpace{uirender.ColorSpaceLinear}, nil
	case "srgb":
		return []uirender.ColorSpace{uirender.ColorSpaceSRGB}, nil
	case "both":
		return []uirender.ColorSpace{uirender.ColorSpaceLinear, uirender.ColorSpaceSRGB}, nil
	}
	return nil, fmt.Errorf("unknown color_space %q", c.ColorSpace)
}

// variants lists the variants to emit.
func (c *config) variants() ([]uirender.Variant, error) {
	spaces, err := c.colorSpaces()
	if err != nil {
		return nil, err
	}
	var out []uirender.Variant
	for _, cs := range spaces {
		caps := uirender.Capabilities{Derivatives: c.Derivatives, ColorSpace: cs}
		for _, v := range uirender.AllVariants(caps) {
			if len(c.Programs) == 0 || slices.Contains(c.Programs, v.Program.String()) {
				out = append(out, v)
			}
		}
	}
	return out, nil
}
