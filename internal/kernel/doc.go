// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package kernel is the CPU reference for the fragment math executed by
// every program variant: distance-field glyph coverage, the subpixel
// three-tap path, the four-zone outline classifier, mask renormalization
// and the vertex color stage.
//
// The generated shader sources in internal/shadergen evaluate exactly these
// formulas. Keeping a float32 mirror here lets the numeric behavior be
// tested without a GPU and lets tools print reference curves that a
// readback can be compared against.
package kernel
