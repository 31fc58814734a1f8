// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shadergen

import "strings"

type writer struct {
	b      strings.Builder
	indent int
}

func (w *writer) line(s string) {
	if s == "" {
		w.b.WriteByte('\n')
		return
	}
	for range w.indent {
		w.b.WriteString("    ")
	}
	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

func (w *writer) lines(ss ...string) {
	for _, s := range ss {
		w.line(s)
	}
}

// open writes s and indents the following lines.
func (w *writer) open(s string) {
	w.line(s)
	w.indent++
}

func (w *writer) close() {
	w.indent--
	w.line("}")
}

func (w *writer) String() string { return w.b.String() }
