// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uirender

import "slices"

// WidgetID identifies a widget to the host.
type WidgetID uint64

// DirtySet collects widgets whose primitives must be rebuilt before the
// next frame. The zero value is ready to use. Not safe for concurrent use.
type DirtySet struct {
	ids map[WidgetID]struct{}
}

// MarkDirty records id. Marking twice is the same as once.
func (d *DirtySet) MarkDirty(id WidgetID) {
	if d.ids == nil {
		d.ids = make(map[WidgetID]struct{})
	}
	d.ids[id] = struct{}{}
}

// Dirty reports whether any widget is marked.
func (d *DirtySet) Dirty() bool { return len(d.ids) > 0 }

// Len returns the number of marked widgets.
func (d *DirtySet) Len() int { return len(d.ids) }

// Drain returns the marked widgets in ascending order and clears the set.
func (d *DirtySet) Drain() []WidgetID {
	if len(d.ids) == 0 {
		return nil
	}
	out := make([]WidgetID, 0, len(d.ids))
	for id := range d.ids {
		out = append(out, id)
	}
	clear(d.ids)
	slices.Sort(out)
	return out
}
