// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uirender

import "github.com/gogpu/gputypes"

// Config holds Renderer configuration.
type Config struct {
	// Format is the color format of the frames passed to Render.
	// Default: the provider's surface format, else BGRA8Unorm.
	Format gputypes.TextureFormat

	// SampleCount is the multisample count of the frame target.
	// Default: 1
	SampleCount uint32

	// Lazy defers variant builds to first use. Build failures then surface
	// from Render instead of Init.
	Lazy bool

	// Clear clears the frame to ClearColor before the first batch.
	Clear      bool
	ClearColor gputypes.Color

	// Width and Height size the mask target at Init. Zero defers it to
	// Resize.
	Width, Height uint32
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Format:      gputypes.TextureFormatBGRA8Unorm,
		SampleCount: 1,
	}
}

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := uirender.New(provider, caps,
//	    uirender.WithSize(800, 600),
//	    uirender.WithClearColor(gputypes.Color{A: 1}),
//	)
type Option func(*Config)

// WithFormat sets the frame color format.
func WithFormat(f gputypes.TextureFormat) Option {
	return func(c *Config) {
		c.Format = f
	}
}

// WithSampleCount sets the frame multisample count.
func WithSampleCount(n uint32) Option {
	return func(c *Config) {
		c.SampleCount = n
	}
}

// WithLazyPrograms builds each variant on first use instead of at Init.
func WithLazyPrograms() Option {
	return func(c *Config) {
		c.Lazy = true
	}
}

// WithClearColor clears every frame to col before drawing.
func WithClearColor(col gputypes.Color) Option {
	return func(c *Config) {
		c.Clear = true
		c.ClearColor = col
	}
}

// WithSize sizes the mask target at Init.
func WithSize(w, h uint32) Option {
	return func(c *Config) {
		c.Width, c.Height = w, h
	}
}
