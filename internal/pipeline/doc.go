// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pipeline owns the GPU side of the program variants: one render
// pipeline per variant built on the gogpu HAL, the shared bind group and
// vertex layouts, the blend states of the mask passes, and per-frame
// buffer upload and render pass recording.
//
// Architecture:
//
//	ProgramSet owns the bind group layout, pipeline layout, sampler and
//	           every compiled variant
//	Submit     records an ordered list of passes into one command buffer
//	           and waits for the fence; a frame is all-or-nothing
package pipeline
