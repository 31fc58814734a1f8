// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/uirender/internal/shadergen"
	"github.com/gogpu/wgpu/hal"
)

// ErrMissingTexture is returned when a draw has no content or mask view.
var ErrMissingTexture = errors.New("pipeline: draw is missing a texture view")

// Draw is one indexed draw of one variant.
type Draw struct {
	Key   shadergen.Key
	Blend Blend

	// Vertices are packed at VertexStride bytes per vertex.
	Vertices []byte
	Indices  []uint16
	// Uniforms are UniformSize bytes.
	Uniforms []byte

	Content hal.TextureView
	Mask    hal.TextureView
}

// Pass is a render pass over one color target.
type Pass struct {
	Label      string
	Target     hal.TextureView
	Clear      bool
	ClearColor gputypes.Color
	Draws      []Draw
}

type preparedDraw struct {
	pipeline   hal.RenderPipeline
	bindGroup  hal.BindGroup
	vertBuf    hal.Buffer
	idxBuf     hal.Buffer
	indexCount uint32
}

func (d *preparedDraw) record(rp hal.RenderPassEncoder) {
	rp.SetPipeline(d.pipeline)
	rp.SetBindGroup(0, d.bindGroup, nil)
	rp.SetVertexBuffer(0, d.vertBuf, 0)
	rp.SetIndexBuffer(d.idxBuf, gputypes.IndexFormatUint16, 0)
	rp.DrawIndexed(d.indexCount, 1, 0, 0, 0)
}

// frameResources holds the per-frame objects that live until the GPU has
// finished the submission that reads them.
type frameResources struct {
	buffers    []hal.Buffer
	bindGroups []hal.BindGroup
}

func (r *frameResources) release(device hal.Device) {
	for _, bg := range r.bindGroups {
		device.DestroyBindGroup(bg)
	}
	for _, b := range r.buffers {
		device.DestroyBuffer(b)
	}
	r.bindGroups, r.buffers = nil, nil
}

// inflight is a submitted frame awaiting completion.
type inflight struct {
	index   uint64
	res     frameResources
	encoder hal.CommandEncoder
	cmdBuf  hal.CommandBuffer
}

func (f *inflight) release(device hal.Device) {
	f.res.release(device)
	device.FreeCommandBuffer(f.cmdBuf)
	f.encoder.Destroy()
}

// retire releases every in-flight frame the queue reports as completed.
func (s *ProgramSet) retire() {
	done := s.queue.PollCompleted()
	kept := s.inflight[:0]
	for i := range s.inflight {
		if s.inflight[i].index <= done {
			s.inflight[i].release(s.device)
			continue
		}
		kept = append(kept, s.inflight[i])
	}
	clear(s.inflight[len(kept):])
	s.inflight = kept
}

// Wait blocks until the device is idle and releases all in-flight frames.
// Call it before destroying a texture a submitted frame may sample.
func (s *ProgramSet) Wait() {
	if len(s.inflight) == 0 {
		return
	}
	if err := s.device.WaitIdle(); err != nil {
		// Resources the GPU may still read are leaked rather than freed.
		slogger().Warn("pipeline: wait idle failed, leaking in-flight frames",
			"frames", len(s.inflight), "err", err)
		s.inflight = nil
		return
	}
	for i := range s.inflight {
		s.inflight[i].release(s.device)
	}
	s.inflight = nil
}

// Pending reports how many submitted frames still hold GPU resources.
func (s *ProgramSet) Pending() int {
	return len(s.inflight)
}

// Submit records passes in order into one command buffer and submits it.
// Buffers and bind groups for every draw are created before encoding
// starts, so a failing draw leaves nothing submitted. Resources of a
// submitted frame are released once the queue reports it complete, checked
// on later submits and on Destroy.
func (s *ProgramSet) Submit(passes []Pass) error {
	if s.pipeLayout == nil {
		return ErrNotInitialized
	}
	s.retire()

	var res frameResources
	prepared := make([][]preparedDraw, len(passes))
	draws := 0
	for i := range passes {
		for j := range passes[i].Draws {
			d := &passes[i].Draws[j]
			if len(d.Indices) == 0 {
				continue
			}
			pd, err := s.prepareDraw(&res, d)
			if err != nil {
				res.release(s.device)
				return err
			}
			prepared[i] = append(prepared[i], pd)
			draws++
		}
	}

	encoder, err := s.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "uirender_encoder",
	})
	if err != nil {
		res.release(s.device)
		return fmt.Errorf("create command encoder: %w", err)
	}
	cmdBuf, err := s.encode(encoder, passes, prepared)
	if err != nil {
		encoder.Destroy()
		res.release(s.device)
		return err
	}

	idx, err := s.queue.Submit([]hal.CommandBuffer{cmdBuf})
	if err != nil {
		s.device.FreeCommandBuffer(cmdBuf)
		encoder.Destroy()
		res.release(s.device)
		return fmt.Errorf("submit: %w", err)
	}
	s.inflight = append(s.inflight, inflight{index: idx, res: res, encoder: encoder, cmdBuf: cmdBuf})
	s.retire()
	slogger().Debug("pipeline: frame submitted",
		"passes", len(passes), "draws", draws, "index", idx, "pending", len(s.inflight))
	return nil
}

func (s *ProgramSet) encode(encoder hal.CommandEncoder, passes []Pass, prepared [][]preparedDraw) (hal.CommandBuffer, error) {
	if err := encoder.BeginEncoding("uirender_frame"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}
	for i := range passes {
		pass := &passes[i]
		if pass.Target == nil {
			encoder.DiscardEncoding()
			return nil, fmt.Errorf("pass %q: %w", pass.Label, ErrMissingTexture)
		}
		loadOp := gputypes.LoadOpLoad
		if pass.Clear {
			loadOp = gputypes.LoadOpClear
		}
		rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
			Label: pass.Label,
			ColorAttachments: []hal.RenderPassColorAttachment{
				{
					View:       pass.Target,
					LoadOp:     loadOp,
					StoreOp:    gputypes.StoreOpStore,
					ClearValue: pass.ClearColor,
				},
			},
		})
		for j := range prepared[i] {
			prepared[i][j].record(rp)
		}
		rp.End()
	}
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	return cmdBuf, nil
}

func (s *ProgramSet) prepareDraw(res *frameResources, d *Draw) (preparedDraw, error) {
	if d.Content == nil || d.Mask == nil {
		return preparedDraw{}, fmt.Errorf("%s: %w", d.Key.Name(), ErrMissingTexture)
	}
	p, err := s.lookup(d.Key, d.Blend)
	if err != nil {
		return preparedDraw{}, err
	}

	vertBuf, err := s.createAndUploadBuffer(res, "uirender_verts", d.Vertices,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return preparedDraw{}, err
	}
	idxBuf, err := s.createAndUploadBuffer(res, "uirender_indices", indexBytes(d.Indices),
		gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return preparedDraw{}, err
	}
	uniformBuf, err := s.createAndUploadBuffer(res, "uirender_uniforms", d.Uniforms,
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return preparedDraw{}, err
	}

	bindGroup, err := s.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "uirender_bind",
		Layout: s.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: bindingUniforms, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: UniformSize,
			}},
			{Binding: bindingContent, Resource: gputypes.TextureViewBinding{
				TextureView: d.Content.NativeHandle(),
			}},
			{Binding: bindingContentSampler, Resource: gputypes.SamplerBinding{
				Sampler: s.sampler.NativeHandle(),
			}},
			{Binding: bindingMask, Resource: gputypes.TextureViewBinding{
				TextureView: d.Mask.NativeHandle(),
			}},
			{Binding: bindingMaskSampler, Resource: gputypes.SamplerBinding{
				Sampler: s.sampler.NativeHandle(),
			}},
		},
	})
	if err != nil {
		return preparedDraw{}, fmt.Errorf("create bind group: %w", err)
	}
	res.bindGroups = append(res.bindGroups, bindGroup)

	return preparedDraw{
		pipeline:   p.pipeline,
		bindGroup:  bindGroup,
		vertBuf:    vertBuf,
		idxBuf:     idxBuf,
		indexCount: uint32(len(d.Indices)), //nolint:gosec // batches are capped at 65536 vertices
	}, nil
}

// createAndUploadBuffer creates a GPU buffer, uploads data and records the
// buffer for release after the frame.
func (s *ProgramSet) createAndUploadBuffer(res *frameResources, label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := s.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	res.buffers = append(res.buffers, buf)
	if err := s.queue.WriteBuffer(buf, 0, data); err != nil {
		return nil, fmt.Errorf("write %s: %w", label, err)
	}
	return buf, nil
}

// indexBytes packs uint16 indices, padded to a 4-byte multiple for
// buffer writes.
func indexBytes(indices []uint16) []byte {
	n := len(indices) * 2
	buf := make([]byte, (n+3)&^3)
	for i, idx := range indices {
		binary.LittleEndian.PutUint16(buf[i*2:], idx)
	}
	return buf
}
