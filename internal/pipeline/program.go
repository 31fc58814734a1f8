// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/uirender/internal/shadergen"
	"github.com/gogpu/wgpu/hal"
)

var (
	// ErrNotInitialized is returned when programs are built or used before
	// Init.
	ErrNotInitialized = errors.New("pipeline: program set not initialized")

	// ErrProgramMissing is returned when a draw names a variant that was
	// never built.
	ErrProgramMissing = errors.New("pipeline: program not built")
)

// Stage names the step at which a variant failed to build.
type Stage string

const (
	StageGenerate Stage = "generate"
	StageCompile  Stage = "compile"
	StageLink     Stage = "link"
)

// BuildError reports a variant that could not be built.
type BuildError struct {
	Key   shadergen.Key
	Stage Stage
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("pipeline: %s %s: %v", e.Stage, e.Key.Name(), e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// Config holds configuration for a ProgramSet.
type Config struct {
	// Format is the color target format of the frame.
	// Default: BGRA8Unorm
	Format gputypes.TextureFormat

	// MaskFormat is the format of the screen-sized mask target.
	// Default: R8Unorm
	MaskFormat gputypes.TextureFormat

	// SampleCount is the multisample count of the frame target.
	// Default: 1
	SampleCount uint32

	// SPIRV feeds the device naga-compiled SPIR-V instead of WGSL text.
	SPIRV bool
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Format:      gputypes.TextureFormatBGRA8Unorm,
		MaskFormat:  gputypes.TextureFormatR8Unorm,
		SampleCount: 1,
	}
}

type programKey struct {
	key   shadergen.Key
	blend Blend
}

type program struct {
	shader   hal.ShaderModule
	pipeline hal.RenderPipeline
}

// ProgramSet owns every compiled variant and the objects they share.
type ProgramSet struct {
	device hal.Device
	queue  hal.Queue
	cfg    Config

	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	sampler    hal.Sampler

	programs map[programKey]*program
	inflight []inflight
}

// NewProgramSet creates an empty program set. GPU objects are not created
// until Init.
func NewProgramSet(device hal.Device, queue hal.Queue, cfg Config) *ProgramSet {
	if cfg.SampleCount == 0 {
		cfg.SampleCount = 1
	}
	return &ProgramSet{
		device:   device,
		queue:    queue,
		cfg:      cfg,
		programs: make(map[programKey]*program),
	}
}

// Config returns the configuration the set was created with.
func (s *ProgramSet) Config() Config { return s.cfg }

// Init creates the bind group layout, pipeline layout and sampler shared
// by every variant. Safe to call more than once.
func (s *ProgramSet) Init() error {
	if s.pipeLayout != nil {
		return nil
	}
	bindLayout, err := s.device.CreateBindGroupLayout(bindGroupLayoutDescriptor())
	if err != nil {
		return fmt.Errorf("create bind group layout: %w", err)
	}
	s.bindLayout = bindLayout

	pipeLayout, err := s.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "uirender_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{s.bindLayout},
	})
	if err != nil {
		s.Destroy()
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	s.pipeLayout = pipeLayout

	// Linear filtering keeps distance fields smooth between texels.
	sampler, err := s.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "uirender_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		s.Destroy()
		return fmt.Errorf("create sampler: %w", err)
	}
	s.sampler = sampler
	return nil
}

// blendsFor lists the pipelines a key needs. Mask writes get one pipeline
// per stack direction; everything else composites premultiplied.
func blendsFor(k shadergen.Key) []Blend {
	if k.Program == shadergen.ProgramMaskWrite {
		return []Blend{BlendAdd, BlendReverseSubtract}
	}
	return []Blend{BlendPremultiplied}
}

// Build compiles and links every pipeline of key k. Already built keys
// are skipped. Errors are *BuildError.
func (s *ProgramSet) Build(k shadergen.Key) error {
	if s.pipeLayout == nil {
		return ErrNotInitialized
	}
	for _, blend := range blendsFor(k) {
		pk := programKey{key: k, blend: blend}
		if _, ok := s.programs[pk]; ok {
			continue
		}
		p, err := s.buildProgram(k, blend)
		if err != nil {
			return err
		}
		s.programs[pk] = p
		slogger().Debug("pipeline: built program", "variant", k.Name(), "blend", blend.String())
	}
	return nil
}

// Has reports whether every pipeline of key k is built.
func (s *ProgramSet) Has(k shadergen.Key) bool {
	for _, blend := range blendsFor(k) {
		if _, ok := s.programs[programKey{key: k, blend: blend}]; !ok {
			return false
		}
	}
	return true
}

// Len returns the number of linked pipelines.
func (s *ProgramSet) Len() int { return len(s.programs) }

func (s *ProgramSet) shaderSource(k shadergen.Key) (hal.ShaderSource, error) {
	src, err := shadergen.Generate(k, shadergen.TargetWGSL)
	if err != nil {
		return hal.ShaderSource{}, &BuildError{Key: k, Stage: StageGenerate, Err: err}
	}
	if !s.cfg.SPIRV {
		return hal.ShaderSource{WGSL: src.Module()}, nil
	}
	code, err := shadergen.CompileSPIRV(src)
	if err != nil {
		return hal.ShaderSource{}, &BuildError{Key: k, Stage: StageCompile, Err: err}
	}
	return hal.ShaderSource{SPIRV: code}, nil
}

func (s *ProgramSet) buildProgram(k shadergen.Key, blend Blend) (*program, error) {
	source, err := s.shaderSource(k)
	if err != nil {
		return nil, err
	}
	label := k.Name()
	shader, err := s.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label + "_shader",
		Source: source,
	})
	if err != nil {
		return nil, &BuildError{Key: k, Stage: StageCompile, Err: err}
	}

	format, samples := s.cfg.Format, s.cfg.SampleCount
	if k.Program == shadergen.ProgramMaskWrite {
		format, samples = s.cfg.MaskFormat, 1
	}
	blendState := blend.state()
	pipeline, err := s.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  label + "_" + blend.String(),
		Layout: s.pipeLayout,
		Vertex: hal.VertexState{
			Module:     shader,
			EntryPoint: shadergen.VertexEntry,
			Buffers:    VertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     shader,
			EntryPoint: shadergen.FragmentEntry,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    format,
					Blend:     &blendState,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: samples,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		s.device.DestroyShaderModule(shader)
		return nil, &BuildError{Key: k, Stage: StageLink, Err: err}
	}
	return &program{shader: shader, pipeline: pipeline}, nil
}

func (s *ProgramSet) lookup(k shadergen.Key, blend Blend) (*program, error) {
	p, ok := s.programs[programKey{key: k, blend: blend}]
	if !ok {
		return nil, fmt.Errorf("%w: %s (%s)", ErrProgramMissing, k.Name(), blend)
	}
	return p, nil
}

// Destroy releases every GPU object in reverse creation order. Safe to call
// multiple times.
func (s *ProgramSet) Destroy() {
	if s.device == nil {
		return
	}
	s.Wait()
	for pk, p := range s.programs {
		s.device.DestroyRenderPipeline(p.pipeline)
		s.device.DestroyShaderModule(p.shader)
		delete(s.programs, pk)
	}
	if s.sampler != nil {
		s.device.DestroySampler(s.sampler)
		s.sampler = nil
	}
	if s.pipeLayout != nil {
		s.device.DestroyPipelineLayout(s.pipeLayout)
		s.pipeLayout = nil
	}
	if s.bindLayout != nil {
		s.device.DestroyBindGroupLayout(s.bindLayout)
		s.bindLayout = nil
	}
}
