// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uirender

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/uirender/internal/pipeline"
	"github.com/gogpu/wgpu/hal"
)

// Renderer draws batches with the program variants of one device.
//
// A Renderer is not safe for concurrent use. Mutate it (textures, size)
// only between frames.
type Renderer struct {
	device hal.Device
	queue  hal.Queue
	caps   Capabilities
	cfg    Config

	programs *pipeline.ProgramSet
	white    *pipeline.Texture
	mask     *pipeline.Texture

	textures map[TextureID]hal.TextureView
	owned    map[TextureID]*pipeline.Texture
	nextID   TextureID

	ready bool
	// fatal is the first program error; once set the renderer stays down.
	fatal error
}

// New creates a Renderer on the device shared by provider. The provider
// must implement HalDevice() any and HalQueue() any returning hal.Device
// and hal.Queue, as gogpu hosts do.
func New(provider gpucontext.DeviceProvider, caps Capabilities, opts ...Option) (*Renderer, error) {
	if provider == nil {
		return nil, ErrNoDevice
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoDevice
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoDevice)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoDevice)
	}
	if f := provider.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
		opts = append([]Option{WithFormat(f)}, opts...)
	}
	return NewWithDevice(device, queue, caps, opts...)
}

// NewWithDevice creates a Renderer on HAL handles the host already owns.
// The renderer never destroys device or queue.
func NewWithDevice(device hal.Device, queue hal.Queue, caps Capabilities, opts ...Option) (*Renderer, error) {
	if device == nil || queue == nil {
		return nil, ErrNoDevice
	}
	switch caps.Language {
	case LanguageWGSL, LanguageSPIRV:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, caps.Language)
	}
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	pcfg := pipeline.DefaultConfig()
	pcfg.Format = cfg.Format
	pcfg.SampleCount = cfg.SampleCount
	pcfg.SPIRV = caps.Language == LanguageSPIRV

	if !caps.Derivatives {
		slogger().Debug("uirender: no derivative support, subpixel text uses single coverage")
	}
	return &Renderer{
		device:   device,
		queue:    queue,
		caps:     caps,
		cfg:      cfg,
		programs: pipeline.NewProgramSet(device, queue, pcfg),
		textures: make(map[TextureID]hal.TextureView),
		owned:    make(map[TextureID]*pipeline.Texture),
		nextID:   firstUserTexture,
	}, nil
}

// Capabilities returns the capabilities the renderer selects variants for.
func (r *Renderer) Capabilities() Capabilities { return r.caps }

// Config returns the renderer configuration.
func (r *Renderer) Config() Config { return r.cfg }

// Select picks the variant a batch would be drawn with.
func (r *Renderer) Select(kind ContentKind, masked, subpixel bool) Variant {
	return Select(kind, masked, subpixel, r.caps)
}

// Init creates the shared GPU objects and, unless WithLazyPrograms was
// given, builds every variant reachable under the renderer's
// capabilities. A *ProgramError is fatal: the renderer stays unusable.
func (r *Renderer) Init() error {
	if r.fatal != nil {
		return r.fatal
	}
	if r.ready {
		return nil
	}
	if err := r.programs.Init(); err != nil {
		return fmt.Errorf("uirender: init: %w", err)
	}
	if r.white == nil {
		white, err := pipeline.NewWhiteTexture(r.device, r.queue)
		if err != nil {
			return fmt.Errorf("uirender: init: %w", err)
		}
		r.white = white
	}
	if r.mask == nil && r.cfg.Width > 0 && r.cfg.Height > 0 {
		if err := r.Resize(r.cfg.Width, r.cfg.Height); err != nil {
			return err
		}
	}
	if !r.cfg.Lazy {
		variants := AllVariants(r.caps)
		for _, v := range variants {
			if err := r.programs.Build(v.key()); err != nil {
				return r.fail(programError(v, err))
			}
		}
		slogger().Info("uirender: programs ready", "variants", len(variants), "pipelines", r.programs.Len())
	}
	r.ready = true
	return nil
}

// fail records a fatal program error and releases the programs.
func (r *Renderer) fail(err error) error {
	r.fatal = err
	r.ready = false
	r.programs.Destroy()
	return err
}

// RegisterTexture makes view available to batches under the returned ID.
// The renderer does not take ownership of view.
func (r *Renderer) RegisterTexture(view hal.TextureView) TextureID {
	id := r.nextID
	r.nextID++
	r.textures[id] = view
	return id
}

// UploadAlpha creates a single channel texture from w*h bytes of
// coverage or distance data, such as a glyph atlas, and registers it.
// The renderer owns the texture until ReleaseTexture or Destroy.
func (r *Renderer) UploadAlpha(w, h uint32, pixels []byte) (TextureID, error) {
	if uint64(len(pixels)) < uint64(w)*uint64(h) {
		return 0, fmt.Errorf("uirender: upload %dx%d: have %d bytes", w, h, len(pixels))
	}
	tex, err := pipeline.NewR8Texture(r.device, r.queue, "uirender_alpha", w, h, pixels)
	if err != nil {
		return 0, fmt.Errorf("uirender: upload: %w", err)
	}
	id := r.RegisterTexture(tex.View)
	r.owned[id] = tex
	return id, nil
}

// ReleaseTexture forgets id and destroys the texture if the renderer owns
// it. The built-in textures cannot be released.
func (r *Renderer) ReleaseTexture(id TextureID) {
	if id < firstUserTexture {
		return
	}
	if _, ok := r.textures[id]; !ok {
		slogger().Warn("uirender: release of unknown texture", "id", id)
		return
	}
	delete(r.textures, id)
	if tex, ok := r.owned[id]; ok {
		r.programs.Wait()
		tex.Destroy(r.device)
		delete(r.owned, id)
	}
}

// Resize recreates the mask target at w by h pixels.
func (r *Renderer) Resize(w, h uint32) error {
	if w == 0 || h == 0 {
		return fmt.Errorf("uirender: resize to %dx%d", w, h)
	}
	if r.mask != nil && r.mask.Width == w && r.mask.Height == h {
		return nil
	}
	mask, err := pipeline.NewMaskTarget(r.device, w, h, r.programs.Config().MaskFormat)
	if err != nil {
		return fmt.Errorf("uirender: resize: %w", err)
	}
	r.programs.Wait()
	r.mask.Destroy(r.device)
	r.mask = mask
	r.cfg.Width, r.cfg.Height = w, h
	return nil
}

// destination is where a pass draws.
type destination uint8

const (
	toFrame destination = iota
	toMask
)

// Render draws batches in order into target in a single submission. On
// any error nothing is submitted.
func (r *Renderer) Render(target hal.TextureView, batches []Batch) error {
	if !r.ready {
		if r.fatal != nil {
			return fmt.Errorf("%w: %w", ErrNotInitialized, r.fatal)
		}
		return ErrNotInitialized
	}
	if target == nil {
		return fmt.Errorf("uirender: render: %w", pipeline.ErrMissingTexture)
	}

	var (
		passes   []pipeline.Pass
		dests    []destination
		maskUsed bool
	)
	for i := range batches {
		b := &batches[i]
		v := r.Select(b.Kind, b.Masked, b.Subpixel)
		if r.cfg.Lazy && !r.programs.Has(v.key()) {
			if err := r.programs.Build(v.key()); err != nil {
				return r.fail(programError(v, err))
			}
		}
		draw, err := r.draw(b, v)
		if err != nil {
			return fmt.Errorf("uirender: batch %d (%s): %w", i, v, err)
		}

		dest := toFrame
		if v.Program == ProgramMaskWrite {
			dest = toMask
		}
		if v.Program == ProgramMaskWrite || v.Masked {
			maskUsed = true
		}
		if n := len(passes); n == 0 || dests[n-1] != dest {
			passes = append(passes, r.newPass(dest, target))
			dests = append(dests, dest)
		}
		last := &passes[len(passes)-1]
		last.Draws = append(last.Draws, draw)
	}

	if maskUsed {
		// The mask is rebuilt every frame from the layers pushed in it.
		reset := pipeline.Pass{Label: "uirender_mask_clear", Target: r.mask.View, Clear: true}
		passes = append([]pipeline.Pass{reset}, passes...)
	}
	if r.cfg.Clear {
		passes = r.clearFrame(passes, target)
	}
	return r.programs.Submit(passes)
}

// clearFrame marks the first frame pass as clearing, adding an empty one
// when the frame has no draws of its own.
func (r *Renderer) clearFrame(passes []pipeline.Pass, target hal.TextureView) []pipeline.Pass {
	for i := range passes {
		if passes[i].Label == frameLabel {
			passes[i].Clear = true
			passes[i].ClearColor = r.cfg.ClearColor
			return passes
		}
	}
	return append(passes, pipeline.Pass{
		Label:      frameLabel,
		Target:     target,
		Clear:      true,
		ClearColor: r.cfg.ClearColor,
	})
}

const (
	frameLabel = "uirender_frame"
	maskLabel  = "uirender_mask"
)

func (r *Renderer) newPass(dest destination, target hal.TextureView) pipeline.Pass {
	if dest == toMask {
		return pipeline.Pass{Label: maskLabel, Target: r.mask.View}
	}
	return pipeline.Pass{Label: frameLabel, Target: target}
}

// draw converts a batch into a pipeline draw for variant v.
func (r *Renderer) draw(b *Batch, v Variant) (pipeline.Draw, error) {
	if len(b.Vertices) > MaxBatchVertices {
		return pipeline.Draw{}, fmt.Errorf("%d vertices: %w", len(b.Vertices), ErrBatchTooLarge)
	}
	if (v.Masked || v.Program == ProgramMaskWrite) && r.mask == nil {
		return pipeline.Draw{}, ErrNoMaskTarget
	}
	content, err := r.view(b.Uniforms.Textures.Content)
	if err != nil {
		return pipeline.Draw{}, err
	}
	mask := r.white.View
	if v.Masked {
		id := b.Uniforms.Textures.Mask
		if id == WhiteTexture {
			id = MaskTexture
		}
		if mask, err = r.view(id); err != nil {
			return pipeline.Draw{}, err
		}
	}
	blend := pipeline.BlendPremultiplied
	if v.Program == ProgramMaskWrite {
		blend = pipeline.BlendAdd
		if b.MaskOp == MaskPop {
			blend = pipeline.BlendReverseSubtract
		}
	}
	return pipeline.Draw{
		Key:      v.key(),
		Blend:    blend,
		Vertices: AppendVertices(nil, b.Vertices),
		Indices:  b.indices(),
		Uniforms: b.Uniforms.Bytes(),
		Content:  content,
		Mask:     mask,
	}, nil
}

func (r *Renderer) view(id TextureID) (hal.TextureView, error) {
	switch id {
	case WhiteTexture:
		return r.white.View, nil
	case MaskTexture:
		if r.mask == nil {
			return nil, ErrNoMaskTarget
		}
		return r.mask.View, nil
	}
	view, ok := r.textures[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTexture, id)
	}
	return view, nil
}

// Destroy releases every GPU object the renderer created. The device and
// queue are left to their owner. Safe to call more than once.
func (r *Renderer) Destroy() {
	r.programs.Destroy()
	for id, tex := range r.owned {
		tex.Destroy(r.device)
		delete(r.owned, id)
	}
	clear(r.textures)
	r.white.Destroy(r.device)
	r.white = nil
	r.mask.Destroy(r.device)
	r.mask = nil
	r.ready = false
}
