// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uirender

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/uirender/internal/pipeline"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// createNoopDevice creates a noop device and queue for testing.
// Returns the device, queue, and a cleanup function.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

type mockQueue struct{}

type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider and hands out HAL
// handles the way gogpu hosts do.
type mockProvider struct {
	format gputypes.TextureFormat
	device hal.Device
	queue  hal.Queue
}

func (m *mockProvider) Device() gpucontext.Device             { return &mockDevice{} }
func (m *mockProvider) Queue() gpucontext.Queue               { return &mockQueue{} }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return &mockAdapter{} }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return m.format }
func (m *mockProvider) AdapterInfo() gpucontext.AdapterInfo   { return gpucontext.AdapterInfo{} }
func (m *mockProvider) HalDevice() any                        { return m.device }
func (m *mockProvider) HalQueue() any                         { return m.queue }

// plainProvider exposes no HAL handles.
type plainProvider struct{}

func (plainProvider) Device() gpucontext.Device             { return &mockDevice{} }
func (plainProvider) Queue() gpucontext.Queue               { return &mockQueue{} }
func (plainProvider) Adapter() gpucontext.Adapter           { return &mockAdapter{} }
func (plainProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatUndefined }
func (plainProvider) AdapterInfo() gpucontext.AdapterInfo   { return gpucontext.AdapterInfo{} }

type testFrame struct {
	r      *Renderer
	target *pipeline.Texture
}

func newTestFrame(t *testing.T, device hal.Device, queue hal.Queue, opts ...Option) *testFrame {
	t.Helper()
	opts = append([]Option{WithSize(64, 64)}, opts...)
	r, err := NewWithDevice(device, queue, DefaultCapabilities(), opts...)
	if err != nil {
		t.Fatalf("NewWithDevice failed: %v", err)
	}
	if err := r.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	target, err := pipeline.CreateTexture(device, "frame", 64, 64, r.Config().Format,
		gputypes.TextureUsageRenderAttachment)
	if err != nil {
		t.Fatalf("CreateTexture failed: %v", err)
	}
	t.Cleanup(func() {
		target.Destroy(device)
		r.Destroy()
	})
	return &testFrame{r: r, target: target}
}

func quadBatch(kind ContentKind) Batch {
	var b Batch
	_ = b.AddQuad(Quad(0, 0, 32, 32, 0, 0, 1, 1, Vertex{
		Color:     [4]uint8{255, 255, 255, 255},
		Config:    GlyphConfig(0.25, 0.5),
		Smoothing: 14,
	}))
	b.Kind = kind
	b.Uniforms = DefaultUniforms(Viewport(64, 64))
	return b
}

func TestNewFromProvider(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	p := &mockProvider{format: gputypes.TextureFormatRGBA8Unorm, device: device, queue: queue}
	r, err := New(p, DefaultCapabilities())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer r.Destroy()
	if got := r.Config().Format; got != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want provider surface format", got)
	}

	r2, err := New(p, DefaultCapabilities(), WithFormat(gputypes.TextureFormatBGRA8Unorm))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer r2.Destroy()
	if got := r2.Config().Format; got != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("Format = %v, want option to win over provider", got)
	}
}

func TestNewRejectsProviderWithoutHAL(t *testing.T) {
	if _, err := New(plainProvider{}, DefaultCapabilities()); !errors.Is(err, ErrNoDevice) {
		t.Errorf("New(plain) error = %v, want ErrNoDevice", err)
	}
	if _, err := New(nil, DefaultCapabilities()); !errors.Is(err, ErrNoDevice) {
		t.Errorf("New(nil) error = %v, want ErrNoDevice", err)
	}
	if _, err := New(&mockProvider{}, DefaultCapabilities()); !errors.Is(err, ErrNoDevice) {
		t.Errorf("New(nil handles) error = %v, want ErrNoDevice", err)
	}
}

func TestNewRejectsGLSL(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	_, err := NewWithDevice(device, queue, GLES2Capabilities())
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("error = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestRenderBeforeInit(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	r, err := NewWithDevice(device, queue, DefaultCapabilities())
	if err != nil {
		t.Fatalf("NewWithDevice failed: %v", err)
	}
	defer r.Destroy()
	if err := r.Render(nil, nil); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Render error = %v, want ErrNotInitialized", err)
	}
}

func TestInitBuildsEveryReachableVariant(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	f := newTestFrame(t, device, queue)
	for _, v := range AllVariants(f.r.Capabilities()) {
		if !f.r.programs.Has(v.key()) {
			t.Errorf("variant %s not built", v)
		}
	}
	// Init twice is a no-op.
	if err := f.r.Init(); err != nil {
		t.Errorf("second Init failed: %v", err)
	}
}

func TestRenderFrame(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	f := newTestFrame(t, device, queue, WithClearColor(gputypes.Color{A: 1}))
	stack := NewMaskStack(64, 64)

	batches := []Batch{quadBatch(KindPlain)}
	push, err := stack.Push(quadBatch(KindPlain))
	if err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	glyph := quadBatch(KindGlyph)
	glyph.Subpixel = true
	batches = append(batches,
		push,
		stack.Commit(glyph),
		stack.Commit(quadBatch(KindShape)),
	)
	pop, err := stack.Pop(quadBatch(KindPlain))
	if err != nil {
		t.Fatalf("Pop failed: %v", err)
	}
	batches = append(batches, pop, stack.Commit(quadBatch(KindGlyphBinary)))

	if !batches[2].Masked || batches[5].Masked {
		t.Fatal("Commit did not follow the stack depth")
	}
	if err := f.r.Render(f.target.View, batches); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
}

func TestRenderEmptyFrameClears(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	f := newTestFrame(t, device, queue, WithClearColor(gputypes.Color{}))
	if err := f.r.Render(f.target.View, nil); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
}

func TestRenderUnknownTexture(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	f := newTestFrame(t, device, queue)
	b := quadBatch(KindPlain)
	b.Uniforms.Textures.Content = 42
	if err := f.r.Render(f.target.View, []Batch{b}); !errors.Is(err, ErrUnknownTexture) {
		t.Errorf("Render error = %v, want ErrUnknownTexture", err)
	}
}

func TestRenderBatchTooLarge(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	f := newTestFrame(t, device, queue)
	b := quadBatch(KindPlain)
	b.Vertices = make([]Vertex, MaxBatchVertices+4)
	if err := f.r.Render(f.target.View, []Batch{b}); !errors.Is(err, ErrBatchTooLarge) {
		t.Errorf("Render error = %v, want ErrBatchTooLarge", err)
	}
}

func TestRenderMaskWithoutSize(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	r, err := NewWithDevice(device, queue, DefaultCapabilities())
	if err != nil {
		t.Fatalf("NewWithDevice failed: %v", err)
	}
	defer r.Destroy()
	if err := r.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	target, err := pipeline.CreateTexture(device, "frame", 8, 8, r.Config().Format,
		gputypes.TextureUsageRenderAttachment)
	if err != nil {
		t.Fatalf("CreateTexture failed: %v", err)
	}
	defer target.Destroy(device)

	b := quadBatch(KindPlain)
	b.Masked = true
	if err := r.Render(target.View, []Batch{b}); !errors.Is(err, ErrNoMaskTarget) {
		t.Errorf("Render error = %v, want ErrNoMaskTarget", err)
	}
	if err := r.Resize(8, 8); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if err := r.Render(target.View, []Batch{b}); err != nil {
		t.Errorf("Render after Resize failed: %v", err)
	}
}

func TestLazyPrograms(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	f := newTestFrame(t, device, queue, WithLazyPrograms())
	if n := f.r.programs.Len(); n != 0 {
		t.Fatalf("lazy Init built %d pipelines", n)
	}
	if err := f.r.Render(f.target.View, []Batch{quadBatch(KindGlyph)}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !f.r.programs.Has(Variant{Program: ProgramSDFText}.key()) {
		t.Error("sdf_text not built on first use")
	}
}

func TestTextureRegistry(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	f := newTestFrame(t, device, queue)
	id, err := f.r.UploadAlpha(4, 4, make([]byte, 16))
	if err != nil {
		t.Fatalf("UploadAlpha failed: %v", err)
	}
	if id < firstUserTexture {
		t.Fatalf("UploadAlpha returned reserved id %d", id)
	}
	if _, err := f.r.UploadAlpha(4, 4, make([]byte, 3)); err == nil {
		t.Error("UploadAlpha accepted short pixel data")
	}

	b := quadBatch(KindGlyph)
	b.Uniforms.Textures.Content = id
	if err := f.r.Render(f.target.View, []Batch{b}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	f.r.ReleaseTexture(id)
	f.r.ReleaseTexture(id)
	f.r.ReleaseTexture(WhiteTexture)
	if err := f.r.Render(f.target.View, []Batch{b}); !errors.Is(err, ErrUnknownTexture) {
		t.Errorf("Render after release error = %v, want ErrUnknownTexture", err)
	}

	ext := f.r.RegisterTexture(f.target.View)
	if ext == id {
		t.Error("RegisterTexture reused a released id")
	}
}

func TestProgramErrorIsFatal(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	f := newTestFrame(t, device, queue)
	f.r.fail(&ProgramError{Variant: Variant{Program: ProgramSDFText}, Stage: StageLink, Err: errors.New("boom")})

	err := f.r.Render(f.target.View, []Batch{quadBatch(KindPlain)})
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Render error = %v, want ErrNotInitialized", err)
	}
	var pe *ProgramError
	if !errors.As(err, &pe) || pe.Stage != StageLink {
		t.Errorf("Render error = %v, want wrapped link ProgramError", err)
	}
	if err := f.r.Init(); !errors.As(err, &pe) {
		t.Errorf("Init after failure = %v, want the ProgramError", err)
	}
}

func TestProgramErrorFromBuildError(t *testing.T) {
	v := Variant{Program: ProgramSDFOutline, Masked: true}
	be := &pipeline.BuildError{Key: v.key(), Stage: pipeline.StageCompile, Err: errors.New("bad")}

	err := programError(Variant{}, be)
	var pe *ProgramError
	if !errors.As(err, &pe) {
		t.Fatalf("programError returned %T", err)
	}
	if pe.Variant != v || pe.Stage != StageCompile {
		t.Errorf("got %+v", pe)
	}
	if want := "uirender: compile sdf_outline+mask: bad"; pe.Error() != want {
		t.Errorf("Error() = %q, want %q", pe.Error(), want)
	}
}

func TestDestroyIdempotent(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	f := newTestFrame(t, device, queue)
	f.r.Destroy()
	f.r.Destroy()
	if err := f.r.Render(f.target.View, nil); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Render after Destroy = %v, want ErrNotInitialized", err)
	}
}
