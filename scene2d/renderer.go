// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene2d

import (
	"errors"
	"log/slog"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/interleave/internal/logging"
	"github.com/gogpu/interleave/surface"
)

// ErrNilSurface is returned when Render is called without a surface.
var ErrNilSurface = errors.New("scene2d: surface is nil")

// RenderStats describes the work done by the last Render call.
type RenderStats struct {
	Meshes    int
	Sprites   int
	Triangles int
	Fragments int
}

// Option configures a Renderer during creation.
type Option func(*rendererOptions)

type rendererOptions struct {
	clearBeforeRender bool
	background        gputypes.Color
	logger            *slog.Logger
}

// WithClearBeforeRender makes Render clear the color buffer to the
// background color first. The default is false.
func WithClearBeforeRender(enabled bool) Option {
	return func(o *rendererOptions) {
		o.clearBeforeRender = enabled
	}
}

// WithBackground sets the color used when clearing.
func WithBackground(c gputypes.Color) Option {
	return func(o *rendererOptions) {
		o.background = c
	}
}

// WithLogger sets the logger for diagnostics. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *rendererOptions) {
		o.logger = l
	}
}

// Renderer draws a display list into a surface by software rasterization.
//
// Renderer keeps a cache of the context state it set. Call Reset whenever
// another renderer may have touched the surface since the last Render.
//
// Renderer is NOT thread-safe.
type Renderer struct {
	width, height int

	clearBeforeRender bool
	background        gputypes.Color
	logger            *slog.Logger

	cache surface.Cache
	surf  *surface.Surface

	programs     map[*Program]surface.Handle
	buffers      map[*Geometry]surface.Handle
	spriteProg   surface.Handle
	spriteBuffer surface.Handle

	stats RenderStats
}

// NewRenderer creates a renderer for a width x height viewport.
func NewRenderer(width, height int, opts ...Option) *Renderer {
	o := rendererOptions{
		background: gputypes.Color{R: 0, G: 0, B: 0, A: 1},
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = logging.OrNop(o.logger)
	return &Renderer{
		width:             width,
		height:            height,
		clearBeforeRender: o.clearBeforeRender,
		background:        o.background,
		logger:            o.logger,
	}
}

// Resize sets the viewport size, which defines the projection.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Size returns the viewport size.
func (r *Renderer) Size() (width, height int) { return r.width, r.height }

// Reset forgets all cached context state.
func (r *Renderer) Reset() {
	r.cache.Invalidate()
}

// Stats returns statistics for the last Render call.
func (r *Renderer) Stats() RenderStats { return r.stats }

// Render draws root and its descendants.
func (r *Renderer) Render(s *surface.Surface, root DisplayObject) error {
	if s == nil {
		return ErrNilSurface
	}
	r.bind(s)
	r.stats = RenderStats{}

	if r.clearBeforeRender {
		r.cache.SetClearColor(r.background)
		s.Clear(gputypes.LoadOpClear, gputypes.LoadOpLoad)
	}
	if root == nil || !root.Visible() {
		return nil
	}
	return root.render(r, s, root.Transform().Matrix())
}

func (r *Renderer) bind(s *surface.Surface) {
	if r.surf != s {
		r.surf = s
		r.programs = make(map[*Program]surface.Handle)
		r.buffers = make(map[*Geometry]surface.Handle)
		r.spriteProg = s.CreateProgram()
		r.spriteBuffer = s.CreateBuffer()
	}
	r.cache.Bind(s)
}

func (r *Renderer) projection() Matrix {
	w, h := r.width, r.height
	if w <= 0 || h <= 0 {
		w, h = r.surf.Width(), r.surf.Height()
	}
	return Projection(w, h)
}

func (r *Renderer) viewport() (int, int) {
	if r.width <= 0 || r.height <= 0 {
		return r.surf.Width(), r.surf.Height()
	}
	return r.width, r.height
}

// applyState sets blending, depth and culling for one draw.
func (r *Renderer) applyState(st MeshState) {
	if st.Blend {
		r.cache.SetBlend(st.BlendMode.state())
	} else {
		r.cache.SetBlend(surface.BlendDisabled())
	}
	r.cache.SetDepthTest(st.DepthTest)
	if st.DepthTest {
		r.cache.SetDepthCompare(gputypes.CompareFunctionLessEqual)
		r.cache.SetDepthWrite(true)
	}
	if st.Culling {
		r.cache.SetCullMode(gputypes.CullModeBack)
	} else {
		r.cache.SetCullMode(gputypes.CullModeNone)
	}
	r.cache.SetFrontFace(gputypes.FrontFaceCCW)
}

func (r *Renderer) programHandle(p *Program) surface.Handle {
	h, ok := r.programs[p]
	if ok {
		return h
	}
	h = r.surf.CreateProgram()
	r.programs[p] = h
	if err := p.Compile(); err != nil {
		// The software path does not need SPIR-V.
		r.logger.Warn("scene2d: program compile failed, drawing on CPU only", "error", err)
	} else {
		r.logger.Debug("scene2d: program compiled", "words", len(p.SPIRV()))
	}
	return h
}

func (r *Renderer) bufferHandle(g *Geometry) surface.Handle {
	h, ok := r.buffers[g]
	if !ok {
		h = r.surf.CreateBuffer()
		r.buffers[g] = h
	}
	return h
}
