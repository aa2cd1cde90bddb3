// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene3d

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/interleave/surface"
)

// Renderer errors.
var (
	// ErrNilSurface is returned when Render is called without a surface.
	ErrNilSurface = errors.New("scene3d: surface is nil")

	// ErrNilCamera is returned when Render is called without a camera.
	ErrNilCamera = errors.New("scene3d: camera is nil")
)

// RenderStats describes the work done by the last Render call.
type RenderStats struct {
	Meshes    int
	Triangles int
	Culled    int
	Clipped   int
	Fragments int
}

// Renderer draws a Scene into a surface by software rasterization.
//
// Renderer is NOT thread-safe.
type Renderer struct {
	// AutoClear clears color and depth at the start of every Render.
	AutoClear bool

	// ClearColor is the color used by AutoClear.
	ClearColor gputypes.Color

	width, height int

	cache surface.Cache
	surf  *surface.Surface

	programs map[*PhongMaterial]surface.Handle
	buffers  map[*Geometry]surface.Handle

	stats RenderStats
}

// NewRenderer creates a renderer that clears to opaque black.
func NewRenderer() *Renderer {
	return &Renderer{
		AutoClear:  true,
		ClearColor: gputypes.Color{R: 0, G: 0, B: 0, A: 1},
	}
}

// SetSize sets the viewport size in pixels.
func (r *Renderer) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// Size returns the viewport size.
func (r *Renderer) Size() (width, height int) { return r.width, r.height }

// Reset forgets all cached context state. Call it whenever something else
// may have changed the surface state since the last Render.
func (r *Renderer) Reset() {
	r.cache.Invalidate()
}

// Stats returns statistics for the last Render call.
func (r *Renderer) Stats() RenderStats { return r.stats }

// Render draws scene as seen from camera.
func (r *Renderer) Render(s *surface.Surface, scene *Scene, camera *PerspectiveCamera) error {
	if s == nil {
		return ErrNilSurface
	}
	if camera == nil {
		return ErrNilCamera
	}
	r.bind(s)
	r.stats = RenderStats{}

	r.cache.SetClearColor(r.ClearColor)
	if r.AutoClear {
		s.Clear(gputypes.LoadOpClear, gputypes.LoadOpClear)
	}
	if scene == nil {
		return nil
	}

	vp := viewport{w: r.width, h: r.height}
	if vp.w <= 0 || vp.h <= 0 {
		vp.w, vp.h = s.Width(), s.Height()
	}
	viewProj := camera.Projection().Mul4(camera.View())
	lights := lighting{
		ambient: ambientTerm(scene.ambient),
		points:  scene.points,
		eye:     camera.Position,
	}

	for _, m := range scene.meshes {
		if !m.Visible || m.Geometry == nil || m.Material == nil {
			continue
		}
		r.setup(s, m)
		r.drawMesh(s, vp, viewProj, m, &lights)
		r.stats.Meshes++
	}
	return nil
}

func (r *Renderer) bind(s *surface.Surface) {
	if r.surf != s {
		r.surf = s
		r.programs = make(map[*PhongMaterial]surface.Handle)
		r.buffers = make(map[*Geometry]surface.Handle)
	}
	r.cache.Bind(s)
}

// setup applies the state for an opaque Phong mesh through the cache.
func (r *Renderer) setup(s *surface.Surface, m *Mesh) {
	prog, ok := r.programs[m.Material]
	if !ok {
		prog = s.CreateProgram()
		r.programs[m.Material] = prog
	}
	buf, ok := r.buffers[m.Geometry]
	if !ok {
		buf = s.CreateBuffer()
		r.buffers[m.Geometry] = buf
	}

	r.cache.UseProgram(prog)
	r.cache.BindVertexBuffer(buf)
	r.cache.SetBlend(surface.BlendDisabled())
	r.cache.SetDepthTest(m.Material.DepthTest)
	r.cache.SetDepthCompare(gputypes.CompareFunctionLessEqual)
	r.cache.SetDepthWrite(m.Material.DepthWrite)
	r.cache.SetCullMode(gputypes.CullModeBack)
	r.cache.SetFrontFace(gputypes.FrontFaceCCW)
}

// ambientTerm sums all ambient lights.
func ambientTerm(lights []*AmbientLight) mgl32.Vec3 {
	var sum mgl32.Vec3
	for _, l := range lights {
		sum = sum.Add(l.Color.vec().Mul(l.Intensity))
	}
	return sum
}
