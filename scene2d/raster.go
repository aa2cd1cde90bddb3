// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene2d

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/interleave/surface"
)

// spriteDepth is the window depth written by sprite fragments.
const spriteDepth = 0.5

// shaded is a vertex after the vertex stage.
type shaded struct {
	clip [4]float32
	vary []float32

	// sx, sy are window coordinates; z is window depth.
	sx, sy, z float32
}

func (r *Renderer) drawMesh(s *surface.Surface, m *Mesh, world Matrix) error {
	if m.Geometry == nil || m.Shader == nil || m.Shader.Program == nil {
		return nil
	}
	p := m.Shader.Program
	g := m.Geometry

	r.cache.UseProgram(r.programHandle(p))
	r.cache.BindVertexBuffer(r.bufferHandle(g))
	r.applyState(m.State)
	r.stats.Meshes++

	u := m.Shader.Uniforms
	if u == nil {
		u = Uniforms{}
		m.Shader.Uniforms = u
	}
	u[UniformProjection] = r.projection()
	u[UniformTranslation] = world

	vw, vh := r.viewport()
	n := g.VertexCount()
	verts := make([]shaded, n)
	for i := range verts {
		clip, vary := p.vertex(Vertex{g: g, index: i}, u)
		v := shaded{clip: clip, vary: vary}
		if clip[3] != 0 {
			inv := 1 / clip[3]
			v.sx = (clip[0]*inv + 1) * 0.5 * float32(vw)
			v.sy = (1 - clip[1]*inv) * 0.5 * float32(vh)
			v.z = clip[2]*inv*0.5 + 0.5
		}
		verts[i] = v
	}

	st := s.State()
	tri := func(a, b, c *shaded) {
		r.stats.Triangles++
		if a.clip[3] <= 0 || b.clip[3] <= 0 || c.clip[3] <= 0 {
			return
		}
		if culled(st, a, b, c) {
			return
		}
		r.rasterize(s, vw, vh, p, u, a, b, c)
	}

	if len(g.Indices) > 0 {
		for t := 0; t+2 < len(g.Indices); t += 3 {
			i0, i1, i2 := int(g.Indices[t]), int(g.Indices[t+1]), int(g.Indices[t+2])
			if i0 >= n || i1 >= n || i2 >= n {
				continue
			}
			tri(&verts[i0], &verts[i1], &verts[i2])
		}
		return nil
	}
	for t := 0; t+2 < n; t += 3 {
		tri(&verts[t], &verts[t+1], &verts[t+2])
	}
	return nil
}

// culled reports whether the context's cull mode removes the triangle.
// Winding is measured in NDC where y points up.
func culled(st surface.State, a, b, c *shaded) bool {
	if st.CullMode == gputypes.CullModeNone {
		return false
	}
	ax, ay := a.clip[0]/a.clip[3], a.clip[1]/a.clip[3]
	bx, by := b.clip[0]/b.clip[3], b.clip[1]/b.clip[3]
	cx, cy := c.clip[0]/c.clip[3], c.clip[1]/c.clip[3]
	area := (bx-ax)*(cy-ay) - (cx-ax)*(by-ay)
	front := area > 0
	if st.FrontFace == gputypes.FrontFaceCW {
		front = !front
	}
	switch st.CullMode {
	case gputypes.CullModeBack:
		return !front
	case gputypes.CullModeFront:
		return front
	default:
		return false
	}
}

func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func (r *Renderer) rasterize(s *surface.Surface, vw, vh int, p *Program, u Uniforms, a, b, c *shaded) {
	area := edge(a.sx, a.sy, b.sx, b.sy, c.sx, c.sy)
	if area == 0 {
		return
	}

	maxX := min(vw, s.Width()) - 1
	maxY := min(vh, s.Height()) - 1
	x0 := max(int(math32.Floor(min(a.sx, b.sx, c.sx))), 0)
	x1 := min(int(math32.Ceil(max(a.sx, b.sx, c.sx))), maxX)
	y0 := max(int(math32.Floor(min(a.sy, b.sy, c.sy))), 0)
	y1 := min(int(math32.Ceil(max(a.sy, b.sy, c.sy))), maxY)

	nv := min(len(a.vary), len(b.vary), len(c.vary))
	vary := make([]float32, nv)

	inv := 1 / area
	for y := y0; y <= y1; y++ {
		py := float32(y) + 0.5
		for x := x0; x <= x1; x++ {
			px := float32(x) + 0.5
			w0 := edge(b.sx, b.sy, c.sx, c.sy, px, py) * inv
			w1 := edge(c.sx, c.sy, a.sx, a.sy, px, py) * inv
			w2 := edge(a.sx, a.sy, b.sx, b.sy, px, py) * inv
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			for k := range vary {
				vary[k] = w0*a.vary[k] + w1*b.vary[k] + w2*c.vary[k]
			}
			z := w0*a.z + w1*b.z + w2*c.z
			if s.Fragment(x, y, z, p.fragment(vary, u)) {
				r.stats.Fragments++
			}
		}
	}
}

func (r *Renderer) drawSprite(s *surface.Surface, sp *Sprite, world Matrix) error {
	tex := sp.Texture
	if tex == nil || tex.Rect.Empty() {
		return nil
	}
	inv, ok := world.Inverse()
	if !ok {
		return nil
	}

	r.cache.UseProgram(r.spriteProg)
	r.cache.BindVertexBuffer(r.spriteBuffer)
	r.applyState(MeshState{Blend: true, BlendMode: sp.BlendMode})
	r.stats.Sprites++

	tw, th := sp.Size()
	w, h := float64(tw), float64(th)
	left, top := -sp.Anchor.X*w, -sp.Anchor.Y*h

	// Screen-space bounds of the transformed quad.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4]Point{
		Pt(left, top), Pt(left+w, top), Pt(left, top+h), Pt(left+w, top+h),
	} {
		q := world.Apply(c)
		minX, minY = math.Min(minX, q.X), math.Min(minY, q.Y)
		maxX, maxY = math.Max(maxX, q.X), math.Max(maxY, q.Y)
	}

	vw, vh := r.viewport()
	x0 := max(int(math.Floor(minX)), 0)
	y0 := max(int(math.Floor(minY)), 0)
	x1 := min(int(math.Ceil(maxX)), min(vw, s.Width())-1)
	y1 := min(int(math.Ceil(maxY)), min(vh, s.Height())-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			local := inv.Apply(Pt(float64(x)+0.5, float64(y)+0.5))
			tu := (local.X - left) / w
			tv := (local.Y - top) / h
			if tu < 0 || tu >= 1 || tv < 0 || tv >= 1 {
				continue
			}
			c := sample(tex, tu, tv)
			if c[3] == 0 {
				continue
			}
			if s.Fragment(x, y, spriteDepth, c) {
				r.stats.Fragments++
			}
		}
	}
	return nil
}
