// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene3d

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/interleave/surface"
)

type viewport struct {
	w, h int
}

// lighting carries the per-frame light inputs for fragment shading.
type lighting struct {
	ambient mgl32.Vec3
	points  []*PointLight
	eye     mgl32.Vec3
}

// shade returns the Blinn-Phong color at world position p with normal n.
func (l *lighting) shade(mat *PhongMaterial, p, n mgl32.Vec3) mgl32.Vec3 {
	diffuse := mat.Color.vec()
	out := modulate(l.ambient, diffuse)

	view := normalize(l.eye.Sub(p))
	for _, pl := range l.points {
		toLight := pl.Position.Sub(p)
		d := toLight.Len()
		if d == 0 {
			continue
		}
		dir := toLight.Mul(1 / d)
		att := pl.attenuation(d)
		if att == 0 {
			continue
		}
		ndl := n.Dot(dir)
		if ndl <= 0 {
			continue
		}
		radiance := pl.Color.vec().Mul(pl.Intensity * att)

		half := normalize(dir.Add(view))
		shine := math32.Pow(math32.Max(n.Dot(half), 0), mat.Shininess)

		lit := diffuse.Mul(ndl).Add(mat.Specular.vec().Mul(shine))
		out = out.Add(modulate(radiance, lit))
	}
	return out
}

// vertex is a transformed vertex ready for rasterization.
type vertex struct {
	clip   mgl32.Vec4
	world  mgl32.Vec3
	normal mgl32.Vec3

	// sx, sy are window coordinates; z is window depth in [0, 1].
	sx, sy, z float32
	invW      float32
}

func (r *Renderer) drawMesh(s *surface.Surface, vp viewport, viewProj mgl32.Mat4, m *Mesh, l *lighting) {
	model := m.Matrix()
	g := m.Geometry

	verts := make([]vertex, len(g.Positions))
	for i, p := range g.Positions {
		world := mgl32.TransformCoordinate(p, model)
		var n mgl32.Vec3
		if i < len(g.Normals) {
			n = normalize(mgl32.TransformNormal(g.Normals[i], model))
		}
		clip := viewProj.Mul4x1(world.Vec4(1))
		v := vertex{clip: clip, world: world, normal: n}
		if clip.W() > 0 {
			v.invW = 1 / clip.W()
			ndcX, ndcY, ndcZ := clip.X()*v.invW, clip.Y()*v.invW, clip.Z()*v.invW
			v.sx = (ndcX + 1) * 0.5 * float32(vp.w)
			v.sy = (1 - ndcY) * 0.5 * float32(vp.h)
			v.z = ndcZ*0.5 + 0.5
		}
		verts[i] = v
	}

	st := s.State()
	for t := 0; t+2 < len(g.Indices); t += 3 {
		a, b, c := &verts[g.Indices[t]], &verts[g.Indices[t+1]], &verts[g.Indices[t+2]]
		r.stats.Triangles++

		// Triangles crossing the near plane are dropped rather than clipped.
		if behindNear(a) || behindNear(b) || behindNear(c) {
			r.stats.Clipped++
			continue
		}
		if culled(st, a, b, c) {
			r.stats.Culled++
			continue
		}
		r.rasterize(s, vp, m.Material, l, a, b, c)
	}
}

func behindNear(v *vertex) bool {
	return v.clip.W() <= 0 || v.clip.Z() < -v.clip.W()
}

// culled reports whether the triangle is removed by the context's cull mode.
// Winding is measured in NDC where y points up.
func culled(st surface.State, a, b, c *vertex) bool {
	ax, ay := a.clip.X()*a.invW, a.clip.Y()*a.invW
	bx, by := b.clip.X()*b.invW, b.clip.Y()*b.invW
	cx, cy := c.clip.X()*c.invW, c.clip.Y()*c.invW
	area := (bx-ax)*(cy-ay) - (cx-ax)*(by-ay)
	if area == 0 {
		return true
	}
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

func (r *Renderer) rasterize(s *surface.Surface, vp viewport, mat *PhongMaterial, l *lighting, a, b, c *vertex) {
	area := edge(a.sx, a.sy, b.sx, b.sy, c.sx, c.sy)
	if area == 0 {
		return
	}

	maxX := min(vp.w, s.Width()) - 1
	maxY := min(vp.h, s.Height()) - 1
	x0 := max(int(math32.Floor(min(a.sx, b.sx, c.sx))), 0)
	x1 := min(int(math32.Ceil(max(a.sx, b.sx, c.sx))), maxX)
	y0 := max(int(math32.Floor(min(a.sy, b.sy, c.sy))), 0)
	y1 := min(int(math32.Ceil(max(a.sy, b.sy, c.sy))), maxY)

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

			z := w0*a.z + w1*b.z + w2*c.z

			// Perspective-correct interpolation of world position and normal.
			p0, p1, p2 := w0*a.invW, w1*b.invW, w2*c.invW
			norm := 1 / (p0 + p1 + p2)
			p0, p1, p2 = p0*norm, p1*norm, p2*norm
			world := a.world.Mul(p0).Add(b.world.Mul(p1)).Add(c.world.Mul(p2))
			n := normalize(a.normal.Mul(p0).Add(b.normal.Mul(p1)).Add(c.normal.Mul(p2)))

			col := l.shade(mat, world, n)
			if s.Fragment(x, y, z, [4]float32{col[0], col[1], col[2], 1}) {
				r.stats.Fragments++
			}
		}
	}
}
