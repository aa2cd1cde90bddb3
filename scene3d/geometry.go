// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene3d

import "github.com/go-gl/mathgl/mgl32"

// Geometry is an indexed triangle list with per-vertex normals.
type Geometry struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3

	// Indices holds three entries per triangle, counter-clockwise when
	// seen from the front.
	Indices []uint16
}

// TriangleCount returns the number of triangles.
func (g *Geometry) TriangleCount() int { return len(g.Indices) / 3 }

// boxFaces lists normal, u and v axes for each box face with u × v = normal.
var boxFaces = [6][3]mgl32.Vec3{
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
}

// NewBoxGeometry creates an axis-aligned box centered at the origin with
// flat-shaded faces: 4 vertices and 2 triangles per face.
func NewBoxGeometry(width, height, depth float32) *Geometry {
	half := mgl32.Vec3{width / 2, height / 2, depth / 2}
	g := &Geometry{
		Positions: make([]mgl32.Vec3, 0, 24),
		Normals:   make([]mgl32.Vec3, 0, 24),
		Indices:   make([]uint16, 0, 36),
	}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, f := range boxFaces {
		n, u, v := f[0], f[1], f[2]
		base := uint16(len(g.Positions))
		for _, c := range corners {
			p := modulate(n.Add(u.Mul(c[0])).Add(v.Mul(c[1])), half)
			g.Positions = append(g.Positions, p)
			g.Normals = append(g.Normals, n)
		}
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return g
}
