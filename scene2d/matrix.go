// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene2d

import "math"

// Point is a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Matrix is a 2D affine transform:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translation returns a translation by (x, y).
func Translation(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scaling returns a scale by (sx, sy).
func Scaling(sx, sy float64) Matrix {
	return Matrix{A: sx, E: sy}
}

// Rotation returns a rotation by angle radians. With y pointing down a
// positive angle turns clockwise on screen.
func Rotation(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Projection returns the transform from pixel space of a width x height
// viewport to normalized device coordinates, flipping y.
func Projection(width, height int) Matrix {
	return Matrix{
		A: 2 / float64(width), C: -1,
		E: -2 / float64(height), F: 1,
	}
}

// Mul returns m * n, the transform that applies n first and then m.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

// Apply transforms the point p.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Inverse returns the inverse transform and whether it exists.
func (m Matrix) Inverse() (Matrix, bool) {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-12 {
		return Identity(), false
	}
	inv := 1 / det
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}, true
}

// Mat3 returns the matrix as a column-major 3x3 array, the layout a
// mat3x3<f32> uniform expects.
func (m Matrix) Mat3() [9]float32 {
	return [9]float32{
		float32(m.A), float32(m.D), 0,
		float32(m.B), float32(m.E), 0,
		float32(m.C), float32(m.F), 1,
	}
}
