// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene3d

import "github.com/go-gl/mathgl/mgl32"

// normalize returns a unit vector, or the zero vector for zero input.
// mgl32's Normalize yields NaN for zero length.
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	if v.LenSqr() == 0 {
		return mgl32.Vec3{}
	}
	return v.Normalize()
}

// modulate returns the component-wise product of a and b.
func modulate(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// eulerXYZ returns Rx * Ry * Rz, the rotation for Euler angles applied in
// intrinsic X, Y, Z order.
func eulerXYZ(e mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(e[0]).
		Mul4(mgl32.HomogRotate3DY(e[1])).
		Mul4(mgl32.HomogRotate3DZ(e[2]))
}

// compose returns T * R * S.
func compose(position, rotation, scale mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(position.Elem()).
		Mul4(eulerXYZ(rotation)).
		Mul4(mgl32.Scale3D(scale.Elem()))
}
