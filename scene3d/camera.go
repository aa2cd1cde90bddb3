// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene3d

import "github.com/go-gl/mathgl/mgl32"

// PerspectiveCamera is a camera with a perspective projection.
//
// Fields may be changed directly; after changing Fov, Aspect, Near or Far
// call UpdateProjection.
type PerspectiveCamera struct {
	// Fov is the vertical field of view in degrees.
	Fov float32

	// Aspect is width / height of the viewport.
	Aspect float32

	// Near and Far are the clip plane distances.
	Near, Far float32

	// Position is the camera location in world space.
	Position mgl32.Vec3

	// Up is the world up direction used by LookAt.
	Up mgl32.Vec3

	target     mgl32.Vec3
	projection mgl32.Mat4
}

// NewPerspectiveCamera creates a camera at the origin looking down -Z.
func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	c := &PerspectiveCamera{
		Fov:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Up:     mgl32.Vec3{0, 1, 0},
		target: mgl32.Vec3{0, 0, -1},
	}
	c.UpdateProjection()
	return c
}

// LookAt orients the camera toward target.
func (c *PerspectiveCamera) LookAt(target mgl32.Vec3) {
	c.target = target
}

// Target returns the point the camera looks at.
func (c *PerspectiveCamera) Target() mgl32.Vec3 { return c.target }

// SetAspect sets the aspect ratio. It does not rebuild the projection.
func (c *PerspectiveCamera) SetAspect(aspect float32) {
	c.Aspect = aspect
}

// UpdateProjection rebuilds the projection matrix from Fov, Aspect, Near
// and Far.
func (c *PerspectiveCamera) UpdateProjection() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

// Projection returns the projection matrix as of the last UpdateProjection.
func (c *PerspectiveCamera) Projection() mgl32.Mat4 { return c.projection }

// View returns the world-to-camera matrix.
func (c *PerspectiveCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.target, c.Up)
}
