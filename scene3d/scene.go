// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene3d

import "github.com/go-gl/mathgl/mgl32"

// Object is anything that can be added to a Scene: *Mesh, *AmbientLight or
// *PointLight.
type Object interface {
	addTo(s *Scene)
}

// Scene holds the meshes and lights drawn by a Renderer.
type Scene struct {
	meshes  []*Mesh
	ambient []*AmbientLight
	points  []*PointLight
}

// NewScene creates an empty scene.
func NewScene() *Scene { return &Scene{} }

// Add appends objects to the scene.
func (s *Scene) Add(objs ...Object) {
	for _, o := range objs {
		o.addTo(s)
	}
}

// Meshes returns the meshes in insertion order.
func (s *Scene) Meshes() []*Mesh { return s.meshes }

// Mesh is geometry drawn with a material at a transform.
type Mesh struct {
	Geometry *Geometry
	Material *PhongMaterial

	Position mgl32.Vec3

	// Rotation holds Euler angles in radians, applied in X, Y, Z order.
	Rotation mgl32.Vec3

	Scale   mgl32.Vec3
	Visible bool
}

// NewMesh creates a visible mesh at the origin.
func NewMesh(g *Geometry, m *PhongMaterial) *Mesh {
	return &Mesh{Geometry: g, Material: m, Scale: mgl32.Vec3{1, 1, 1}, Visible: true}
}

func (m *Mesh) addTo(s *Scene) { s.meshes = append(s.meshes, m) }

// Matrix returns the model-to-world matrix.
func (m *Mesh) Matrix() mgl32.Mat4 {
	return compose(m.Position, m.Rotation, m.Scale)
}
