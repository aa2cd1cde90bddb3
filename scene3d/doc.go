// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scene3d is a small retained-mode 3D pipeline: a perspective
// camera, lights, box geometry, Phong materials and a software renderer that
// rasterizes meshes into a shared [surface.Surface]. Positions, directions
// and transforms are mgl32 vectors and matrices.
//
// The renderer keeps a [surface.Cache] of the context state it has set and
// only issues calls for values that changed. When another renderer draws to
// the same surface in between, call [Renderer.Reset] before the next Render
// so the cache does not assume stale state.
//
// Example:
//
//	scene := scene3d.NewScene()
//	scene.Add(scene3d.NewAmbientLight(scene3d.Hex(0x404040), 1))
//
//	cube := scene3d.NewMesh(scene3d.NewBoxGeometry(5, 5, 5),
//	    scene3d.NewPhongMaterial(scene3d.Hex(0x4040c0)))
//	scene.Add(cube)
//
//	camera := scene3d.NewPerspectiveCamera(60, 800.0/600.0, 0.1, 16)
//	camera.Position = mgl32.Vec3{0, 4, 10}
//	camera.LookAt(mgl32.Vec3{})
//
//	r := scene3d.NewRenderer()
//	r.SetSize(800, 600)
//	err := r.Render(surf, scene, camera)
package scene3d
