// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scene2d is a small 2D display-list pipeline: containers of display
// objects (custom-shaded meshes and sprites) with affine transforms, drawn
// by a software renderer into a shared [surface.Surface].
//
// Coordinates are in pixels with the origin at the top-left corner and y
// pointing down. The renderer's projection maps that space to normalized
// device coordinates, so a mesh shader can write its own depth value and be
// depth-tested against whatever another renderer left in the depth buffer.
//
// By default the renderer does not clear the surface before drawing. This
// lets it draw on top of a frame produced by a different renderer.
//
// Example:
//
//	stage := scene2d.NewContainer()
//
//	prog, _ := scene2d.DepthMeshProgram()
//	tri := scene2d.NewMesh(geometry, scene2d.NewShader(prog, scene2d.Uniforms{"zDepth": float32(0.992)}))
//	tri.State.DepthTest = true
//	stage.AddChild(tri)
//
//	r := scene2d.NewRenderer(800, 600)
//	err := r.Render(surf, stage)
package scene2d
