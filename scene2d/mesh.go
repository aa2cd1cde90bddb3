// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene2d

import (
	"github.com/gogpu/interleave/surface"
)

// BlendMode selects how a display object is composited.
type BlendMode uint8

const (
	// BlendNormal is premultiplied source-over.
	BlendNormal BlendMode = iota

	// BlendAdd adds source to destination.
	BlendAdd

	// BlendMultiply multiplies source and destination colors.
	BlendMultiply

	// BlendScreen is the inverse of multiply: 1 - (1-S)*(1-D).
	BlendScreen
)

// String returns the mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "normal"
	case BlendAdd:
		return "add"
	case BlendMultiply:
		return "multiply"
	case BlendScreen:
		return "screen"
	default:
		return "unknown"
	}
}

// state returns the blend equation for m.
func (m BlendMode) state() surface.BlendState {
	switch m {
	case BlendAdd:
		return surface.BlendAdditive()
	case BlendMultiply:
		return surface.BlendMultiply()
	case BlendScreen:
		return surface.BlendScreen()
	default:
		return surface.BlendPremultiplied()
	}
}

// MeshState is the per-mesh render state.
type MeshState struct {
	// Blend enables blending with BlendMode.
	Blend     bool
	BlendMode BlendMode

	// DepthTest enables depth testing against the surface depth buffer.
	DepthTest bool

	// Culling enables back-face culling of clockwise triangles.
	Culling bool
}

// DefaultMeshState returns blending on in normal mode, no depth test and no
// culling.
func DefaultMeshState() MeshState {
	return MeshState{Blend: true, BlendMode: BlendNormal}
}

// Shader binds a program with its uniform values.
type Shader struct {
	Program  *Program
	Uniforms Uniforms
}

// NewShader creates a shader. A nil uniforms map is replaced by an empty
// one.
func NewShader(p *Program, u Uniforms) *Shader {
	if u == nil {
		u = Uniforms{}
	}
	return &Shader{Program: p, Uniforms: u}
}

// Mesh draws a Geometry with a custom Shader.
type Mesh struct {
	node
	Geometry *Geometry
	Shader   *Shader
	State    MeshState
}

// NewMesh creates a mesh with the default state.
func NewMesh(g *Geometry, sh *Shader) *Mesh {
	return &Mesh{
		node:     newNode(),
		Geometry: g,
		Shader:   sh,
		State:    DefaultMeshState(),
	}
}

func (m *Mesh) render(r *Renderer, s *surface.Surface, world Matrix) error {
	return r.drawMesh(s, m, world)
}
