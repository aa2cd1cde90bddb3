// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene2d

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

// Program errors.
var (
	// ErrShaderCompile is returned when WGSL source fails to compile.
	ErrShaderCompile = errors.New("scene2d: shader compile failed")

	// ErrMissingStage is returned when a program lacks a vertex or
	// fragment function.
	ErrMissingStage = errors.New("scene2d: program needs vertex and fragment stages")
)

// Built-in uniforms set by the renderer before every mesh draw.
const (
	// UniformProjection holds the pixel-to-NDC Matrix.
	UniformProjection = "projectionMatrix"

	// UniformTranslation holds the mesh's world Matrix.
	UniformTranslation = "translationMatrix"
)

// Uniforms holds shader uniform values by name.
type Uniforms map[string]any

// Float32 returns the named float uniform, or 0.
func (u Uniforms) Float32(name string) float32 {
	switch v := u[name].(type) {
	case float32:
		return v
	case float64:
		return float32(v)
	default:
		return 0
	}
}

// Matrix returns the named matrix uniform, or the identity.
func (u Uniforms) Matrix(name string) Matrix {
	if m, ok := u[name].(Matrix); ok {
		return m
	}
	return Identity()
}

// VertexFunc is the CPU implementation of a vertex stage. It returns the
// clip-space position and the varyings to interpolate.
type VertexFunc func(v Vertex, u Uniforms) (clip [4]float32, varyings []float32)

// FragmentFunc is the CPU implementation of a fragment stage. It returns a
// premultiplied RGBA color.
type FragmentFunc func(varyings []float32, u Uniforms) [4]float32

// Program pairs WGSL source, for hosts that draw on a GPU, with the CPU
// stages used by the software renderer.
type Program struct {
	source   string
	vertex   VertexFunc
	fragment FragmentFunc

	compiled bool
	spirv    []uint32
	err      error
}

// NewProgram creates a program. The WGSL source is compiled on first use.
func NewProgram(source string, vs VertexFunc, fs FragmentFunc) (*Program, error) {
	if vs == nil || fs == nil {
		return nil, ErrMissingStage
	}
	return &Program{source: source, vertex: vs, fragment: fs}, nil
}

// Source returns the WGSL source.
func (p *Program) Source() string { return p.source }

// Compile compiles the WGSL source to SPIR-V. The result, including a
// failure, is cached.
func (p *Program) Compile() error {
	if p.compiled {
		return p.err
	}
	p.compiled = true
	p.spirv, p.err = compileWGSL(p.source)
	return p.err
}

// SPIRV returns the compiled SPIR-V words, or nil before a successful
// Compile.
func (p *Program) SPIRV() []uint32 { return p.spirv }

// compileWGSL compiles WGSL source to SPIR-V words.
func compileWGSL(source string) ([]uint32, error) {
	if source == "" {
		return nil, fmt.Errorf("%w: empty source", ErrShaderCompile)
	}
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShaderCompile, err)
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// depthMeshWGSL draws vertex-colored triangles at a fixed depth taken from
// the zDepth uniform.
const depthMeshWGSL = `
struct Uniforms {
    projection: mat3x3<f32>,
    translation: mat3x3<f32>,
    z_depth: f32,
}

@group(0) @binding(0) var<uniform> u: Uniforms;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec3<f32>,
}

@vertex
fn vs_main(@location(0) a_position: vec2<f32>, @location(1) a_color: vec3<f32>) -> VertexOutput {
    var out: VertexOutput;
    let p = u.projection * u.translation * vec3<f32>(a_position, 1.0);
    out.position = vec4<f32>(p.xy, u.z_depth, 1.0);
    out.color = a_color;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return vec4<f32>(in.color, 1.0);
}
`

// Attribute and uniform names used by DepthMeshProgram.
const (
	AttrPosition  = "aVertexPosition"
	AttrColor     = "aColor"
	UniformZDepth = "zDepth"
)

// DepthMeshProgram returns a program drawing AttrPosition / AttrColor
// triangles with clip-space z taken from the UniformZDepth uniform, so the
// mesh can be layered against a depth buffer filled by a 3D renderer.
func DepthMeshProgram() (*Program, error) {
	return NewProgram(depthMeshWGSL, depthMeshVertex, depthMeshFragment)
}

func depthMeshVertex(v Vertex, u Uniforms) ([4]float32, []float32) {
	pos := v.Attr(AttrPosition)
	col := v.Attr(AttrColor)

	var p Point
	if len(pos) >= 2 {
		p = Pt(float64(pos[0]), float64(pos[1]))
	}
	m := u.Matrix(UniformProjection).Mul(u.Matrix(UniformTranslation))
	p = m.Apply(p)

	vary := []float32{1, 1, 1}
	if len(col) >= 3 {
		vary = []float32{col[0], col[1], col[2]}
	}
	return [4]float32{float32(p.X), float32(p.Y), u.Float32(UniformZDepth), 1}, vary
}

func depthMeshFragment(vary []float32, _ Uniforms) [4]float32 {
	return [4]float32{vary[0], vary[1], vary[2], 1}
}
