// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene3d

import "github.com/go-gl/mathgl/mgl32"

// Color is a linear RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// Hex converts a 0xRRGGBB value to a Color.
func Hex(v uint32) Color {
	return Color{
		R: float32((v>>16)&0xFF) / 255,
		G: float32((v>>8)&0xFF) / 255,
		B: float32(v&0xFF) / 255,
	}
}

func (c Color) vec() mgl32.Vec3 { return mgl32.Vec3{c.R, c.G, c.B} }

// PhongMaterial is a shiny surface with specular highlights
// (Blinn-Phong reflectance).
type PhongMaterial struct {
	Color     Color
	Specular  Color
	Shininess float32

	DepthTest  bool
	DepthWrite bool
}

// NewPhongMaterial returns a material with the given diffuse color,
// specular 0x111111, shininess 30 and depth test and writes enabled.
func NewPhongMaterial(c Color) *PhongMaterial {
	return &PhongMaterial{
		Color:      c,
		Specular:   Hex(0x111111),
		Shininess:  30,
		DepthTest:  true,
		DepthWrite: true,
	}
}
