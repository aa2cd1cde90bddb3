// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene3d

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// AmbientLight lights every surface equally.
type AmbientLight struct {
	Color     Color
	Intensity float32
}

// NewAmbientLight creates an ambient light.
func NewAmbientLight(c Color, intensity float32) *AmbientLight {
	return &AmbientLight{Color: c, Intensity: intensity}
}

func (l *AmbientLight) addTo(s *Scene) { s.ambient = append(s.ambient, l) }

// PointLight emits light in all directions from Position.
type PointLight struct {
	Color     Color
	Intensity float32

	// Distance is the range of the light. Zero means unlimited.
	Distance float32

	// Decay is the falloff exponent over Distance.
	Decay float32

	Position mgl32.Vec3
}

// NewPointLight creates a point light with linear decay.
func NewPointLight(c Color, intensity, distance float32) *PointLight {
	return &PointLight{Color: c, Intensity: intensity, Distance: distance, Decay: 1}
}

func (l *PointLight) addTo(s *Scene) { s.points = append(s.points, l) }

// attenuation returns the light falloff at distance d.
func (l *PointLight) attenuation(d float32) float32 {
	if l.Distance <= 0 || l.Decay <= 0 {
		return 1
	}
	f := 1 - d/l.Distance
	if f <= 0 {
		return 0
	}
	return math32.Pow(f, l.Decay)
}
