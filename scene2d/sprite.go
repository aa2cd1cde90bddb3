// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene2d

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/interleave/surface"
)

// Sprite draws a textured quad.
type Sprite struct {
	node

	// Texture holds premultiplied pixels.
	Texture *image.RGBA

	// Anchor is the texture-relative origin, (0.5, 0.5) for the center.
	Anchor Point

	BlendMode BlendMode
}

// NewSprite creates a sprite from img, anchored at its top-left corner.
func NewSprite(img image.Image) *Sprite {
	return &Sprite{
		node:    newNode(),
		Texture: toRGBA(img),
	}
}

// Size returns the texture size in pixels.
func (sp *Sprite) Size() (width, height int) {
	if sp.Texture == nil {
		return 0, 0
	}
	b := sp.Texture.Bounds()
	return b.Dx(), b.Dy()
}

func (sp *Sprite) render(r *Renderer, s *surface.Surface, world Matrix) error {
	return r.drawSprite(s, sp, world)
}

func toRGBA(img image.Image) *image.RGBA {
	if img == nil {
		return nil
	}
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// sample returns the bilinearly filtered premultiplied color at texture
// coordinates (u, v) in [0, 1], clamped to the edge.
func sample(tex *image.RGBA, u, v float64) [4]float32 {
	w, h := tex.Rect.Dx(), tex.Rect.Dy()
	fx := u*float64(w) - 0.5
	fy := v*float64(h) - 0.5
	x0, y0 := int(math.Floor(fx)), int(math.Floor(fy))
	tx, ty := float32(fx-math.Floor(fx)), float32(fy-math.Floor(fy))

	c00 := texel(tex, x0, y0)
	c10 := texel(tex, x0+1, y0)
	c01 := texel(tex, x0, y0+1)
	c11 := texel(tex, x0+1, y0+1)

	var out [4]float32
	for k := 0; k < 4; k++ {
		top := c00[k] + (c10[k]-c00[k])*tx
		bot := c01[k] + (c11[k]-c01[k])*tx
		out[k] = top + (bot-top)*ty
	}
	return out
}

func texel(tex *image.RGBA, x, y int) [4]float32 {
	x = clampInt(x, 0, tex.Rect.Dx()-1)
	y = clampInt(y, 0, tex.Rect.Dy()-1)
	off := y*tex.Stride + x*4
	p := tex.Pix[off : off+4 : off+4]
	return [4]float32{
		float32(p[0]) / 255,
		float32(p[1]) / 255,
		float32(p[2]) / 255,
		float32(p[3]) / 255,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
