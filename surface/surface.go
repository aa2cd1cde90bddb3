// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// ErrInvalidSize is returned when a surface is created or resized with a
// non-positive dimension.
var ErrInvalidSize = errors.New("surface: width and height must be positive")

// Surface is the shared drawable target.
//
// Example:
//
//	s, err := surface.New(800, 600)
//	if err != nil {
//	    return err
//	}
//	s.SetClearColor(gputypes.Color{R: 0, G: 0, B: 0, A: 1})
//	s.Clear(gputypes.LoadOpClear, gputypes.LoadOpClear)
//	img := s.Snapshot()
type Surface struct {
	width  int
	height int

	color *image.RGBA
	depth []float32

	state  State
	device DeviceHandle

	nextHandle Handle

	// resets counts ResetState calls.
	resets uint64

	// stateCalls counts state setter calls that reached the context.
	stateCalls uint64
}

// Option configures a Surface during creation.
type Option func(*options)

type options struct {
	device DeviceHandle
}

// WithDevice attaches a host-provided GPU device to the surface.
func WithDevice(d DeviceHandle) Option {
	return func(o *options) {
		o.device = d
	}
}

// New creates a surface with the given dimensions.
// The color buffer starts opaque black and the depth buffer at 1.
func New(width, height int, opts ...Option) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	o := options{device: NullDevice{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.device == nil {
		o.device = NullDevice{}
	}

	s := &Surface{
		state:  DefaultState(),
		device: o.device,
	}
	s.alloc(width, height)
	return s, nil
}

func (s *Surface) alloc(width, height int) {
	s.width = width
	s.height = height
	s.color = image.NewRGBA(image.Rect(0, 0, width, height))
	s.depth = make([]float32, width*height)
	s.fill(s.state.ClearColor, true, true)
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Bounds returns the surface rectangle.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// Format returns the pixel format of the color buffer.
func (s *Surface) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Device returns the device handle the surface was created with.
func (s *Surface) Device() DeviceHandle { return s.device }

// Resize changes the surface dimensions.
// The contents are not preserved. Context state is kept, like a canvas whose
// width and height attributes change.
func (s *Surface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width == s.width && height == s.height {
		return nil
	}
	s.alloc(width, height)
	return nil
}

// Clear resets the color and/or depth buffers. A LoadOpClear for color fills
// the color buffer with the current clear color; for depth it resets every
// depth value to 1. Any other load op keeps the existing contents.
func (s *Surface) Clear(colorOp, depthOp gputypes.LoadOp) {
	s.fill(s.state.ClearColor, colorOp == gputypes.LoadOpClear, depthOp == gputypes.LoadOpClear)
}

func (s *Surface) fill(c gputypes.Color, colorBuf, depthBuf bool) {
	if colorBuf {
		px := color.RGBA{
			R: unitToByte(float32(c.R)),
			G: unitToByte(float32(c.G)),
			B: unitToByte(float32(c.B)),
			A: 255,
		}
		pix := s.color.Pix
		for i := 0; i < len(pix); i += 4 {
			pix[i+0] = px.R
			pix[i+1] = px.G
			pix[i+2] = px.B
			pix[i+3] = px.A
		}
	}
	if depthBuf {
		for i := range s.depth {
			s.depth[i] = 1
		}
	}
}

// Contains reports whether (x, y) lies inside the surface.
func (s *Surface) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

// DepthAt returns the depth value at (x, y), or 1 outside the surface.
func (s *Surface) DepthAt(x, y int) float32 {
	if !s.Contains(x, y) {
		return 1
	}
	return s.depth[y*s.width+x]
}

// RGBAAt returns the color at (x, y).
func (s *Surface) RGBAAt(x, y int) color.RGBA {
	return s.color.RGBAAt(x, y)
}

// Image returns the color buffer. It shares memory with the surface and is
// replaced on Resize.
func (s *Surface) Image() *image.RGBA { return s.color }

// Snapshot returns a copy of the color buffer.
func (s *Surface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.color.Rect)
	copy(out.Pix, s.color.Pix)
	return out
}

func unitToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
