// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "github.com/gogpu/gputypes"

type field uint16

const (
	fieldDepthTest field = 1 << iota
	fieldDepthWrite
	fieldDepthCompare
	fieldBlend
	fieldCullMode
	fieldFrontFace
	fieldProgram
	fieldVertexBuffer
	fieldClearColor
)

// Cache mirrors the context state a renderer believes is current.
//
// Setters skip the context call when the cached value already matches.
// The cache cannot observe changes made by anyone else, so a stale Cache
// silently leaves foreign state in place. Invalidate forgets every value;
// the next setter for each field always reaches the context.
type Cache struct {
	surf  *Surface
	known field
	state State
}

// Bind points the cache at s. Binding a different surface invalidates it.
func (c *Cache) Bind(s *Surface) {
	if c.surf != s {
		c.surf = s
		c.known = 0
	}
}

// Invalidate drops every cached value.
func (c *Cache) Invalidate() { c.known = 0 }

// Valid reports whether any value is cached.
func (c *Cache) Valid() bool { return c.known != 0 }

func (c *Cache) has(f field) bool { return c.known&f != 0 }

// SetDepthTest enables or disables the depth test.
func (c *Cache) SetDepthTest(enabled bool) {
	if c.has(fieldDepthTest) && c.state.DepthTest == enabled {
		return
	}
	c.surf.SetDepthTest(enabled)
	c.state.DepthTest = enabled
	c.known |= fieldDepthTest
}

// SetDepthWrite enables or disables depth writes.
func (c *Cache) SetDepthWrite(enabled bool) {
	if c.has(fieldDepthWrite) && c.state.DepthWrite == enabled {
		return
	}
	c.surf.SetDepthWrite(enabled)
	c.state.DepthWrite = enabled
	c.known |= fieldDepthWrite
}

// SetDepthCompare sets the depth comparison function.
func (c *Cache) SetDepthCompare(fn gputypes.CompareFunction) {
	if c.has(fieldDepthCompare) && c.state.DepthCompare == fn {
		return
	}
	c.surf.SetDepthCompare(fn)
	c.state.DepthCompare = fn
	c.known |= fieldDepthCompare
}

// SetBlend sets the blend state.
func (c *Cache) SetBlend(b BlendState) {
	if c.has(fieldBlend) && c.state.Blend == b {
		return
	}
	c.surf.SetBlend(b)
	c.state.Blend = b
	c.known |= fieldBlend
}

// SetCullMode sets which faces are culled.
func (c *Cache) SetCullMode(m gputypes.CullMode) {
	if c.has(fieldCullMode) && c.state.CullMode == m {
		return
	}
	c.surf.SetCullMode(m)
	c.state.CullMode = m
	c.known |= fieldCullMode
}

// SetFrontFace sets the front-facing winding.
func (c *Cache) SetFrontFace(f gputypes.FrontFace) {
	if c.has(fieldFrontFace) && c.state.FrontFace == f {
		return
	}
	c.surf.SetFrontFace(f)
	c.state.FrontFace = f
	c.known |= fieldFrontFace
}

// UseProgram binds a program.
func (c *Cache) UseProgram(h Handle) {
	if c.has(fieldProgram) && c.state.Program == h {
		return
	}
	c.surf.UseProgram(h)
	c.state.Program = h
	c.known |= fieldProgram
}

// BindVertexBuffer binds a vertex buffer.
func (c *Cache) BindVertexBuffer(h Handle) {
	if c.has(fieldVertexBuffer) && c.state.VertexBuffer == h {
		return
	}
	c.surf.BindVertexBuffer(h)
	c.state.VertexBuffer = h
	c.known |= fieldVertexBuffer
}

// SetClearColor sets the clear color.
func (c *Cache) SetClearColor(col gputypes.Color) {
	if c.has(fieldClearColor) && c.state.ClearColor == col {
		return
	}
	c.surf.SetClearColor(col)
	c.state.ClearColor = col
	c.known |= fieldClearColor
}
