// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/gputypes"
)

// State returns the current context state.
func (s *Surface) State() State { return s.state }

// ResetState restores DefaultState, unbinding programs and buffers.
// It is the handoff operation between two renderers.
func (s *Surface) ResetState() {
	s.state = DefaultState()
	s.resets++
}

// Resets returns how many times ResetState has been called.
func (s *Surface) Resets() uint64 { return s.resets }

// StateCalls returns how many state setter calls reached the context.
func (s *Surface) StateCalls() uint64 { return s.stateCalls }

// CreateProgram allocates a program handle.
func (s *Surface) CreateProgram() Handle { return s.newHandle() }

// CreateBuffer allocates a buffer handle.
func (s *Surface) CreateBuffer() Handle { return s.newHandle() }

func (s *Surface) newHandle() Handle {
	s.nextHandle++
	return s.nextHandle
}

// SetDepthTest enables or disables the depth test.
func (s *Surface) SetDepthTest(enabled bool) {
	s.stateCalls++
	s.state.DepthTest = enabled
}

// SetDepthWrite enables or disables depth buffer writes.
func (s *Surface) SetDepthWrite(enabled bool) {
	s.stateCalls++
	s.state.DepthWrite = enabled
}

// SetDepthCompare sets the depth comparison function.
func (s *Surface) SetDepthCompare(fn gputypes.CompareFunction) {
	s.stateCalls++
	s.state.DepthCompare = fn
}

// SetBlend sets the blend state.
func (s *Surface) SetBlend(b BlendState) {
	s.stateCalls++
	s.state.Blend = b
}

// SetCullMode sets which faces are culled.
func (s *Surface) SetCullMode(m gputypes.CullMode) {
	s.stateCalls++
	s.state.CullMode = m
}

// SetFrontFace sets the front-facing winding.
func (s *Surface) SetFrontFace(f gputypes.FrontFace) {
	s.stateCalls++
	s.state.FrontFace = f
}

// UseProgram binds a program.
func (s *Surface) UseProgram(h Handle) {
	s.stateCalls++
	s.state.Program = h
}

// BindVertexBuffer binds a vertex buffer.
func (s *Surface) BindVertexBuffer(h Handle) {
	s.stateCalls++
	s.state.VertexBuffer = h
}

// SetClearColor sets the color used by Clear.
func (s *Surface) SetClearColor(c gputypes.Color) {
	s.stateCalls++
	s.state.ClearColor = c
}

// Fragment runs the per-fragment operations for a fragment at (x, y) with
// window-space depth z and color c: depth test, depth write, blending.
//
// c is a premultiplied RGBA color with components in [0, 1].
// Fragment reports whether the fragment was written.
func (s *Surface) Fragment(x, y int, z float32, c [4]float32) bool {
	if !s.Contains(x, y) {
		return false
	}
	i := y*s.width + x
	if s.state.DepthTest {
		if z < 0 || z > 1 {
			return false
		}
		if !compare(s.state.DepthCompare, z, s.depth[i]) {
			return false
		}
		if s.state.DepthWrite {
			s.depth[i] = z
		}
	}
	s.blend(i*4, c)
	return true
}

// compare applies fn as "incoming fn stored".
func compare(fn gputypes.CompareFunction, z, stored float32) bool {
	switch fn {
	case gputypes.CompareFunctionNever:
		return false
	case gputypes.CompareFunctionLess:
		return z < stored
	case gputypes.CompareFunctionEqual:
		return z == stored
	case gputypes.CompareFunctionLessEqual:
		return z <= stored
	case gputypes.CompareFunctionGreater:
		return z > stored
	case gputypes.CompareFunctionNotEqual:
		return z != stored
	case gputypes.CompareFunctionGreaterEqual:
		return z >= stored
	default:
		return true
	}
}
