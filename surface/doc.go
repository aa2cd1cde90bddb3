// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the shared drawable target used by every renderer
// in an interleaved frame.
//
// A Surface owns an RGBA color buffer, a float32 depth buffer and a mutable
// graphics-context [State] (depth test, depth compare, depth writes, blend
// equation, culling, bound program and vertex buffer, clear color). It plays
// the role a WebGL context plays for a browser canvas: several independent
// renderers may draw into it, and each of them leaves state behind.
//
// Renderers that avoid redundant state calls track what they believe is
// current through a [Cache]. Because another renderer may have changed the
// context in between, a Cache must be invalidated at every renderer handoff,
// and the context itself restored with [Surface.ResetState]:
//
//	s, _ := surface.New(800, 600)
//
//	s.ResetState()
//	world.Reset()
//	_ = world.Draw(s)
//
//	s.ResetState()
//	overlay.Reset()
//	_ = overlay.Draw(s)
//
// The surface has no alpha channel: Clear always writes opaque pixels, the
// same as a context created with alpha disabled.
//
// Surfaces are NOT thread-safe. Use a surface from one goroutine.
package surface
