// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestCacheSkipsRedundantCalls(t *testing.T) {
	s, _ := New(2, 2)
	var c Cache
	c.Bind(s)

	c.SetDepthTest(true)
	c.SetDepthTest(true)
	c.SetBlend(BlendScreen())
	c.SetBlend(BlendScreen())

	if got := s.StateCalls(); got != 2 {
		t.Errorf("StateCalls() = %d, want 2", got)
	}
	if !c.Valid() {
		t.Error("Valid() = false after setters")
	}
}

// A stale cache leaves foreign state in place; invalidating it restores
// the renderer's intended state on the next setter.
func TestCacheStaleAfterForeignChange(t *testing.T) {
	s, _ := New(2, 2)
	var mine Cache
	mine.Bind(s)
	mine.SetBlend(BlendDisabled())

	// Another renderer changes the blend behind the cache's back.
	s.SetBlend(BlendScreen())

	mine.SetBlend(BlendDisabled())
	if s.State().Blend != BlendScreen() {
		t.Fatal("stale cache should have skipped the call")
	}

	mine.Invalidate()
	mine.SetBlend(BlendDisabled())
	if s.State().Blend != BlendDisabled() {
		t.Errorf("Blend = %+v, want disabled after invalidation", s.State().Blend)
	}
}

func TestCacheBindOtherSurfaceInvalidates(t *testing.T) {
	a, _ := New(2, 2)
	b, _ := New(2, 2)
	var c Cache
	c.Bind(a)
	c.SetCullMode(gputypes.CullModeBack)

	c.Bind(b)
	if c.Valid() {
		t.Fatal("binding another surface should invalidate")
	}
	c.SetCullMode(gputypes.CullModeBack)
	if b.State().CullMode != gputypes.CullModeBack {
		t.Errorf("CullMode = %v, want back", b.State().CullMode)
	}
}

func TestCacheAllFields(t *testing.T) {
	s, _ := New(2, 2)
	var c Cache
	c.Bind(s)

	prog, buf := s.CreateProgram(), s.CreateBuffer()
	bg := gputypes.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	apply := func() {
		c.SetDepthTest(true)
		c.SetDepthWrite(false)
		c.SetDepthCompare(gputypes.CompareFunctionLessEqual)
		c.SetBlend(BlendAdditive())
		c.SetCullMode(gputypes.CullModeBack)
		c.SetFrontFace(gputypes.FrontFaceCW)
		c.UseProgram(prog)
		c.BindVertexBuffer(buf)
		c.SetClearColor(bg)
	}
	apply()
	first := s.StateCalls()
	apply()
	if s.StateCalls() != first {
		t.Errorf("second apply made %d calls, want 0", s.StateCalls()-first)
	}

	want := State{
		DepthTest:    true,
		DepthWrite:   false,
		DepthCompare: gputypes.CompareFunctionLessEqual,
		Blend:        BlendAdditive(),
		CullMode:     gputypes.CullModeBack,
		FrontFace:    gputypes.FrontFaceCW,
		Program:      prog,
		VertexBuffer: buf,
		ClearColor:   bg,
	}
	if s.State() != want {
		t.Errorf("State() = %+v, want %+v", s.State(), want)
	}
}
