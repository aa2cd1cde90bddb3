// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

// Manual is a Host whose frames are advanced by calling Step.
type Manual struct {
	scheduler
}

// NewManual creates a manual host with the given viewport size.
func NewManual(width, height int) *Manual {
	m := &Manual{}
	m.width, m.height = width, height
	return m
}

// Step runs one frame and reports whether any callback was pending.
func (m *Manual) Step() bool { return m.step() }

// Steps runs up to n frames and returns the number that ran.
func (m *Manual) Steps(n int) int {
	ran := 0
	for ran < n && m.step() {
		ran++
	}
	return ran
}

// SetViewport changes the viewport and notifies resize handlers if the
// size differs.
func (m *Manual) SetViewport(width, height int) { m.setViewport(width, height) }

// Pending returns the number of callbacks waiting for the next frame.
func (m *Manual) Pending() int { return m.pendingCount() }

// Frames returns the number of frames run.
func (m *Manual) Frames() uint64 { return m.frameCount() }
