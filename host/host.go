// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

import (
	"slices"
	"sync"
)

// Host schedules frame callbacks and reports viewport changes.
type Host interface {
	// RequestAnimationFrame schedules fn to run on the next frame. Each
	// request runs once.
	RequestAnimationFrame(fn func())

	// OnResize registers fn to be called whenever the viewport changes.
	OnResize(fn func(width, height int))

	// Viewport returns the current viewport size.
	Viewport() (width, height int)
}

// scheduler holds the callback queue and resize handlers shared by the
// host implementations.
type scheduler struct {
	mu       sync.Mutex
	pending  []func()
	handlers []func(width, height int)
	width    int
	height   int
	frames   uint64
}

func (s *scheduler) RequestAnimationFrame(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.pending = append(s.pending, fn)
	s.mu.Unlock()
}

func (s *scheduler) OnResize(fn func(width, height int)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.handlers = append(s.handlers, fn)
	s.mu.Unlock()
}

func (s *scheduler) Viewport() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// setViewport stores the size and notifies handlers outside the lock.
func (s *scheduler) setViewport(width, height int) {
	s.mu.Lock()
	if width == s.width && height == s.height {
		s.mu.Unlock()
		return
	}
	s.width, s.height = width, height
	handlers := slices.Clone(s.handlers)
	s.mu.Unlock()

	for _, fn := range handlers {
		fn(width, height)
	}
}

// step runs the callbacks queued before the call. Callbacks requested
// while they run wait for the next step. It reports whether any ran.
func (s *scheduler) step() bool {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	if len(batch) > 0 {
		s.frames++
	}
	s.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch) > 0
}

func (s *scheduler) pendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *scheduler) frameCount() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}
