// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/interleave/internal/logging"
)

// Frame rate bounds for a Headless host.
const (
	// DefaultFPS is used without WithFPS or for non-positive rates.
	DefaultFPS = 60

	// MaxFPS caps the rate so the frame interval stays positive.
	MaxFPS = 1000
)

// FrameHook is called after every frame with the 1-based frame number.
// A non-nil error stops Run.
type FrameHook func(frame uint64) error

// Option configures a Headless host.
type Option func(*headlessOptions)

type headlessOptions struct {
	fps    int
	limit  uint64
	hook   FrameHook
	logger *slog.Logger
}

// WithFPS sets the frame rate. Non-positive values select DefaultFPS and
// rates above MaxFPS are capped.
func WithFPS(fps int) Option {
	return func(o *headlessOptions) {
		o.fps = fps
	}
}

// WithFrameLimit stops Run after n frames. Zero means no limit.
func WithFrameLimit(n uint64) Option {
	return func(o *headlessOptions) {
		o.limit = n
	}
}

// WithFrameHook sets a function called after every frame.
func WithFrameHook(fn FrameHook) Option {
	return func(o *headlessOptions) {
		o.hook = fn
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *headlessOptions) {
		o.logger = l
	}
}

// Headless is a Host without a window. Run delivers queued frame
// callbacks on the calling goroutine at a fixed rate.
type Headless struct {
	scheduler
	fps    int
	limit  uint64
	hook   FrameHook
	logger *slog.Logger
}

// NewHeadless creates a headless host with the given viewport size.
func NewHeadless(width, height int, opts ...Option) *Headless {
	o := headlessOptions{fps: DefaultFPS}
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case o.fps <= 0:
		o.fps = DefaultFPS
	case o.fps > MaxFPS:
		o.fps = MaxFPS
	}
	o.logger = logging.OrNop(o.logger)
	h := &Headless{
		fps:    o.fps,
		limit:  o.limit,
		hook:   o.hook,
		logger: o.logger,
	}
	h.width, h.height = width, height
	return h
}

// FPS returns the frame rate.
func (h *Headless) FPS() int { return h.fps }

// Frames returns the number of frames run.
func (h *Headless) Frames() uint64 { return h.frameCount() }

// SetViewport changes the viewport and notifies resize handlers if the
// size differs.
func (h *Headless) SetViewport(width, height int) { h.setViewport(width, height) }

// Run delivers frames until the frame limit is reached, no callback is
// pending, the frame hook fails or ctx is done. It returns ctx.Err() on
// cancellation and nil when it stops on its own.
func (h *Headless) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(h.fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.logger.Info("host: headless run started", "fps", h.fps, "limit", h.limit)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if !h.step() {
			h.logger.Debug("host: no frame requested, stopping")
			return nil
		}
		frame := h.frameCount()
		if h.hook != nil {
			if err := h.hook(frame); err != nil {
				return fmt.Errorf("host: frame %d: %w", frame, err)
			}
		}
		if h.limit > 0 && frame >= h.limit {
			h.logger.Info("host: frame limit reached", "frames", frame)
			return nil
		}
	}
}
