package interleave

import (
	"log/slog"

	"github.com/gogpu/interleave/host"
)

// Loop drives an Interleaver from a host's frame callbacks. It owns the
// FrameState passed to every tick.
//
// Loop is NOT thread-safe. The host must run callbacks on one goroutine.
type Loop struct {
	il     *Interleaver
	host   host.Host
	state  FrameState
	logger *slog.Logger

	errors  uint64
	started bool
}

// NewLoop binds il to h.
func NewLoop(il *Interleaver, h host.Host) *Loop {
	return &Loop{
		il:     il,
		host:   h,
		state:  FrameState{Step: il.step},
		logger: il.logger,
	}
}

// Start registers the resize handler, applies the current viewport size
// and schedules the first frame. Calling Start again has no effect.
func (l *Loop) Start() {
	if l.started {
		return
	}
	l.started = true

	l.host.OnResize(l.resize)
	w, h := l.host.Viewport()
	l.resize(w, h)

	l.logger.Info("interleave: loop started", "width", w, "height", h)
	l.host.RequestAnimationFrame(l.frame)
}

// State returns the current frame state.
func (l *Loop) State() FrameState { return l.state }

// Errors returns the number of frames whose tick failed.
func (l *Loop) Errors() uint64 { return l.errors }

// frame schedules the next frame before running this one, so the loop
// keeps going even when a tick fails.
func (l *Loop) frame() {
	l.host.RequestAnimationFrame(l.frame)
	if err := l.il.Tick(&l.state); err != nil {
		l.errors++
		l.logger.Warn("interleave: frame failed", "frame", l.state.Tick, "error", err)
	}
}

func (l *Loop) resize(width, height int) {
	if err := l.il.Resize(width, height); err != nil {
		l.logger.Warn("interleave: resize failed", "width", width, "height", height, "error", err)
	}
}
