package interleave

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/interleave/surface"
)

// Sentinel errors returned by New.
var (
	// ErrNilLayer is returned when a layer is missing.
	ErrNilLayer = errors.New("interleave: layer is nil")

	// ErrNilSurface is returned when the surface is missing.
	ErrNilSurface = errors.New("interleave: surface is nil")
)

// FrameState is the per-loop animation state passed to every tick.
type FrameState struct {
	// Tick counts completed frames.
	Tick uint64

	// Step is the fixed animation step per frame. Zero means the
	// interleaver's configured step.
	Step float64
}

// Layer is a renderer adapter drawing one scene into the shared surface.
type Layer interface {
	// Update advances the scene to the given frame.
	Update(fs FrameState)

	// Reset drops every assumption the layer's renderer holds about the
	// surface state, so its next Draw re-applies all state it needs.
	Reset()

	// Draw renders the scene into s.
	Draw(s *surface.Surface) error

	// Resize adapts the scene to a new viewport size.
	Resize(width, height int)
}

// Interleaver draws a 3D layer and a 2D layer into one surface, resetting
// the shared context state before each of them.
//
// Interleaver is NOT thread-safe. A host runs all callbacks on one
// goroutine.
type Interleaver struct {
	surf    *surface.Surface
	world   Layer
	overlay Layer

	logger *slog.Logger
	step   float64
	frames uint64
}

// New creates an interleaver drawing world first and overlay second.
func New(surf *surface.Surface, world, overlay Layer, opts ...Option) (*Interleaver, error) {
	if surf == nil {
		return nil, ErrNilSurface
	}
	if world == nil || overlay == nil {
		return nil, ErrNilLayer
	}
	o := applyOptions(opts)
	return &Interleaver{
		surf:    surf,
		world:   world,
		overlay: overlay,
		logger:  o.logger,
		step:    o.step,
	}, nil
}

// Surface returns the shared surface.
func (il *Interleaver) Surface() *surface.Surface { return il.surf }

// Frame returns the number of frames drawn.
func (il *Interleaver) Frame() uint64 { return il.frames }

// Tick runs one frame: update 3D, update 2D, reset, draw 3D, reset, draw 2D.
// Both layers are drawn even if the first fails; the first error is
// returned. fs.Tick is advanced afterwards.
func (il *Interleaver) Tick(fs *FrameState) error {
	if fs.Step == 0 {
		fs.Step = il.step
	}

	il.world.Update(*fs)
	il.overlay.Update(*fs)

	calls := il.surf.StateCalls()

	il.reset()
	err := il.draw("world", il.world)

	il.reset()
	if err2 := il.draw("overlay", il.overlay); err == nil {
		err = err2
	}

	fs.Tick++
	il.frames++
	il.logger.Debug("interleave: frame",
		"frame", il.frames,
		"state_calls", il.surf.StateCalls()-calls,
		"resets", il.surf.Resets())
	return err
}

// reset restores the default context state and drops every layer's cached
// view of it.
func (il *Interleaver) reset() {
	il.surf.ResetState()
	il.world.Reset()
	il.overlay.Reset()
}

func (il *Interleaver) draw(name string, l Layer) error {
	if err := l.Draw(il.surf); err != nil {
		return fmt.Errorf("interleave: draw %s: %w", name, err)
	}
	return nil
}

// Resize resizes the surface and propagates the new size to both layers.
func (il *Interleaver) Resize(width, height int) error {
	if err := il.surf.Resize(width, height); err != nil {
		return fmt.Errorf("interleave: resize: %w", err)
	}
	il.world.Resize(width, height)
	il.overlay.Resize(width, height)
	il.logger.Info("interleave: resized", "width", width, "height", height)
	return nil
}
