package interleave

import (
	"errors"
	"testing"

	"github.com/gogpu/interleave/surface"
)

// recorder is a Layer that logs every call into a shared event list.
type recorder struct {
	name   string
	events *[]string
	err    error

	last          FrameState
	width, height int
}

func (r *recorder) Update(fs FrameState) {
	r.last = fs
	*r.events = append(*r.events, "update "+r.name)
}

func (r *recorder) Reset() { *r.events = append(*r.events, "reset "+r.name) }

func (r *recorder) Draw(*surface.Surface) error {
	*r.events = append(*r.events, "draw "+r.name)
	return r.err
}

func (r *recorder) Resize(width, height int) { r.width, r.height = width, height }

func newRecorded(t *testing.T) (*surface.Surface, *recorder, *recorder, *[]string) {
	t.Helper()
	s, err := surface.New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	events := &[]string{}
	return s, &recorder{name: "3d", events: events}, &recorder{name: "2d", events: events}, events
}

func TestNewErrors(t *testing.T) {
	s, world, overlay, _ := newRecorded(t)
	tests := []struct {
		name    string
		surf    *surface.Surface
		world   Layer
		overlay Layer
		want    error
	}{
		{"nil surface", nil, world, overlay, ErrNilSurface},
		{"nil world", s, nil, overlay, ErrNilLayer},
		{"nil overlay", s, world, nil, ErrNilLayer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.surf, tt.world, tt.overlay); !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTickOrder(t *testing.T) {
	s, world, overlay, events := newRecorded(t)
	il, err := New(s, world, overlay)
	if err != nil {
		t.Fatal(err)
	}

	if err := il.Tick(&FrameState{}); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	want := []string{
		"update 3d", "update 2d",
		"reset 3d", "reset 2d",
		"draw 3d",
		"reset 3d", "reset 2d",
		"draw 2d",
	}
	if len(*events) != len(want) {
		t.Fatalf("events = %v, want %v", *events, want)
	}
	for i := range want {
		if (*events)[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, (*events)[i], want[i])
		}
	}
}

func TestTickResetsTwicePerFrame(t *testing.T) {
	s, world, overlay, _ := newRecorded(t)
	il, _ := New(s, world, overlay)

	fs := &FrameState{}
	for range 3 {
		if err := il.Tick(fs); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.Resets(); got != 6 {
		t.Errorf("Resets() = %d after 3 frames, want 6", got)
	}
	if fs.Tick != 3 || il.Frame() != 3 {
		t.Errorf("Tick = %d, Frame() = %d, want 3", fs.Tick, il.Frame())
	}
}

func TestTickPassesFrameState(t *testing.T) {
	s, world, overlay, _ := newRecorded(t)
	il, _ := New(s, world, overlay, WithTimeStep(0.05))

	fs := &FrameState{Tick: 41}
	if err := il.Tick(fs); err != nil {
		t.Fatal(err)
	}
	if world.last.Tick != 41 || overlay.last.Tick != 41 {
		t.Errorf("layers saw ticks %d/%d, want 41", world.last.Tick, overlay.last.Tick)
	}
	if world.last.Step != 0.05 {
		t.Errorf("Step = %v, want 0.05", world.last.Step)
	}
	if fs.Tick != 42 {
		t.Errorf("fs.Tick = %d, want 42", fs.Tick)
	}

	// An explicit step wins over the configured one.
	fs.Step = 0.5
	_ = il.Tick(fs)
	if world.last.Step != 0.5 {
		t.Errorf("Step = %v, want 0.5", world.last.Step)
	}
}

func TestTickDrawError(t *testing.T) {
	s, world, overlay, events := newRecorded(t)
	boom := errors.New("boom")
	world.err = boom
	il, _ := New(s, world, overlay)

	fs := &FrameState{}
	err := il.Tick(fs)
	if !errors.Is(err, boom) {
		t.Fatalf("Tick() error = %v, want boom", err)
	}
	if got := (*events)[len(*events)-1]; got != "draw 2d" {
		t.Errorf("last event = %q, want the overlay still drawn", got)
	}
	if fs.Tick != 1 {
		t.Errorf("fs.Tick = %d, want 1 after a failed frame", fs.Tick)
	}
}

func TestResize(t *testing.T) {
	s, world, overlay, _ := newRecorded(t)
	il, _ := New(s, world, overlay)

	if err := il.Resize(800, 600); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if s.Width() != 800 || s.Height() != 600 {
		t.Errorf("surface = %dx%d, want 800x600", s.Width(), s.Height())
	}
	for _, l := range []*recorder{world, overlay} {
		if l.width != 800 || l.height != 600 {
			t.Errorf("layer %s = %dx%d, want 800x600", l.name, l.width, l.height)
		}
	}

	if err := il.Resize(0, 600); !errors.Is(err, surface.ErrInvalidSize) {
		t.Errorf("Resize(0, 600) error = %v, want ErrInvalidSize", err)
	}
	if world.width != 800 {
		t.Errorf("layer resized after a failed surface resize: %d", world.width)
	}
}
