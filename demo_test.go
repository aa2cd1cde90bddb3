package interleave

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/interleave/scene2d"
	"github.com/gogpu/interleave/surface"
)

func newTestDemo(t *testing.T, w, h int, opts ...Option) *Demo {
	t.Helper()
	d, err := NewDemo(w, h, opts...)
	if err != nil {
		t.Fatalf("NewDemo() error = %v", err)
	}
	return d
}

func TestNewDemoInvalidSize(t *testing.T) {
	if _, err := NewDemo(0, 10); err == nil {
		t.Error("NewDemo(0, 10) succeeded")
	}
}

func TestDemoResize(t *testing.T) {
	tests := []struct {
		w, h   int
		cx, cy float64
	}{
		{800, 600, 400, 300},
		{801, 601, 400, 300},
		{320, 240, 160, 120},
	}
	d := newTestDemo(t, 64, 48)
	for _, tt := range tests {
		if err := d.Resize(tt.w, tt.h); err != nil {
			t.Fatalf("Resize(%d, %d) error = %v", tt.w, tt.h, err)
		}
		want := scene2d.Pt(tt.cx, tt.cy)
		if got := d.Overlay.Mesh.Position(); got != want {
			t.Errorf("%dx%d: mesh at %v, want %v", tt.w, tt.h, got, want)
		}
		if got := d.Overlay.Sprite.Position(); got != want {
			t.Errorf("%dx%d: sprite at %v, want %v", tt.w, tt.h, got, want)
		}
		if got, want := d.World.Camera.Aspect, float32(tt.w)/float32(tt.h); got != want {
			t.Errorf("%dx%d: camera aspect = %v, want %v", tt.w, tt.h, got, want)
		}
		if w, h := d.World.Renderer.Size(); w != tt.w || h != tt.h {
			t.Errorf("3D renderer size = %dx%d", w, h)
		}
		if w, h := d.Overlay.Renderer.Size(); w != tt.w || h != tt.h {
			t.Errorf("2D renderer size = %dx%d", w, h)
		}
		if d.Surface().Width() != tt.w || d.Surface().Height() != tt.h {
			t.Errorf("surface = %dx%d", d.Surface().Width(), d.Surface().Height())
		}
	}
}

func TestDemoResizeUpdatesProjection(t *testing.T) {
	d := newTestDemo(t, 400, 400)
	before := d.World.Camera.Projection()
	if err := d.Resize(800, 400); err != nil {
		t.Fatal(err)
	}
	after := d.World.Camera.Projection()
	// The x scale halves when the aspect doubles.
	if math32.Abs(after[0]-before[0]/2) > 1e-5 {
		t.Errorf("projection x scale = %v, want %v", after[0], before[0]/2)
	}
}

func TestDemoAnimation(t *testing.T) {
	tests := []struct {
		name   string
		opts   []Option
		frames int
		rot    float32
		scale  float64
	}{
		{"first frame", nil, 1, -0.01, 0.1*math.Sin(0.01) + 1.25},
		{"default step", nil, 3, -0.03, 0.1*math.Sin(0.03) + 1.25},
		{"custom step", []Option{WithTimeStep(0.02)}, 3, -0.06, 0.1*math.Sin(0.06) + 1.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDemo(t, 64, 48, tt.opts...)
			fs := &FrameState{}
			for range tt.frames {
				if err := d.Tick(fs); err != nil {
					t.Fatal(err)
				}
			}

			rot := d.World.Cube.Rotation
			for _, v := range rot {
				if math32.Abs(v-tt.rot) > 1e-6 {
					t.Errorf("rotation = %v, want %v on every axis", rot, tt.rot)
					break
				}
			}

			// The pulse phase and the cube rotation share the step.
			if got := d.Overlay.Scale(); math.Abs(got-tt.scale) > 1e-12 {
				t.Errorf("Scale() = %v, want %v", got, tt.scale)
			}
			if d.Overlay.Sprite.Transform().Scale != d.Overlay.Mesh.Transform().Scale {
				t.Error("sprite and mesh scales differ")
			}
			if got := d.Overlay.Sprite.Transform().Scale.X; got != d.Overlay.Scale() {
				t.Errorf("sprite scale = %v, want %v", got, d.Overlay.Scale())
			}
		})
	}
}

func TestNewOverlayRestScale(t *testing.T) {
	ov, err := NewOverlay(64, 48)
	if err != nil {
		t.Fatal(err)
	}
	if got := ov.Scale(); got != 1.25 {
		t.Errorf("Scale() = %v, want 1.25 before the first frame", got)
	}
}

// The triangle sits behind the cube's front faces: hidden where they
// overlap and visible elsewhere.
func TestDemoLayering(t *testing.T) {
	d := newTestDemo(t, 800, 600)
	if err := d.Tick(&FrameState{}); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	s := d.Surface()

	if z := s.DepthAt(400, 300); z >= 0.995 {
		t.Errorf("center depth = %v, want the cube in front of the triangle", z)
	}
	if z := s.DepthAt(750, 110); z < 0.995 || z > 0.997 {
		t.Errorf("depth at (750,110) = %v, want the triangle at ~0.996", z)
	}
	if c := s.RGBAAt(750, 110); c.R == 0 && c.G == 0 && c.B == 0 {
		t.Errorf("pixel at (750,110) = %v, want triangle color", c)
	}
	if z := s.DepthAt(5, 595); z != 1 {
		t.Errorf("corner depth = %v, want 1", z)
	}
}

// stateRecorder records the context state the 3D pass leaves behind.
type stateRecorder struct {
	Layer
	states []surface.State
}

func (p *stateRecorder) Draw(s *surface.Surface) error {
	err := p.Layer.Draw(s)
	p.states = append(p.states, s.State())
	return err
}

func TestDemoStateDoesNotLeak(t *testing.T) {
	d := newTestDemo(t, 160, 120)
	p := &stateRecorder{Layer: d.World}
	il, err := New(d.Surface(), p, d.Overlay)
	if err != nil {
		t.Fatal(err)
	}

	fs := &FrameState{}
	for range 3 {
		if err := il.Tick(fs); err != nil {
			t.Fatal(err)
		}
	}
	for i, st := range p.states {
		if st.Blend != surface.BlendDisabled() {
			t.Errorf("frame %d: 3D pass ran with blend %+v", i, st.Blend)
		}
		if !st.DepthTest || st.CullMode != gputypes.CullModeBack {
			t.Errorf("frame %d: 3D pass ran with depth=%v cull=%v", i, st.DepthTest, st.CullMode)
		}
	}
}

// Without resets the 3D renderer trusts its stale cache and runs under
// the 2D pass's SCREEN blend.
func TestDemoStateLeaksWithoutReset(t *testing.T) {
	d := newTestDemo(t, 160, 120)
	s := d.Surface()

	for range 2 {
		if err := d.World.Draw(s); err != nil {
			t.Fatal(err)
		}
		if err := d.Overlay.Draw(s); err != nil {
			t.Fatal(err)
		}
	}
	if err := d.World.Draw(s); err != nil {
		t.Fatal(err)
	}
	if s.State().Blend != surface.BlendScreen() {
		t.Errorf("Blend = %+v, want the leaked screen blend", s.State().Blend)
	}
	if s.State().DepthTest {
		t.Error("DepthTest = true, want the sprite's leaked depth test off")
	}
}

// At 800x600 the corner (5,595) lies outside the cube, the triangle and
// the logo, so only the clear color reaches it.
func TestDemoClearColor(t *testing.T) {
	d := newTestDemo(t, 800, 600, WithClearColor(gputypes.Color{R: 0, G: 0, B: 1, A: 1}))
	if err := d.Tick(&FrameState{}); err != nil {
		t.Fatal(err)
	}
	if c := d.Surface().RGBAAt(5, 595); c.B != 255 || c.R != 0 || c.G != 0 {
		t.Errorf("corner = %v, want blue clear color", c)
	}
}

func TestDemoDevice(t *testing.T) {
	dev := surface.NullDevice{}
	d := newTestDemo(t, 8, 8, WithDevice(dev))
	if d.Surface().Device() != dev {
		t.Errorf("Device() = %v, want the provided device", d.Surface().Device())
	}
}
