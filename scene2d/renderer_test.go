// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene2d

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/interleave/surface"
)

// newTriangle returns a solid red triangle centered on its origin.
func newTriangle(t *testing.T) *Mesh {
	t.Helper()
	prog, err := DepthMeshProgram()
	if err != nil {
		t.Fatalf("DepthMeshProgram() error = %v", err)
	}
	g := NewGeometry().
		AddAttribute(AttrPosition, []float32{-40, -20, 40, -20, 0, 40}, 2).
		AddAttribute(AttrColor, []float32{1, 0, 0, 1, 0, 0, 1, 0, 0}, 3)
	m := NewMesh(g, NewShader(prog, Uniforms{UniformZDepth: float32(0.992)}))
	m.State.DepthTest = true
	m.SetPosition(50, 50)
	return m
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestRenderNilSurface(t *testing.T) {
	r := NewRenderer(10, 10)
	if err := r.Render(nil, NewContainer()); !errors.Is(err, ErrNilSurface) {
		t.Errorf("Render(nil) error = %v, want ErrNilSurface", err)
	}
}

func TestMeshDepthLayering(t *testing.T) {
	s, _ := surface.New(100, 100)

	// Something closer already occupies the center pixel.
	s.SetDepthTest(true)
	s.Fragment(50, 50, 0.5, [4]float32{0, 1, 0, 1})

	r := NewRenderer(100, 100)
	root := NewContainer()
	root.AddChild(newTriangle(t))
	if err := r.Render(s, root); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if got := s.RGBAAt(50, 50); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("occluded pixel = %v, want green", got)
	}
	if got := s.RGBAAt(50, 60); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("visible pixel = %v, want red", got)
	}
	if got := s.DepthAt(50, 60); got < 0.995 || got > 0.997 {
		t.Errorf("DepthAt(50, 60) = %v, want ~0.996", got)
	}
	if got := s.RGBAAt(5, 5); got != (color.RGBA{A: 255}) {
		t.Errorf("outside pixel = %v, want black", got)
	}

	st := r.Stats()
	if st.Meshes != 1 || st.Triangles != 1 || st.Fragments == 0 {
		t.Errorf("Stats() = %+v", st)
	}
}

func newGraySprite(size int) *Sprite {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 128, 128, 128, 255
	}
	sp := NewSprite(img)
	sp.Anchor = Pt(0.5, 0.5)
	sp.BlendMode = BlendScreen
	return sp
}

func TestSpriteScreenBlend(t *testing.T) {
	s, _ := surface.New(10, 10)
	s.SetClearColor(gputypes.Color{R: 0.5, G: 0.5, B: 0.5, A: 1})
	s.Clear(gputypes.LoadOpClear, gputypes.LoadOpClear)
	bg := s.RGBAAt(0, 0)

	sp := newGraySprite(4)
	sp.SetPosition(5, 5)

	r := NewRenderer(10, 10)
	if err := r.Render(s, sp); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	got := s.RGBAAt(5, 5)
	if !near(got.R, 192, 2) || !near(got.G, 192, 2) || !near(got.B, 192, 2) {
		t.Errorf("screen pixel = %v, want ~192", got)
	}
	if got := s.RGBAAt(0, 0); got != bg {
		t.Errorf("pixel outside sprite = %v, want %v", got, bg)
	}
	if r.Stats().Sprites != 1 {
		t.Errorf("Sprites = %d, want 1", r.Stats().Sprites)
	}
}

func TestSpriteScaleCoverage(t *testing.T) {
	s, _ := surface.New(20, 20)
	sp := newGraySprite(4)
	sp.BlendMode = BlendNormal
	sp.SetPosition(10, 10)
	sp.SetScale(2)

	r := NewRenderer(20, 20)
	if err := r.Render(s, sp); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	// 4x4 texels scaled by 2 cover pixels 6..13.
	if got := s.RGBAAt(6, 6); got.R == 0 {
		t.Errorf("pixel (6,6) = %v, want covered", got)
	}
	if got := s.RGBAAt(13, 13); got.R == 0 {
		t.Errorf("pixel (13,13) = %v, want covered", got)
	}
	if got := s.RGBAAt(5, 10); got.R != 0 {
		t.Errorf("pixel (5,10) = %v, want uncovered", got)
	}
}

func TestRenderClearBeforeRender(t *testing.T) {
	s, _ := surface.New(4, 4)
	s.SetClearColor(gputypes.Color{R: 1, A: 1})
	s.Clear(gputypes.LoadOpClear, gputypes.LoadOpClear)

	if err := NewRenderer(4, 4).Render(s, NewContainer()); err != nil {
		t.Fatal(err)
	}
	if got := s.RGBAAt(1, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("default renderer cleared the surface: %v", got)
	}

	r := NewRenderer(4, 4,
		WithClearBeforeRender(true),
		WithBackground(gputypes.Color{B: 1, A: 1}))
	if err := r.Render(s, NewContainer()); err != nil {
		t.Fatal(err)
	}
	if got := s.RGBAAt(1, 1); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("pixel = %v, want blue after clear", got)
	}
}

func TestRenderResetReappliesBlend(t *testing.T) {
	s, _ := surface.New(10, 10)
	sp := newGraySprite(2)
	sp.SetPosition(5, 5)
	r := NewRenderer(10, 10)

	if err := r.Render(s, sp); err != nil {
		t.Fatal(err)
	}
	if s.State().Blend != surface.BlendScreen() {
		t.Fatalf("Blend = %+v, want screen", s.State().Blend)
	}

	// Another renderer takes over the context.
	s.SetBlend(surface.BlendDisabled())
	s.SetDepthTest(true)

	if err := r.Render(s, sp); err != nil {
		t.Fatal(err)
	}
	if s.State().Blend == surface.BlendScreen() {
		t.Fatal("stale cache re-applied blend without Reset")
	}

	r.Reset()
	if err := r.Render(s, sp); err != nil {
		t.Fatal(err)
	}
	if s.State().Blend != surface.BlendScreen() {
		t.Errorf("Blend = %+v, want screen after Reset", s.State().Blend)
	}
	if s.State().DepthTest {
		t.Error("DepthTest still enabled after Reset")
	}
}

// The triangle winds clockwise on screen, so a leaked back-face cull
// removes it until the renderer resets its cache.
func TestRenderLeakedCullMode(t *testing.T) {
	s, _ := surface.New(100, 100)
	m := newTriangle(t)
	m.State.DepthTest = false
	r := NewRenderer(100, 100)

	if err := r.Render(s, m); err != nil {
		t.Fatal(err)
	}
	if r.Stats().Fragments == 0 {
		t.Fatal("no fragments on first render")
	}

	s.SetCullMode(gputypes.CullModeBack)
	if err := r.Render(s, m); err != nil {
		t.Fatal(err)
	}
	if got := r.Stats().Fragments; got != 0 {
		t.Errorf("Fragments = %d with leaked culling, want 0", got)
	}

	r.Reset()
	if err := r.Render(s, m); err != nil {
		t.Fatal(err)
	}
	if r.Stats().Fragments == 0 {
		t.Error("no fragments after Reset")
	}
}

func TestRenderHiddenRoot(t *testing.T) {
	s, _ := surface.New(100, 100)
	m := newTriangle(t)
	m.SetVisible(false)
	r := NewRenderer(100, 100)
	if err := r.Render(s, m); err != nil {
		t.Fatal(err)
	}
	if r.Stats().Meshes != 0 {
		t.Errorf("Meshes = %d, want 0 for hidden root", r.Stats().Meshes)
	}
}

func TestBlendModeString(t *testing.T) {
	tests := []struct {
		mode BlendMode
		want string
	}{
		{BlendNormal, "normal"},
		{BlendAdd, "add"},
		{BlendMultiply, "multiply"},
		{BlendScreen, "screen"},
		{BlendMode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("BlendMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
