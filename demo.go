package interleave

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/interleave/scene2d"
	"github.com/gogpu/interleave/scene3d"
	"github.com/gogpu/interleave/surface"
)

// Demo scene constants.
const (
	// TriangleDepth is the clip-space z of the 2D triangle. It is a fixed
	// value, not derived from the 3D projection, chosen to sit just behind
	// the cube's front faces.
	TriangleDepth = 0.992

	logoSize = 96
)

// World is the 3D layer: a rotating Phong-lit cube seen by a perspective
// camera.
type World struct {
	Renderer *scene3d.Renderer
	Scene    *scene3d.Scene
	Camera   *scene3d.PerspectiveCamera
	Cube     *scene3d.Mesh
}

// NewWorld builds the 3D layer for a width x height viewport.
func NewWorld(width, height int, clearColor gputypes.Color) *World {
	scene := scene3d.NewScene()

	cam := scene3d.NewPerspectiveCamera(60, aspect(width, height), 0.1, 16)
	cam.Position = mgl32.Vec3{0, 4, 10}
	cam.LookAt(mgl32.Vec3{})

	mat := scene3d.NewPhongMaterial(scene3d.Hex(0x4040c0))
	mat.Specular = scene3d.Hex(0x808080)
	mat.Shininess = 0.25
	cube := scene3d.NewMesh(scene3d.NewBoxGeometry(5, 5, 5), mat)

	light := scene3d.NewPointLight(scene3d.Hex(0xffffff), 1, 100)
	light.Position = mgl32.Vec3{7, 7, 5}

	scene.Add(scene3d.NewAmbientLight(scene3d.Hex(0x404040), 1), light, cube)

	r := scene3d.NewRenderer()
	r.ClearColor = clearColor
	r.SetSize(width, height)

	return &World{Renderer: r, Scene: scene, Camera: cam, Cube: cube}
}

// Update rotates the cube by one step on every axis.
func (w *World) Update(fs FrameState) {
	step := float32(fs.Step)
	w.Cube.Rotation = w.Cube.Rotation.Sub(mgl32.Vec3{step, step, step})
}

// Reset drops the renderer's cached state.
func (w *World) Reset() { w.Renderer.Reset() }

// Draw renders the scene.
func (w *World) Draw(s *surface.Surface) error {
	return w.Renderer.Render(s, w.Scene, w.Camera)
}

// Resize updates the renderer size and the camera aspect.
func (w *World) Resize(width, height int) {
	w.Renderer.SetSize(width, height)
	w.Camera.SetAspect(aspect(width, height))
	w.Camera.UpdateProjection()
}

func aspect(width, height int) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Overlay is the 2D layer: a depth-tested triangle and a screen-blended
// logo sprite, both centered and pulsing with the same scale.
type Overlay struct {
	Renderer *scene2d.Renderer
	Stage    *scene2d.Container
	Mesh     *scene2d.Mesh
	Sprite   *scene2d.Sprite

	scale float64
}

// NewOverlay builds the 2D layer for a width x height viewport. It honors
// WithLogoText and WithLogger.
func NewOverlay(width, height int, opts ...Option) (*Overlay, error) {
	o := applyOptions(opts)
	prog, err := scene2d.DepthMeshProgram()
	if err != nil {
		return nil, fmt.Errorf("interleave: triangle program: %w", err)
	}
	geom := scene2d.NewGeometry().
		AddAttribute(scene2d.AttrPosition, []float32{
			-400, -200,
			400, -200,
			0, 400,
		}, 2).
		AddAttribute(scene2d.AttrColor, []float32{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		}, 3)
	mesh := scene2d.NewMesh(geom, scene2d.NewShader(prog, scene2d.Uniforms{
		scene2d.UniformZDepth: float32(TriangleDepth),
	}))
	mesh.State.DepthTest = true

	logo, err := scene2d.NewLogo(o.logoText, logoSize)
	if err != nil {
		return nil, fmt.Errorf("interleave: logo: %w", err)
	}
	sprite := scene2d.NewSprite(logo)
	sprite.Anchor = scene2d.Pt(0.5, 0.5)
	sprite.BlendMode = scene2d.BlendScreen

	stage := scene2d.NewContainer()
	stage.AddChild(mesh, sprite)

	ov := &Overlay{
		Renderer: scene2d.NewRenderer(width, height, scene2d.WithLogger(o.logger)),
		Stage:    stage,
		Mesh:     mesh,
		Sprite:   sprite,
	}
	ov.center(width, height)
	ov.apply(pulse(0))
	return ov, nil
}

// pulse returns the overlay scale for an animation phase in radians.
func pulse(phase float64) float64 {
	return 0.1*math.Sin(phase) + 1.25
}

// Scale returns the current overlay scale.
func (ov *Overlay) Scale() float64 { return ov.scale }

// Update sets the shared sprite and mesh scale for the frame being drawn,
// frame fs.Tick+1. The phase advances by fs.Step per frame, the same step
// the cube rotates by.
func (ov *Overlay) Update(fs FrameState) {
	ov.apply(pulse(fs.Step * float64(fs.Tick+1)))
}

func (ov *Overlay) apply(scale float64) {
	ov.scale = scale
	ov.Sprite.SetScale(scale)
	ov.Mesh.SetScale(scale)
}

// Reset drops the renderer's cached state.
func (ov *Overlay) Reset() { ov.Renderer.Reset() }

// Draw renders the display list without clearing.
func (ov *Overlay) Draw(s *surface.Surface) error {
	return ov.Renderer.Render(s, ov.Stage)
}

// Resize updates the projection and re-centers both objects.
func (ov *Overlay) Resize(width, height int) {
	ov.Renderer.Resize(width, height)
	ov.center(width, height)
}

func (ov *Overlay) center(width, height int) {
	cx, cy := float64(width>>1), float64(height>>1)
	ov.Mesh.SetPosition(cx, cy)
	ov.Sprite.SetPosition(cx, cy)
}

// Demo is an Interleaver wired to the default World and Overlay layers.
type Demo struct {
	*Interleaver
	World   *World
	Overlay *Overlay
}

// NewDemo creates the surface, both layers and the interleaver for a
// width x height viewport.
func NewDemo(width, height int, opts ...Option) (*Demo, error) {
	o := applyOptions(opts)

	var sopts []surface.Option
	if o.device != nil {
		sopts = append(sopts, surface.WithDevice(o.device))
	}
	surf, err := surface.New(width, height, sopts...)
	if err != nil {
		return nil, fmt.Errorf("interleave: %w", err)
	}

	world := NewWorld(width, height, o.clearColor)
	overlay, err := NewOverlay(width, height, opts...)
	if err != nil {
		return nil, err
	}

	il, err := New(surf, world, overlay, WithLogger(o.logger), WithTimeStep(o.step))
	if err != nil {
		return nil, err
	}
	return &Demo{Interleaver: il, World: world, Overlay: overlay}, nil
}
