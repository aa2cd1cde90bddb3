// Package interleave draws two independent renderers, a 3D scene and a 2D
// scene, into one shared surface every frame.
//
// # Overview
//
// Both renderers keep a cache of the graphics-context state they believe is
// current and skip redundant state changes. When they share a surface, each
// one silently invalidates the other's assumptions. The Interleaver enforces
// the handoff: every frame it updates both layers, resets the shared state
// and every layer's cache, draws the 3D layer, resets again, and draws the
// 2D layer.
//
// # Quick Start
//
//	demo, err := interleave.NewDemo(800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h := host.NewManual(800, 600)
//	loop := interleave.NewLoop(demo.Interleaver, h)
//	loop.Start()
//	h.Step() // one frame
//	img := demo.Surface().Snapshot()
//
// # Packages
//
//   - surface: shared color/depth buffers and graphics-context state
//   - scene3d: camera, lights, meshes and a 3D software renderer
//   - scene2d: display list, shaded meshes, sprites and a 2D software renderer
//   - host: per-frame callback scheduling and resize notification
//
// # Logging
//
// The package is silent by default. See SetLogger.
package interleave
