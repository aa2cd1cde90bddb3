// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package host provides the environment an animation loop runs in: a
// per-frame callback scheduler, resize notification and the viewport size.
//
// Manual steps frames explicitly and suits tests. Headless drives frames
// from a ticker at a fixed rate until a frame limit or cancellation.
package host
