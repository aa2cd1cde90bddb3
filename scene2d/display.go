// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene2d

import "github.com/gogpu/interleave/surface"

// Transform positions a display object relative to its parent.
type Transform struct {
	Position Point

	// Scale defaults to (1, 1).
	Scale Point

	// Pivot is the local point placed at Position, and the center of
	// rotation and scaling.
	Pivot Point

	// Rotation in radians.
	Rotation float64
}

// Matrix returns the local-to-parent transform.
func (t *Transform) Matrix() Matrix {
	return Translation(t.Position.X, t.Position.Y).
		Mul(Rotation(t.Rotation)).
		Mul(Scaling(t.Scale.X, t.Scale.Y)).
		Mul(Translation(-t.Pivot.X, -t.Pivot.Y))
}

// DisplayObject is an element of the display list.
type DisplayObject interface {
	// Transform returns the object's transform for modification.
	Transform() *Transform

	// Visible reports whether the object is drawn.
	Visible() bool

	render(r *Renderer, s *surface.Surface, world Matrix) error
}

// node carries the state common to every display object.
type node struct {
	transform Transform
	hidden    bool
}

func newNode() node {
	return node{transform: Transform{Scale: Pt(1, 1)}}
}

// Transform returns the object's transform.
func (n *node) Transform() *Transform { return &n.transform }

// Visible reports whether the object is drawn.
func (n *node) Visible() bool { return !n.hidden }

// SetVisible shows or hides the object.
func (n *node) SetVisible(v bool) { n.hidden = !v }

// SetPosition moves the object to (x, y) in parent space.
func (n *node) SetPosition(x, y float64) { n.transform.Position = Pt(x, y) }

// Position returns the object's position in parent space.
func (n *node) Position() Point { return n.transform.Position }

// SetScale sets a uniform scale.
func (n *node) SetScale(s float64) { n.transform.Scale = Pt(s, s) }

// Container groups display objects under a shared transform.
type Container struct {
	node
	children []DisplayObject
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{node: newNode()}
}

// AddChild appends children; later children draw on top.
func (c *Container) AddChild(children ...DisplayObject) {
	c.children = append(c.children, children...)
}

// RemoveChild removes child and reports whether it was present.
func (c *Container) RemoveChild(child DisplayObject) bool {
	for i, ch := range c.children {
		if ch == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return true
		}
	}
	return false
}

// Children returns the children in draw order.
func (c *Container) Children() []DisplayObject { return c.children }

func (c *Container) render(r *Renderer, s *surface.Surface, world Matrix) error {
	for _, ch := range c.children {
		if !ch.Visible() {
			continue
		}
		if err := ch.render(r, s, world.Mul(ch.Transform().Matrix())); err != nil {
			return err
		}
	}
	return nil
}
