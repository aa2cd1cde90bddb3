// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene2d

// Attribute is a named per-vertex stream of Size float32 components.
type Attribute struct {
	Name string
	Data []float32
	Size int
}

// Geometry is a set of vertex attributes, optionally indexed. Without
// indices every three consecutive vertices form a triangle.
type Geometry struct {
	attrs   []Attribute
	Indices []uint16
}

// NewGeometry creates an empty geometry.
func NewGeometry() *Geometry { return &Geometry{} }

// AddAttribute adds or replaces a vertex attribute and returns g so calls
// can be chained.
func (g *Geometry) AddAttribute(name string, data []float32, size int) *Geometry {
	a := Attribute{Name: name, Data: data, Size: size}
	for i := range g.attrs {
		if g.attrs[i].Name == name {
			g.attrs[i] = a
			return g
		}
	}
	g.attrs = append(g.attrs, a)
	return g
}

// AddIndex sets the triangle index list and returns g.
func (g *Geometry) AddIndex(indices []uint16) *Geometry {
	g.Indices = indices
	return g
}

// Attribute returns the named attribute.
func (g *Geometry) Attribute(name string) (Attribute, bool) {
	for _, a := range g.attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// VertexCount returns the number of complete vertices across all
// attributes.
func (g *Geometry) VertexCount() int {
	n := -1
	for _, a := range g.attrs {
		if a.Size <= 0 {
			return 0
		}
		if c := len(a.Data) / a.Size; n < 0 || c < n {
			n = c
		}
	}
	return max(n, 0)
}

// Vertex is a view of one vertex of a Geometry, passed to vertex shaders.
type Vertex struct {
	g     *Geometry
	index int
}

// Index returns the vertex index.
func (v Vertex) Index() int { return v.index }

// Attr returns the components of the named attribute for this vertex, or
// nil if the geometry has no such attribute.
func (v Vertex) Attr(name string) []float32 {
	a, ok := v.g.Attribute(name)
	if !ok {
		return nil
	}
	start := v.index * a.Size
	return a.Data[start : start+a.Size]
}
