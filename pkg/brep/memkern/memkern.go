// Package memkern implements the brep kernel interfaces with an
// in-memory analytic B-Rep backend. It provides primitive solids with
// correctly shared topology (vertices and edges reused by pointer, seam
// edges repeated in their face loops), which is what the topology
// walker keys its identity maps on.
package memkern

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/kardel/brep2graph/pkg/brep"
)

// Compile-time interface checks.
var (
	_ brep.Shape  = (*Shape)(nil)
	_ brep.Vertex = (*Vertex)(nil)
	_ brep.Edge   = (*Edge)(nil)
	_ brep.Face   = (*Face)(nil)
)

// Vertex is an in-memory topological vertex.
type Vertex struct {
	pnt r3.Vec
}

// NewVertex creates a vertex at the given position.
func NewVertex(p r3.Vec) *Vertex { return &Vertex{pnt: p} }

// Point returns the vertex position.
func (v *Vertex) Point() r3.Vec { return v.pnt }

// Edge is an in-memory topological edge.
type Edge struct {
	curve    brep.Curve
	ends     []*Vertex
	reversed bool
}

// NewEdge creates an edge over curve bounded by the given vertices.
func NewEdge(curve brep.Curve, ends ...*Vertex) *Edge {
	return &Edge{curve: curve, ends: ends}
}

// Ends returns the bounding vertices in traversal order.
func (e *Edge) Ends() []brep.Vertex {
	out := make([]brep.Vertex, len(e.ends))
	for i, v := range e.ends {
		out[i] = v
	}
	return out
}

// Reversed reports whether the edge opposes its curve direction.
func (e *Edge) Reversed() bool { return e.reversed }

// Reverse flips the edge against its curve direction and returns the
// edge.
func (e *Edge) Reverse() *Edge {
	e.reversed = !e.reversed
	return e
}

// Curve returns the underlying curve.
func (e *Edge) Curve() brep.Curve { return e.curve }

// Face is an in-memory topological face.
type Face struct {
	surface  brep.Surface
	loop     []*Edge
	reversed bool
}

// NewFace creates a face over surface bounded by the given edge loop.
// Seam edges must be listed once per loop occurrence.
func NewFace(surface brep.Surface, loop ...*Edge) *Face {
	return &Face{surface: surface, loop: loop}
}

// Boundary returns the bounding edges in loop order.
func (f *Face) Boundary() []brep.Edge {
	out := make([]brep.Edge, len(f.loop))
	for i, e := range f.loop {
		out[i] = e
	}
	return out
}

// Reversed reports whether the face normal opposes the surface normal.
func (f *Face) Reversed() bool { return f.reversed }

// Reverse flips the face against its surface normal and returns the
// face.
func (f *Face) Reverse() *Face {
	f.reversed = !f.reversed
	return f
}

// Surface returns the underlying surface.
func (f *Face) Surface() brep.Surface { return f.surface }

// Shape is an in-memory shape: a set of faces plus any free edges not
// bounding a face (wires).
type Shape struct {
	faces     []*Face
	freeEdges []*Edge
}

// NewShape creates a shape from faces and free edges.
func NewShape(faces []*Face, freeEdges []*Edge) *Shape {
	return &Shape{faces: faces, freeEdges: freeEdges}
}

// Faces reports the shape's faces in construction order.
func (s *Shape) Faces() []brep.Face {
	out := make([]brep.Face, len(s.faces))
	for i, f := range s.faces {
		out[i] = f
	}
	return out
}

// Edges reports every edge occurrence: face loops in face order, then
// free edges. Shared edges repeat with the same handle.
func (s *Shape) Edges() []brep.Edge {
	var out []brep.Edge
	for _, f := range s.faces {
		for _, e := range f.loop {
			out = append(out, e)
		}
	}
	for _, e := range s.freeEdges {
		out = append(out, e)
	}
	return out
}

// Vertices reports every vertex occurrence along the shape's edges.
func (s *Shape) Vertices() []brep.Vertex {
	var out []brep.Vertex
	for _, e := range s.Edges() {
		out = append(out, e.(*Edge).Ends()...)
	}
	return out
}

// Compound groups multiple shapes into one. Handles are carried through
// unchanged, so entities shared across children stay shared and
// entities merely congruent stay distinct.
type Compound struct {
	shapes []brep.Shape
}

// NewCompound creates a compound of the given shapes.
func NewCompound(shapes ...brep.Shape) *Compound {
	return &Compound{shapes: shapes}
}

// Vertices concatenates the children's vertex occurrences.
func (c *Compound) Vertices() []brep.Vertex {
	var out []brep.Vertex
	for _, s := range c.shapes {
		out = append(out, s.Vertices()...)
	}
	return out
}

// Edges concatenates the children's edge occurrences.
func (c *Compound) Edges() []brep.Edge {
	var out []brep.Edge
	for _, s := range c.shapes {
		out = append(out, s.Edges()...)
	}
	return out
}

// Faces concatenates the children's face occurrences.
func (c *Compound) Faces() []brep.Face {
	var out []brep.Face
	for _, s := range c.shapes {
		out = append(out, s.Faces()...)
	}
	return out
}
