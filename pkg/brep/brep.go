// Package brep defines the abstract boundary-representation kernel
// interface. Implementations (memkern, or bindings to an external CAD
// kernel) supply topology handles and geometry queries behind these
// interfaces, so the converter never depends on a concrete kernel.
//
// Handle identity is interface identity: a kernel must return the same
// handle value (the same underlying pointer) every time it reports the
// same topological entity. The walker keys its index maps on that.
package brep

import "gonum.org/v1/gonum/spatial/r3"

// Shape is an opaque handle to a kernel shape: a solid, a shell, a free
// wire, or a compound of shapes.
type Shape interface {
	// Vertices reports every vertex occurrence in traversal order.
	// Shared vertices repeat with the same handle value.
	Vertices() []Vertex

	// Edges reports every edge occurrence in traversal order,
	// including repeats for edges shared between faces.
	Edges() []Edge

	// Faces reports every face occurrence in traversal order.
	Faces() []Face
}

// Shaper is implemented by wrapper types that carry a kernel shape,
// such as a workplane builder or a solid wrapper.
type Shaper interface {
	Shape() Shape
}

// Solid wraps a shape in a named value. It is the plain wrapper form
// accepted by the converter's input normalization.
type Solid struct {
	S Shape
}

// Shape returns the wrapped kernel shape.
func (s Solid) Shape() Shape { return s.S }

// Vertex is a handle to a topological vertex.
type Vertex interface {
	// Point returns the vertex position.
	Point() r3.Vec
}

// Edge is a handle to a topological edge carrying one underlying curve.
type Edge interface {
	// Ends returns the bounding vertices in traversal order along the
	// edge. Closed curves reference the same vertex handle twice.
	Ends() []Vertex

	// Reversed reports whether the edge runs against its underlying
	// curve's parameter direction.
	Reversed() bool

	// Curve returns the underlying curve handle.
	Curve() Curve
}

// Face is a handle to a topological face carrying one underlying
// surface.
type Face interface {
	// Boundary returns the bounding edges in loop order. A seam edge
	// occurs twice in its face's loop.
	Boundary() []Edge

	// Reversed reports whether the face normal opposes the underlying
	// surface's natural normal.
	Reversed() bool

	// Surface returns the underlying surface handle.
	Surface() Surface
}

// Pole is one NURBS control point with its rational weight. The weight
// is 1 for non-rational curves and surfaces.
type Pole struct {
	P r3.Vec
	W float64
}
