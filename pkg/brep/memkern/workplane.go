package memkern

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/kardel/brep2graph/pkg/brep"
)

// Workplane is a small fluent builder over the memkern primitives. It
// is the "CAD builder" input form accepted by the converter: it
// implements brep.Shaper.
type Workplane struct {
	at     r3.Vec
	shapes []brep.Shape
}

var _ brep.Shaper = (*Workplane)(nil)

// NewWorkplane creates an empty workplane with its origin at zero.
func NewWorkplane() *Workplane { return &Workplane{} }

// MoveTo places the workplane origin for subsequent primitives.
func (w *Workplane) MoveTo(x, y, z float64) *Workplane {
	w.at = r3.Vec{X: x, Y: y, Z: z}
	return w
}

// Box adds a box with its minimum corner at the workplane origin.
func (w *Workplane) Box(dx, dy, dz float64) *Workplane {
	w.shapes = append(w.shapes, Box(w.at, dx, dy, dz))
	return w
}

// Cylinder adds a cylinder with its base centered at the workplane
// origin.
func (w *Workplane) Cylinder(radius, height float64) *Workplane {
	w.shapes = append(w.shapes, Cylinder(w.at, radius, height))
	return w
}

// Sphere adds a sphere centered at the workplane origin.
func (w *Workplane) Sphere(radius float64) *Workplane {
	w.shapes = append(w.shapes, Sphere(w.at, radius))
	return w
}

// Torus adds a torus centered at the workplane origin.
func (w *Workplane) Torus(major, minor float64) *Workplane {
	w.shapes = append(w.shapes, Torus(w.at, major, minor))
	return w
}

// Cone adds a cone with its base centered at the workplane origin.
func (w *Workplane) Cone(radius, height float64) *Workplane {
	w.shapes = append(w.shapes, Cone(w.at, radius, height))
	return w
}

// Shape returns the built shape: nil for an empty workplane, the single
// shape when one primitive was added, otherwise a compound.
func (w *Workplane) Shape() brep.Shape {
	switch len(w.shapes) {
	case 0:
		return nil
	case 1:
		return w.shapes[0]
	default:
		return NewCompound(w.shapes...)
	}
}
