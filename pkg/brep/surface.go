package brep

import "gonum.org/v1/gonum/spatial/r3"

// SurfaceClass identifies the analytic family a kernel reports for a
// surface.
type SurfaceClass int

const (
	SurfacePlane SurfaceClass = iota
	SurfaceCylinder
	SurfaceCone
	SurfaceSphere
	SurfaceTorus
	SurfaceBezier
	SurfaceBSpline
	SurfaceRevolution
	SurfaceExtrusion
	SurfaceOffset
	SurfaceOther
)

// Surface is a handle to a face's underlying surface. Class tells the
// caller which refinement interface the handle additionally satisfies.
type Surface interface {
	// Class reports the analytic family of the surface.
	Class() SurfaceClass

	FirstUParameter() float64
	LastUParameter() float64
	FirstVParameter() float64
	LastVParameter() float64

	// UClosed reports whether the surface closes on itself in U.
	UClosed() bool

	// VClosed reports whether the surface closes on itself in V.
	VClosed() bool
}

// Plane is a planar surface.
type Plane interface {
	Surface
	Normal() r3.Vec
	Origin() r3.Vec
}

// Cylinder is a cylindrical surface.
type Cylinder interface {
	Surface
	Axis() r3.Vec
	Origin() r3.Vec
	Radius() float64
}

// Cone is a conical surface. RefRadius is the radius at the reference
// plane through Origin; SemiAngle is the half-angle at the apex.
type Cone interface {
	Surface
	Axis() r3.Vec
	Origin() r3.Vec
	RefRadius() float64
	SemiAngle() float64
}

// Sphere is a spherical surface.
type Sphere interface {
	Surface
	Axis() r3.Vec
	Origin() r3.Vec
	Radius() float64
}

// Torus is a toroidal surface.
type Torus interface {
	Surface
	Axis() r3.Vec
	Origin() r3.Vec
	MajorRadius() float64
	MinorRadius() float64
}

// BezierSurface is a Bezier patch. Poles is a U-major grid.
type BezierSurface interface {
	Surface
	UDegree() int
	VDegree() int
	Rational() bool
	Poles() [][]Pole
}

// BSplineSurface is a B-spline patch. Poles is a U-major grid; the
// knot/multiplicity relation of BSplineCurve holds per direction.
type BSplineSurface interface {
	Surface
	UDegree() int
	VDegree() int
	Rational() bool
	Poles() [][]Pole
	UKnots() []float64
	VKnots() []float64
	UMultiplicities() []int
	VMultiplicities() []int
}

// RevolutionSurface is a surface of revolution.
type RevolutionSurface interface {
	Surface
	Axis() r3.Vec
	Origin() r3.Vec
}

// ExtrusionSurface is a surface of linear extrusion.
type ExtrusionSurface interface {
	Surface
	Direction() r3.Vec
}

// OffsetSurface is a surface offset from a basis surface.
type OffsetSurface interface {
	Surface
	Offset() float64
}
