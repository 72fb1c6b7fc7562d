package brep

import "gonum.org/v1/gonum/spatial/r3"

// CurveClass identifies the analytic family a kernel reports for a
// curve, in the manner of an adaptor's GetType query.
type CurveClass int

const (
	CurveLine CurveClass = iota
	CurveCircle
	CurveEllipse
	CurveHyperbola
	CurveParabola
	CurveBezier
	CurveBSpline
	CurveOffset
	CurveOther
)

// Curve is a handle to an edge's underlying curve. Class tells the
// caller which refinement interface the handle additionally satisfies.
type Curve interface {
	// Class reports the analytic family of the curve.
	Class() CurveClass

	// FirstParameter returns the lower bound of the parameter domain.
	FirstParameter() float64

	// LastParameter returns the upper bound of the parameter domain.
	LastParameter() float64

	// Closed reports whether the curve's ends coincide.
	Closed() bool
}

// Line is a straight curve.
type Line interface {
	Curve
	Direction() r3.Vec
}

// Circle is a circular arc or full circle.
type Circle interface {
	Curve
	Center() r3.Vec
	Axis() r3.Vec
	Radius() float64
}

// Ellipse is an elliptic arc or full ellipse.
type Ellipse interface {
	Curve
	Center() r3.Vec
	Axis() r3.Vec
	MajorRadius() float64
	MinorRadius() float64
}

// Hyperbola is a hyperbolic arc.
type Hyperbola interface {
	Curve
	Center() r3.Vec
	Axis() r3.Vec
	MajorRadius() float64
}

// Parabola is a parabolic arc. Focal is the focal length.
type Parabola interface {
	Curve
	Center() r3.Vec
	Axis() r3.Vec
	Focal() float64
}

// BezierCurve is a Bezier curve defined by its control poles.
type BezierCurve interface {
	Curve
	Degree() int
	Rational() bool
	Poles() []Pole
}

// BSplineCurve is a B-spline curve. Knots and Multiplicities have equal
// length; the multiplicity-expanded knot vector has length
// len(Poles) + Degree + 1.
type BSplineCurve interface {
	Curve
	Degree() int
	Rational() bool
	Poles() []Pole
	Knots() []float64
	Multiplicities() []int
}

// OffsetCurve is a curve offset from a basis curve.
type OffsetCurve interface {
	Curve
	Offset() float64
}
