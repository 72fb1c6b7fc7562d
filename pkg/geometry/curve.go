package geometry

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/kardel/brep2graph/pkg/brep"
	"github.com/kardel/brep2graph/pkg/logging"
)

// curveTypeFromClass maps the kernel's curve taxonomy onto the
// converter's. Unknown classes fall through to CurveOther.
var curveTypeFromClass = map[brep.CurveClass]CurveType{
	brep.CurveLine:      CurveLine,
	brep.CurveCircle:    CurveCircle,
	brep.CurveEllipse:   CurveEllipse,
	brep.CurveHyperbola: CurveHyperbola,
	brep.CurveParabola:  CurveParabola,
	brep.CurveBezier:    CurveBezier,
	brep.CurveBSpline:   CurveBSpline,
	brep.CurveOffset:    CurveOffset,
	brep.CurveOther:     CurveOther,
}

// CurveGeometry is the classified form of one edge's underlying curve:
// a type tag plus a flat union of the analytic parameter slots. Slots
// that don't apply to the tagged variant stay zero.
type CurveGeometry struct {
	Type        CurveType
	Orientation int // +1 forward, -1 reversed
	Degree      int
	Closed      bool
	TMin, TMax  float64

	Direction   r3.Vec // line
	Center      r3.Vec // conics
	Axis        r3.Vec // conics
	Radius      float64
	MinorRadius float64 // ellipse

	// B-spline/Bezier only.
	Poles          []brep.Pole
	Knots          []float64
	Multiplicities []int
}

// ClassifyEdge classifies edge's underlying curve and extracts its
// parameters. The curve handle must be non-nil (the walker guarantees
// this for walked edges).
func ClassifyEdge(edge brep.Edge) CurveGeometry {
	c := edge.Curve()

	g := CurveGeometry{
		Type:        CurveOther,
		Orientation: 1,
		Degree:      1,
		Closed:      c.Closed(),
		TMin:        c.FirstParameter(),
		TMax:        c.LastParameter(),
	}
	if edge.Reversed() {
		g.Orientation = -1
	}
	if t, ok := curveTypeFromClass[c.Class()]; ok {
		g.Type = t
	} else {
		logging.Debug("unrecognized curve class, using other", "class", int(c.Class()))
	}

	switch g.Type {
	case CurveLine:
		if l, ok := c.(brep.Line); ok {
			g.Direction = l.Direction()
		}
	case CurveCircle:
		if ci, ok := c.(brep.Circle); ok {
			g.Degree = 2
			g.Center = ci.Center()
			g.Axis = ci.Axis()
			g.Radius = ci.Radius()
		}
	case CurveEllipse:
		if el, ok := c.(brep.Ellipse); ok {
			g.Degree = 2
			g.Center = el.Center()
			g.Axis = el.Axis()
			g.Radius = el.MajorRadius()
			g.MinorRadius = el.MinorRadius()
		}
	case CurveHyperbola:
		if h, ok := c.(brep.Hyperbola); ok {
			g.Degree = 2
			g.Center = h.Center()
			g.Axis = h.Axis()
			g.Radius = h.MajorRadius()
		}
	case CurveParabola:
		if p, ok := c.(brep.Parabola); ok {
			g.Degree = 2
			g.Center = p.Center()
			g.Axis = p.Axis()
			g.Radius = p.Focal()
		}
	case CurveBSpline:
		if b, ok := c.(brep.BSplineCurve); ok {
			g.Degree = b.Degree()
			g.Poles = poles(b.Poles(), b.Rational())
			g.Knots = b.Knots()
			g.Multiplicities = b.Multiplicities()
		}
	case CurveBezier:
		if b, ok := c.(brep.BezierCurve); ok {
			g.Degree = b.Degree()
			g.Poles = poles(b.Poles(), b.Rational())
		}
	}

	return g
}

// poles normalizes a pole slice: non-rational geometry carries unit
// weights regardless of what the kernel stored.
func poles(ps []brep.Pole, rational bool) []brep.Pole {
	out := make([]brep.Pole, len(ps))
	copy(out, ps)
	if !rational {
		for i := range out {
			out[i].W = 1
		}
	}
	return out
}
