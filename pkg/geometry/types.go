// Package geometry classifies B-Rep curves and surfaces into tagged
// analytic variants and extracts their parameters. Classification is
// total: anything the enumerated analytic forms don't cover maps to the
// Other variant with zeroed parameters.
//
// The ordinals of CurveType and SurfaceType are an API contract: they
// select one-hot feature columns, and downstream consumers depend on
// their order.
package geometry

// CurveType is the converter's curve taxonomy.
type CurveType int

const (
	CurveLine CurveType = iota
	CurveCircle
	CurveEllipse
	CurveHyperbola
	CurveParabola
	CurveBezier
	CurveBSpline
	CurveOffset
	CurveOther
)

// NumCurveTypes is the one-hot width for curve types.
const NumCurveTypes = 9

func (t CurveType) String() string {
	switch t {
	case CurveLine:
		return "line"
	case CurveCircle:
		return "circle"
	case CurveEllipse:
		return "ellipse"
	case CurveHyperbola:
		return "hyperbola"
	case CurveParabola:
		return "parabola"
	case CurveBezier:
		return "bezier"
	case CurveBSpline:
		return "bspline"
	case CurveOffset:
		return "offset"
	default:
		return "other"
	}
}

// SurfaceType is the converter's surface taxonomy.
type SurfaceType int

const (
	SurfacePlane SurfaceType = iota
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

// NumSurfaceTypes is the one-hot width for surface types.
const NumSurfaceTypes = 11

func (t SurfaceType) String() string {
	switch t {
	case SurfacePlane:
		return "plane"
	case SurfaceCylinder:
		return "cylinder"
	case SurfaceCone:
		return "cone"
	case SurfaceSphere:
		return "sphere"
	case SurfaceTorus:
		return "torus"
	case SurfaceBezier:
		return "bezier"
	case SurfaceBSpline:
		return "bspline"
	case SurfaceRevolution:
		return "revolution"
	case SurfaceExtrusion:
		return "extrusion"
	case SurfaceOffset:
		return "offset"
	default:
		return "other"
	}
}
