package geometry

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/kardel/brep2graph/pkg/brep"
	"github.com/kardel/brep2graph/pkg/logging"
)

var surfaceTypeFromClass = map[brep.SurfaceClass]SurfaceType{
	brep.SurfacePlane:      SurfacePlane,
	brep.SurfaceCylinder:   SurfaceCylinder,
	brep.SurfaceCone:       SurfaceCone,
	brep.SurfaceSphere:     SurfaceSphere,
	brep.SurfaceTorus:      SurfaceTorus,
	brep.SurfaceBezier:     SurfaceBezier,
	brep.SurfaceBSpline:    SurfaceBSpline,
	brep.SurfaceRevolution: SurfaceRevolution,
	brep.SurfaceExtrusion:  SurfaceExtrusion,
	brep.SurfaceOffset:     SurfaceOffset,
	brep.SurfaceOther:      SurfaceOther,
}

// SurfaceGeometry is the classified form of one face's underlying
// surface: a type tag plus a flat union of the analytic parameter
// slots. Slots that don't apply to the tagged variant stay zero.
type SurfaceGeometry struct {
	Type             SurfaceType
	Orientation      int // +1 forward, -1 reversed
	UDegree, VDegree int
	UClosed, VClosed bool
	UMin, UMax       float64
	VMin, VMax       float64

	PlaneNormal r3.Vec
	PlaneOrigin r3.Vec

	AxisDirection r3.Vec
	AxisOrigin    r3.Vec
	Radius        float64
	// Radius2 is the torus minor radius; for cones it carries the
	// apex semi-angle so the cone's full analytic form survives.
	Radius2 float64

	// B-spline/Bezier only. Poles is a U-major grid.
	Poles          [][]brep.Pole
	UKnots, VKnots []float64
	UMults, VMults []int
}

// ClassifyFace classifies face's underlying surface and extracts its
// parameters. The surface handle must be non-nil (the walker
// guarantees this for walked faces).
func ClassifyFace(face brep.Face) SurfaceGeometry {
	s := face.Surface()

	g := SurfaceGeometry{
		Type:        SurfaceOther,
		Orientation: 1,
		UDegree:     1,
		VDegree:     1,
		UClosed:     s.UClosed(),
		VClosed:     s.VClosed(),
		UMin:        s.FirstUParameter(),
		UMax:        s.LastUParameter(),
		VMin:        s.FirstVParameter(),
		VMax:        s.LastVParameter(),
	}
	if face.Reversed() {
		g.Orientation = -1
	}
	if t, ok := surfaceTypeFromClass[s.Class()]; ok {
		g.Type = t
	} else {
		logging.Debug("unrecognized surface class, using other", "class", int(s.Class()))
	}

	switch g.Type {
	case SurfacePlane:
		if p, ok := s.(brep.Plane); ok {
			g.PlaneNormal = p.Normal()
			g.PlaneOrigin = p.Origin()
		}
	case SurfaceCylinder:
		if c, ok := s.(brep.Cylinder); ok {
			g.UDegree, g.VDegree = 2, 1
			g.AxisDirection = c.Axis()
			g.AxisOrigin = c.Origin()
			g.Radius = c.Radius()
		}
	case SurfaceCone:
		if c, ok := s.(brep.Cone); ok {
			g.UDegree, g.VDegree = 2, 1
			g.AxisDirection = c.Axis()
			g.AxisOrigin = c.Origin()
			g.Radius = c.RefRadius()
			g.Radius2 = c.SemiAngle()
		}
	case SurfaceSphere:
		if sp, ok := s.(brep.Sphere); ok {
			g.UDegree, g.VDegree = 2, 2
			g.AxisDirection = sp.Axis()
			g.AxisOrigin = sp.Origin()
			g.Radius = sp.Radius()
		}
	case SurfaceTorus:
		if to, ok := s.(brep.Torus); ok {
			g.UDegree, g.VDegree = 2, 2
			g.AxisDirection = to.Axis()
			g.AxisOrigin = to.Origin()
			g.Radius = to.MajorRadius()
			g.Radius2 = to.MinorRadius()
		}
	case SurfaceBSpline:
		if b, ok := s.(brep.BSplineSurface); ok {
			g.UDegree = b.UDegree()
			g.VDegree = b.VDegree()
			g.Poles = poleGrid(b.Poles(), b.Rational())
			g.UKnots = b.UKnots()
			g.VKnots = b.VKnots()
			g.UMults = b.UMultiplicities()
			g.VMults = b.VMultiplicities()
		}
	case SurfaceBezier:
		if b, ok := s.(brep.BezierSurface); ok {
			g.UDegree = b.UDegree()
			g.VDegree = b.VDegree()
			g.Poles = poleGrid(b.Poles(), b.Rational())
		}
	}

	return g
}

func poleGrid(grid [][]brep.Pole, rational bool) [][]brep.Pole {
	out := make([][]brep.Pole, len(grid))
	for i, row := range grid {
		out[i] = poles(row, rational)
	}
	return out
}
