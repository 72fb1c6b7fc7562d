package memkern

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/kardel/brep2graph/pkg/brep"
)

// Compile-time interface checks for the geometry implementations.
var (
	_ brep.Line           = (*line)(nil)
	_ brep.Circle         = (*circle)(nil)
	_ brep.BSplineCurve   = (*bsplineCurve)(nil)
	_ brep.Plane          = (*plane)(nil)
	_ brep.Cylinder       = (*cylinder)(nil)
	_ brep.Cone           = (*cone)(nil)
	_ brep.Sphere         = (*sphere)(nil)
	_ brep.Torus          = (*torus)(nil)
	_ brep.BSplineSurface = (*bsplineSurface)(nil)
)

// curveBase carries the parameter domain shared by all curve kinds.
type curveBase struct {
	t0, t1 float64
	closed bool
}

func (c curveBase) FirstParameter() float64 { return c.t0 }
func (c curveBase) LastParameter() float64  { return c.t1 }
func (c curveBase) Closed() bool            { return c.closed }

type line struct {
	curveBase
	origin, dir r3.Vec
}

func (l *line) Class() brep.CurveClass { return brep.CurveLine }
func (l *line) Direction() r3.Vec      { return l.dir }

type circle struct {
	curveBase
	center, axis r3.Vec
	radius       float64
}

func (c *circle) Class() brep.CurveClass { return brep.CurveCircle }
func (c *circle) Center() r3.Vec         { return c.center }
func (c *circle) Axis() r3.Vec           { return c.axis }
func (c *circle) Radius() float64        { return c.radius }

type bsplineCurve struct {
	curveBase
	degree   int
	rational bool
	poles    []brep.Pole
	knots    []float64
	mults    []int
}

func (b *bsplineCurve) Class() brep.CurveClass { return brep.CurveBSpline }
func (b *bsplineCurve) Degree() int            { return b.degree }
func (b *bsplineCurve) Rational() bool         { return b.rational }
func (b *bsplineCurve) Poles() []brep.Pole     { return b.poles }
func (b *bsplineCurve) Knots() []float64       { return b.knots }
func (b *bsplineCurve) Multiplicities() []int  { return b.mults }

// surfaceBase carries the UV domain shared by all surface kinds.
type surfaceBase struct {
	u0, u1, v0, v1   float64
	uClosed, vClosed bool
}

func (s surfaceBase) FirstUParameter() float64 { return s.u0 }
func (s surfaceBase) LastUParameter() float64  { return s.u1 }
func (s surfaceBase) FirstVParameter() float64 { return s.v0 }
func (s surfaceBase) LastVParameter() float64  { return s.v1 }
func (s surfaceBase) UClosed() bool            { return s.uClosed }
func (s surfaceBase) VClosed() bool            { return s.vClosed }

type plane struct {
	surfaceBase
	origin, normal r3.Vec
}

func (p *plane) Class() brep.SurfaceClass { return brep.SurfacePlane }
func (p *plane) Normal() r3.Vec           { return p.normal }
func (p *plane) Origin() r3.Vec           { return p.origin }

type cylinder struct {
	surfaceBase
	origin, axis r3.Vec
	radius       float64
}

func (c *cylinder) Class() brep.SurfaceClass { return brep.SurfaceCylinder }
func (c *cylinder) Axis() r3.Vec             { return c.axis }
func (c *cylinder) Origin() r3.Vec           { return c.origin }
func (c *cylinder) Radius() float64          { return c.radius }

type cone struct {
	surfaceBase
	origin, axis r3.Vec
	refRadius    float64
	semiAngle    float64
}

func (c *cone) Class() brep.SurfaceClass { return brep.SurfaceCone }
func (c *cone) Axis() r3.Vec             { return c.axis }
func (c *cone) Origin() r3.Vec           { return c.origin }
func (c *cone) RefRadius() float64       { return c.refRadius }
func (c *cone) SemiAngle() float64       { return c.semiAngle }

type sphere struct {
	surfaceBase
	origin, axis r3.Vec
	radius       float64
}

func (s *sphere) Class() brep.SurfaceClass { return brep.SurfaceSphere }
func (s *sphere) Axis() r3.Vec             { return s.axis }
func (s *sphere) Origin() r3.Vec           { return s.origin }
func (s *sphere) Radius() float64          { return s.radius }

type torus struct {
	surfaceBase
	origin, axis r3.Vec
	major, minor float64
}

func (t *torus) Class() brep.SurfaceClass { return brep.SurfaceTorus }
func (t *torus) Axis() r3.Vec             { return t.axis }
func (t *torus) Origin() r3.Vec           { return t.origin }
func (t *torus) MajorRadius() float64     { return t.major }
func (t *torus) MinorRadius() float64     { return t.minor }

type bsplineSurface struct {
	surfaceBase
	uDegree, vDegree int
	rational         bool
	poles            [][]brep.Pole
	uKnots, vKnots   []float64
	uMults, vMults   []int
}

func (b *bsplineSurface) Class() brep.SurfaceClass { return brep.SurfaceBSpline }
func (b *bsplineSurface) UDegree() int             { return b.uDegree }
func (b *bsplineSurface) VDegree() int             { return b.vDegree }
func (b *bsplineSurface) Rational() bool           { return b.rational }
func (b *bsplineSurface) Poles() [][]brep.Pole     { return b.poles }
func (b *bsplineSurface) UKnots() []float64        { return b.uKnots }
func (b *bsplineSurface) VKnots() []float64        { return b.vKnots }
func (b *bsplineSurface) UMultiplicities() []int   { return b.uMults }
func (b *bsplineSurface) VMultiplicities() []int   { return b.vMults }
