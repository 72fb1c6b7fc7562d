package memkern

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/kardel/brep2graph/pkg/brep"
)

// lineBetween builds a line edge from a to b, parameterized by arc
// length.
func lineBetween(a, b *Vertex) *Edge {
	d := r3.Sub(b.pnt, a.pnt)
	return NewEdge(&line{
		curveBase: curveBase{t0: 0, t1: r3.Norm(d)},
		origin:    a.pnt,
		dir:       r3.Unit(d),
	}, a, b)
}

// Box builds an axis-aligned box with its minimum corner at o. The box
// has 8 vertices, 12 line edges and 6 planar faces, every handle shared
// between the faces that use it.
func Box(o r3.Vec, dx, dy, dz float64) *Shape {
	// Corner index bits: 1=x, 2=y, 4=z.
	var c [8]*Vertex
	for i := 0; i < 8; i++ {
		c[i] = NewVertex(r3.Vec{
			X: o.X + float64(i&1)*dx,
			Y: o.Y + float64(i>>1&1)*dy,
			Z: o.Z + float64(i>>2&1)*dz,
		})
	}

	e01 := lineBetween(c[0], c[1])
	e23 := lineBetween(c[2], c[3])
	e45 := lineBetween(c[4], c[5])
	e67 := lineBetween(c[6], c[7])
	e02 := lineBetween(c[0], c[2])
	e13 := lineBetween(c[1], c[3])
	e46 := lineBetween(c[4], c[6])
	e57 := lineBetween(c[5], c[7])
	e04 := lineBetween(c[0], c[4])
	e15 := lineBetween(c[1], c[5])
	e26 := lineBetween(c[2], c[6])
	e37 := lineBetween(c[3], c[7])

	face := func(origin, normal r3.Vec, du, dv float64, loop ...*Edge) *Face {
		return NewFace(&plane{
			surfaceBase: surfaceBase{u0: 0, u1: du, v0: 0, v1: dv},
			origin:      origin,
			normal:      normal,
		}, loop...)
	}

	faces := []*Face{
		face(c[0].pnt, r3.Vec{Z: -1}, dx, dy, e01, e13, e23, e02), // bottom
		face(c[4].pnt, r3.Vec{Z: 1}, dx, dy, e45, e57, e67, e46),  // top
		face(c[0].pnt, r3.Vec{Y: -1}, dx, dz, e01, e15, e45, e04), // front
		face(c[2].pnt, r3.Vec{Y: 1}, dx, dz, e23, e37, e67, e26),  // back
		face(c[0].pnt, r3.Vec{X: -1}, dy, dz, e02, e26, e46, e04), // left
		face(c[1].pnt, r3.Vec{X: 1}, dy, dz, e13, e37, e57, e15),  // right
	}
	return NewShape(faces, nil)
}

// Cylinder builds a closed cylinder of the given radius and height,
// base centered at o, axis +Z. Topology matches the usual B-Rep form:
// two circular cap faces, one cylindrical side face whose loop contains
// the seam edge twice, two vertices on the seam.
func Cylinder(o r3.Vec, radius, height float64) *Shape {
	axis := r3.Vec{Z: 1}
	v0 := NewVertex(r3.Add(o, r3.Vec{X: radius}))
	v1 := NewVertex(r3.Add(o, r3.Vec{X: radius, Z: height}))

	fullCircle := func(center r3.Vec) *Edge {
		end := v0
		if center.Z != o.Z {
			end = v1
		}
		return NewEdge(&circle{
			curveBase: curveBase{t0: 0, t1: 2 * math.Pi, closed: true},
			center:    center,
			axis:      axis,
			radius:    radius,
		}, end, end)
	}

	bottom := fullCircle(o)
	top := fullCircle(r3.Add(o, r3.Vec{Z: height}))
	seam := lineBetween(v0, v1)

	side := NewFace(&cylinder{
		surfaceBase: surfaceBase{u0: 0, u1: 2 * math.Pi, v0: 0, v1: height, uClosed: true},
		origin:      o,
		axis:        axis,
		radius:      radius,
	}, bottom, seam, top, seam)

	capFace := func(center, normal r3.Vec, rim *Edge) *Face {
		return NewFace(&plane{
			surfaceBase: surfaceBase{u0: -radius, u1: radius, v0: -radius, v1: radius},
			origin:      center,
			normal:      normal,
		}, rim)
	}

	return NewShape([]*Face{
		capFace(o, r3.Vec{Z: -1}, bottom),
		side,
		capFace(r3.Add(o, r3.Vec{Z: height}), r3.Vec{Z: 1}, top),
	}, nil)
}

// Sphere builds a full sphere of the given radius centered at o: one
// spherical face whose loop contains the seam meridian twice, with
// vertices at the two poles.
func Sphere(o r3.Vec, radius float64) *Shape {
	south := NewVertex(r3.Add(o, r3.Vec{Z: -radius}))
	north := NewVertex(r3.Add(o, r3.Vec{Z: radius}))

	// Seam meridian in the XZ plane, from pole to pole.
	seam := NewEdge(&circle{
		curveBase: curveBase{t0: -math.Pi / 2, t1: math.Pi / 2},
		center:    o,
		axis:      r3.Vec{Y: 1},
		radius:    radius,
	}, south, north)

	face := NewFace(&sphere{
		surfaceBase: surfaceBase{
			u0: 0, u1: 2 * math.Pi,
			v0: -math.Pi / 2, v1: math.Pi / 2,
			uClosed: true,
		},
		origin: o,
		axis:   r3.Vec{Z: 1},
		radius: radius,
	}, seam, seam)

	return NewShape([]*Face{face}, nil)
}

// Torus builds a full torus centered at o with the given major and
// minor radii, axis +Z: one toroidal face closed in both directions,
// two seam circles through a single vertex.
func Torus(o r3.Vec, major, minor float64) *Shape {
	v0 := NewVertex(r3.Add(o, r3.Vec{X: major + minor}))

	// Seam around the tube, in the XZ plane.
	uSeam := NewEdge(&circle{
		curveBase: curveBase{t0: 0, t1: 2 * math.Pi, closed: true},
		center:    r3.Add(o, r3.Vec{X: major}),
		axis:      r3.Vec{Y: 1},
		radius:    minor,
	}, v0, v0)
	// Seam around the axis, at the outer equator.
	vSeam := NewEdge(&circle{
		curveBase: curveBase{t0: 0, t1: 2 * math.Pi, closed: true},
		center:    o,
		axis:      r3.Vec{Z: 1},
		radius:    major + minor,
	}, v0, v0)

	face := NewFace(&torus{
		surfaceBase: surfaceBase{
			u0: 0, u1: 2 * math.Pi,
			v0: 0, v1: 2 * math.Pi,
			uClosed: true, vClosed: true,
		},
		origin: o,
		axis:   r3.Vec{Z: 1},
		major:  major,
		minor:  minor,
	}, uSeam, vSeam, uSeam, vSeam)

	return NewShape([]*Face{face}, nil)
}

// Cone builds a closed cone with base radius, height and apex above the
// base center o: one conical side face with a twice-used seam, one
// circular base cap.
func Cone(o r3.Vec, radius, height float64) *Shape {
	axis := r3.Vec{Z: 1}
	rim := NewVertex(r3.Add(o, r3.Vec{X: radius}))
	apex := NewVertex(r3.Add(o, r3.Vec{Z: height}))

	base := NewEdge(&circle{
		curveBase: curveBase{t0: 0, t1: 2 * math.Pi, closed: true},
		center:    o,
		axis:      axis,
		radius:    radius,
	}, rim, rim)
	seam := lineBetween(rim, apex)

	slant := math.Hypot(radius, height)
	side := NewFace(&cone{
		surfaceBase: surfaceBase{u0: 0, u1: 2 * math.Pi, v0: 0, v1: slant, uClosed: true},
		origin:      o,
		axis:        axis,
		refRadius:   radius,
		semiAngle:   math.Atan2(radius, height),
	}, base, seam, seam)

	capFace := NewFace(&plane{
		surfaceBase: surfaceBase{u0: -radius, u1: radius, v0: -radius, v1: radius},
		origin:      o,
		normal:      r3.Vec{Z: -1},
	}, base)

	return NewShape([]*Face{capFace, side}, nil)
}

// BSplinePatch builds a single bilinear B-spline face spanning dx by dy
// from o, with the far corner lifted by twist. The patch has a 2x2
// non-rational pole grid, degree 1 in both directions, and boundary
// line edges between the four corner vertices.
func BSplinePatch(o r3.Vec, dx, dy, twist float64) *Shape {
	p00 := o
	p01 := r3.Add(o, r3.Vec{Y: dy})
	p10 := r3.Add(o, r3.Vec{X: dx})
	p11 := r3.Add(o, r3.Vec{X: dx, Y: dy, Z: twist})

	v00 := NewVertex(p00)
	v01 := NewVertex(p01)
	v10 := NewVertex(p10)
	v11 := NewVertex(p11)

	surf := &bsplineSurface{
		surfaceBase: surfaceBase{u0: 0, u1: 1, v0: 0, v1: 1},
		uDegree:     1,
		vDegree:     1,
		poles: [][]brep.Pole{
			{{P: p00, W: 1}, {P: p01, W: 1}},
			{{P: p10, W: 1}, {P: p11, W: 1}},
		},
		uKnots: []float64{0, 1},
		vKnots: []float64{0, 1},
		uMults: []int{2, 2},
		vMults: []int{2, 2},
	}

	face := NewFace(surf,
		lineBetween(v00, v10),
		lineBetween(v10, v11),
		lineBetween(v11, v01),
		lineBetween(v01, v00),
	)
	return NewShape([]*Face{face}, nil)
}

// FreeformWire builds a face-less shape holding a single open quadratic
// B-spline edge with four control poles spread over scale from o.
func FreeformWire(o r3.Vec, scale float64) *Shape {
	poles := []brep.Pole{
		{P: o, W: 1},
		{P: r3.Add(o, r3.Vec{X: scale / 3, Z: scale / 2}), W: 1},
		{P: r3.Add(o, r3.Vec{X: 2 * scale / 3, Z: -scale / 2}), W: 1},
		{P: r3.Add(o, r3.Vec{X: scale}), W: 1},
	}

	start := NewVertex(poles[0].P)
	end := NewVertex(poles[3].P)
	edge := NewEdge(&bsplineCurve{
		curveBase: curveBase{t0: 0, t1: 1},
		degree:    2,
		poles:     poles,
		knots:     []float64{0, 0.5, 1},
		mults:     []int{3, 1, 3},
	}, start, end)

	return NewShape(nil, []*Edge{edge})
}
