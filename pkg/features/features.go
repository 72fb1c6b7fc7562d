// Package features encodes classified B-Rep entities into the fixed
// per-node-type feature layouts. Column positions are an API contract
// shared with downstream consumers; the offset constants below are the
// single source of truth for them.
package features

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/kardel/brep2graph/pkg/brep"
	"github.com/kardel/brep2graph/pkg/geometry"
	"github.com/kardel/brep2graph/pkg/hetero"
)

// Feature widths per node type.
const (
	VertexDim       = 3
	EdgeDim         = geometry.NumCurveTypes + 1 + 1 + 1 + 2 + 10
	FaceDim         = geometry.NumSurfaceTypes + 1 + 2 + 2 + 4 + 14
	ControlPointDim = 4
)

// Edge feature column offsets. The one-hot block occupies
// [0, NumCurveTypes).
const (
	edgeOrientation = geometry.NumCurveTypes + iota
	edgeDegree
	edgeClosed
	edgeTMin
	edgeTMax
	edgeDirection // 3 columns
	edgeCenter = edgeDirection + 3
	edgeAxis   = edgeCenter + 3
	edgeRadius = edgeAxis + 3
)

// Face feature column offsets. The one-hot block occupies
// [0, NumSurfaceTypes).
const (
	faceOrientation = geometry.NumSurfaceTypes + iota
	faceUDegree
	faceVDegree
	faceUClosed
	faceVClosed
	faceUMin
	faceUMax
	faceVMin
	faceVMax
	facePlaneNormal // 3 columns
	facePlaneOrigin = facePlaneNormal + 3
	faceAxisDir     = facePlaneOrigin + 3
	faceAxisOrigin  = faceAxisDir + 3
	faceRadius      = faceAxisOrigin + 3
	faceRadius2     = faceRadius + 1
)

// EncodeVertices packs vertex positions into a points-by-3 matrix.
func EncodeVertices(points []r3.Vec) *hetero.Matrix {
	m := hetero.NewMatrix(len(points), VertexDim)
	for i, p := range points {
		setVec(m, i, 0, p)
	}
	return m
}

// EncodeEdges packs classified curves into an edges-by-EdgeDim matrix.
func EncodeEdges(curves []geometry.CurveGeometry) *hetero.Matrix {
	m := hetero.NewMatrix(len(curves), EdgeDim)
	for i, c := range curves {
		m.Set(i, int(c.Type), 1)
		m.Set(i, edgeOrientation, float32(c.Orientation))
		m.Set(i, edgeDegree, float32(c.Degree))
		m.Set(i, edgeClosed, b2f(c.Closed))
		m.Set(i, edgeTMin, float32(c.TMin))
		m.Set(i, edgeTMax, float32(c.TMax))
		setVec(m, i, edgeDirection, c.Direction)
		setVec(m, i, edgeCenter, c.Center)
		setVec(m, i, edgeAxis, c.Axis)
		m.Set(i, edgeRadius, float32(c.Radius))
	}
	return m
}

// EncodeFaces packs classified surfaces into a faces-by-FaceDim matrix.
func EncodeFaces(surfaces []geometry.SurfaceGeometry) *hetero.Matrix {
	m := hetero.NewMatrix(len(surfaces), FaceDim)
	for i, s := range surfaces {
		m.Set(i, int(s.Type), 1)
		m.Set(i, faceOrientation, float32(s.Orientation))
		m.Set(i, faceUDegree, float32(s.UDegree))
		m.Set(i, faceVDegree, float32(s.VDegree))
		m.Set(i, faceUClosed, b2f(s.UClosed))
		m.Set(i, faceVClosed, b2f(s.VClosed))
		m.Set(i, faceUMin, float32(s.UMin))
		m.Set(i, faceUMax, float32(s.UMax))
		m.Set(i, faceVMin, float32(s.VMin))
		m.Set(i, faceVMax, float32(s.VMax))
		setVec(m, i, facePlaneNormal, s.PlaneNormal)
		setVec(m, i, facePlaneOrigin, s.PlaneOrigin)
		setVec(m, i, faceAxisDir, s.AxisDirection)
		setVec(m, i, faceAxisOrigin, s.AxisOrigin)
		m.Set(i, faceRadius, float32(s.Radius))
		m.Set(i, faceRadius2, float32(s.Radius2))
	}
	return m
}

// EncodeControlPoints packs poles into a poles-by-4 matrix of
// (x, y, z, weight) rows.
func EncodeControlPoints(poles []brep.Pole) *hetero.Matrix {
	m := hetero.NewMatrix(len(poles), ControlPointDim)
	for i, p := range poles {
		setVec(m, i, 0, p.P)
		m.Set(i, 3, float32(p.W))
	}
	return m
}

func setVec(m *hetero.Matrix, row, col int, v r3.Vec) {
	m.Set(row, col, float32(v.X))
	m.Set(row, col+1, float32(v.Y))
	m.Set(row, col+2, float32(v.Z))
}

func b2f(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
