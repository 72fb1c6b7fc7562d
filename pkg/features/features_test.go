package features

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/kardel/brep2graph/pkg/brep"
	"github.com/kardel/brep2graph/pkg/geometry"
)

func TestDims(t *testing.T) {
	if VertexDim != 3 {
		t.Errorf("VertexDim = %d, expected 3", VertexDim)
	}
	if EdgeDim != 24 {
		t.Errorf("EdgeDim = %d, expected 24", EdgeDim)
	}
	if FaceDim != 34 {
		t.Errorf("FaceDim = %d, expected 34", FaceDim)
	}
	if ControlPointDim != 4 {
		t.Errorf("ControlPointDim = %d, expected 4", ControlPointDim)
	}
}

func TestEncodeVertices(t *testing.T) {
	m := EncodeVertices([]r3.Vec{{X: 1, Y: 2, Z: 3}, {X: -4}})
	if m.Rows != 2 || m.Cols != 3 {
		t.Fatalf("shape = %dx%d, expected 2x3", m.Rows, m.Cols)
	}
	if m.At(0, 0) != 1 || m.At(0, 1) != 2 || m.At(0, 2) != 3 {
		t.Errorf("row 0 = %v", m.Row(0))
	}
	if m.At(1, 0) != -4 || m.At(1, 1) != 0 {
		t.Errorf("row 1 = %v", m.Row(1))
	}
}

func TestEncodeLineEdge(t *testing.T) {
	m := EncodeEdges([]geometry.CurveGeometry{{
		Type:        geometry.CurveLine,
		Orientation: 1,
		Degree:      1,
		TMax:        5,
		Direction:   r3.Vec{Z: 1},
	}})
	row := m.Row(0)

	// One-hot block: exactly the line column set.
	for c := 0; c < geometry.NumCurveTypes; c++ {
		want := float32(0)
		if c == int(geometry.CurveLine) {
			want = 1
		}
		if row[c] != want {
			t.Errorf("one-hot column %d = %v, expected %v", c, row[c], want)
		}
	}
	if row[9] != 1 {
		t.Errorf("orientation column = %v, expected 1", row[9])
	}
	if row[10] != 1 {
		t.Errorf("degree column = %v, expected 1", row[10])
	}
	if row[11] != 0 {
		t.Errorf("closed column = %v, expected 0", row[11])
	}
	if row[12] != 0 || row[13] != 5 {
		t.Errorf("parameter columns = %v, %v, expected 0, 5", row[12], row[13])
	}
	if row[14] != 0 || row[15] != 0 || row[16] != 1 {
		t.Errorf("direction columns = %v", row[14:17])
	}
	if row[23] != 0 {
		t.Errorf("radius column = %v, expected 0", row[23])
	}
}

func TestEncodeCircleEdge(t *testing.T) {
	m := EncodeEdges([]geometry.CurveGeometry{{
		Type:        geometry.CurveCircle,
		Orientation: -1,
		Degree:      2,
		Closed:      true,
		TMax:        2 * math.Pi,
		Center:      r3.Vec{X: 1, Y: 2, Z: 3},
		Axis:        r3.Vec{Z: 1},
		Radius:      5,
	}})
	row := m.Row(0)

	if row[int(geometry.CurveCircle)] != 1 || row[int(geometry.CurveLine)] != 0 {
		t.Error("one-hot should select the circle column")
	}
	if row[9] != -1 {
		t.Errorf("orientation column = %v, expected -1", row[9])
	}
	if row[11] != 1 {
		t.Errorf("closed column = %v, expected 1", row[11])
	}
	if row[17] != 1 || row[18] != 2 || row[19] != 3 {
		t.Errorf("center columns = %v", row[17:20])
	}
	if row[20] != 0 || row[21] != 0 || row[22] != 1 {
		t.Errorf("axis columns = %v", row[20:23])
	}
	if row[23] != 5 {
		t.Errorf("radius column = %v, expected 5", row[23])
	}
}

func TestEncodePlaneFace(t *testing.T) {
	m := EncodeFaces([]geometry.SurfaceGeometry{{
		Type:        geometry.SurfacePlane,
		Orientation: 1,
		UDegree:     1,
		VDegree:     1,
		UMax:        2,
		VMax:        3,
		PlaneNormal: r3.Vec{Z: -1},
		PlaneOrigin: r3.Vec{X: 1, Y: 1, Z: 1},
	}})
	row := m.Row(0)

	for c := 0; c < geometry.NumSurfaceTypes; c++ {
		want := float32(0)
		if c == int(geometry.SurfacePlane) {
			want = 1
		}
		if row[c] != want {
			t.Errorf("one-hot column %d = %v, expected %v", c, row[c], want)
		}
	}
	if row[11] != 1 {
		t.Errorf("orientation column = %v, expected 1", row[11])
	}
	if row[12] != 1 || row[13] != 1 {
		t.Errorf("degree columns = %v, %v, expected 1, 1", row[12], row[13])
	}
	if row[16] != 0 || row[17] != 2 || row[18] != 0 || row[19] != 3 {
		t.Errorf("uv bound columns = %v", row[16:20])
	}
	if row[20] != 0 || row[21] != 0 || row[22] != -1 {
		t.Errorf("normal columns = %v", row[20:23])
	}
	if row[23] != 1 || row[24] != 1 || row[25] != 1 {
		t.Errorf("origin columns = %v", row[23:26])
	}
	if row[32] != 0 || row[33] != 0 {
		t.Error("plane should leave the radius columns zero")
	}
}

func TestEncodeTorusFace(t *testing.T) {
	m := EncodeFaces([]geometry.SurfaceGeometry{{
		Type:          geometry.SurfaceTorus,
		Orientation:   -1,
		UDegree:       2,
		VDegree:       2,
		UClosed:       true,
		VClosed:       true,
		AxisDirection: r3.Vec{Z: 1},
		AxisOrigin:    r3.Vec{X: 9},
		Radius:        10,
		Radius2:       2,
	}})
	row := m.Row(0)

	if row[11] != -1 {
		t.Errorf("orientation column = %v, expected -1", row[11])
	}
	if row[14] != 1 || row[15] != 1 {
		t.Errorf("closed columns = %v, %v, expected 1, 1", row[14], row[15])
	}
	if row[26] != 0 || row[27] != 0 || row[28] != 1 {
		t.Errorf("axis direction columns = %v", row[26:29])
	}
	if row[29] != 9 || row[30] != 0 || row[31] != 0 {
		t.Errorf("axis origin columns = %v", row[29:32])
	}
	if row[32] != 10 {
		t.Errorf("radius column = %v, expected 10", row[32])
	}
	if row[33] != 2 {
		t.Errorf("radius2 column = %v, expected 2", row[33])
	}
}

func TestEncodeControlPoints(t *testing.T) {
	m := EncodeControlPoints([]brep.Pole{
		{P: r3.Vec{X: 1, Y: 2, Z: 3}, W: 1},
		{P: r3.Vec{X: 4}, W: 0.5},
	})
	if m.Rows != 2 || m.Cols != 4 {
		t.Fatalf("shape = %dx%d, expected 2x4", m.Rows, m.Cols)
	}
	if m.At(0, 3) != 1 || m.At(1, 3) != 0.5 {
		t.Errorf("weight column = %v, %v", m.At(0, 3), m.At(1, 3))
	}
	if m.At(1, 0) != 4 {
		t.Errorf("row 1 x = %v, expected 4", m.At(1, 0))
	}
}

func TestEncodeEmptyInputs(t *testing.T) {
	if m := EncodeVertices(nil); m.Rows != 0 || m.Cols != VertexDim {
		t.Errorf("empty vertex matrix shape = %dx%d", m.Rows, m.Cols)
	}
	if m := EncodeEdges(nil); m.Rows != 0 || m.Cols != EdgeDim {
		t.Errorf("empty edge matrix shape = %dx%d", m.Rows, m.Cols)
	}
	if m := EncodeFaces(nil); m.Rows != 0 || m.Cols != FaceDim {
		t.Errorf("empty face matrix shape = %dx%d", m.Rows, m.Cols)
	}
	if m := EncodeControlPoints(nil); m.Rows != 0 || m.Cols != ControlPointDim {
		t.Errorf("empty control point matrix shape = %dx%d", m.Rows, m.Cols)
	}
}
