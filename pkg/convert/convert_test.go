package convert

import (
	"errors"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/kardel/brep2graph/pkg/brep"
	"github.com/kardel/brep2graph/pkg/brep/memkern"
	"github.com/kardel/brep2graph/pkg/features"
	"github.com/kardel/brep2graph/pkg/hetero"
	"github.com/kardel/brep2graph/pkg/model"
	"github.com/kardel/brep2graph/pkg/topology"
)

func TestConvertCube(t *testing.T) {
	g, err := Convert(memkern.Box(r3.Vec{}, 10, 10, 10))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if g.Vertex.Rows != 8 || g.Vertex.Cols != features.VertexDim {
		t.Errorf("vertex matrix = %dx%d, expected 8x%d", g.Vertex.Rows, g.Vertex.Cols, features.VertexDim)
	}
	if g.Edge.Rows != 12 || g.Edge.Cols != features.EdgeDim {
		t.Errorf("edge matrix = %dx%d, expected 12x%d", g.Edge.Rows, g.Edge.Cols, features.EdgeDim)
	}
	if g.Face.Rows != 6 || g.Face.Cols != features.FaceDim {
		t.Errorf("face matrix = %dx%d, expected 6x%d", g.Face.Rows, g.Face.Cols, features.FaceDim)
	}
	if g.ControlPoint.Rows != 0 {
		t.Errorf("cube should have no control points, got %d", g.ControlPoint.Rows)
	}

	if g.VertexBoundsEdge.Len() != 24 {
		t.Errorf("vertex-bounds-edge pairs = %d, expected 24", g.VertexBoundsEdge.Len())
	}
	if g.EdgeBoundsFace.Len() != 24 {
		t.Errorf("edge-bounds-face pairs = %d, expected 24", g.EdgeBoundsFace.Len())
	}
	// Each face touches 4 others: 12 unordered adjacencies, both
	// directions emitted.
	if g.FaceAdjacentFace.Len() != 24 {
		t.Errorf("face adjacency pairs = %d, expected 24", g.FaceAdjacentFace.Len())
	}
}

func TestConvertCylinder(t *testing.T) {
	g, err := Convert(memkern.Cylinder(r3.Vec{}, 5, 10))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if g.Vertex.Rows != 2 || g.Edge.Rows != 3 || g.Face.Rows != 3 {
		t.Errorf("node counts = %d/%d/%d, expected 2/3/3",
			g.Vertex.Rows, g.Edge.Rows, g.Face.Rows)
	}
	// The side face neighbors both caps; the caps share no edge.
	if g.FaceAdjacentFace.Len() != 4 {
		t.Errorf("face adjacency pairs = %d, expected 4", g.FaceAdjacentFace.Len())
	}
	for i := 0; i < g.FaceAdjacentFace.Len(); i++ {
		a, b := g.FaceAdjacentFace.Src[i], g.FaceAdjacentFace.Dst[i]
		if a != 1 && b != 1 {
			t.Errorf("pair (%d, %d) skips the side face", a, b)
		}
	}
}

func TestConvertSphere(t *testing.T) {
	g, err := Convert(memkern.Sphere(r3.Vec{}, 7.5))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if g.Vertex.Rows != 2 || g.Edge.Rows != 1 || g.Face.Rows != 1 {
		t.Errorf("node counts = %d/%d/%d, expected 2/1/1",
			g.Vertex.Rows, g.Edge.Rows, g.Face.Rows)
	}
	// A single face is never adjacent to itself, even via its seam.
	if g.FaceAdjacentFace.Len() != 0 {
		t.Errorf("face adjacency pairs = %d, expected 0", g.FaceAdjacentFace.Len())
	}
	// The seam appears twice in the loop: duplicate incidence kept.
	if g.EdgeBoundsFace.Len() != 2 {
		t.Errorf("edge-bounds-face pairs = %d, expected 2", g.EdgeBoundsFace.Len())
	}
}

func TestConvertDisjointCompound(t *testing.T) {
	g, err := Convert(memkern.NewCompound(
		memkern.Box(r3.Vec{}, 1, 1, 1),
		memkern.Box(r3.Vec{X: 100}, 2, 2, 2),
	))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if g.Vertex.Rows != 16 || g.Edge.Rows != 24 || g.Face.Rows != 12 {
		t.Errorf("node counts = %d/%d/%d, expected 16/24/12",
			g.Vertex.Rows, g.Edge.Rows, g.Face.Rows)
	}
	if g.FaceAdjacentFace.Len() != 48 {
		t.Errorf("face adjacency pairs = %d, expected 48", g.FaceAdjacentFace.Len())
	}
	// No adjacency crosses the two components.
	for i := 0; i < g.FaceAdjacentFace.Len(); i++ {
		a, b := g.FaceAdjacentFace.Src[i], g.FaceAdjacentFace.Dst[i]
		if (a < 6) != (b < 6) {
			t.Errorf("pair (%d, %d) crosses disjoint solids", a, b)
		}
	}
}

func TestAdjacencySymmetricIrreflexive(t *testing.T) {
	g, err := Convert(memkern.Box(r3.Vec{}, 1, 2, 3))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	seen := make(map[[2]int64]bool)
	for i := 0; i < g.FaceAdjacentFace.Len(); i++ {
		a, b := g.FaceAdjacentFace.Src[i], g.FaceAdjacentFace.Dst[i]
		if a == b {
			t.Errorf("self-adjacency (%d, %d)", a, b)
		}
		if seen[[2]int64{a, b}] {
			t.Errorf("duplicate adjacency pair (%d, %d)", a, b)
		}
		seen[[2]int64{a, b}] = true
	}
	for p := range seen {
		if !seen[[2]int64{p[1], p[0]}] {
			t.Errorf("pair (%d, %d) lacks its reverse", p[0], p[1])
		}
	}
}

func TestIndexRanges(t *testing.T) {
	g, err := Convert(memkern.NewCompound(
		memkern.Cylinder(r3.Vec{}, 3, 6),
		memkern.BSplinePatch(r3.Vec{X: 20}, 2, 2, 1),
	))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	check := func(name string, idx hetero.EdgeIndex, srcMax, dstMax int) {
		t.Helper()
		for i := 0; i < idx.Len(); i++ {
			if idx.Src[i] < 0 || idx.Src[i] >= int64(srcMax) {
				t.Errorf("%s source %d out of [0, %d)", name, idx.Src[i], srcMax)
			}
			if idx.Dst[i] < 0 || idx.Dst[i] >= int64(dstMax) {
				t.Errorf("%s destination %d out of [0, %d)", name, idx.Dst[i], dstMax)
			}
		}
	}
	check("vertex-bounds-edge", g.VertexBoundsEdge, g.Vertex.Rows, g.Edge.Rows)
	check("edge-bounds-face", g.EdgeBoundsFace, g.Edge.Rows, g.Face.Rows)
	check("face-adjacent-face", g.FaceAdjacentFace, g.Face.Rows, g.Face.Rows)
	check("controls-edge", g.ControlsEdge, g.ControlPoint.Rows, g.Edge.Rows)
	check("controls-face", g.ControlsFace, g.ControlPoint.Rows, g.Face.Rows)
}

func TestConvertBSplinePatch(t *testing.T) {
	g, err := Convert(memkern.BSplinePatch(r3.Vec{}, 2, 2, 1))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if g.ControlPoint.Rows != 4 || g.ControlPoint.Cols != features.ControlPointDim {
		t.Fatalf("control point matrix = %dx%d, expected 4x%d",
			g.ControlPoint.Rows, g.ControlPoint.Cols, features.ControlPointDim)
	}
	if g.ControlsFace.Len() != 4 {
		t.Fatalf("controls-face pairs = %d, expected 4", g.ControlsFace.Len())
	}
	wantUV := [][2]int64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	if !reflect.DeepEqual(g.ControlsFaceUV, wantUV) {
		t.Errorf("grid positions = %v, expected %v", g.ControlsFaceUV, wantUV)
	}
	for i := 0; i < 4; i++ {
		if g.ControlPoint.At(i, 3) != 1 {
			t.Errorf("control point %d weight = %v, expected 1", i, g.ControlPoint.At(i, 3))
		}
	}
	// The patch face carries its knot vectors; the boundary edges are
	// lines and carry none.
	if len(g.FaceUKnots[0]) != 2 || len(g.FaceVKnots[0]) != 2 {
		t.Errorf("face knot vectors = %v / %v, expected length 2 each",
			g.FaceUKnots[0], g.FaceVKnots[0])
	}
	for ei, k := range g.EdgeKnots {
		if len(k) != 0 {
			t.Errorf("line edge %d has knots %v", ei, k)
		}
	}
}

func TestConvertFreeformWire(t *testing.T) {
	g, err := Convert(memkern.FreeformWire(r3.Vec{}, 3))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if g.Face.Rows != 0 {
		t.Errorf("wire should have no faces, got %d", g.Face.Rows)
	}
	if g.ControlPoint.Rows != 4 {
		t.Fatalf("control points = %d, expected 4", g.ControlPoint.Rows)
	}
	if want := []int64{0, 1, 2, 3}; !reflect.DeepEqual(g.ControlsEdgeSeq, want) {
		t.Errorf("control point sequence = %v, expected %v", g.ControlsEdgeSeq, want)
	}
	if want := []float64{0, 0.5, 1}; !reflect.DeepEqual(g.EdgeKnots[0], want) {
		t.Errorf("edge knots = %v, expected %v", g.EdgeKnots[0], want)
	}
	if want := []int{3, 1, 3}; !reflect.DeepEqual(g.EdgeMultiplicities[0], want) {
		t.Errorf("edge multiplicities = %v, expected %v", g.EdgeMultiplicities[0], want)
	}
	for i := 0; i < g.ControlsEdge.Len(); i++ {
		if g.ControlsEdge.Dst[i] != 0 {
			t.Errorf("control point %d owned by edge %d, expected 0", i, g.ControlsEdge.Dst[i])
		}
	}
}

func TestConvertDeterministic(t *testing.T) {
	shape := memkern.NewCompound(
		memkern.Box(r3.Vec{}, 1, 2, 3),
		memkern.Torus(r3.Vec{X: 10}, 5, 1),
		memkern.BSplinePatch(r3.Vec{Y: 10}, 2, 2, 0.5),
	)

	a, err := Convert(shape)
	if err != nil {
		t.Fatalf("first conversion failed: %v", err)
	}
	b, err := Convert(shape)
	if err != nil {
		t.Fatalf("second conversion failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("conversions of the same shape differ")
	}
}

func TestConvertShaperInputs(t *testing.T) {
	box := memkern.Box(r3.Vec{}, 1, 1, 1)

	fromSolid, err := Convert(brep.Solid{S: box})
	if err != nil {
		t.Fatalf("Convert(Solid) failed: %v", err)
	}
	fromBuilder, err := Convert(memkern.NewWorkplane().Box(1, 1, 1))
	if err != nil {
		t.Fatalf("Convert(Workplane) failed: %v", err)
	}

	if fromSolid.Face.Rows != 6 || fromBuilder.Face.Rows != 6 {
		t.Errorf("face counts = %d/%d, expected 6/6", fromSolid.Face.Rows, fromBuilder.Face.Rows)
	}
}

func TestConvertSceneDocument(t *testing.T) {
	doc := &model.Document{
		Name: "scene",
		Solids: []model.Solid{
			{Kind: model.KindBox, Dims: []float64{1, 1, 1}},
			{Kind: model.KindSphere, At: [3]float64{10, 0, 0}, Dims: []float64{2}},
		},
	}

	g, err := Convert(doc)
	if err != nil {
		t.Fatalf("Convert(Document) failed: %v", err)
	}
	if g.Face.Rows != 7 {
		t.Errorf("face count = %d, expected 7", g.Face.Rows)
	}

	bad := &model.Document{Solids: []model.Solid{{Kind: "wedge", Dims: []float64{1}}}}
	if _, err := Convert(bad); err == nil {
		t.Error("an invalid scene should fail conversion")
	}
}

func TestConvertUnsupportedInput(t *testing.T) {
	for _, input := range []any{nil, 42, "shape", struct{}{}} {
		_, err := Convert(input)
		if err == nil {
			t.Errorf("Convert(%#v) should fail", input)
			continue
		}
		var uie *UnsupportedInputError
		if !errors.As(err, &uie) {
			t.Errorf("Convert(%#v) returned %T, expected UnsupportedInputError", input, err)
		}
	}
}

func TestConvertEmptyBuilder(t *testing.T) {
	_, err := Convert(memkern.NewWorkplane())
	var uie *UnsupportedInputError
	if !errors.As(err, &uie) {
		t.Errorf("an empty builder should be rejected, got %v", err)
	}
}

// corruptEdge has a nil underlying curve.
type corruptEdge struct{}

func (corruptEdge) Ends() []brep.Vertex { return nil }
func (corruptEdge) Reversed() bool      { return false }
func (corruptEdge) Curve() brep.Curve   { return nil }

type corruptShape struct{}

func (corruptShape) Vertices() []brep.Vertex { return nil }
func (corruptShape) Edges() []brep.Edge      { return []brep.Edge{corruptEdge{}} }
func (corruptShape) Faces() []brep.Face      { return nil }

func TestConvertMalformedTopology(t *testing.T) {
	_, err := Convert(corruptShape{})
	if err == nil {
		t.Fatal("expected an error for corrupt topology")
	}
	var mte *topology.MalformedTopologyError
	if !errors.As(err, &mte) {
		t.Fatalf("expected MalformedTopologyError, got %T: %v", err, err)
	}
}
