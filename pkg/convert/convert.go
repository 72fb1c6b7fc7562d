// Package convert turns B-Rep solids into heterogeneous graphs: one
// node per unique vertex, edge, face and spline control point, with
// typed relations for bounding, face adjacency and control-point
// ownership.
package convert

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/kardel/brep2graph/pkg/brep"
	"github.com/kardel/brep2graph/pkg/features"
	"github.com/kardel/brep2graph/pkg/geometry"
	"github.com/kardel/brep2graph/pkg/hetero"
	"github.com/kardel/brep2graph/pkg/logging"
	"github.com/kardel/brep2graph/pkg/model"
	"github.com/kardel/brep2graph/pkg/topology"
)

// Convert builds the heterogeneous graph for input. Accepted inputs
// are a brep.Shape, anything implementing brep.Shaper (solids,
// builders), or a scene document; everything else fails with an
// UnsupportedInputError.
func Convert(input any) (*hetero.Graph, error) {
	shape, err := normalize(input)
	if err != nil {
		return nil, err
	}

	topo, err := topology.Walk(shape)
	if err != nil {
		return nil, err
	}
	logging.Debug("walked shape",
		"vertices", len(topo.Vertices),
		"edges", len(topo.Edges),
		"faces", len(topo.Faces))

	points := make([]r3.Vec, len(topo.Vertices))
	for i, v := range topo.Vertices {
		points[i] = v.Point()
	}
	curves := make([]geometry.CurveGeometry, len(topo.Edges))
	for i, e := range topo.Edges {
		curves[i] = geometry.ClassifyEdge(e)
	}
	surfaces := make([]geometry.SurfaceGeometry, len(topo.Faces))
	for i, f := range topo.Faces {
		surfaces[i] = geometry.ClassifyFace(f)
	}

	g := &hetero.Graph{
		Vertex: features.EncodeVertices(points),
		Edge:   features.EncodeEdges(curves),
		Face:   features.EncodeFaces(surfaces),
	}
	for _, p := range topo.VertexBoundsEdge {
		g.VertexBoundsEdge.Append(int64(p[0]), int64(p[1]))
	}
	for _, p := range topo.EdgeBoundsFace {
		g.EdgeBoundsFace.Append(int64(p[0]), int64(p[1]))
	}
	g.FaceAdjacentFace = faceAdjacency(topo.EdgeFaces)

	attachSplineAttributes(g, curves, surfaces)
	return g, nil
}

// normalize resolves the accepted input forms down to a bare shape.
func normalize(input any) (brep.Shape, error) {
	switch v := input.(type) {
	case nil:
		return nil, &UnsupportedInputError{Value: input}
	case brep.Shape:
		return v, nil
	case brep.Shaper:
		s := v.Shape()
		if s == nil {
			return nil, &UnsupportedInputError{Value: input}
		}
		return s, nil
	case *model.Document:
		return v.BuildShape()
	default:
		return nil, &UnsupportedInputError{Value: input}
	}
}

// faceAdjacency derives the face-adjacent-face relation: two distinct
// faces are adjacent when they share an edge. Each unordered adjacency
// appears once per direction, pairs ordered ascending by the lower
// face index.
func faceAdjacency(edgeFaces [][]int) hetero.EdgeIndex {
	und := simple.NewUndirectedGraph()
	for _, faces := range edgeFaces {
		for i := 0; i < len(faces); i++ {
			for j := i + 1; j < len(faces); j++ {
				a, b := faces[i], faces[j]
				if a == b {
					continue
				}
				und.SetEdge(simple.Edge{F: simple.Node(a), T: simple.Node(b)})
			}
		}
	}

	var pairs [][2]int64
	it := und.Edges()
	for it.Next() {
		e := it.Edge()
		a, b := e.From().ID(), e.To().ID()
		if a > b {
			a, b = b, a
		}
		pairs = append(pairs, [2]int64{a, b})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})

	var idx hetero.EdgeIndex
	for _, p := range pairs {
		idx.Append(p[0], p[1])
		idx.Append(p[1], p[0])
	}
	return idx
}

// attachSplineAttributes collects control points across all spline
// edges and faces into one control-point node type, flattening face
// pole grids u-outer, v-inner, and records the ragged knot vectors.
func attachSplineAttributes(g *hetero.Graph, curves []geometry.CurveGeometry, surfaces []geometry.SurfaceGeometry) {
	var poles []brep.Pole

	g.EdgeKnots = make([][]float64, len(curves))
	g.EdgeMultiplicities = make([][]int, len(curves))
	for ei, c := range curves {
		g.EdgeKnots[ei] = emptyIfNilF(c.Knots)
		g.EdgeMultiplicities[ei] = emptyIfNilI(c.Multiplicities)
		for k, p := range c.Poles {
			g.ControlsEdge.Append(int64(len(poles)), int64(ei))
			g.ControlsEdgeSeq = append(g.ControlsEdgeSeq, int64(k))
			poles = append(poles, p)
		}
	}

	g.FaceUKnots = make([][]float64, len(surfaces))
	g.FaceVKnots = make([][]float64, len(surfaces))
	g.FaceUMults = make([][]int, len(surfaces))
	g.FaceVMults = make([][]int, len(surfaces))
	for fi, s := range surfaces {
		g.FaceUKnots[fi] = emptyIfNilF(s.UKnots)
		g.FaceVKnots[fi] = emptyIfNilF(s.VKnots)
		g.FaceUMults[fi] = emptyIfNilI(s.UMults)
		g.FaceVMults[fi] = emptyIfNilI(s.VMults)
		for u, row := range s.Poles {
			for v, p := range row {
				g.ControlsFace.Append(int64(len(poles)), int64(fi))
				g.ControlsFaceUV = append(g.ControlsFaceUV, [2]int64{int64(u), int64(v)})
				poles = append(poles, p)
			}
		}
	}

	g.ControlPoint = features.EncodeControlPoints(poles)
}

func emptyIfNilF(s []float64) []float64 {
	if s == nil {
		return []float64{}
	}
	return s
}

func emptyIfNilI(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
