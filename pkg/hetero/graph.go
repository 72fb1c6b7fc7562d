package hetero

// EdgeIndex is one relation's connectivity in COO form: parallel
// source and destination index slices, each entry one directed pair.
// Indices are row numbers into the relation's endpoint matrices.
type EdgeIndex struct {
	Src []int64 `json:"src"`
	Dst []int64 `json:"dst"`
}

// Append adds one directed pair.
func (e *EdgeIndex) Append(src, dst int64) {
	e.Src = append(e.Src, src)
	e.Dst = append(e.Dst, dst)
}

// Len returns the number of pairs.
func (e *EdgeIndex) Len() int { return len(e.Src) }

// NodeKind names a node type of the heterogeneous graph.
type NodeKind string

const (
	KindVertex       NodeKind = "vertex"
	KindEdge         NodeKind = "edge"
	KindFace         NodeKind = "face"
	KindControlPoint NodeKind = "control_point"
)

// Graph is the converter's output: one feature matrix per node type,
// one edge index per relation, and ragged per-entity side attributes
// for the spline data that has no fixed width.
type Graph struct {
	// Node feature matrices, one row per entity in walk order.
	Vertex       *Matrix `json:"vertex"`
	Edge         *Matrix `json:"edge"`
	Face         *Matrix `json:"face"`
	ControlPoint *Matrix `json:"control_point"`

	// Relations. FaceAdjacentFace holds both directions of every
	// adjacency; the bounds relations preserve traversal multiplicity.
	VertexBoundsEdge EdgeIndex `json:"vertex_bounds_edge"`
	EdgeBoundsFace   EdgeIndex `json:"edge_bounds_face"`
	FaceAdjacentFace EdgeIndex `json:"face_adjacent_face"`
	ControlsEdge     EdgeIndex `json:"controls_edge"`
	ControlsFace     EdgeIndex `json:"controls_face"`

	// Ragged spline attributes, indexed by edge or face row. Entities
	// without spline geometry hold empty slices.
	EdgeKnots          [][]float64 `json:"edge_knots"`
	EdgeMultiplicities [][]int     `json:"edge_multiplicities"`
	FaceUKnots         [][]float64 `json:"face_u_knots"`
	FaceVKnots         [][]float64 `json:"face_v_knots"`
	FaceUMults         [][]int     `json:"face_u_multiplicities"`
	FaceVMults         [][]int     `json:"face_v_multiplicities"`

	// Per-control-point placement: the running position of each pole
	// within its owning entity, and for faces the (u, v) grid cell.
	ControlsEdgeSeq []int64    `json:"controls_edge_seq"`
	ControlsFaceUV  [][2]int64 `json:"controls_face_uv"`
}

// NumNodes returns the node count for one kind.
func (g *Graph) NumNodes(kind NodeKind) int {
	if m := g.nodeMatrix(kind); m != nil {
		return m.Rows
	}
	return 0
}

func (g *Graph) nodeMatrix(kind NodeKind) *Matrix {
	switch kind {
	case KindVertex:
		return g.Vertex
	case KindEdge:
		return g.Edge
	case KindFace:
		return g.Face
	case KindControlPoint:
		return g.ControlPoint
	}
	return nil
}

// Relation names one typed edge set as a (source kind, name,
// destination kind) triple.
type Relation struct {
	Src  NodeKind
	Name string
	Dst  NodeKind
}

// Relations lists every relation of the schema in a fixed order.
func (g *Graph) Relations() []Relation {
	return []Relation{
		{KindVertex, "bounds", KindEdge},
		{KindEdge, "bounds", KindFace},
		{KindFace, "adjacent", KindFace},
		{KindControlPoint, "controls", KindEdge},
		{KindControlPoint, "controls", KindFace},
	}
}

// Index returns the edge index for a relation, or nil if the relation
// is not part of the schema.
func (g *Graph) Index(rel Relation) *EdgeIndex {
	switch rel {
	case Relation{KindVertex, "bounds", KindEdge}:
		return &g.VertexBoundsEdge
	case Relation{KindEdge, "bounds", KindFace}:
		return &g.EdgeBoundsFace
	case Relation{KindFace, "adjacent", KindFace}:
		return &g.FaceAdjacentFace
	case Relation{KindControlPoint, "controls", KindEdge}:
		return &g.ControlsEdge
	case Relation{KindControlPoint, "controls", KindFace}:
		return &g.ControlsFace
	}
	return nil
}
