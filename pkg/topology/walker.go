// Package topology walks a B-Rep shape and assigns stable, contiguous
// indices to its unique vertices, edges and faces. Uniqueness is keyed
// on kernel handle identity, never on coordinates: two congruent edges
// instantiated separately by the kernel stay two edges, while a vertex
// shared between edges resolves to one node.
package topology

import (
	"fmt"

	"github.com/kardel/brep2graph/pkg/brep"
)

// MalformedTopologyError reports a kernel entity referencing an invalid
// (nil) handle. Conversions fail as a whole on this: a partial graph
// over corrupt topology is unsafe, not partially useful.
type MalformedTopologyError struct {
	Entity string // "vertex", "edge" or "face"
	Index  int    // canonical index of the offending entity
	Detail string
}

func (e *MalformedTopologyError) Error() string {
	return fmt.Sprintf("malformed topology: %s %d: %s", e.Entity, e.Index, e.Detail)
}

// Topology is the result of one walk. Index slices are parallel to the
// canonical entity order; relationship lists are (source, target) index
// pairs. Duplicate incidences (a seam edge listed twice in one face
// loop) are preserved; EdgeFaces holds the deduplicated set of faces
// per edge used to derive face adjacency.
type Topology struct {
	Vertices []brep.Vertex
	Edges    []brep.Edge
	Faces    []brep.Face

	VertexBoundsEdge [][2]int
	EdgeBoundsFace   [][2]int
	EdgeFaces        [][]int
}

// Walk traverses shape and returns its indexed topology. A shape with
// no faces, no edges or no vertices is a valid degenerate case and
// yields empty slices.
func Walk(shape brep.Shape) (*Topology, error) {
	topo := &Topology{
		VertexBoundsEdge: make([][2]int, 0),
		EdgeBoundsFace:   make([][2]int, 0),
	}

	vertexIndex := make(map[brep.Vertex]int)
	edgeIndex := make(map[brep.Edge]int)
	faceIndex := make(map[brep.Face]int)

	addVertex := func(v brep.Vertex) (int, error) {
		if v == nil {
			return 0, &MalformedTopologyError{Entity: "vertex", Index: len(topo.Vertices), Detail: "nil vertex handle"}
		}
		if i, ok := vertexIndex[v]; ok {
			return i, nil
		}
		i := len(topo.Vertices)
		vertexIndex[v] = i
		topo.Vertices = append(topo.Vertices, v)
		return i, nil
	}
	addEdge := func(e brep.Edge) (int, error) {
		if e == nil {
			return 0, &MalformedTopologyError{Entity: "edge", Index: len(topo.Edges), Detail: "nil edge handle"}
		}
		if i, ok := edgeIndex[e]; ok {
			return i, nil
		}
		i := len(topo.Edges)
		if e.Curve() == nil {
			return 0, &MalformedTopologyError{Entity: "edge", Index: i, Detail: "nil underlying curve"}
		}
		edgeIndex[e] = i
		topo.Edges = append(topo.Edges, e)
		return i, nil
	}

	// Canonical orders: first occurrence in the shape's traversal.
	for _, v := range shape.Vertices() {
		if _, err := addVertex(v); err != nil {
			return nil, err
		}
	}
	for _, e := range shape.Edges() {
		if _, err := addEdge(e); err != nil {
			return nil, err
		}
	}
	for _, f := range shape.Faces() {
		if f == nil {
			return nil, &MalformedTopologyError{Entity: "face", Index: len(topo.Faces), Detail: "nil face handle"}
		}
		if _, ok := faceIndex[f]; ok {
			continue
		}
		i := len(topo.Faces)
		if f.Surface() == nil {
			return nil, &MalformedTopologyError{Entity: "face", Index: i, Detail: "nil underlying surface"}
		}
		faceIndex[f] = i
		topo.Faces = append(topo.Faces, f)
	}

	// Vertex-bounds-edge. A closed edge whose two ends resolve to the
	// same vertex contributes a single pair.
	for ei, e := range topo.Edges {
		var prev = -1
		for _, v := range e.Ends() {
			vi, err := addVertex(v)
			if err != nil {
				return nil, &MalformedTopologyError{Entity: "edge", Index: ei, Detail: "nil end vertex"}
			}
			if vi == prev {
				continue
			}
			topo.VertexBoundsEdge = append(topo.VertexBoundsEdge, [2]int{vi, ei})
			prev = vi
		}
	}

	// Edge-bounds-face, duplicates preserved; EdgeFaces deduplicated.
	topo.EdgeFaces = make([][]int, len(topo.Edges))
	for fi, f := range topo.Faces {
		for _, e := range f.Boundary() {
			ei, err := addEdge(e)
			if err != nil {
				return nil, &MalformedTopologyError{Entity: "face", Index: fi, Detail: "nil boundary edge"}
			}
			if ei >= len(topo.EdgeFaces) {
				// Boundary edge not seen during shape traversal.
				grown := make([][]int, len(topo.Edges))
				copy(grown, topo.EdgeFaces)
				topo.EdgeFaces = grown
			}
			topo.EdgeBoundsFace = append(topo.EdgeBoundsFace, [2]int{ei, fi})
			if !containsInt(topo.EdgeFaces[ei], fi) {
				topo.EdgeFaces[ei] = append(topo.EdgeFaces[ei], fi)
			}
		}
	}

	return topo, nil
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
