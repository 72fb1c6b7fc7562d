// Package model defines the scene document: a small JSON description
// of solids to instantiate, used by the CLI and the watch mode as the
// on-disk input form.
package model

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/kardel/brep2graph/pkg/brep"
	"github.com/kardel/brep2graph/pkg/brep/memkern"
)

// SolidKind names a primitive the scene can instantiate.
type SolidKind string

const (
	KindBox          SolidKind = "box"
	KindCylinder     SolidKind = "cylinder"
	KindSphere       SolidKind = "sphere"
	KindTorus        SolidKind = "torus"
	KindCone         SolidKind = "cone"
	KindBSplinePatch SolidKind = "bspline_patch"
	KindWire         SolidKind = "wire"
)

// dimCount is the number of dimension values each kind requires.
var dimCount = map[SolidKind]int{
	KindBox:          3,
	KindCylinder:     2,
	KindSphere:       1,
	KindTorus:        2,
	KindCone:         2,
	KindBSplinePatch: 3,
	KindWire:         1,
}

// Solid is one entry of a scene document.
type Solid struct {
	Kind SolidKind  `json:"kind"`
	At   [3]float64 `json:"at"`
	Dims []float64  `json:"dims"`
}

// Document is a scene: a named list of solids.
type Document struct {
	Name   string  `json:"name"`
	Solids []Solid `json:"solids"`
}

// LoadDocument reads and validates a scene document from path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %s: %w", path, err)
	}
	return &doc, nil
}

// Validate checks every solid's kind and dimension count.
func (d *Document) Validate() error {
	if len(d.Solids) == 0 {
		return fmt.Errorf("scene has no solids")
	}
	for i, s := range d.Solids {
		want, ok := dimCount[s.Kind]
		if !ok {
			return fmt.Errorf("solid %d: unknown kind %q", i, s.Kind)
		}
		if len(s.Dims) != want {
			return fmt.Errorf("solid %d: kind %q takes %d dims, got %d", i, s.Kind, want, len(s.Dims))
		}
		for j, v := range s.Dims {
			if v <= 0 {
				return fmt.Errorf("solid %d: dim %d must be positive, got %v", i, j, v)
			}
		}
	}
	return nil
}

// BuildShape instantiates the scene's solids and returns them as one
// shape.
func (d *Document) BuildShape() (brep.Shape, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	shapes := make([]brep.Shape, 0, len(d.Solids))
	for _, s := range d.Solids {
		at := r3.Vec{X: s.At[0], Y: s.At[1], Z: s.At[2]}
		switch s.Kind {
		case KindBox:
			shapes = append(shapes, memkern.Box(at, s.Dims[0], s.Dims[1], s.Dims[2]))
		case KindCylinder:
			shapes = append(shapes, memkern.Cylinder(at, s.Dims[0], s.Dims[1]))
		case KindSphere:
			shapes = append(shapes, memkern.Sphere(at, s.Dims[0]))
		case KindTorus:
			shapes = append(shapes, memkern.Torus(at, s.Dims[0], s.Dims[1]))
		case KindCone:
			shapes = append(shapes, memkern.Cone(at, s.Dims[0], s.Dims[1]))
		case KindBSplinePatch:
			shapes = append(shapes, memkern.BSplinePatch(at, s.Dims[0], s.Dims[1], s.Dims[2]))
		case KindWire:
			shapes = append(shapes, memkern.FreeformWire(at, s.Dims[0]))
		}
	}
	if len(shapes) == 1 {
		return shapes[0], nil
	}
	return memkern.NewCompound(shapes...), nil
}
