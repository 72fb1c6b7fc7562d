// Package hetero holds the heterogeneous graph container produced by
// the converter: dense per-node-type feature matrices, per-relation
// edge indices, and ragged side attributes that don't fit a fixed
// width.
package hetero

import (
	"encoding/json"
	"fmt"
)

// Matrix is a dense row-major float32 matrix. Feature matrices have one
// row per node and a fixed column count per node type; a matrix with
// zero rows keeps its column count so consumers can still size tensors.
type Matrix struct {
	Rows, Cols int
	Data       []float32
}

// NewMatrix allocates a zeroed rows-by-cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, Data: make([]float32, rows*cols)}
}

// At returns the element at (r, c).
func (m *Matrix) At(r, c int) float32 {
	return m.Data[r*m.Cols+c]
}

// Set assigns the element at (r, c).
func (m *Matrix) Set(r, c int, v float32) {
	m.Data[r*m.Cols+c] = v
}

// Row returns the slice backing row r. The slice aliases the matrix.
func (m *Matrix) Row(r int) []float32 {
	return m.Data[r*m.Cols : (r+1)*m.Cols]
}

// matrixJSON is the wire form: a nested row list plus an explicit shape
// so empty matrices keep their column count.
type matrixJSON struct {
	Shape [2]int      `json:"shape"`
	Rows  [][]float32 `json:"rows"`
}

func (m *Matrix) MarshalJSON() ([]byte, error) {
	rows := make([][]float32, m.Rows)
	for r := 0; r < m.Rows; r++ {
		rows[r] = m.Row(r)
	}
	return json.Marshal(matrixJSON{Shape: [2]int{m.Rows, m.Cols}, Rows: rows})
}

func (m *Matrix) UnmarshalJSON(data []byte) error {
	var w matrixJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	m.Rows, m.Cols = w.Shape[0], w.Shape[1]
	m.Data = make([]float32, 0, m.Rows*m.Cols)
	for r, row := range w.Rows {
		if len(row) != m.Cols {
			return fmt.Errorf("matrix row %d has %d columns, shape says %d", r, len(row), m.Cols)
		}
		m.Data = append(m.Data, row...)
	}
	if len(m.Data) != m.Rows*m.Cols {
		return fmt.Errorf("matrix has %d rows, shape says %d", len(w.Rows), m.Rows)
	}
	return nil
}
