package vectorize

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Matrix is an immutable compressed sparse row matrix of float64 values.
// It satisfies gonum's mat.Matrix so it can feed gonum-based code directly.
type Matrix struct {
	indptr  []int
	indices []int
	data    []float64
	rows    int
	cols    int
}

var _ mat.Matrix = (*Matrix)(nil)

type matrixBuilder struct {
	m *Matrix
}

func newMatrixBuilder(rows, cols int) *matrixBuilder {
	indptr := make([]int, 1, rows+1)
	return &matrixBuilder{m: &Matrix{indptr: indptr, cols: cols}}
}

// appendRow adds the next row; indices must be sorted and unique.
func (b *matrixBuilder) appendRow(indices []int, values []float64) {
	for k, idx := range indices {
		if values[k] == 0 {
			continue
		}
		b.m.indices = append(b.m.indices, idx)
		b.m.data = append(b.m.data, values[k])
	}
	b.m.indptr = append(b.m.indptr, len(b.m.indices))
	b.m.rows++
}

func (b *matrixBuilder) build() *Matrix {
	return b.m
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (r, c int) {
	return m.rows, m.cols
}

// At returns the value at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(mat.ErrIndexOutOfRange)
	}
	start, end := m.indptr[i], m.indptr[i+1]
	row := m.indices[start:end]
	k := sort.SearchInts(row, j)
	if k < len(row) && row[k] == j {
		return m.data[start+k]
	}
	return 0
}

// T returns the implicit transpose.
func (m *Matrix) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// NNZ returns the number of stored non-zero values.
func (m *Matrix) NNZ() int {
	return len(m.data)
}

// RowNonZeros returns copies of the column indices and values stored in row i.
func (m *Matrix) RowNonZeros(i int) ([]int, []float64) {
	if i < 0 || i >= m.rows {
		panic(mat.ErrRowAccess)
	}
	start, end := m.indptr[i], m.indptr[i+1]
	return append([]int(nil), m.indices[start:end]...), append([]float64(nil), m.data[start:end]...)
}

// ColumnsUsed returns the sorted distinct column indices holding a value.
func (m *Matrix) ColumnsUsed() []int {
	seen := make(map[int]bool)
	for _, idx := range m.indices {
		seen[idx] = true
	}
	out := make([]int, 0, len(seen))
	for idx := range seen {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// Dense materializes the matrix. An empty matrix yields an empty Dense.
func (m *Matrix) Dense() *mat.Dense {
	if m.rows == 0 || m.cols == 0 {
		return &mat.Dense{}
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	for i := range m.rows {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			d.Set(i, m.indices[k], m.data[k])
		}
	}
	return d
}

// Shape formats the dimensions as "(rows, cols)".
func (m *Matrix) Shape() string {
	return fmt.Sprintf("(%d, %d)", m.rows, m.cols)
}
