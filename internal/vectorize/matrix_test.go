package vectorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func buildMatrix() *Matrix {
	b := newMatrixBuilder(3, 4)
	b.appendRow([]int{0, 3}, []float64{1, 2})
	b.appendRow(nil, nil)
	b.appendRow([]int{1, 2}, []float64{0, 5})
	return b.build()
}

func TestMatrixAccessors(t *testing.T) {
	m := buildMatrix()

	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 4, c)
	assert.Equal(t, 3, m.NNZ(), "explicit zeros are not stored")
	assert.Equal(t, "(3, 4)", m.Shape())

	assert.Equal(t, 2.0, m.At(0, 3))
	assert.Equal(t, 0.0, m.At(1, 0))
	assert.Equal(t, 5.0, m.At(2, 2))
	assert.Equal(t, []int{0, 2, 3}, m.ColumnsUsed())

	idx, vals := m.RowNonZeros(0)
	assert.Equal(t, []int{0, 3}, idx)
	assert.Equal(t, []float64{1, 2}, vals)

	assert.Panics(t, func() { m.At(3, 0) })
	assert.Panics(t, func() { m.At(0, -1) })
	assert.Panics(t, func() { m.RowNonZeros(5) })
}

func TestMatrixGonumInterop(t *testing.T) {
	m := buildMatrix()

	dense := m.Dense()
	require.NotNil(t, dense)
	assert.True(t, mat.Equal(m, dense))

	tr := m.T()
	r, c := tr.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 2.0, tr.At(3, 0))

	var product mat.Dense
	product.Mul(m, m.T())
	assert.Equal(t, 5.0, product.At(0, 0))
	assert.Equal(t, 25.0, product.At(2, 2))
}

func TestEmptyMatrixDense(t *testing.T) {
	m := newMatrixBuilder(0, 5).build()

	r, c := m.Dims()
	assert.Equal(t, 0, r)
	assert.Equal(t, 5, c)
	assert.True(t, m.Dense().IsEmpty())
}
