package model

import (
	"testing"

	"github.com/Veraticus/reviewprep/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := NewDataset([]string{"text", "rating"}, [][]string{
		{"great phone", "5"},
		{"broke in a week", "1"},
		{"meh"},
	})
	require.NoError(t, err)
	return ds
}

func TestNewDataset(t *testing.T) {
	ds := newTestDataset(t)

	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, []string{"text", "rating"}, ds.Columns())
	assert.Equal(t, []string{"meh", ""}, ds.Row(2), "short rows are padded")
	assert.True(t, ds.HasColumn("rating"))
	assert.False(t, ds.HasColumn("Rating"))
}

func TestNewDatasetErrors(t *testing.T) {
	_, err := NewDataset([]string{"a", "a"}, nil)
	require.ErrorIs(t, err, common.ErrInvalidConfig)

	_, err = NewDataset([]string{"a"}, [][]string{{"1", "2"}})
	require.ErrorIs(t, err, common.ErrRaggedRow)
}

func TestColumnAccess(t *testing.T) {
	ds := newTestDataset(t)

	values, err := ds.Column("rating")
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "1", ""}, values)

	_, err = ds.Column("stars")
	require.ErrorIs(t, err, common.ErrMissingColumn)
	assert.Contains(t, err.Error(), `"stars"`)

	idx, err := ds.ColumnIndex("text")
	require.NoError(t, err)
	assert.Equal(t, "great phone", ds.Value(0, idx))
}

func TestDatasetIsNotAliased(t *testing.T) {
	ds := newTestDataset(t)

	cols := ds.Columns()
	cols[0] = "changed"
	row := ds.Row(0)
	row[0] = "changed"
	values, _ := ds.Column("text")
	values[0] = "changed"

	assert.Equal(t, "text", ds.Columns()[0])
	assert.Equal(t, "great phone", ds.Row(0)[0])
}

func TestSubset(t *testing.T) {
	ds := newTestDataset(t)

	sub := ds.Subset([]int{2, 0})
	assert.Equal(t, 2, sub.Len())
	assert.Equal(t, []string{"meh", ""}, sub.Row(0))
	assert.Equal(t, []string{"great phone", "5"}, sub.Row(1))
	assert.Equal(t, 3, ds.Len())

	empty := ds.Subset(nil)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, ds.Columns(), empty.Columns())
}

func TestWithColumn(t *testing.T) {
	ds := newTestDataset(t)

	added, err := ds.WithColumn("clean", []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"text", "rating", "clean"}, added.Columns())
	assert.Equal(t, []string{"meh", "", "c"}, added.Row(2))
	assert.False(t, ds.HasColumn("clean"))

	replaced, err := ds.WithColumn("text", []string{"x", "y", "z"})
	require.NoError(t, err)
	assert.Equal(t, []string{"text", "rating"}, replaced.Columns())
	assert.Equal(t, []string{"y", "1"}, replaced.Row(1))
	assert.Equal(t, "broke in a week", ds.Row(1)[0])

	_, err = ds.WithColumn("clean", []string{"only one"})
	require.ErrorIs(t, err, common.ErrRaggedRow)
}

func TestLabelCounts(t *testing.T) {
	ds := newTestDataset(t)

	counts, err := ds.LabelCounts("rating")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"5": 1, "1": 1, "": 1}, counts)

	_, err = ds.LabelCounts("nope")
	require.ErrorIs(t, err, common.ErrMissingColumn)
}
