package cli

import (
	"bytes"
	"testing"

	"github.com/Veraticus/reviewprep/internal/model"
	"github.com/Veraticus/reviewprep/internal/pipeline"
	"github.com/Veraticus/reviewprep/internal/vectorize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderResult(t *testing.T) {
	m, train, err := vectorize.FitTransform([]string{"great value", "poor value"}, vectorize.Options{})
	require.NoError(t, err)
	test := m.Transform([]string{"great"})

	res := &pipeline.Result{
		TrainMatrix: train,
		TestMatrix:  test,
		Model:       m,
		Stats: pipeline.Stats{
			RunID:       "run-1",
			Loaded:      10,
			Filtered:    8,
			Balanced:    3,
			Features:    m.NumFeatures(),
			TrainCounts: []model.LabelCount{{Label: "1", Count: 1}, {Label: "5", Count: 1}},
			TestCounts:  []model.LabelCount{{Label: "5", Count: 1}},
		},
	}

	out := RenderResult(res)
	assert.Contains(t, out, "(2, 3)")
	assert.Contains(t, out, "(1, 3)")
	assert.Contains(t, out, "after balancing 3")
	assert.Contains(t, out, "run-1")
}

func TestRenderDataset(t *testing.T) {
	ds, err := model.NewDataset([]string{"Review_text", "Rating"}, [][]string{{"a", "5"}, {"b", "5"}, {"c", "1"}})
	require.NoError(t, err)

	out, err := RenderDataset(ds, "Rating")
	require.NoError(t, err)
	assert.Contains(t, out, "Rows:")
	assert.Contains(t, out, "Review_text, Rating")

	out, err = RenderDataset(ds, "Stars")
	require.NoError(t, err)
	assert.Contains(t, out, `label column "Stars" not found`)
}

func TestInterruptHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewInterruptHandler(&buf)

	assert.False(t, h.WasInterrupted())
	h.Interrupt()
	h.Interrupt()

	assert.True(t, h.WasInterrupted())
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Preparation interrupted!")))
}

func TestFormatters(t *testing.T) {
	assert.Contains(t, FormatSuccess("done"), "done")
	assert.Contains(t, FormatError("failed"), ErrorIcon)
	assert.Contains(t, FormatTitle("Dataset"), ReviewIcon)
	assert.Contains(t, RenderBox("Title", "body"), "body")
}
