package prep

import (
	"math"
	"testing"

	"github.com/Veraticus/reviewprep/internal/common"
	"github.com/Veraticus/reviewprep/internal/testutil/reviews"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStratifiedSplitPreservesProportions(t *testing.T) {
	tests := []struct {
		name     string
		fixture  reviews.Fixture
		testSize float64
	}{
		{name: "balanced 20%", fixture: reviews.FixtureBalanced, testSize: 0.2},
		{name: "balanced 33%", fixture: reviews.FixtureBalanced, testSize: 0.33},
		{name: "imbalanced 25%", fixture: reviews.FixtureImbalanced, testSize: 0.25},
		{name: "binary 10%", fixture: reviews.FixtureBinary, testSize: 0.1},
		{name: "binary 50%", fixture: reviews.FixtureBinary, testSize: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := reviews.NewBuilder(t).WithFixture(tt.fixture).Build()

			split, err := StratifiedSplit(ds, reviews.LabelColumn, tt.testSize, 42)
			require.NoError(t, err)

			n := ds.Len()
			nTest := int(math.Ceil(tt.testSize * float64(n)))
			assert.Equal(t, nTest, split.Test.Len())
			assert.Equal(t, n-nTest, split.Train.Len())

			all, _ := ds.LabelCounts(reviews.LabelColumn)
			train, _ := split.Train.LabelCounts(reviews.LabelColumn)
			test, _ := split.Test.LabelCounts(reviews.LabelColumn)

			for label, count := range all {
				exactTest := float64(count) * float64(nTest) / float64(n)
				exactTrain := float64(count) - exactTest
				assert.Equal(t, count, train[label]+test[label], "label %s", label)
				assert.LessOrEqual(t, math.Abs(float64(test[label])-exactTest), 1.0, "label %s test", label)
				assert.LessOrEqual(t, math.Abs(float64(train[label])-exactTrain), 1.0, "label %s train", label)
			}
		})
	}
}

func TestStratifiedSplitPartitionsRows(t *testing.T) {
	ds := reviews.NewBuilder(t).WithFixture(reviews.FixtureBalanced).Build()

	split, err := StratifiedSplit(ds, reviews.LabelColumn, 0.2, 3)
	require.NoError(t, err)

	seen := make(map[string]int)
	trainTexts, _ := split.Train.Column(reviews.TextColumn)
	testTexts, _ := split.Test.Column(reviews.TextColumn)
	for _, text := range append(trainTexts, testTexts...) {
		seen[text]++
	}

	assert.Len(t, seen, ds.Len())
	for text, n := range seen {
		assert.Equal(t, 1, n, text)
	}
}

func TestStratifiedSplitIsDeterministic(t *testing.T) {
	ds := reviews.NewBuilder(t).WithFixture(reviews.FixtureImbalanced).Build()

	a, err := StratifiedSplit(ds, reviews.LabelColumn, 0.2, 42)
	require.NoError(t, err)
	b, err := StratifiedSplit(ds, reviews.LabelColumn, 0.2, 42)
	require.NoError(t, err)

	textsA, _ := a.Test.Column(reviews.TextColumn)
	textsB, _ := b.Test.Column(reviews.TextColumn)
	assert.Equal(t, textsA, textsB)
}

func TestStratifiedSplitErrors(t *testing.T) {
	tests := []struct {
		name     string
		build    func(b *reviews.Builder) *reviews.Builder
		column   string
		testSize float64
		wantErr  error
	}{
		{
			name:     "test size zero",
			build:    func(b *reviews.Builder) *reviews.Builder { return b.WithFixture(reviews.FixtureBinary) },
			testSize: 0,
			wantErr:  common.ErrInvalidSplit,
		},
		{
			name:     "test size one",
			build:    func(b *reviews.Builder) *reviews.Builder { return b.WithFixture(reviews.FixtureBinary) },
			testSize: 1,
			wantErr:  common.ErrInvalidSplit,
		},
		{
			name:     "missing column",
			build:    func(b *reviews.Builder) *reviews.Builder { return b.WithFixture(reviews.FixtureBinary) },
			column:   "stars",
			testSize: 0.2,
			wantErr:  common.ErrMissingColumn,
		},
		{
			name: "singleton class",
			build: func(b *reviews.Builder) *reviews.Builder {
				return b.WithClass(reviews.Rating1, 10).WithClass(reviews.Rating5, 1)
			},
			testSize: 0.2,
			wantErr:  common.ErrInvalidSplit,
		},
		{
			name: "test set smaller than class count",
			build: func(b *reviews.Builder) *reviews.Builder {
				return b.WithFixture(reviews.FixtureBalanced)
			},
			testSize: 0.01,
			wantErr:  common.ErrInvalidSplit,
		},
		{
			name: "unlabeled row",
			build: func(b *reviews.Builder) *reviews.Builder {
				return b.WithFixture(reviews.FixtureBinary).WithReview("who knows", "")
			},
			testSize: 0.2,
			wantErr:  common.ErrInvalidSplit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := tt.build(reviews.NewBuilder(t)).Build()
			column := tt.column
			if column == "" {
				column = reviews.LabelColumn
			}

			_, err := StratifiedSplit(ds, column, tt.testSize, 42)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAllocateTest(t *testing.T) {
	labels := []string{"a", "b", "c"}
	counts := map[string]int{"a": 5, "b": 3, "c": 2}

	allocs := AllocateTest(labels, counts, 3)

	// Exact shares are 1.5, 0.9 and 0.6.
	assert.Equal(t, []Allocation{
		{Label: "a", Train: 4, Test: 1},
		{Label: "b", Train: 2, Test: 1},
		{Label: "c", Train: 1, Test: 1},
	}, allocs)
}

func TestTestSize(t *testing.T) {
	assert.Equal(t, 20, TestSize(100, 0.2))
	assert.Equal(t, 1, TestSize(3, 0.2))
	assert.Equal(t, 34, TestSize(100, 0.333))
}
