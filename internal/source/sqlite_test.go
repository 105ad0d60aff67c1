package source

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Veraticus/reviewprep/internal/common"
	"github.com/Veraticus/reviewprep/internal/model"
	"github.com/Veraticus/reviewprep/internal/testutil"
	"github.com/Veraticus/reviewprep/internal/testutil/reviews"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset(t *testing.T) *model.Dataset {
	t.Helper()
	return reviews.NewBuilder(t).
		WithReview("Loved it", reviews.Rating5).
		WithReview("Hated it", reviews.Rating1).
		WithReview("", reviews.Rating3).
		Build()
}

func TestSQLiteSource_Load(t *testing.T) {
	tests := []struct {
		name  string
		types map[string]string
		want  []string
	}{
		{name: "integer ratings", types: map[string]string{reviews.LabelColumn: "INTEGER"}, want: []string{"5", "1", "3"}},
		{name: "real ratings lose trailing zero", types: map[string]string{reviews.LabelColumn: "REAL"}, want: []string{"5", "1", "3"}},
		{name: "text ratings", want: []string{"5", "1", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupReviewsDB(t, sampleDataset(t), testutil.ReviewsDBOptions{Types: tt.types})

			ds, err := NewSQLiteSource(db, "reviews").Load(context.Background())
			require.NoError(t, err)

			assert.Equal(t, []string{reviews.TextColumn, reviews.LabelColumn}, ds.Columns())
			labels, err := ds.Column(reviews.LabelColumn)
			require.NoError(t, err)
			assert.Equal(t, tt.want, labels)
		})
	}
}

func TestSQLiteSource_NullBecomesEmpty(t *testing.T) {
	db := testutil.SetupReviewsDB(t, sampleDataset(t), testutil.ReviewsDBOptions{NullEmpty: true})

	ds, err := NewSQLiteSource(db, "reviews").Load(context.Background())
	require.NoError(t, err)

	texts, err := ds.Column(reviews.TextColumn)
	require.NoError(t, err)
	assert.Equal(t, []string{"Loved it", "Hated it", ""}, texts)
}

func TestSQLiteSource_Query(t *testing.T) {
	db := testutil.SetupReviewsDB(t, sampleDataset(t), testutil.ReviewsDBOptions{})

	src := NewSQLiteSource(db, "")
	src.Query = `SELECT Rating FROM reviews WHERE Rating <> '3'`

	ds, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{reviews.LabelColumn}, ds.Columns())
	assert.Equal(t, 2, ds.Len())
}

func TestSQLiteSource_InvalidTable(t *testing.T) {
	db := testutil.SetupReviewsDB(t, sampleDataset(t), testutil.ReviewsDBOptions{})

	_, err := NewSQLiteSource(db, "reviews; DROP TABLE reviews").Load(context.Background())
	assert.ErrorIs(t, err, common.ErrInvalidIdentifier)
}

func TestOpenSQLite_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviews.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE reviews (Review_text TEXT, Rating INTEGER)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO reviews VALUES ('Works fine', 4), ('Broke', 2)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	ds, err := OpenSQLite(path, "reviews").Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, []string{"Works fine", "4"}, ds.Row(0))
}
