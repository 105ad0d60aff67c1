package reviews

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Veraticus/reviewprep/internal/model"
	"github.com/stretchr/testify/require"
)

// Default column names used by generated datasets.
const (
	TextColumn  = "Review_text"
	LabelColumn = "Rating"
)

// Rating is a strongly-typed class label.
type Rating string

// String returns the label as stored in the dataset.
func (r Rating) String() string {
	return string(r)
}

// Ratings used across tests.
const (
	Rating1 Rating = "1"
	Rating2 Rating = "2"
	Rating3 Rating = "3"
	Rating4 Rating = "4"
	Rating5 Rating = "5"
)

var ratingWords = map[Rating][]string{
	Rating1: {"awful", "broken", "refund"},
	Rating2: {"poor", "flimsy", "disappointing"},
	Rating3: {"okay", "average", "decent"},
	Rating4: {"good", "solid", "reliable"},
	Rating5: {"excellent", "amazing", "perfect"},
}

// Builder provides a fluent interface for constructing review datasets.
type Builder struct {
	t    *testing.T
	rows [][]string
}

// NewBuilder creates a new dataset builder for the given test.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t}
}

// WithReview appends a single row.
func (b *Builder) WithReview(text string, rating Rating) *Builder {
	b.rows = append(b.rows, []string{text, rating.String()})
	return b
}

// WithClass appends n generated reviews for rating.
func (b *Builder) WithClass(rating Rating, n int) *Builder {
	for i := range n {
		b.rows = append(b.rows, []string{Text(rating, i), rating.String()})
	}
	return b
}

// WithFixture appends the class distribution of fixture.
func (b *Builder) WithFixture(f Fixture) *Builder {
	for _, c := range f.Classes() {
		b.WithClass(c.Rating, c.Count)
	}
	return b
}

// WithWords appends one review of exactly n words for rating.
func (b *Builder) WithWords(rating Rating, n int) *Builder {
	return b.WithReview(Words(n), rating)
}

// Build creates the dataset or fails the test.
func (b *Builder) Build() *model.Dataset {
	b.t.Helper()
	ds, err := model.NewDataset([]string{TextColumn, LabelColumn}, b.rows)
	require.NoError(b.t, err)
	return ds
}

// Text generates the i-th review for rating. Texts of one rating share its
// vocabulary; the marker word ("Item5x3") is unique to each generated row.
func Text(rating Rating, i int) string {
	words := ratingWords[rating]
	if len(words) == 0 {
		words = []string{"rating" + rating.String()}
	}
	return fmt.Sprintf("This product was %s and %s, really %s! Item%sx%d for rating %s.",
		words[0], words[1%len(words)], words[2%len(words)], rating, i, rating)
}

// Words returns a text of exactly n whitespace-separated words.
func Words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(parts, " ")
}
