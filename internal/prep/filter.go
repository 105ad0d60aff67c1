package prep

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/reviewprep/internal/common"
	"github.com/Veraticus/reviewprep/internal/model"
)

// WordCount returns the number of whitespace-delimited tokens in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// FilterByLength keeps the rows whose word count in textCol lies within
// [minWords, maxWords], both bounds inclusive.
func FilterByLength(ds *model.Dataset, textCol string, minWords, maxWords int) (*model.Dataset, error) {
	if minWords < 0 || minWords > maxWords {
		return nil, fmt.Errorf("%w: min=%d max=%d", common.ErrInvalidBounds, minWords, maxWords)
	}

	col, err := ds.ColumnIndex(textCol)
	if err != nil {
		return nil, err
	}

	keep := make([]int, 0, ds.Len())
	for i := range ds.Len() {
		n := WordCount(ds.Value(i, col))
		if n >= minWords && n <= maxWords {
			keep = append(keep, i)
		}
	}

	slog.Debug("Filtered reviews by length",
		"column", textCol,
		"min_words", minWords,
		"max_words", maxWords,
		"kept", len(keep),
		"dropped", ds.Len()-len(keep))

	return ds.Subset(keep), nil
}
