package prep

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/reviewprep/internal/common"
	"github.com/Veraticus/reviewprep/internal/model"
)

// groupByLabel maps each non-empty label to the row positions carrying it and
// returns the labels in SortLabels order plus the number of unlabeled rows.
func groupByLabel(ds *model.Dataset, labelCol string) (map[string][]int, []string, int, error) {
	col, err := ds.ColumnIndex(labelCol)
	if err != nil {
		return nil, nil, 0, err
	}

	groups := make(map[string][]int)
	unlabeled := 0
	for i := range ds.Len() {
		label := model.NormalizeLabel(ds.Value(i, col))
		if label == "" {
			unlabeled++
			continue
		}
		groups[label] = append(groups[label], i)
	}

	labels := make([]string, 0, len(groups))
	for l := range groups {
		labels = append(labels, l)
	}
	model.SortLabels(labels)

	return groups, labels, unlabeled, nil
}

// Balance draws exactly nSamples rows per distinct label without replacement and
// shuffles the concatenation with the same seed. Rows with an empty label are not
// part of any class. A class with fewer than nSamples rows is an error.
func Balance(ds *model.Dataset, labelCol string, nSamples int, seed int64) (*model.Dataset, error) {
	if nSamples <= 0 {
		return nil, fmt.Errorf("%w: got %d", common.ErrInvalidSampleCount, nSamples)
	}

	groups, labels, unlabeled, err := groupByLabel(ds, labelCol)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no labeled rows in column %q", common.ErrEmptyDataset, labelCol)
	}
	if unlabeled > 0 {
		slog.Debug("Skipping rows without a label", "column", labelCol, "rows", unlabeled)
	}

	for _, label := range labels {
		if have := len(groups[label]); have < nSamples {
			return nil, fmt.Errorf("%w: class %q has %d rows, need %d",
				common.ErrInsufficientSamples, label, have, nSamples)
		}
	}

	rng := newRand(seed)
	picked := make([]int, 0, nSamples*len(labels))
	for _, label := range labels {
		rows := append([]int(nil), groups[label]...)
		shuffleInts(rng, rows)
		picked = append(picked, rows[:nSamples]...)
	}

	shuffleInts(newRand(seed), picked)

	slog.Debug("Balanced dataset",
		"classes", len(labels),
		"samples_per_class", nSamples,
		"rows", len(picked))

	return ds.Subset(picked), nil
}
