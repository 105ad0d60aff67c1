package prep

import (
	"fmt"
	"math"
	"sort"

	"github.com/Veraticus/reviewprep/internal/common"
	"github.com/Veraticus/reviewprep/internal/model"
)

// Split is a train/test partition of a dataset.
type Split struct {
	Train *model.Dataset
	Test  *model.Dataset
}

// Allocation is the number of rows of one class sent to each side of a split.
type Allocation struct {
	Label string
	Train int
	Test  int
}

// AllocateTest distributes nTest test rows across classes in proportion to
// their sizes. Each class first gets the floor of its exact share; leftover
// rows go to the classes with the largest remainders, ties in label order.
func AllocateTest(labels []string, counts map[string]int, nTest int) []Allocation {
	total := 0
	for _, l := range labels {
		total += counts[l]
	}

	allocs := make([]Allocation, len(labels))
	remainders := make([]int, len(labels))
	assigned := 0
	for i, l := range labels {
		exact := counts[l] * nTest
		allocs[i] = Allocation{Label: l, Test: exact / total}
		remainders[i] = exact % total
		assigned += allocs[i].Test
	}

	order := make([]int, len(labels))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})
	for k := 0; assigned < nTest; k++ {
		allocs[order[k%len(order)]].Test++
		assigned++
	}

	for i, l := range labels {
		allocs[i].Train = counts[l] - allocs[i].Test
	}
	return allocs
}

// TestSize returns the number of test rows for n rows and fraction testSize.
func TestSize(n int, testSize float64) int {
	return int(math.Ceil(testSize * float64(n)))
}

// StratifiedSplit partitions ds so that every class keeps its proportion in
// both halves, within one row. Every row must carry a label and every class
// needs at least two rows.
func StratifiedSplit(ds *model.Dataset, labelCol string, testSize float64, seed int64) (*Split, error) {
	if !(testSize > 0 && testSize < 1) {
		return nil, fmt.Errorf("%w: test size %v must be in (0, 1)", common.ErrInvalidSplit, testSize)
	}

	groups, labels, unlabeled, err := groupByLabel(ds, labelCol)
	if err != nil {
		return nil, err
	}
	if unlabeled > 0 {
		return nil, fmt.Errorf("%w: %d rows have no label in column %q", common.ErrInvalidSplit, unlabeled, labelCol)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: cannot split", common.ErrEmptyDataset)
	}

	counts := make(map[string]int, len(labels))
	for _, l := range labels {
		counts[l] = len(groups[l])
		if counts[l] < 2 {
			return nil, fmt.Errorf("%w: class %q has %d row, need at least 2", common.ErrInvalidSplit, l, counts[l])
		}
	}

	n := ds.Len()
	nTest := TestSize(n, testSize)
	nTrain := n - nTest
	if nTest < len(labels) || nTrain < len(labels) {
		return nil, fmt.Errorf("%w: train size %d and test size %d must each be at least the number of classes %d",
			common.ErrInvalidSplit, nTrain, nTest, len(labels))
	}

	rng := newRand(seed)
	train := make([]int, 0, nTrain)
	test := make([]int, 0, nTest)
	for _, a := range AllocateTest(labels, counts, nTest) {
		rows := append([]int(nil), groups[a.Label]...)
		shuffleInts(rng, rows)
		test = append(test, rows[:a.Test]...)
		train = append(train, rows[a.Test:]...)
	}
	shuffleInts(rng, train)
	shuffleInts(rng, test)

	return &Split{
		Train: ds.Subset(train),
		Test:  ds.Subset(test),
	}, nil
}
