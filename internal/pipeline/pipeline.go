package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/reviewprep/internal/common"
	"github.com/Veraticus/reviewprep/internal/model"
	"github.com/Veraticus/reviewprep/internal/prep"
	"github.com/Veraticus/reviewprep/internal/textclean"
	"github.com/Veraticus/reviewprep/internal/vectorize"
	"github.com/google/uuid"
)

// Result holds the artifacts of a run.
type Result struct {
	TrainMatrix *vectorize.Matrix
	TestMatrix  *vectorize.Matrix
	Model       *vectorize.Model
	TrainLabels []string
	TestLabels  []string
	Stats       Stats
}

// Stats summarizes how many rows survived each stage.
type Stats struct {
	RunID       string
	TrainCounts []model.LabelCount
	TestCounts  []model.LabelCount
	Duration    time.Duration
	Loaded      int
	Filtered    int
	Balanced    int
	Train       int
	Test        int
	Features    int
}

// Run executes clean, filter, balance, split and vectorize in order over ds.
// The input dataset is not modified.
func Run(ctx context.Context, ds *model.Dataset, cleaner *textclean.Cleaner, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	for _, col := range []string{opts.TextColumn, opts.LabelColumn} {
		if _, err := ds.ColumnIndex(col); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	runID := uuid.NewString()
	common.LogInfo("Starting preparation run", common.Fields{"run_id": runID, "rows": ds.Len()})

	// Clean
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts.stageStarted(StageClean, ds.Len())
	raw, err := ds.Column(opts.TextColumn)
	if err != nil {
		return nil, err
	}
	cleaned, err := ds.WithColumn(opts.CleanColumn, cleaner.CleanAll(raw, opts.Hooks.RowCleaned))
	if err != nil {
		return nil, fmt.Errorf("failed to store cleaned text: %w", err)
	}

	// Filter
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts.stageStarted(StageFilter, cleaned.Len())
	filtered, err := prep.FilterByLength(cleaned, opts.CleanColumn, opts.MinWords, opts.MaxWords)
	if err != nil {
		return nil, fmt.Errorf("failed to filter reviews: %w", err)
	}
	common.LogInfo("Filtered reviews by length", common.Fields{
		"run_id":  runID,
		"kept":    filtered.Len(),
		"dropped": cleaned.Len() - filtered.Len(),
	})

	// Balance
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts.stageStarted(StageBalance, filtered.Len())
	balanced, err := prep.Balance(filtered, opts.LabelColumn, opts.SamplesPerClass, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to balance dataset: %w", err)
	}
	common.LogInfo("Balanced dataset", common.Fields{
		"run_id":            runID,
		"rows":              balanced.Len(),
		"samples_per_class": opts.SamplesPerClass,
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result, err := splitAndVectorize(balanced, opts)
	if err != nil {
		return nil, err
	}

	result.Stats.RunID = runID
	result.Stats.Loaded = ds.Len()
	result.Stats.Filtered = filtered.Len()
	result.Stats.Balanced = balanced.Len()
	result.Stats.Duration = time.Since(start)

	common.LogInfo("Preparation run complete", common.Fields{
		"run_id":   runID,
		"train":    result.Stats.Train,
		"test":     result.Stats.Test,
		"features": result.Stats.Features,
		"duration": result.Stats.Duration,
	})

	return result, nil
}

// SplitAndVectorize splits an already balanced dataset into stratified train and
// test parts, fits the vectorizer on the training text only and applies it to both.
// It reads opts.CleanColumn as the text column.
func SplitAndVectorize(ds *model.Dataset, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return splitAndVectorize(ds, opts)
}

func splitAndVectorize(ds *model.Dataset, opts Options) (*Result, error) {
	opts.stageStarted(StageSplit, ds.Len())
	split, err := prep.StratifiedSplit(ds, opts.LabelColumn, opts.TestSize, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to split dataset: %w", err)
	}

	trainText, err := split.Train.Column(opts.CleanColumn)
	if err != nil {
		return nil, err
	}
	testText, err := split.Test.Column(opts.CleanColumn)
	if err != nil {
		return nil, err
	}
	trainLabels, err := labels(split.Train, opts.LabelColumn)
	if err != nil {
		return nil, err
	}
	testLabels, err := labels(split.Test, opts.LabelColumn)
	if err != nil {
		return nil, err
	}

	opts.stageStarted(StageVectorize, len(trainText))
	vecModel, trainMatrix, err := vectorize.FitTransform(trainText, vectorize.Options{
		MaxFeatures:    opts.MaxFeatures,
		MinTokenLength: opts.MinTokenLength,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fit vectorizer: %w", err)
	}
	testMatrix := vecModel.Transform(testText)

	return &Result{
		TrainMatrix: trainMatrix,
		TestMatrix:  testMatrix,
		Model:       vecModel,
		TrainLabels: trainLabels,
		TestLabels:  testLabels,
		Stats: Stats{
			Train:       len(trainLabels),
			Test:        len(testLabels),
			Features:    vecModel.NumFeatures(),
			TrainCounts: countLabels(trainLabels),
			TestCounts:  countLabels(testLabels),
		},
	}, nil
}

func (o Options) stageStarted(stage Stage, rows int) {
	common.LogDebug("Pipeline stage", common.Fields{"stage": string(stage), "rows": rows})
	if o.Hooks.StageStarted != nil {
		o.Hooks.StageStarted(stage, rows)
	}
}

func labels(ds *model.Dataset, column string) ([]string, error) {
	values, err := ds.Column(column)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		values[i] = model.NormalizeLabel(v)
	}
	return values, nil
}

func countLabels(values []string) []model.LabelCount {
	counts := make(map[string]int)
	for _, v := range values {
		counts[v]++
	}
	return model.SortedCounts(counts)
}
