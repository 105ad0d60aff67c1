// Package pipeline chains cleaning, length filtering, class balancing, stratified
// splitting and TF-IDF vectorization into one run over an in-memory dataset.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/Veraticus/reviewprep/internal/common"
)

// Default parameter values.
const (
	DefaultTextColumn      = "Review_text"
	DefaultLabelColumn     = "Rating"
	DefaultCleanColumn     = "clean_text"
	DefaultMinWords        = 3
	DefaultMaxWords        = 200
	DefaultSamplesPerClass = 5000
	DefaultTestSize        = 0.2
	DefaultMaxFeatures     = 5000
	DefaultSeed            = 42
)

// Stage names a pipeline step.
type Stage string

// Pipeline stages in execution order.
const (
	StageClean     Stage = "clean"
	StageFilter    Stage = "filter"
	StageBalance   Stage = "balance"
	StageSplit     Stage = "split"
	StageVectorize Stage = "vectorize"
)

// Hooks receive progress notifications. Nil hooks are skipped.
type Hooks struct {
	// StageStarted is called before each stage with the number of input rows.
	StageStarted func(stage Stage, rows int)
	// RowCleaned is called once per cleaned row.
	RowCleaned func()
}

// Options holds every parameter of a run. CleanColumn receives the cleaned
// text; filtering, splitting and vectorizing read it instead of TextColumn.
type Options struct {
	Hooks           Hooks
	TextColumn      string
	LabelColumn     string
	CleanColumn     string
	MinWords        int
	MaxWords        int
	SamplesPerClass int
	TestSize        float64
	MaxFeatures     int
	MinTokenLength  int
	Seed            int64
}

// DefaultOptions returns the standard review-rating configuration.
func DefaultOptions() Options {
	return Options{
		TextColumn:      DefaultTextColumn,
		LabelColumn:     DefaultLabelColumn,
		CleanColumn:     DefaultCleanColumn,
		MinWords:        DefaultMinWords,
		MaxWords:        DefaultMaxWords,
		SamplesPerClass: DefaultSamplesPerClass,
		TestSize:        DefaultTestSize,
		MaxFeatures:     DefaultMaxFeatures,
		Seed:            DefaultSeed,
	}
}

// Validate reports every invalid field at once.
func (o Options) Validate() error {
	var problems []string

	if strings.TrimSpace(o.TextColumn) == "" {
		problems = append(problems, "text column is required")
	}
	if strings.TrimSpace(o.LabelColumn) == "" {
		problems = append(problems, "label column is required")
	}
	if strings.TrimSpace(o.CleanColumn) == "" {
		problems = append(problems, "clean column is required")
	}
	if o.CleanColumn != "" && o.CleanColumn == o.LabelColumn {
		problems = append(problems, "clean column must differ from label column")
	}
	if o.MinWords < 0 || o.MinWords > o.MaxWords {
		problems = append(problems, fmt.Sprintf("word bounds [%d, %d] are invalid", o.MinWords, o.MaxWords))
	}
	if o.SamplesPerClass <= 0 {
		problems = append(problems, "samples per class must be positive")
	}
	if !(o.TestSize > 0 && o.TestSize < 1) {
		problems = append(problems, fmt.Sprintf("test size %v must be in (0, 1)", o.TestSize))
	}
	if o.MaxFeatures < 0 {
		problems = append(problems, "max features must not be negative")
	}
	if o.MinTokenLength < 0 {
		problems = append(problems, "min token length must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", common.ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
