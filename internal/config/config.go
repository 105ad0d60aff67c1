// Package config loads and validates the settings of a preparation run.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Veraticus/reviewprep/internal/common"
	"github.com/Veraticus/reviewprep/internal/pipeline"
	"github.com/Veraticus/reviewprep/internal/textclean"
	"github.com/spf13/viper"
)

// Input formats.
const (
	FormatCSV    = "csv"
	FormatTSV    = "tsv"
	FormatSQLite = "sqlite"
	FormatSheets = "sheets"
)

// Config is the complete configuration of one run.
type Config struct {
	Input   InputConfig
	Text    TextConfig
	Logging LoggingConfig
	Prep    PrepConfig
}

// InputConfig selects where the dataset comes from.
type InputConfig struct {
	Sheets SheetsConfig
	Path   string
	Format string
	Table  string
	Query  string
}

// TextConfig selects the language resources of the cleaner.
type TextConfig struct {
	StopwordsFile  string
	Lemmatizer     string
	ExtraStopwords []string
}

// LoggingConfig controls slog output.
type LoggingConfig struct {
	Level  string
	Format string
}

// PrepConfig mirrors pipeline.Options.
type PrepConfig struct {
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

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("prep.text_column", pipeline.DefaultTextColumn)
	v.SetDefault("prep.label_column", pipeline.DefaultLabelColumn)
	v.SetDefault("prep.clean_column", pipeline.DefaultCleanColumn)
	v.SetDefault("prep.min_words", pipeline.DefaultMinWords)
	v.SetDefault("prep.max_words", pipeline.DefaultMaxWords)
	v.SetDefault("prep.samples_per_class", pipeline.DefaultSamplesPerClass)
	v.SetDefault("prep.test_size", pipeline.DefaultTestSize)
	v.SetDefault("prep.max_features", pipeline.DefaultMaxFeatures)
	v.SetDefault("prep.min_token_length", 0)
	v.SetDefault("prep.seed", pipeline.DefaultSeed)

	v.SetDefault("input.table", "reviews")
	v.SetDefault("input.sheets.range", "A:Z")
	v.SetDefault("input.sheets.retry_attempts", 3)
	v.SetDefault("input.sheets.retry_delay", time.Second)
	v.SetDefault("input.sheets.retry_max_delay", 30*time.Second)

	v.SetDefault("text.lemmatizer", textclean.LemmatizerGolem)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load reads a Config from v. Defaults must already be registered with SetDefaults.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Input: InputConfig{
			Path:   ExpandPath(v.GetString("input.path")),
			Format: strings.ToLower(strings.TrimSpace(v.GetString("input.format"))),
			Table:  v.GetString("input.table"),
			Query:  v.GetString("input.query"),
			Sheets: LoadSheetsConfig(v),
		},
		Text: TextConfig{
			StopwordsFile:  ExpandPath(v.GetString("text.stopwords_file")),
			ExtraStopwords: v.GetStringSlice("text.extra_stopwords"),
			Lemmatizer:     v.GetString("text.lemmatizer"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
		Prep: PrepConfig{
			TextColumn:      v.GetString("prep.text_column"),
			LabelColumn:     v.GetString("prep.label_column"),
			CleanColumn:     v.GetString("prep.clean_column"),
			MinWords:        v.GetInt("prep.min_words"),
			MaxWords:        v.GetInt("prep.max_words"),
			SamplesPerClass: v.GetInt("prep.samples_per_class"),
			TestSize:        v.GetFloat64("prep.test_size"),
			MaxFeatures:     v.GetInt("prep.max_features"),
			MinTokenLength:  v.GetInt("prep.min_token_length"),
			Seed:            v.GetInt64("prep.seed"),
		},
	}

	if cfg.Input.Format == "" {
		cfg.Input.Format = DetectFormat(cfg.Input.Path)
	}

	return cfg, nil
}

// DetectFormat infers the input format from a file extension, defaulting to CSV.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return FormatTSV
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatCSV
	}
}

// Validate checks the input section and the preparation parameters.
func (c *Config) Validate() error {
	var errs []error

	switch c.Input.Format {
	case FormatCSV, FormatTSV, FormatSQLite:
		if c.Input.Path == "" {
			errs = append(errs, fmt.Errorf("%w: input path is required for %s input", common.ErrMissingConfig, c.Input.Format))
		}
	case FormatSheets:
		if err := c.Input.Sheets.Validate(); err != nil {
			errs = append(errs, err)
		}
	default:
		errs = append(errs, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, c.Input.Format))
	}

	if c.Input.Format == FormatSQLite && c.Input.Query == "" {
		if err := common.ValidateIdentifier(c.Input.Table); err != nil {
			errs = append(errs, err)
		}
	}

	if err := c.PipelineOptions().Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// PipelineOptions converts the prep section into pipeline options.
func (c *Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		TextColumn:      c.Prep.TextColumn,
		LabelColumn:     c.Prep.LabelColumn,
		CleanColumn:     c.Prep.CleanColumn,
		MinWords:        c.Prep.MinWords,
		MaxWords:        c.Prep.MaxWords,
		SamplesPerClass: c.Prep.SamplesPerClass,
		TestSize:        c.Prep.TestSize,
		MaxFeatures:     c.Prep.MaxFeatures,
		MinTokenLength:  c.Prep.MinTokenLength,
		Seed:            c.Prep.Seed,
	}
}

// ResourceOptions converts the text section into cleaner resource options.
func (c *Config) ResourceOptions() textclean.ResourceOptions {
	return textclean.ResourceOptions{
		StopwordsFile:  c.Text.StopwordsFile,
		ExtraStopwords: c.Text.ExtraStopwords,
		Lemmatizer:     c.Text.Lemmatizer,
	}
}
