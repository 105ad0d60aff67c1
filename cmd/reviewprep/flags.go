package main

import (
	"strings"

	"github.com/Veraticus/reviewprep/internal/pipeline"
	"github.com/Veraticus/reviewprep/internal/textclean"
	"github.com/spf13/cobra"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "input file (CSV, TSV or SQLite database)")
	cmd.Flags().String("format", "", "input format: csv, tsv, sqlite or sheets (default: from file extension)")
	cmd.Flags().String("table", "reviews", "SQLite table to read")
	cmd.Flags().String("query", "", "SQLite query to run instead of reading the whole table")
	cmd.Flags().String("spreadsheet-id", "", "Google Sheets spreadsheet ID")
	cmd.Flags().String("range", "A:Z", "Google Sheets range to read")
	cmd.Flags().String("label-column", pipeline.DefaultLabelColumn, "column holding the rating")
}

func addTextFlags(cmd *cobra.Command) {
	cmd.Flags().String("lemmatizer", textclean.LemmatizerGolem, "lemmatizer: golem or none")
	cmd.Flags().String("stopwords-file", "", "stopword list replacing the bundled English list")
}

func addPrepFlags(cmd *cobra.Command) {
	cmd.Flags().String("text-column", pipeline.DefaultTextColumn, "column holding the review text")
	cmd.Flags().Int("min-words", pipeline.DefaultMinWords, "minimum words per cleaned review")
	cmd.Flags().Int("max-words", pipeline.DefaultMaxWords, "maximum words per cleaned review")
	cmd.Flags().Int("samples-per-class", pipeline.DefaultSamplesPerClass, "reviews sampled from each rating")
	cmd.Flags().Float64("test-size", pipeline.DefaultTestSize, "fraction of reviews held out for testing")
	cmd.Flags().Int("max-features", pipeline.DefaultMaxFeatures, "vocabulary size limit (0 for unlimited)")
	cmd.Flags().Int64("seed", pipeline.DefaultSeed, "random seed for sampling and splitting")
}
