package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/reviewprep/internal/cli"
	"github.com/Veraticus/reviewprep/internal/common"
	"github.com/Veraticus/reviewprep/internal/config"
	"github.com/Veraticus/reviewprep/internal/model"
	"github.com/Veraticus/reviewprep/internal/pipeline"
	"github.com/Veraticus/reviewprep/internal/source"
	"github.com/Veraticus/reviewprep/internal/textclean"
	"github.com/spf13/cobra"
)

func prepareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Build train and test TF-IDF matrices from a review dataset",
		Long: `Run the full preparation pipeline over a review dataset:

1. Clean each review (lowercase, strip punctuation, drop stopwords, lemmatize)
2. Keep reviews whose cleaned length is within [min-words, max-words]
3. Sample the same number of reviews from every rating
4. Split into stratified train and test sets
5. Fit TF-IDF on the training text and transform both sets

The matrix shapes and per-rating counts are printed when done.`,
		Example: `  reviewprep prepare -i reviews.csv
  reviewprep prepare -i reviews.db --table amazon --samples-per-class 1000
  reviewprep prepare --format sheets --spreadsheet-id 1AbC... --range 'Reviews!A:B'`,
		RunE: runPrepare,
	}

	addInputFlags(cmd)
	addTextFlags(cmd)
	addPrepFlags(cmd)
	cmd.Flags().Bool("no-progress", false, "disable the progress display")

	return cmd
}

func runPrepare(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cleaner, err := newCleaner(cfg)
	if err != nil {
		return err
	}

	ds, err := loadDataset(ctx, cfg)
	if err != nil {
		return err
	}

	noProgress, _ := cmd.Flags().GetBool("no-progress")
	progress := cli.NewProgress(cmd.ErrOrStderr(), !noProgress && cli.IsTerminal(cmd.ErrOrStderr()))

	opts := cfg.PipelineOptions()
	opts.Hooks = progress.Hooks()

	res, err := pipeline.Run(ctx, ds, cleaner, opts)
	progress.Finish()
	if err != nil {
		common.LogError(err, "Preparation run failed", common.Fields{
			"format": cfg.Input.Format,
			"rows":   ds.Len(),
		})
		return common.NewUserError("preparation failed", err)
	}

	return cli.Print(cmd.OutOrStdout(), cli.RenderResult(res))
}

func newCleaner(cfg *config.Config) (*textclean.Cleaner, error) {
	res, err := textclean.LoadResources(cfg.ResourceOptions())
	if err != nil {
		return nil, common.NewUserError("failed to load text resources", err)
	}
	return textclean.NewCleaner(res), nil
}

func loadDataset(ctx context.Context, cfg *config.Config) (*model.Dataset, error) {
	src, err := source.Open(ctx, cfg.Input)
	if err != nil {
		return nil, common.NewUserError("failed to open input", err)
	}

	ds, err := src.Load(ctx)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("failed to load %s input", cfg.Input.Format), err)
	}

	common.LogInfo("Loaded dataset", common.Fields{
		"format":  cfg.Input.Format,
		"rows":    ds.Len(),
		"columns": len(ds.Columns()),
	})

	return ds, nil
}
