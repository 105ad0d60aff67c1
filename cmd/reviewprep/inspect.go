package main

import (
	"github.com/Veraticus/reviewprep/internal/cli"
	"github.com/spf13/cobra"
)

func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the columns and rating distribution of a dataset",
		RunE:  runInspect,
	}

	addInputFlags(cmd)

	return cmd
}

func runInspect(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ds, err := loadDataset(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	out, err := cli.RenderDataset(ds, cfg.Prep.LabelColumn)
	if err != nil {
		return err
	}
	return cli.Print(cmd.OutOrStdout(), out)
}
