package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Veraticus/reviewprep/internal/config"
	"github.com/Veraticus/reviewprep/internal/textclean"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func cleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [text...]",
		Short: "Clean review text and print the result",
		Long: `Clean each argument, or each line of standard input when no arguments are
given, and print one cleaned review per line.`,
		Example: `  reviewprep clean "This PRODUCT is Amazing!! Highly recommend it."
  cut -f1 reviews.tsv | reviewprep clean --lemmatizer none`,
		RunE: runClean,
	}

	addTextFlags(cmd)

	return cmd
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	cleaner, err := newCleaner(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) > 0 {
		for _, text := range args {
			if _, err := fmt.Fprintln(out, cleaner.Clean(text)); err != nil {
				return err
			}
		}
		return nil
	}

	return cleanLines(cmd.InOrStdin(), out, cleaner)
}

func cleanLines(in io.Reader, out io.Writer, cleaner *textclean.Cleaner) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	w := bufio.NewWriter(out)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(w, cleaner.Clean(scanner.Text())); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return w.Flush()
}
