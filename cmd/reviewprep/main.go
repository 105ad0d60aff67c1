package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Veraticus/reviewprep/internal/cli"
	"github.com/Veraticus/reviewprep/internal/common"
	"github.com/Veraticus/reviewprep/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var version = "dev"

// flagKeys maps command-line flags to their configuration keys. Flags are bound
// when a command runs, so commands sharing a flag name never shadow each other.
var flagKeys = map[string]string{
	"log-level":         "logging.level",
	"log-format":        "logging.format",
	"input":             "input.path",
	"format":            "input.format",
	"table":             "input.table",
	"query":             "input.query",
	"spreadsheet-id":    "input.sheets.spreadsheet_id",
	"range":             "input.sheets.range",
	"text-column":       "prep.text_column",
	"label-column":      "prep.label_column",
	"min-words":         "prep.min_words",
	"max-words":         "prep.max_words",
	"samples-per-class": "prep.samples_per_class",
	"test-size":         "prep.test_size",
	"max-features":      "prep.max_features",
	"seed":              "prep.seed",
	"lemmatizer":        "text.lemmatizer",
	"stopwords-file":    "text.stopwords_file",
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reviewprep",
		Short: "📝 Review rating dataset preparation",
		Long: `reviewprep turns raw product reviews into TF-IDF feature matrices for
rating classification.

It cleans review text, filters reviews by length, balances the rating classes,
splits the data into stratified train and test sets and vectorizes both.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default: $HOME/.config/reviewprep/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	rootCmd.AddCommand(prepareCmd())
	rootCmd.AddCommand(cleanCmd())
	rootCmd.AddCommand(inspectCmd())
	rootCmd.AddCommand(authCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	handler := cli.NewInterruptHandler(os.Stderr)
	ctx, stop := handler.HandleInterrupts(context.Background())

	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		if !handler.WasInterrupted() {
			fmt.Fprintln(os.Stderr, formatError(err))
		}
		os.Exit(1)
	}
}

func formatError(err error) string {
	var userErr *common.UserError
	if errors.As(err, &userErr) {
		return cli.FormatError(userErr.UserMessage) + "\n" + cli.SubtleStyle.Render(err.Error())
	}
	return cli.FormatError(err.Error())
}

func initConfig(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		viper.AddConfigPath(filepath.Join(home, ".config", "reviewprep"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("REVIEWPREP")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = viper.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return fmt.Errorf("failed to bind flags: %w", bindErr)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	if err := setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setupLogging() error {
	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		return err
	}
	return common.SetupLogger(level, viper.GetString("logging.format"))
}

// loadConfig reads the typed configuration and validates it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, common.NewUserError("invalid configuration", err)
	}
	return cfg, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "reviewprep %s\n", version)
			return err
		},
	}
}
