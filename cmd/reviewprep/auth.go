package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/Veraticus/reviewprep/internal/cli"
	"github.com/Veraticus/reviewprep/internal/config"
	"github.com/Veraticus/reviewprep/internal/source"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with external services",
		Long:  `Authenticate with external data sources like Google Sheets.`,
	}

	cmd.AddCommand(authSheetsCmd())

	return cmd
}

func authSheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Authenticate with Google Sheets",
		Long: `Authenticate with Google Sheets using OAuth2.

This command will:
1. Open your browser to authenticate with Google
2. Save the token to a local file for future runs

Point input.sheets.token_file at the saved file to read spreadsheets with it.`,
		RunE: runAuthSheets,
	}

	cmd.Flags().String("client-id", "", "OAuth2 Client ID (overrides config)")
	cmd.Flags().String("client-secret", "", "OAuth2 Client Secret (overrides config)")
	cmd.Flags().String("token-file", "", "where to save the token (default: $XDG_CONFIG_HOME/reviewprep/sheets-token.json)")
	cmd.Flags().String("listen", source.DefaultCallbackAddr, "address of the local OAuth2 callback server")

	return cmd
}

func runAuthSheets(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	sheetsCfg := config.LoadSheetsConfig(viper.GetViper())

	clientID := sheetsCfg.ClientID
	clientSecret := sheetsCfg.ClientSecret
	if flagID, _ := cmd.Flags().GetString("client-id"); flagID != "" {
		clientID = flagID
	}
	if flagSecret, _ := cmd.Flags().GetString("client-secret"); flagSecret != "" {
		clientSecret = flagSecret
	}
	if clientID == "" || clientSecret == "" {
		return fmt.Errorf("OAuth2 credentials not found. Please set input.sheets.client_id and input.sheets.client_secret in config or use --client-id and --client-secret flags")
	}

	tokenFile, _ := cmd.Flags().GetString("token-file")
	tokenFile = config.ExpandPath(tokenFile)
	if tokenFile == "" {
		tokenFile = sheetsCfg.TokenFile
	}
	if tokenFile == "" {
		var err error
		tokenFile, err = defaultTokenFile()
		if err != nil {
			return err
		}
	}
	listen, _ := cmd.Flags().GetString("listen")

	slog.Info("Starting Google Sheets authentication", "token_file", tokenFile)

	out := cmd.OutOrStdout()
	_, err := source.AuthenticateInteractive(ctx, source.OAuth2Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenFile:    tokenFile,
		CallbackAddr: listen,
	}, func(url string) {
		_, _ = fmt.Fprintln(out, cli.FormatInfo("Please visit this URL to authenticate:"))
		_, _ = fmt.Fprintln(out, url)
		openBrowser(url)
	})
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	_, err = fmt.Fprintln(out, cli.FormatSuccess("Google Sheets authentication complete. Token saved to "+tokenFile))
	return err
}

func defaultTokenFile() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "reviewprep", "sheets-token.json"), nil
}

func openBrowser(url string) {
	var err error
	switch runtime.GOOS {
	case "linux":
		err = exec.Command("xdg-open", url).Start() //nolint:gosec
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start() //nolint:gosec
	case "darwin":
		err = exec.Command("open", url).Start() //nolint:gosec
	}
	if err != nil {
		slog.Debug("Failed to open browser", "error", err)
	}
}
