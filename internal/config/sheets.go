package config

import (
	"fmt"
	"os"
	"time"

	"github.com/Veraticus/reviewprep/internal/common"
	"github.com/spf13/viper"
)

// SheetsConfig holds the settings for reading a dataset from Google Sheets.
type SheetsConfig struct {
	ClientID           string
	ClientSecret       string
	RefreshToken       string
	TokenFile          string
	ServiceAccountPath string
	SpreadsheetID      string
	Range              string
	RetryAttempts      int
	RetryDelay         time.Duration
	// RetryMaxDelay caps the backoff, including the wait after a rate limit response.
	RetryMaxDelay      time.Duration
}

// LoadSheetsConfig loads Google Sheets configuration from v and the environment.
// It follows this precedence:
// 1. Viper configuration (from config file or REVIEWPREP_ env vars)
// 2. Direct environment variables (GOOGLE_SHEETS_*)
// 3. Default values
func LoadSheetsConfig(v *viper.Viper) SheetsConfig {
	cfg := SheetsConfig{
		ServiceAccountPath: ExpandPath(v.GetString("input.sheets.service_account_path")),
		ClientID:           v.GetString("input.sheets.client_id"),
		ClientSecret:       v.GetString("input.sheets.client_secret"),
		RefreshToken:       v.GetString("input.sheets.refresh_token"),
		TokenFile:          ExpandPath(v.GetString("input.sheets.token_file")),
		SpreadsheetID:      v.GetString("input.sheets.spreadsheet_id"),
		Range:              v.GetString("input.sheets.range"),
		RetryAttempts:      v.GetInt("input.sheets.retry_attempts"),
		RetryDelay:         v.GetDuration("input.sheets.retry_delay"),
		RetryMaxDelay:      v.GetDuration("input.sheets.retry_max_delay"),
	}

	if cfg.ServiceAccountPath == "" {
		cfg.ServiceAccountPath = ExpandPath(os.Getenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH"))
	}
	if cfg.ClientID == "" {
		cfg.ClientID = os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
	}
	if cfg.ClientSecret == "" {
		cfg.ClientSecret = os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
	}
	if cfg.RefreshToken == "" {
		cfg.RefreshToken = os.Getenv("GOOGLE_SHEETS_REFRESH_TOKEN")
	}
	if cfg.SpreadsheetID == "" {
		cfg.SpreadsheetID = os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID")
	}

	return cfg
}

// HasOAuth reports whether OAuth2 client credentials are configured.
// The refresh token may come from RefreshToken or from TokenFile.
func (c SheetsConfig) HasOAuth() bool {
	return c.ClientID != "" && c.ClientSecret != "" && (c.RefreshToken != "" || c.TokenFile != "")
}

// Validate checks that exactly one authentication method and a spreadsheet are configured.
func (c SheetsConfig) Validate() error {
	hasServiceAccount := c.ServiceAccountPath != ""

	if !c.HasOAuth() && !hasServiceAccount {
		return fmt.Errorf("%w: no Google Sheets authentication configured; provide a service account path or OAuth2 credentials", common.ErrMissingConfig)
	}
	if c.HasOAuth() && hasServiceAccount {
		return fmt.Errorf("%w: multiple Google Sheets authentication methods configured; use either OAuth2 or a service account", common.ErrInvalidConfig)
	}
	if c.SpreadsheetID == "" {
		return fmt.Errorf("%w: spreadsheet ID is required", common.ErrMissingConfig)
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("%w: retry attempts cannot be negative", common.ErrInvalidConfig)
	}
	if c.RetryDelay < 0 || c.RetryMaxDelay < 0 {
		return fmt.Errorf("%w: retry delays cannot be negative", common.ErrInvalidConfig)
	}
	if c.RetryMaxDelay > 0 && c.RetryDelay > c.RetryMaxDelay {
		return fmt.Errorf("%w: retry delay %s exceeds retry max delay %s", common.ErrInvalidConfig, c.RetryDelay, c.RetryMaxDelay)
	}
	return nil
}
