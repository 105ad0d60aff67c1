package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/Veraticus/reviewprep/internal/common"
	"github.com/Veraticus/reviewprep/internal/config"
	"github.com/Veraticus/reviewprep/internal/model"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ValueFetcher reads the raw cell values of a spreadsheet range.
type ValueFetcher interface {
	Values(ctx context.Context, spreadsheetID, readRange string) ([][]any, error)
}

// SheetsSource reads a range whose first row is the header.
type SheetsSource struct {
	fetcher       ValueFetcher
	SpreadsheetID string
	Range         string
	Retry         common.RetryOptions
}

// NewSheetsSource creates a source reading cfg's range through fetcher.
func NewSheetsSource(fetcher ValueFetcher, cfg config.SheetsConfig) *SheetsSource {
	return &SheetsSource{
		fetcher:       fetcher,
		SpreadsheetID: cfg.SpreadsheetID,
		Range:         cfg.Range,
		Retry: common.RetryOptions{
			MaxAttempts:  cfg.RetryAttempts,
			InitialDelay: cfg.RetryDelay,
			MaxDelay:     cfg.RetryMaxDelay,
		},
	}
}

// Load fetches the range, retrying transient API failures.
func (s *SheetsSource) Load(ctx context.Context) (*model.Dataset, error) {
	var values [][]any
	err := common.WithRetry(ctx, func() error {
		var fetchErr error
		values, fetchErr = s.fetcher.Values(ctx, s.SpreadsheetID, s.Range)
		return classifyAPIError(fetchErr)
	}, s.Retry)
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet %s: %w", s.SpreadsheetID, err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%w: range %s is empty", common.ErrEmptyDataset, s.Range)
	}

	header := make([]string, len(values[0]))
	for i, v := range values[0] {
		header[i] = strings.TrimSpace(formatCell(v))
	}

	rows := make([][]string, 0, len(values)-1)
	for _, raw := range values[1:] {
		row := make([]string, len(raw))
		for i, v := range raw {
			row[i] = formatCell(v)
		}
		rows = append(rows, row)
	}

	slog.Debug("Loaded spreadsheet range",
		"spreadsheet_id", s.SpreadsheetID,
		"range", s.Range,
		"rows", len(rows))

	return model.NewDataset(header, rows)
}

// classifyAPIError marks client errors as permanent and rate limits as such.
func classifyAPIError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	switch {
	case apiErr.Code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", common.ErrRateLimit, err)
	case apiErr.Code >= 500:
		return &common.RetryableError{Err: err, Retryable: true}
	default:
		return &common.RetryableError{Err: err, Retryable: false}
	}
}

// serviceFetcher reads values through the Sheets API.
type serviceFetcher struct {
	service *sheets.Service
}

func (f *serviceFetcher) Values(ctx context.Context, spreadsheetID, readRange string) ([][]any, error) {
	resp, err := f.service.Spreadsheets.Values.Get(spreadsheetID, readRange).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// NewSheetsFetcher creates an authenticated read-only Sheets client.
// A service account key takes priority; otherwise the refresh token comes from
// the configuration or from the saved token file.
func NewSheetsFetcher(ctx context.Context, cfg config.SheetsConfig) (ValueFetcher, error) {
	var tokenSource oauth2.TokenSource

	if cfg.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(cfg.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsReadonlyScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		token := &oauth2.Token{
			RefreshToken: cfg.RefreshToken,
			TokenType:    "Bearer",
		}
		if token.RefreshToken == "" {
			saved, err := LoadToken(cfg.TokenFile)
			if err != nil {
				return nil, common.NewUserError(
					"no Google Sheets token found; run 'reviewprep auth sheets' first",
					fmt.Errorf("failed to load token file: %w", err))
			}
			token = saved
		}

		tokenSource = oauthConfig(cfg.ClientID, cfg.ClientSecret, "").TokenSource(ctx, token)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return &serviceFetcher{service: srv}, nil
}
