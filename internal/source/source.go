// Package source loads review datasets from CSV/TSV files, SQLite databases
// and Google Sheets ranges.
package source

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Veraticus/reviewprep/internal/common"
	"github.com/Veraticus/reviewprep/internal/config"
	"github.com/Veraticus/reviewprep/internal/model"
)

// Source produces a dataset. Implementations read their input once per call.
type Source interface {
	Load(ctx context.Context) (*model.Dataset, error)
}

// Open builds the Source described by cfg. The format must already be resolved
// (config.Load falls back to the file extension).
func Open(ctx context.Context, cfg config.InputConfig) (Source, error) {
	switch cfg.Format {
	case config.FormatCSV:
		return NewCSVSource(cfg.Path, ','), nil
	case config.FormatTSV:
		return NewCSVSource(cfg.Path, '\t'), nil
	case config.FormatSQLite:
		src := OpenSQLite(cfg.Path, cfg.Table)
		src.Query = cfg.Query
		return src, nil
	case config.FormatSheets:
		if err := cfg.Sheets.Validate(); err != nil {
			return nil, err
		}
		fetcher, err := NewSheetsFetcher(ctx, cfg.Sheets)
		if err != nil {
			return nil, err
		}
		return NewSheetsSource(fetcher, cfg.Sheets), nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, cfg.Format)
	}
}

// formatCell renders a database or spreadsheet value as dataset text.
// Integral floats lose their trailing ".0" so a rating stored as 5.0 reads "5".
func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
