package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Veraticus/reviewprep/internal/common"
	"github.com/Veraticus/reviewprep/internal/model"
)

const utf8BOM = "\ufeff"

// CSVSource reads a delimited text file whose first record is the header.
type CSVSource struct {
	Path  string
	Comma rune
}

// NewCSVSource creates a source for path. Use ',' for CSV and '\t' for TSV.
func NewCSVSource(path string, comma rune) *CSVSource {
	return &CSVSource{Path: path, Comma: comma}
}

// Load reads the whole file.
func (s *CSVSource) Load(ctx context.Context) (*model.Dataset, error) {
	f, err := os.Open(s.Path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	ds, err := ReadDelimited(ctx, f, s.Comma)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}

	slog.Debug("Loaded delimited file",
		"path", s.Path,
		"rows", ds.Len(),
		"columns", len(ds.Columns()))

	return ds, nil
}

// ReadDelimited parses delimited records from r. Short records are padded with
// empty cells; a UTF-8 byte order mark before the header is dropped.
func ReadDelimited(ctx context.Context, r io.Reader, comma rune) (*model.Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = comma == '\t'

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no header row", common.ErrEmptyDataset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)
	for i, name := range header {
		header[i] = strings.TrimSpace(name)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record %d: %w", len(rows)+1, err)
		}
		rows = append(rows, record)

		if len(rows)%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}

	return model.NewDataset(header, rows)
}
