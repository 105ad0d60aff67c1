package source

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Veraticus/reviewprep/internal/common"
	"github.com/Veraticus/reviewprep/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteSource reads a table, or the result of Query, from a SQLite database.
type SQLiteSource struct {
	db    *sql.DB
	path  string
	Table string
	// Query replaces the default SELECT * over Table when set.
	Query string
}

// NewSQLiteSource reads from an already open database. The caller owns db.
func NewSQLiteSource(db *sql.DB, table string) *SQLiteSource {
	return &SQLiteSource{db: db, Table: table}
}

// OpenSQLite reads from the database file at path. The file is opened
// read-only for the duration of each Load.
func OpenSQLite(path, table string) *SQLiteSource {
	return &SQLiteSource{path: path, Table: table}
}

// Load runs the query and converts every row to text.
func (s *SQLiteSource) Load(ctx context.Context) (*model.Dataset, error) {
	query := s.Query
	if query == "" {
		if err := common.ValidateIdentifier(s.Table); err != nil {
			return nil, err
		}
		query = fmt.Sprintf("SELECT * FROM %q", s.Table)
	}

	db := s.db
	if db == nil {
		var err error
		db, err = sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", s.path))
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		defer func() { _ = db.Close() }()
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	var records [][]string
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row %d: %w", len(records)+1, err)
		}
		record := make([]string, len(columns))
		for i, v := range values {
			record[i] = formatCell(v)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	slog.Debug("Loaded SQLite rows",
		"table", s.Table,
		"rows", len(records))

	return model.NewDataset(columns, records)
}
