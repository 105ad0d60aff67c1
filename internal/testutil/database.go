// Package testutil provides test utilities shared across packages.
package testutil

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/Veraticus/reviewprep/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// ReviewsDBOptions configures SetupReviewsDB.
type ReviewsDBOptions struct {
	// Types maps column names to SQL types; unlisted columns are TEXT.
	Types map[string]string
	Table string
	// NullEmpty stores empty cells as NULL instead of ''.
	NullEmpty bool
}

// SetupReviewsDB creates an in-memory SQLite database holding ds in one table.
// The database is closed automatically when the test ends.
//
// Example:
//
//	db := testutil.SetupReviewsDB(t, ds, testutil.ReviewsDBOptions{
//		Table: "reviews",
//		Types: map[string]string{"Rating": "INTEGER"},
//	})
func SetupReviewsDB(t *testing.T, ds *model.Dataset, opts ReviewsDBOptions) *sql.DB {
	t.Helper()

	if opts.Table == "" {
		opts.Table = "reviews"
	}

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	columns := ds.Columns()
	defs := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, c := range columns {
		typ := opts.Types[c]
		if typ == "" {
			typ = "TEXT"
		}
		defs[i] = fmt.Sprintf("%q %s", c, typ)
		placeholders[i] = "?"
	}

	create := fmt.Sprintf("CREATE TABLE %q (%s)", opts.Table, strings.Join(defs, ", "))
	if _, err := db.Exec(create); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}

	insert := fmt.Sprintf("INSERT INTO %q VALUES (%s)", opts.Table, strings.Join(placeholders, ", "))
	for i := range ds.Len() {
		row := ds.Row(i)
		args := make([]any, len(row))
		for j, v := range row {
			if v == "" && opts.NullEmpty {
				args[j] = nil
				continue
			}
			args[j] = v
		}
		if _, err := db.Exec(insert, args...); err != nil {
			t.Fatalf("failed to seed row %d: %v", i, err)
		}
	}

	return db
}
