package source

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/reviewprep/internal/common"
	"github.com/Veraticus/reviewprep/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	src, err := Open(ctx, config.InputConfig{Format: config.FormatCSV, Path: "a.csv"})
	require.NoError(t, err)
	assert.Equal(t, ',', src.(*CSVSource).Comma)

	src, err = Open(ctx, config.InputConfig{Format: config.FormatTSV, Path: "a.tsv"})
	require.NoError(t, err)
	assert.Equal(t, '\t', src.(*CSVSource).Comma)

	src, err = Open(ctx, config.InputConfig{Format: config.FormatSQLite, Path: "a.db", Table: "reviews", Query: "SELECT 1"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", src.(*SQLiteSource).Query)

	_, err = Open(ctx, config.InputConfig{Format: "parquet"})
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)

	_, err = Open(ctx, config.InputConfig{Format: config.FormatSheets})
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"text", "text"},
		{[]byte("bytes"), "bytes"},
		{int64(4), "4"},
		{4, "4"},
		{float64(5), "5"},
		{4.5, "4.5"},
		{true, "true"},
		{time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), "2024-03-01T12:00:00Z"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatCell(tt.in))
	}
}

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	token := &oauth2.Token{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"}

	require.NoError(t, SaveToken(path, token))

	loaded, err := LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "refresh", loaded.RefreshToken)
	assert.Equal(t, "access", loaded.AccessToken)

	_, err = LoadToken("")
	assert.Error(t, err)
}
