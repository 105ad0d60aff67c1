package source

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Veraticus/reviewprep/internal/common"
	"github.com/Veraticus/reviewprep/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

type fakeFetcher struct {
	errs   []error
	values [][]any
	calls  int
}

func (f *fakeFetcher) Values(_ context.Context, _, _ string) ([][]any, error) {
	f.calls++
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return nil, err
	}
	return f.values, nil
}

func sheetsConfig() config.SheetsConfig {
	return config.SheetsConfig{
		SpreadsheetID: "sheet-id",
		Range:         "A:Z",
		RetryAttempts: 3,
		RetryDelay:    time.Millisecond,
		RetryMaxDelay: 5 * time.Millisecond,
	}
}

func TestSheetsSource_Load(t *testing.T) {
	fetcher := &fakeFetcher{values: [][]any{
		{"Review_text", "Rating"},
		{"Fantastic blender", float64(5)},
		{"Leaks everywhere", float64(1)},
		{"No rating given"},
	}}

	ds, err := NewSheetsSource(fetcher, sheetsConfig()).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Review_text", "Rating"}, ds.Columns())
	require.Equal(t, 3, ds.Len())
	assert.Equal(t, []string{"Fantastic blender", "5"}, ds.Row(0))
	assert.Equal(t, []string{"No rating given", ""}, ds.Row(2))
}

func TestSheetsSource_RetriesServerErrors(t *testing.T) {
	fetcher := &fakeFetcher{
		errs:   []error{&googleapi.Error{Code: http.StatusServiceUnavailable}},
		values: [][]any{{"Review_text", "Rating"}, {"ok", "3"}},
	}

	ds, err := NewSheetsSource(fetcher, sheetsConfig()).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
	assert.Equal(t, 2, fetcher.calls)
}

func TestSheetsSource_RateLimitWaitIsCapped(t *testing.T) {
	fetcher := &fakeFetcher{
		errs:   []error{&googleapi.Error{Code: http.StatusTooManyRequests}},
		values: [][]any{{"Review_text", "Rating"}, {"ok", "3"}},
	}

	src := NewSheetsSource(fetcher, sheetsConfig())
	assert.Equal(t, 5*time.Millisecond, src.Retry.MaxDelay)

	start := time.Now()
	ds, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
	assert.Equal(t, 2, fetcher.calls)
	assert.Less(t, time.Since(start), 5*time.Second, "rate limit wait follows RetryMaxDelay")
}

func TestSheetsSource_FinalErrorKeepsAPIDetails(t *testing.T) {
	unavailable := &googleapi.Error{Code: http.StatusServiceUnavailable}
	fetcher := &fakeFetcher{errs: []error{unavailable, unavailable, unavailable}}

	_, err := NewSheetsSource(fetcher, sheetsConfig()).Load(context.Background())
	require.ErrorIs(t, err, common.ErrMaxRetries)

	var apiErr *googleapi.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Code)
}

func TestSheetsSource_ClientErrorsAreNotRetried(t *testing.T) {
	fetcher := &fakeFetcher{errs: []error{&googleapi.Error{Code: http.StatusForbidden}}}

	_, err := NewSheetsSource(fetcher, sheetsConfig()).Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, fetcher.calls)
}

func TestSheetsSource_GivesUpAfterMaxAttempts(t *testing.T) {
	boom := errors.New("connection reset")
	fetcher := &fakeFetcher{errs: []error{boom, boom, boom}}

	_, err := NewSheetsSource(fetcher, sheetsConfig()).Load(context.Background())
	assert.ErrorIs(t, err, common.ErrMaxRetries)
	assert.Equal(t, 3, fetcher.calls)
}

func TestSheetsSource_EmptyRange(t *testing.T) {
	_, err := NewSheetsSource(&fakeFetcher{}, sheetsConfig()).Load(context.Background())
	assert.ErrorIs(t, err, common.ErrEmptyDataset)
}

func TestClassifyAPIError(t *testing.T) {
	assert.NoError(t, classifyAPIError(nil))
	assert.ErrorIs(t, classifyAPIError(&googleapi.Error{Code: http.StatusTooManyRequests}), common.ErrRateLimit)

	var retryable *common.RetryableError
	require.ErrorAs(t, classifyAPIError(&googleapi.Error{Code: http.StatusBadGateway}), &retryable)
	assert.True(t, retryable.Retryable)

	require.ErrorAs(t, classifyAPIError(&googleapi.Error{Code: http.StatusNotFound}), &retryable)
	assert.False(t, retryable.Retryable)
}
