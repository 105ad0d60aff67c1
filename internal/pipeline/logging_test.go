package pipeline

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/Veraticus/reviewprep/internal/common"
	"github.com/Veraticus/reviewprep/internal/testutil/reviews"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLogsCarryRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := common.NewLogger(&buf, slog.LevelDebug, "json")
	require.NoError(t, err)

	previous := slog.Default()
	slog.SetDefault(logger)
	t.Cleanup(func() { slog.SetDefault(previous) })

	ds := reviews.NewBuilder(t).WithFixture(reviews.FixtureBalanced).Build()
	result, err := Run(context.Background(), ds, testCleaner(), testOptions())
	require.NoError(t, err)

	messages := map[string]map[string]any{}
	var stages []string
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		msg, _ := entry["msg"].(string)
		messages[msg] = entry
		if msg == "Pipeline stage" {
			stages = append(stages, entry["stage"].(string))
		}
	}

	for _, msg := range []string{"Starting preparation run", "Filtered reviews by length", "Balanced dataset", "Preparation run complete"} {
		require.Contains(t, messages, msg)
		assert.Equal(t, result.Stats.RunID, messages[msg]["run_id"], msg)
	}
	assert.Equal(t, []string{"clean", "filter", "balance", "split", "vectorize"}, stages)
}
