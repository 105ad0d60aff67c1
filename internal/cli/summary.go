package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Veraticus/reviewprep/internal/model"
	"github.com/Veraticus/reviewprep/internal/pipeline"
)

// RenderResult formats the matrix shapes and per-class counts of a run.
func RenderResult(res *pipeline.Result) string {
	stats := res.Stats

	var lines []string
	lines = append(lines,
		fmt.Sprintf("%s %s", BoldStyle.Render("Train matrix:"), res.TrainMatrix.Shape()),
		fmt.Sprintf("%s %s", BoldStyle.Render("Test matrix: "), res.TestMatrix.Shape()),
		SubtleStyle.Render(fmt.Sprintf("rows loaded %d, after length filter %d, after balancing %d",
			stats.Loaded, stats.Filtered, stats.Balanced)),
		SubtleStyle.Render(fmt.Sprintf("vocabulary %d terms, run %s in %s",
			stats.Features, stats.RunID, stats.Duration.Round(time.Millisecond))),
	)

	var b strings.Builder
	b.WriteString(RenderBox(ChartIcon+" Preparation complete", strings.Join(lines, "\n")))
	b.WriteString("\n")
	b.WriteString(LabelTable([]string{"Train", "Test"}, stats.TrainCounts, stats.TestCounts))
	b.WriteString("\n")
	return b.String()
}

// RenderDataset describes columns, row count and the label distribution of ds.
func RenderDataset(ds *model.Dataset, labelColumn string) (string, error) {
	var b strings.Builder
	b.WriteString(FormatTitle("Dataset"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d\n", BoldStyle.Render("Rows:"), ds.Len())
	fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("Columns:"), strings.Join(ds.Columns(), ", "))

	if !ds.HasColumn(labelColumn) {
		b.WriteString(FormatWarning(fmt.Sprintf("label column %q not found", labelColumn)))
		b.WriteString("\n")
		return b.String(), nil
	}

	counts, err := ds.LabelCounts(labelColumn)
	if err != nil {
		return "", err
	}
	b.WriteString(LabelTable([]string{"Rows"}, model.SortedCounts(counts)))
	b.WriteString("\n")
	return b.String(), nil
}

// Print writes s to w.
func Print(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
