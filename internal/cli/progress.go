package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/reviewprep/internal/pipeline"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Progress renders pipeline progress: a bar while cleaning and one line per later stage.
// A disabled Progress writes nothing.
type Progress struct {
	writer  io.Writer
	bar     *progressbar.ProgressBar
	enabled bool
}

// NewProgress creates a progress reporter on w.
func NewProgress(w io.Writer, enabled bool) *Progress {
	return &Progress{writer: w, enabled: enabled}
}

// Hooks returns pipeline hooks that drive this reporter.
func (p *Progress) Hooks() pipeline.Hooks {
	if !p.enabled {
		return pipeline.Hooks{}
	}
	return pipeline.Hooks{
		StageStarted: p.stageStarted,
		RowCleaned:   p.rowCleaned,
	}
}

func (p *Progress) stageStarted(stage pipeline.Stage, rows int) {
	p.Finish()

	if stage == pipeline.StageClean {
		p.bar = newCleaningBar(p.writer, rows)
		return
	}

	if _, err := fmt.Fprintln(p.writer, SubtleStyle.Render(fmt.Sprintf("→ %s (%d rows)", stage, rows))); err != nil {
		slog.Warn("Failed to write progress", "error", err)
	}
}

func (p *Progress) rowCleaned() {
	if p.bar == nil {
		return
	}
	if err := p.bar.Add(1); err != nil {
		slog.Debug("Failed to update progress bar", "error", err)
	}
}

// Finish completes the current bar, if any.
func (p *Progress) Finish() {
	if p.bar == nil {
		return
	}
	if err := p.bar.Finish(); err != nil {
		slog.Debug("Failed to finish progress bar", "error", err)
	}
	p.bar = nil
}

func newCleaningBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Cleaning reviews...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
