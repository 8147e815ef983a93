package main

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// progressReporter draws one progress bar per best-guess search.
type progressReporter struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func newProgressReporter(w io.Writer) *progressReporter {
	return &progressReporter{w: w}
}

func (p *progressReporter) SearchStarted(total int) {
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionSetDescription("thinking"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionOnCompletion(func() { fmt.Fprint(p.w, "\r") }),
	)
}

func (p *progressReporter) GuessEvaluated(string, float64) {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

func (p *progressReporter) BestImproved(guess string, score float64) {
	if p.bar != nil {
		p.bar.Describe(fmt.Sprintf("best %s (%.2f)", guess, score))
	}
}

func (p *progressReporter) FeasibleChanged([]string) {}

var _ solver.Reporter = (*progressReporter)(nil)
