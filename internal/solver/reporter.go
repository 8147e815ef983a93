package solver

import "github.com/rs/zerolog"

// Reporter receives progress events from a Session and its Search.
// Events are delivered from a single goroutine.
type Reporter interface {
	SearchStarted(total int)
	GuessEvaluated(guess string, score float64)
	BestImproved(guess string, score float64)
	FeasibleChanged(words []string)
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) SearchStarted(int)              {}
func (NopReporter) GuessEvaluated(string, float64) {}
func (NopReporter) BestImproved(string, float64)   {}
func (NopReporter) FeasibleChanged([]string)       {}

// maxLoggedWords caps the word list attached to feasible-set log lines.
const maxLoggedWords = 50

// LogReporter writes improvements and feasible-set changes to a zerolog logger.
type LogReporter struct {
	Logger zerolog.Logger
}

func (r LogReporter) SearchStarted(total int) {
	r.Logger.Debug().Int("guesses", total).Msg("searching guess pool")
}

func (r LogReporter) GuessEvaluated(guess string, score float64) {
	r.Logger.Trace().Str("guess", guess).Float64("score", score).Msg("evaluated")
}

func (r LogReporter) BestImproved(guess string, score float64) {
	r.Logger.Info().Str("guess", guess).Float64("score", score).Msg("new best guess")
}

func (r LogReporter) FeasibleChanged(words []string) {
	ev := r.Logger.Info().Int("feasible", len(words))
	if len(words) <= maxLoggedWords {
		ev = ev.Strs("words", words)
	}
	ev.Msg("words still feasible")
}

// Tee fans every event out to each reporter in order.
type Tee []Reporter

func (t Tee) SearchStarted(total int) {
	for _, r := range t {
		r.SearchStarted(total)
	}
}

func (t Tee) GuessEvaluated(guess string, score float64) {
	for _, r := range t {
		r.GuessEvaluated(guess, score)
	}
}

func (t Tee) BestImproved(guess string, score float64) {
	for _, r := range t {
		r.BestImproved(guess, score)
	}
}

func (t Tee) FeasibleChanged(words []string) {
	for _, r := range t {
		r.FeasibleChanged(words)
	}
}
