// internal/solver/evaluate.go
//
// One-ply guess evaluation and the best-guess search.
//
// The search is a two-level map/reduce:
//   - outer map over the guess pool (split across workers),
//   - inner map over the feasible answers (ExpectedRemaining),
//   - reduce in guess pool order, first strict minimum wins.

package solver

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Evaluator scores a guess against the feasible answers. Lower is better.
type Evaluator func(guess string, feasible []string) float64

// ExpectedRemaining returns the expected size of the feasible set after
// playing guess, with the answer drawn uniformly from feasible.
//
// Every answer a contributes |Filter(feasible, guess, Score(guess, a))|.
// Answers sharing a pattern share that count, so a pattern class of size c
// contributes c*c to the sum.
//
// Words that are not uppercase A-Z of the guess length make the guess
// unusable: the result is +Inf.
func ExpectedRemaining(guess string, feasible []string) float64 {
	if len(feasible) == 0 {
		return 0
	}
	if err := checkWords(len(guess), []string{guess}, feasible); err != nil {
		return math.Inf(1)
	}
	return expectedRemaining(guess, feasible)
}

// expectedRemaining is ExpectedRemaining without validation.
func expectedRemaining(guess string, feasible []string) float64 {
	if len(feasible) == 0 {
		return 0
	}
	classes := make(map[Pattern]int, len(feasible))
	for _, answer := range feasible {
		classes[score(guess, answer)]++
	}
	total := 0
	for _, c := range classes {
		total += c * c
	}
	return float64(total) / float64(len(feasible))
}

// Best is the outcome of a search.
type Best struct {
	Guess string
	Score float64
	Index int // position of Guess in the guess pool
}

// Search finds the guess minimizing an Evaluator over a guess pool.
// The zero value evaluates with ExpectedRemaining on a single worker.
type Search struct {
	Evaluate Evaluator
	Workers  int
	Reporter Reporter
}

// BestGuess evaluates every guess in pool against feasible and returns the
// first guess, in pool order, that reaches the minimum score. Reporter sees
// GuessEvaluated and BestImproved in pool order regardless of Workers.
//
// All words must be uppercase A-Z of one length, otherwise BestGuess fails
// with ErrInvalidInput before evaluating anything.
func (s *Search) BestGuess(ctx context.Context, pool, feasible []string) (Best, error) {
	if len(pool) == 0 {
		return Best{}, ErrEmptyPool
	}
	if err := checkWords(len(pool[0]), pool, feasible); err != nil {
		return Best{}, fmt.Errorf("best guess search: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Best{}, fmt.Errorf("best guess search: %w", err)
	}
	eval := s.Evaluate
	if eval == nil {
		eval = expectedRemaining
	}
	rep := s.Reporter
	if rep == nil {
		rep = NopReporter{}
	}
	workers := s.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(pool) {
		workers = len(pool)
	}

	rep.SearchStarted(len(pool))

	scores := make([]float64, len(pool))
	done := make(chan int, len(pool))
	var next atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				i := int(next.Add(1) - 1)
				if i >= len(pool) {
					return nil
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				scores[i] = eval(pool[i], feasible)
				done <- i
			}
		})
	}

	var werr error
	go func() {
		werr = g.Wait()
		close(done)
	}()

	best := Best{Score: math.Inf(1), Index: -1}
	ready := make([]bool, len(pool))
	cursor := 0
	for i := range done {
		ready[i] = true
		for cursor < len(pool) && ready[cursor] {
			sc := scores[cursor]
			rep.GuessEvaluated(pool[cursor], sc)
			if sc < best.Score {
				best = Best{Guess: pool[cursor], Score: sc, Index: cursor}
				rep.BestImproved(best.Guess, best.Score)
			}
			cursor++
		}
	}
	if werr != nil {
		return Best{}, fmt.Errorf("best guess search: %w", werr)
	}
	if best.Index < 0 {
		return Best{}, fmt.Errorf("best guess search: no finite score in %d guesses", len(pool))
	}
	return best, nil
}

// checkWords verifies that every word of every list is length letters A-Z.
func checkWords(length int, lists ...[]string) error {
	for _, list := range lists {
		for _, w := range list {
			if len(w) != length {
				return fmt.Errorf("%w: %q is not %d letters", ErrInvalidInput, w, length)
			}
			if !isUpperAlpha(w) {
				return fmt.Errorf("%w: %q must be uppercase A-Z", ErrInvalidInput, w)
			}
		}
	}
	return nil
}
