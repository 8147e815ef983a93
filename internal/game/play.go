package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// DefaultMaxTurns bounds Autoplay when the caller passes 0.
const DefaultMaxTurns = 20

// ErrTurnLimit is returned when Autoplay runs out of turns.
var ErrTurnLimit = errors.New("turn limit reached")

// Autoplay lets sess play g until the answer is found: play the session's
// next guess, stop on an exact hit, otherwise apply the feedback and think.
// The partial Result is returned alongside any error.
func Autoplay(ctx context.Context, sess *solver.Session, g *Game, maxTurns int) (Result, error) {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	start := time.Now()
	res := Result{GameID: g.ID, Answer: g.Answer, Seed: sess.Seed()}
	finish := func(err error) (Result, error) {
		res.Guesses = append([]string(nil), g.Guesses...)
		res.Results = append([]string(nil), g.Results...)
		res.Solved = g.Solved
		res.Elapsed = time.Since(start)
		return res, err
	}

	for g.Turns() < maxTurns {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}
		guess := sess.NextGuess()
		p, err := g.Guess(guess)
		if err != nil {
			return finish(err)
		}
		if p.Solved() {
			return finish(nil)
		}
		if err := sess.ApplyResult(guess, p); err != nil {
			return finish(err)
		}
		if _, err := sess.Think(ctx); err != nil {
			return finish(err)
		}
	}
	return finish(fmt.Errorf("%w after %d guesses", ErrTurnLimit, g.Turns()))
}
