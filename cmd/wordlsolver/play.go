package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/history"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

type playOpts struct {
	answer   string
	daily    bool
	date     string
	salt     string
	games    int
	maxTurns int
	seed     string
	progress bool
	record   bool
}

func (a *app) playCmd() *cobra.Command {
	var o playOpts
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Let the solver play against an answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.play(cmd, o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.answer, "answer", "", "fixed answer (default: random from the dictionary)")
	f.BoolVar(&o.daily, "daily", false, "play the daily answer")
	f.StringVar(&o.date, "date", "", "daily date YYYY-MM-DD (default: today, UTC)")
	f.StringVar(&o.salt, "salt", os.Getenv("DAILY_SALT"), "daily answer salt")
	f.IntVar(&o.games, "games", 1, "number of games")
	f.IntVar(&o.maxTurns, "max-turns", game.DefaultMaxTurns, "give up after this many guesses")
	f.StringVar(&o.seed, "seed", "", "first guess (default: SEED_GUESS)")
	f.BoolVar(&o.progress, "progress", true, "show a progress bar while searching")
	f.BoolVar(&o.record, "record", true, "record finished games in the history database")
	return cmd
}

func (a *app) play(cmd *cobra.Command, o playOpts) error {
	if o.answer != "" && o.daily {
		return errors.New("--answer and --daily are mutually exclusive")
	}
	seed := o.seed
	if seed == "" {
		seed = a.cfg.SeedGuess
	}

	var hist *history.Store
	if o.record {
		var err error
		if hist, err = a.openHistory(cmd); err != nil {
			return err
		}
		if hist != nil {
			defer hist.Close()
		}
	}

	reporter := solver.Reporter(solver.LogReporter{Logger: log.Logger})
	if o.progress {
		reporter = solver.Tee{reporter, newProgressReporter(os.Stderr)}
	}
	base, err := solver.NewSession(a.dict, seed,
		solver.WithSearch(solver.Search{Workers: a.cfg.Workers}),
		solver.WithReporter(reporter),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var solved, turns int
	for i := 0; i < o.games; i++ {
		g, err := a.newGame(o)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.ThinkTimeout*time.Duration(o.maxTurns))
		res, err := game.Autoplay(ctx, base.Reset(), g, o.maxTurns)
		cancel()
		if err != nil && !errors.Is(err, game.ErrTurnLimit) {
			return fmt.Errorf("game %d (%s): %w", i+1, g.Answer, err)
		}

		for t, guess := range res.Guesses {
			fmt.Fprintf(out, "%d. %s  %s\n", t+1, guess, res.Results[t])
		}
		status := "solved"
		if !res.Solved {
			status = "gave up"
		}
		fmt.Fprintf(out, "%s %s in %d turns (%s)\n\n", res.Answer, status, res.Turns(), res.Elapsed.Round(time.Millisecond))
		if res.Solved {
			solved++
			turns += res.Turns()
		}

		if hist != nil {
			if _, err := hist.Record(cmd.Context(), history.Play{
				ID:      res.GameID,
				Answer:  res.Answer,
				Seed:    res.Seed,
				Guesses: res.Guesses,
				Solved:  res.Solved,
				Elapsed: res.Elapsed,
			}); err != nil {
				log.Error().Err(err).Str("game", res.GameID).Msg("record play")
			}
		}
	}

	if o.games > 1 {
		avg := 0.0
		if solved > 0 {
			avg = float64(turns) / float64(solved)
		}
		fmt.Fprintf(out, "%d/%d solved, %.2f turns on average\n", solved, o.games, avg)
	}
	return nil
}

// newGame picks the answer according to the play flags.
func (a *app) newGame(o playOpts) (*game.Game, error) {
	switch {
	case o.answer != "":
		return game.New(strings.TrimSpace(o.answer))
	case o.daily:
		date := time.Now().UTC()
		if o.date != "" {
			d, err := time.Parse("2006-01-02", o.date)
			if err != nil {
				return nil, fmt.Errorf("--date: %w", err)
			}
			date = d
		}
		return game.NewDaily(a.dict, date, o.salt)
	}
	return game.NewRandom(a.dict)
}
