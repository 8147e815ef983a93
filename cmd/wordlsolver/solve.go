package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

func (a *app) solveCmd() *cobra.Command {
	var seed string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Suggest guesses for a game played elsewhere",
		Long: `Suggest guesses for a game played elsewhere.

After each suggestion, type the feedback you got for it:
  .  letter absent
  a  (lowercase) letter present elsewhere
  A  (uppercase) letter in the right spot
Enter "GUESS RESULT" to report a different word than the suggestion.
Commands: "reset", "words", "quit".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == "" {
				seed = a.cfg.SeedGuess
			}
			sess, err := solver.NewSession(a.dict, seed,
				solver.WithSearch(solver.Search{Workers: a.cfg.Workers}),
				solver.WithReporter(solver.Tee{
					solver.LogReporter{Logger: log.Logger},
					newProgressReporter(os.Stderr),
				}),
			)
			if err != nil {
				return err
			}
			return a.solveLoop(cmd, sess, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&seed, "seed", "", "first guess (default: SEED_GUESS)")
	return cmd
}

func (a *app) solveLoop(cmd *cobra.Command, sess *solver.Session, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "try %s (%d feasible)> ", sess.NextGuess(), sess.FeasibleCount())
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "quit", "exit", "q":
			return nil
		case "reset":
			sess = sess.Reset()
			continue
		case "words":
			fmt.Fprintln(out, strings.Join(sess.Feasible(), " "))
			continue
		}

		guess, result := sess.NextGuess(), fields[0]
		if len(fields) >= 2 {
			guess, result = fields[0], fields[1]
		}
		err := sess.ApplyResultText(guess, result)
		switch {
		case errors.Is(err, solver.ErrInvalidInput):
			fmt.Fprintln(out, "error:", err)
			continue
		case errors.Is(err, solver.ErrFeedbackInconsistency):
			fmt.Fprintln(out, "no word matches that feedback; type reset to start over")
			continue
		case err != nil:
			return err
		}
		turns := sess.Turns()
		if last := turns[len(turns)-1]; last.Result == last.Guess {
			fmt.Fprintln(out, "solved!")
			return nil
		}

		next, err := sess.Think(cmd.Context())
		if err != nil {
			if errors.Is(err, solver.ErrEmptyPool) {
				fmt.Fprintln(out, "no guess left to evaluate; remaining:", strings.Join(sess.Feasible(), " "))
				continue
			}
			return err
		}
		if sess.State() == solver.Determined {
			fmt.Fprintf(out, "the answer is %s\n", next)
		}
	}
}
