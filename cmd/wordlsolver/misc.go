package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

func (a *app) scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score GUESS ANSWER",
		Short: "Print the feedback for GUESS when the answer is ANSWER",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			guess, err := solver.NormalizeWord(args[0], len(strings.TrimSpace(args[0])))
			if err != nil {
				return err
			}
			answer, err := solver.NormalizeWord(args[1], len(strings.TrimSpace(args[1])))
			if err != nil {
				return err
			}
			p, err := solver.Score(guess, answer)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.Format(guess))
			return nil
		},
	}
}

func (a *app) tokenCmd() *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token SUBJECT",
		Short: "Mint an API token for SUBJECT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, exp, err := httpserver.SignToken(a.cfg.JWTSecret, args[0], ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", exp.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 7*24*time.Hour, "token lifetime")
	return cmd
}
