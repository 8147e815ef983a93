// cmd/wordlsolver/main.go
//
// Entry point for the solver binary.
// Subcommands:
//   - serve  → HTTP API (sessions, scoring, history)
//   - play   → let the solver play against a random, daily or fixed answer
//   - solve  → interactive assistant for a game played elsewhere
//   - score  → print the feedback for a guess/answer pair
//   - token  → mint an API token for a subject
//
// Configuration comes from the environment (.env supported), see
// internal/config. Flags override it per invocation.

package main

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/history"
	"github.com/robalobadob/wordle/apps/solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by every subcommand.
type app struct {
	cfg  config.Config
	dict []string
}

func rootCmd() *cobra.Command {
	a := &app{}
	var (
		wordsFile string
		workers   int
	)
	root := &cobra.Command{
		Use:          "wordlsolver",
		Short:        "Wordle solver: HTTP API, self-play and interactive assistant",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cfg = config.Load()
			setupLogging(a.cfg.LogLevel)
			if cmd.Flags().Changed("words") {
				a.cfg.WordsFile = wordsFile
			}
			if cmd.Flags().Changed("workers") && workers > 0 {
				a.cfg.Workers = workers
			}
			if cmd.Name() == "score" || cmd.Name() == "token" {
				return nil
			}
			dict, err := words.LoadOrEmbedded(a.cfg.WordsFile, a.cfg.WordLength)
			if err != nil {
				return err
			}
			a.dict = dict
			log.Debug().Int("words", len(dict)).Str("file", a.cfg.WordsFile).Msg("dictionary loaded")
			return nil
		},
	}
	root.PersistentFlags().StringVar(&wordsFile, "words", "", "dictionary file (default: WORDS_FILE or the bundled list)")
	root.PersistentFlags().IntVar(&workers, "workers", 0, "search workers (default: SOLVER_WORKERS or CPU count)")

	root.AddCommand(
		a.serveCmd(),
		a.playCmd(),
		a.solveCmd(),
		a.scoreCmd(),
		a.tokenCmd(),
	)
	return root
}

// setupLogging installs a console logger on stderr at level.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hist, err := a.openHistory(cmd)
			if err != nil {
				return err
			}
			if hist != nil {
				defer hist.Close()
			}
			srv := httpserver.New(a.cfg, a.dict, store.NewMemoryStore(), hist)
			log.Info().Str("port", a.cfg.Port).Int("words", len(a.dict)).Str("seed", a.cfg.SeedGuess).Msg("starting solver server")
			return srv.Start(":" + a.cfg.Port)
		},
	}
}

// openHistory opens the history database, or returns nil when DB_PATH is empty.
func (a *app) openHistory(cmd *cobra.Command) (*history.Store, error) {
	if a.cfg.DBPath == "" {
		log.Info().Msg("history disabled")
		return nil, nil
	}
	return history.Open(cmd.Context(), a.cfg.DBPath)
}
