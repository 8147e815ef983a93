// internal/game/engine.go
//
// Feedback oracle: stands in for the real game when the solver plays
// against itself.
// Responsibilities:
//   - Create games with a fixed, random, or date-derived answer.
//   - Score guesses with the solver's feedback engine.
//   - Track turns and the solved state.
//
// The oracle does not check guesses against a dictionary; any word of the
// answer's length is scored.

package game

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// ErrFinished is returned when guessing after the answer was found.
var ErrFinished = errors.New("game finished")

// New constructs a game with a fixed answer.
func New(answer string) (*Game, error) {
	a, err := solver.NormalizeWord(answer, len(strings.TrimSpace(answer)))
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	return &Game{ID: uuid.NewString(), Answer: a}, nil
}

// NewRandom picks a cryptographically random answer from dict.
func NewRandom(dict []string) (*Game, error) {
	if len(dict) == 0 {
		return nil, errors.New("new game: empty dictionary")
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(dict))))
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	return New(dict[n.Int64()])
}

// NewDaily picks the answer for date deterministically, so every run on
// the same day and salt plays the same word.
func NewDaily(dict []string, date time.Time, salt string) (*Game, error) {
	if len(dict) == 0 {
		return nil, errors.New("new game: empty dictionary")
	}
	return New(dict[DailyIndex(date, salt, len(dict))])
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyIndex returns HMAC(salt, YYYY-MM-DD) mod n.
func DailyIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

// Guess scores word against the answer and records the turn.
func (g *Game) Guess(word string) (solver.Pattern, error) {
	if g.Solved {
		return "", ErrFinished
	}
	w, err := solver.NormalizeWord(word, len(g.Answer))
	if err != nil {
		return "", fmt.Errorf("guess: %w", err)
	}
	p, err := solver.Score(w, g.Answer)
	if err != nil {
		return "", fmt.Errorf("guess: %w", err)
	}

	g.Guesses = append(g.Guesses, w)
	g.Results = append(g.Results, p.Format(w))
	log.Info().Str("game", g.ID).Int("turn", g.Turns()).Str("guess", w).Str("result", p.Format(w)).Msg("guess")

	if p.Solved() {
		g.Solved = true
		log.Info().Str("game", g.ID).Int("turns", g.Turns()).Msg("solved")
	}
	return p, nil
}
