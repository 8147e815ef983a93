// internal/game/types.go
//
// Core type definitions for the feedback oracle.
// Defines:
//   - Game: a secret answer and the guesses played against it.
//   - Result: the outcome of a self-played game.

package game

import "time"

// Game holds the state of a single game against a hidden answer.
type Game struct {
	ID      string   // Unique game identifier (uuid).
	Answer  string   // The solution word (uppercase).
	Guesses []string // Guesses made so far (uppercase).
	Results []string // Feedback per guess in textual form, e.g. "s.a..".
	Solved  bool     // True once a guess matched the answer exactly.
}

// Turns returns the number of guesses played.
func (g *Game) Turns() int { return len(g.Guesses) }

// Result is the outcome of Autoplay.
type Result struct {
	GameID  string        `json:"gameId"`
	Answer  string        `json:"answer"`
	Seed    string        `json:"seed"`
	Guesses []string      `json:"guesses"`
	Results []string      `json:"results"`
	Solved  bool          `json:"solved"`
	Elapsed time.Duration `json:"elapsed"`
}

// Turns returns the number of guesses played.
func (r Result) Turns() int { return len(r.Guesses) }
