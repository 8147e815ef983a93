// internal/solver/session.go
//
// Stateful solver for a single game.
// Responsibilities:
//   - Hold the feasible answers and the pool of guesses worth evaluating.
//   - ApplyResult: narrow both pools with the feedback of a played guess.
//   - Think: recommend the next guess (search, or the sole feasible word).
//   - Reset: build a fresh session from the original dictionary.
//
// State is derived from the feasible set size:
//   active (>1) → determined (1) → contradiction (0, feedback was inconsistent).
// A session is not safe for concurrent use.

package solver

import (
	"context"
	"fmt"
)

// State of a Session, derived from the size of its feasible set.
type State int

const (
	Active        State = iota // more than one feasible answer
	Determined                 // exactly one feasible answer
	Contradiction              // no feasible answer left
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Determined:
		return "determined"
	case Contradiction:
		return "contradiction"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Turn is one applied guess and its feedback in textual form.
type Turn struct {
	Guess  string `json:"guess"`
	Result string `json:"result"`
}

// Session tracks the solver state of one game.
type Session struct {
	dict     []string // original dictionary, never mutated
	seed     string
	length   int
	feasible []string
	guesses  []string
	next     string
	turns    []Turn
	search   Search
	reporter Reporter
}

// Option configures a Session.
type Option func(*Session)

// WithSearch sets the search used by Think. A nil Reporter on the search
// falls back to the session's reporter.
func WithSearch(s Search) Option {
	return func(sess *Session) { sess.search = s }
}

// WithReporter sets the sink for feasible-set and search progress events.
func WithReporter(r Reporter) Option {
	return func(sess *Session) {
		if r != nil {
			sess.reporter = r
		}
	}
}

// NewSession starts a session over dict with seed as the first
// recommended guess. Every word is normalized to uppercase and must have
// the length of the first word.
func NewSession(dict []string, seed string, opts ...Option) (*Session, error) {
	if len(dict) == 0 {
		return nil, fmt.Errorf("new session: %w: empty dictionary", ErrEmptyPool)
	}
	length := len(dict[0])
	words := make([]string, len(dict))
	for i, w := range dict {
		nw, err := NormalizeWord(w, length)
		if err != nil {
			return nil, fmt.Errorf("new session: dictionary word %d: %w", i, err)
		}
		words[i] = nw
	}
	s, err := NormalizeWord(seed, length)
	if err != nil {
		return nil, fmt.Errorf("new session: seed: %w", err)
	}
	sess := newSession(words, s, length)
	for _, opt := range opts {
		opt(sess)
	}
	return sess, nil
}

func newSession(dict []string, seed string, length int) *Session {
	return &Session{
		dict:     dict,
		seed:     seed,
		length:   length,
		feasible: dict,
		guesses:  dict,
		next:     seed,
		reporter: NopReporter{},
	}
}

// Reset returns a fresh session over the original dictionary, with the
// same seed, search and reporter. The receiver is left untouched.
func (s *Session) Reset() *Session {
	fresh := newSession(s.dict, s.seed, s.length)
	fresh.search = s.search
	fresh.reporter = s.reporter
	return fresh
}

// State reports the session state.
func (s *Session) State() State {
	switch len(s.feasible) {
	case 0:
		return Contradiction
	case 1:
		return Determined
	}
	return Active
}

// ApplyResult narrows the session with the feedback observed for guess.
// When no feasible answer survives, the session moves to Contradiction and
// ErrFeedbackInconsistency is returned; the emptied state stays inspectable.
func (s *Session) ApplyResult(guess string, observed Pattern) error {
	if s.State() == Contradiction {
		return fmt.Errorf("apply result: %w: session already has no feasible word", ErrFeedbackInconsistency)
	}
	g, err := NormalizeWord(guess, s.length)
	if err != nil {
		return fmt.Errorf("apply result: %w", err)
	}
	if observed.Len() != s.length {
		return fmt.Errorf("apply result: %w: pattern has %d positions, want %d", ErrInvalidInput, observed.Len(), s.length)
	}
	for i := 0; i < observed.Len(); i++ {
		if observed.At(i) > Exact {
			return fmt.Errorf("apply result: %w: bad mark at position %d", ErrInvalidInput, i+1)
		}
	}

	s.feasible = Filter(s.feasible, g, observed)
	s.guesses = Prune(s.guesses, g, observed)
	s.turns = append(s.turns, Turn{Guess: g, Result: observed.Format(g)})
	s.reporter.FeasibleChanged(s.Feasible())

	if len(s.feasible) == 0 {
		return fmt.Errorf("apply result: %w: nothing matches %s", ErrFeedbackInconsistency, observed.Format(g))
	}
	return nil
}

// ApplyResultText is ApplyResult with the feedback in textual form,
// e.g. ("SLANT", "s.a..").
func (s *Session) ApplyResultText(guess, result string) error {
	g, err := NormalizeWord(guess, s.length)
	if err != nil {
		return fmt.Errorf("apply result: %w", err)
	}
	p, err := ParsePattern(g, result)
	if err != nil {
		return fmt.Errorf("apply result: %w", err)
	}
	return s.ApplyResult(g, p)
}

// Think computes and records the next recommended guess.
func (s *Session) Think(ctx context.Context) (string, error) {
	switch s.State() {
	case Contradiction:
		return "", fmt.Errorf("think: %w", ErrFeedbackInconsistency)
	case Determined:
		s.next = s.feasible[0]
		return s.next, nil
	}

	search := s.search
	if search.Reporter == nil {
		search.Reporter = s.reporter
	}
	best, err := search.BestGuess(ctx, s.guesses, s.feasible)
	if err != nil {
		return "", fmt.Errorf("think: %w", err)
	}
	s.next = best.Guess
	return s.next, nil
}

// NextGuess returns the last recommended guess (the seed before any Think).
func (s *Session) NextGuess() string { return s.next }

// Seed returns the first guess the session was created with.
func (s *Session) Seed() string { return s.seed }

// WordLength returns the fixed word length of the session.
func (s *Session) WordLength() int { return s.length }

// Feasible returns a copy of the feasible answers.
func (s *Session) Feasible() []string { return append([]string(nil), s.feasible...) }

// FeasibleCount returns the number of feasible answers.
func (s *Session) FeasibleCount() int { return len(s.feasible) }

// Guesses returns a copy of the guess pool.
func (s *Session) Guesses() []string { return append([]string(nil), s.guesses...) }

// GuessCount returns the size of the guess pool.
func (s *Session) GuessCount() int { return len(s.guesses) }

// Dictionary returns a copy of the original dictionary.
func (s *Session) Dictionary() []string { return append([]string(nil), s.dict...) }

// Turns returns the feedback applied so far, oldest first.
func (s *Session) Turns() []Turn { return append([]Turn(nil), s.turns...) }
