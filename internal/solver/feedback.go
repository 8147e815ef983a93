// internal/solver/feedback.go
//
// Feedback engine for the solver.
// Responsibilities:
//   - Normalize and validate words (fixed length, A–Z, uppercase canonical form).
//   - Score a guess against an answer with the classic two‑pass algorithm.
//   - Encode/decode feedback patterns in the textual form used by fixtures:
//     '.' absent, lowercase letter present elsewhere, uppercase letter exact.

package solver

import (
	"fmt"
	"strings"
)

// Mark is the per-position classification of a guessed letter.
type Mark byte

const (
	Absent  Mark = iota // letter not available in the answer
	Present             // letter in the answer, different position
	Exact               // letter in the correct position
)

func (m Mark) String() string {
	switch m {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Exact:
		return "exact"
	}
	return fmt.Sprintf("Mark(%d)", byte(m))
}

// Pattern is the feedback produced by one guess: one Mark per position.
// It is a comparable value, so two patterns are equal iff they are ==.
type Pattern string

// Len returns the number of positions in p.
func (p Pattern) Len() int { return len(p) }

// At returns the mark at position i.
func (p Pattern) At(i int) Mark { return Mark(p[i]) }

// Solved reports whether every position is an exact match.
func (p Pattern) Solved() bool {
	if len(p) == 0 {
		return false
	}
	for i := 0; i < len(p); i++ {
		if Mark(p[i]) != Exact {
			return false
		}
	}
	return true
}

// Format renders p against the guess that produced it.
// Format("DRINK") of the DRINK/DANDY pattern is "D..n.".
func (p Pattern) Format(guess string) string {
	var b strings.Builder
	b.Grow(len(p))
	for i := 0; i < len(p); i++ {
		switch Mark(p[i]) {
		case Exact:
			b.WriteByte(upper(guess[i]))
		case Present:
			b.WriteByte(upper(guess[i]) + 'a' - 'A')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// PatternOf builds a pattern from explicit marks.
func PatternOf(marks ...Mark) Pattern {
	b := make([]byte, len(marks))
	for i, m := range marks {
		b[i] = byte(m)
	}
	return Pattern(b)
}

// ParsePattern decodes the textual encoding of a pattern for guess.
// Each letter must be the guess letter at that position: uppercase for an
// exact match, lowercase for a present one.
func ParsePattern(guess, text string) (Pattern, error) {
	if len(text) != len(guess) {
		return "", fmt.Errorf("%w: result %q has %d positions, guess %q has %d",
			ErrInvalidInput, text, len(text), guess, len(guess))
	}
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c, g := text[i], upper(guess[i])
		switch {
		case c == '.':
			out[i] = byte(Absent)
		case c == g:
			out[i] = byte(Exact)
		case c >= 'a' && c <= 'z' && c-'a'+'A' == g:
			out[i] = byte(Present)
		default:
			return "", fmt.Errorf("%w: result %q position %d: %q does not match guess letter %q",
				ErrInvalidInput, text, i+1, c, g)
		}
	}
	return Pattern(out), nil
}

// NormalizeWord trims and uppercases s and checks that it is exactly
// length letters A–Z.
func NormalizeWord(s string, length int) (string, error) {
	w := strings.ToUpper(strings.TrimSpace(s))
	if len(w) != length {
		return "", fmt.Errorf("%w: %q is not %d letters", ErrInvalidInput, s, length)
	}
	if !isUpperAlpha(w) {
		return "", fmt.Errorf("%w: %q has characters outside A-Z", ErrInvalidInput, s)
	}
	return w, nil
}

// Score returns the feedback for guessing guess when the secret is answer.
//
// Pass 1 marks exact matches and consumes those letters from the answer's
// letter counts. Pass 2 walks the remaining positions and marks Present
// while unconsumed copies of the letter remain, Absent otherwise. Exact
// matches must claim their letters before any Present is handed out.
func Score(guess, answer string) (Pattern, error) {
	if len(guess) != len(answer) {
		return "", fmt.Errorf("%w: guess %q and answer %q differ in length", ErrInvalidInput, guess, answer)
	}
	if !isUpperAlpha(guess) || !isUpperAlpha(answer) {
		return "", fmt.Errorf("%w: guess %q / answer %q must be uppercase A-Z", ErrInvalidInput, guess, answer)
	}
	return score(guess, answer), nil
}

// score is Score without validation; callers guarantee equal-length A–Z input.
func score(guess, answer string) Pattern {
	n := len(guess)
	res := make([]byte, n) // zero value is Absent

	var counts [26]int
	for i := 0; i < n; i++ {
		counts[answer[i]-'A']++
	}

	// First pass: exact matches.
	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = byte(Exact)
			counts[answer[i]-'A']--
		}
	}

	// Second pass: leftovers in the wrong position.
	for i := 0; i < n; i++ {
		if res[i] == byte(Exact) {
			continue
		}
		j := guess[i] - 'A'
		if counts[j] > 0 {
			res[i] = byte(Present)
			counts[j]--
		}
	}
	return Pattern(res)
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// isUpperAlpha checks that a string consists only of A–Z.
func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
