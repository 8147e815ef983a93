// internal/solver/filter.go
//
// Narrowing of word pools after a guess.
//   - Filter keeps the answers that would have produced the observed pattern.
//   - Prune drops guesses that contain letters marked absent.

package solver

import "github.com/bits-and-blooms/bitset"

// Filter returns the words w of pool, in order, for which
// Score(guess, w) equals observed. pool is not modified. Words that Score
// would reject (wrong length, not uppercase A-Z) never match.
func Filter(pool []string, guess string, observed Pattern) []string {
	out := make([]string, 0, len(pool))
	for _, w := range pool {
		if consistent(w, guess, observed) {
			out = append(out, w)
		}
	}
	return out
}

// Count is len(Filter(pool, guess, observed)) without building the slice.
func Count(pool []string, guess string, observed Pattern) int {
	n := 0
	for _, w := range pool {
		if consistent(w, guess, observed) {
			n++
		}
	}
	return n
}

func consistent(answer, guess string, observed Pattern) bool {
	if len(answer) != len(guess) || len(guess) != observed.Len() {
		return false
	}
	if !isUpperAlpha(answer) || !isUpperAlpha(guess) {
		return false
	}
	return score(guess, answer) == observed
}

// Prune removes from pool every word containing a letter that observed
// marks Absent somewhere in guess.
//
// A repeated guess letter can be Absent at one position and Exact or
// Present at another; Prune still drops every word with that letter. This
// only shrinks the guess pool, the answer pool is narrowed by Filter.
func Prune(pool []string, guess string, observed Pattern) []string {
	absent := bitset.New(26)
	for i := 0; i < observed.Len() && i < len(guess); i++ {
		if observed.At(i) == Absent {
			absent.Set(uint(upper(guess[i]) - 'A'))
		}
	}
	if absent.None() {
		return append([]string(nil), pool...)
	}

	out := make([]string, 0, len(pool))
	for _, w := range pool {
		if !containsAny(w, absent) {
			out = append(out, w)
		}
	}
	return out
}

func containsAny(w string, letters *bitset.BitSet) bool {
	for i := 0; i < len(w); i++ {
		c := upper(w[i])
		if c >= 'A' && c <= 'Z' && letters.Test(uint(c-'A')) {
			return true
		}
	}
	return false
}
