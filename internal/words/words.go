// internal/words/words.go
//
// Dictionary loading for the solver.
//
// Responsibilities:
//   - Read word lists from a reader, a file, or the embedded default list.
//   - Keep only words of exactly the requested length made of lowercase a–z
//     (capitalised entries are proper nouns and are skipped).
//   - Return words uppercased, de-duplicated, in first-seen order.
//
// The result is an ordered list; its order decides search tie-breaks, so
// loading the same file always yields the same solver behaviour.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/assets"
)

// DefaultLength is the classic Wordle word length.
const DefaultLength = 5

// ErrEmpty is returned when no word of the requested length survives filtering.
var ErrEmpty = errors.New("words: list is empty")

// Parse reads one word per line from r.
// Blank lines and lines starting with '#' are ignored.
func Parse(r io.Reader, length int) ([]string, error) {
	if length <= 0 {
		return nil, fmt.Errorf("words: invalid length %d", length)
	}
	seen := make(map[string]struct{})
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if len(w) != length || !isLowerAlpha(w) {
			continue
		}
		w = strings.ToUpper(w)
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}

// Load reads and filters the word list at path.
func Load(path string, length int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	list, err := Parse(f, length)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Embedded returns the bundled dictionary filtered to length.
func Embedded(length int) ([]string, error) {
	f, err := assets.DefaultWords()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, length)
}

// LoadOrEmbedded loads path when set, the bundled list otherwise.
func LoadOrEmbedded(path string, length int) ([]string, error) {
	if path == "" {
		return Embedded(length)
	}
	return Load(path, length)
}

// isLowerAlpha reports whether s is all lowercase ASCII letters.
func isLowerAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
