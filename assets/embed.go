// assets/embed.go
//
// Files bundled into the binary:
//   - words.txt: default five-letter dictionary (one word per line, '#' comments).
//   - sql/*.sql: history database migrations, applied in lexical order.

package assets

import (
	"embed"
	"io"
	"io/fs"
)

//go:embed words.txt sql/*.sql
var FS embed.FS

// DefaultWords opens the bundled dictionary.
func DefaultWords() (io.ReadCloser, error) {
	return FS.Open("words.txt")
}

// Migrations returns the migration scripts rooted at their directory.
func Migrations() (fs.FS, error) {
	return fs.Sub(FS, "sql")
}
