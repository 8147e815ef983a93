// internal/history/history.go
//
// SQLite persistence of finished self-play games.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying the embedded migrations (idempotent, recorded in _migrations).
//   - Recording plays and reading recent plays / aggregate stats.
//
// Only finished games are stored; live solver sessions are never restored
// from here.

package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/assets"
)

// DefaultLimit is the page size of Recent when limit <= 0.
const DefaultLimit = 20

// timeLayout is fixed width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Play is one finished self-play game.
type Play struct {
	ID        string        `json:"id"`
	Answer    string        `json:"answer"`
	Seed      string        `json:"seed"`
	Guesses   []string      `json:"guesses"`
	Solved    bool          `json:"solved"`
	Elapsed   time.Duration `json:"elapsed"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Turns returns the number of guesses played.
func (p Play) Turns() int { return len(p.Guesses) }

// Summary aggregates all recorded plays.
type Summary struct {
	Games    int     `json:"games"`
	Solved   int     `json:"solved"`
	AvgTurns float64 `json:"avgTurns"` // over solved games only
}

// Store is a handle on the history database.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if missing) the SQLite database at dsn and
// applies migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	// Ensure directory exists for ./data/solver.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	migrations, err := assets.Migrations()
	if err != nil {
		db.Close()
		return nil, err
	}
	if err := migrate(ctx, db, migrations); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// migrate applies every *.sql file of fsys in lexical order, each in its
// own transaction, skipping files already recorded in _migrations.
func migrate(ctx context.Context, db *sql.DB, fsys fs.FS) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Record inserts a finished play. An empty ID is filled in.
func (s *Store) Record(ctx context.Context, p Play) (Play, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.CreatedAt = p.CreatedAt.UTC().Truncate(time.Millisecond)
	solved := 0
	if p.Solved {
		solved = 1
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO plays (id, answer, seed, guesses, turns, solved, elapsed_ms, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Answer, p.Seed, strings.Join(p.Guesses, " "), p.Turns(), solved,
		p.Elapsed.Milliseconds(), p.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return Play{}, fmt.Errorf("record play: %w", err)
	}
	return p, nil
}

// Recent returns the newest plays first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Play, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, answer, seed, guesses, solved, elapsed_ms, created_at
        FROM plays
        ORDER BY created_at DESC, rowid DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Play, 0, limit)
	for rows.Next() {
		var (
			p                Play
			guesses, created string
			solved           int
			elapsedMs        int64
		)
		if err := rows.Scan(&p.ID, &p.Answer, &p.Seed, &guesses, &solved, &elapsedMs, &created); err != nil {
			return nil, err
		}
		p.Guesses = strings.Fields(guesses)
		p.Solved = solved != 0
		p.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		p.CreatedAt, _ = time.Parse(timeLayout, created)
		out = append(out, p)
	}
	return out, rows.Err()
}

// Summary aggregates all plays.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	var (
		sum Summary
		avg sql.NullFloat64
	)
	err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(1),
               COALESCE(SUM(solved), 0),
               AVG(CASE WHEN solved = 1 THEN turns END)
        FROM plays`,
	).Scan(&sum.Games, &sum.Solved, &avg)
	if err != nil {
		return Summary{}, err
	}
	sum.AvgTurns = avg.Float64
	return sum, nil
}
