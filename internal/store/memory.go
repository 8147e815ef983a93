// internal/store/memory.go
//
// In-memory implementation of the session Store interface.
// Holds live solver sessions for the HTTP API.
//
// Characteristics:
//   - Stores *Entry values keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Each Entry carries its own lock; a solver.Session is not safe for
//     concurrent use, so handlers hold the entry around every call. Waiting
//     for the lock gives up when the caller's context ends.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// ErrNotFound is returned by Get and Delete for unknown IDs.
var ErrNotFound = errors.New("not found")

// ErrBusy is returned by Entry.With when the context ends while another
// call holds the session.
var ErrBusy = errors.New("session busy")

// Entry is a stored solver session.
type Entry struct {
	ID        string
	Owner     string // JWT subject that created the session; empty for guests
	CreatedAt time.Time

	sem     *semaphore.Weighted // weight 1: one holder at a time
	session *solver.Session
}

// NewEntry wraps sess for storage. Entries must be built with NewEntry.
func NewEntry(id, owner string, sess *solver.Session) *Entry {
	return &Entry{
		ID:        id,
		Owner:     owner,
		CreatedAt: time.Now().UTC(),
		sem:       semaphore.NewWeighted(1),
		session:   sess,
	}
}

// With runs fn with exclusive access to the session. fn may return a
// replacement session (e.g. after Reset); nil keeps the current one.
// An already ended ctx returns ctx.Err(). If ctx ends while waiting for
// another holder, fn is not run and the error wraps both ErrBusy and
// ctx.Err().
func (e *Entry) With(ctx context.Context, fn func(s *solver.Session) (*solver.Session, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := e.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%w: %w", ErrBusy, err)
	}
	defer e.sem.Release(1)
	next, err := fn(e.session)
	if next != nil {
		e.session = next
	}
	return err
}

// Store defines the persistence interface for solver sessions.
type Store interface {
	// Save persists or replaces an entry.
	Save(ctx context.Context, e *Entry) error

	// Get retrieves an entry by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Entry, error)

	// Delete removes an entry by ID, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Len reports the number of stored entries.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards entries map
	entries map[string]*Entry // keyed by Entry.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{entries: make(map[string]*Entry)}
}

func (m *memory) Save(ctx context.Context, e *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.ID] = e
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
