package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "data", "solver.db")
	s, err := Open(context.Background(), dsn)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, dsn
}

func TestStore_RecordAndRecent(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)

	base := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	plays := []Play{
		{Answer: "MARES", Seed: "SLANT", Guesses: []string{"SLANT", "APHID", "WOMBS", "MARES"}, Solved: true, Elapsed: 1500 * time.Millisecond, CreatedAt: base},
		{Answer: "APHID", Seed: "SLANT", Guesses: []string{"SLANT", "APHID"}, Solved: true, CreatedAt: base.Add(time.Minute)},
		{Answer: "TRYST", Seed: "SLANT", Guesses: []string{"SLANT"}, Solved: false, CreatedAt: base.Add(2 * time.Minute)},
	}
	for i := range plays {
		p, err := s.Record(ctx, plays[i])
		if err != nil {
			t.Fatalf("Record() error = %v", err)
		}
		if p.ID == "" {
			t.Error("Record() did not assign an ID")
		}
		plays[i] = p
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	want := []Play{plays[2], plays[1]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Recent() mismatch (-want +got):\n%s", diff)
	}

	all, err := s.Recent(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 || all[2].Elapsed != 1500*time.Millisecond {
		t.Errorf("Recent(0) = %+v", all)
	}

	sum, err := s.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if diff := cmp.Diff(Summary{Games: 3, Solved: 2, AvgTurns: 3}, sum); diff != "" {
		t.Errorf("Summary() mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_EmptySummary(t *testing.T) {
	s, _ := openTemp(t)
	sum, err := s.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if sum != (Summary{}) {
		t.Errorf("Summary() = %+v, want zero", sum)
	}
}

func TestOpen_Idempotent(t *testing.T) {
	ctx := context.Background()
	s, dsn := openTemp(t)
	if _, err := s.Record(ctx, Play{Answer: "MARES", Seed: "SLANT", Guesses: []string{"MARES"}, Solved: true}); err != nil {
		t.Fatal(err)
	}
	s.Close()

	again, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer again.Close()
	sum, err := again.Summary(ctx)
	if err != nil || sum.Games != 1 {
		t.Errorf("Summary() after reopen = %+v, %v; want 1 game", sum, err)
	}
}
