package config

import (
	"runtime"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "WORDS_FILE", "WORD_LENGTH", "SEED_GUESS",
		"SOLVER_WORKERS", "THINK_TIMEOUT", "JWT_SECRET", "CLIENT_ORIGIN"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Port != "5175" || cfg.WordLength != 5 || cfg.SeedGuess != "SLANT" {
		t.Errorf("Load() = %+v", cfg)
	}
	if cfg.Workers != runtime.NumCPU() || cfg.ThinkTimeout != 2*time.Minute {
		t.Errorf("Load() workers/timeout = %d/%v", cfg.Workers, cfg.ThinkTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("WORD_LENGTH", "6")
	t.Setenv("SOLVER_WORKERS", "3")
	t.Setenv("THINK_TIMEOUT", "5s")
	t.Setenv("DB_PATH", "")
	t.Setenv("SEED_GUESS", "CRANES")

	cfg := Load()
	if cfg.Port != "8080" || cfg.WordLength != 6 || cfg.Workers != 3 || cfg.ThinkTimeout != 5*time.Second {
		t.Errorf("Load() = %+v", cfg)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want explicitly empty", cfg.DBPath)
	}
	if cfg.SeedGuess != "CRANES" {
		t.Errorf("SeedGuess = %q", cfg.SeedGuess)
	}
}

func TestLoad_InvalidFallsBack(t *testing.T) {
	t.Setenv("WORD_LENGTH", "five")
	t.Setenv("SOLVER_WORKERS", "-2")
	t.Setenv("THINK_TIMEOUT", "soon")

	cfg := Load()
	if cfg.WordLength != 5 || cfg.Workers != runtime.NumCPU() || cfg.ThinkTimeout != 2*time.Minute {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}
