// internal/config/config.go
//
// Process configuration from the environment.
// A .env file in the working directory is loaded first when present;
// real environment variables win over it.
//
//   PORT            HTTP port (5175)
//   LOG_LEVEL       zerolog level (info)
//   WORDS_FILE      dictionary file; empty uses the bundled list
//   WORD_LENGTH     fixed word length (5)
//   SEED_GUESS      first guess of every session (SLANT)
//   SOLVER_WORKERS  search workers (number of CPUs)
//   THINK_TIMEOUT   bound on one best-guess search (2m)
//   DB_PATH         history database; empty disables history (./data/solver.db)
//   JWT_SECRET      HS256 secret for API tokens
//   CLIENT_ORIGIN   CORS origin (http://localhost:5173)

package config

import (
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds every tunable of the server and CLI.
type Config struct {
	Port         string
	LogLevel     string
	WordsFile    string
	WordLength   int
	SeedGuess    string
	Workers      int
	ThinkTimeout time.Duration
	DBPath       string
	JWTSecret    string
	ClientOrigin string
}

// Load reads .env (if any) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:         getEnv("PORT", "5175"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		WordsFile:    os.Getenv("WORDS_FILE"),
		WordLength:   getInt("WORD_LENGTH", 5),
		SeedGuess:    getEnv("SEED_GUESS", "SLANT"),
		Workers:      getInt("SOLVER_WORKERS", runtime.NumCPU()),
		ThinkTimeout: getDuration("THINK_TIMEOUT", 2*time.Minute),
		DBPath:       lookupEnv("DB_PATH", "./data/solver.db"),
		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// lookupEnv is getEnv that keeps an explicitly empty value.
func lookupEnv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warn().Str("key", k).Str("value", v).Int("default", def).Msg("ignoring invalid integer")
		return def
	}
	return n
}

func getDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Warn().Str("key", k).Str("value", v).Dur("default", def).Msg("ignoring invalid duration")
		return def
	}
	return d
}
