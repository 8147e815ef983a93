// internal/httpserver/server.go
//
// HTTP server wiring for the solver backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", POST /score.
//   - Solver sessions (optional auth): mounted under /sessions (sessions.go).
//   - Self-play history: GET /history, GET /history/summary.
//
// Notes:
//   - CORS is origin‑aware and credentials‑enabled.
//   - Optional auth decorates requests with the token subject when a valid
//     JWT is present; guests can still use every route (auth.go).
//   - The think route is exempt from the global handler timeout and bounded
//     by Config.ThinkTimeout instead, since a search can be slow.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/history"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

// requestTimeout bounds every handler except think.
const requestTimeout = 10 * time.Second

// Server bundles router, session store, dictionary and history handle.
type Server struct {
	r     *chi.Mux
	cfg   config.Config
	dict  []string
	store store.Store
	hist  *history.Store // nil when history is disabled
}

// New constructs a Server, installs middleware, and registers routes.
// hist may be nil.
func New(cfg config.Config, dict []string, st store.Store, hist *history.Store) *Server {
	s := &Server{r: chi.NewRouter(), cfg: cfg, dict: dict, store: st, hist: hist}

	// --- middleware ---
	s.r.Use(chimw.RequestID)           // add X-Request-ID
	s.r.Use(chimw.RealIP)              // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)           // recover from panics
	s.r.Use(jsonContentType)           // default JSON responses
	s.r.Use(corsFor(cfg.ClientOrigin)) // credentials-friendly CORS
	s.r.Use(s.withOptionalAuth())      // token subject, if any

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(requestTimeout)) // bound handler time

		// --- diagnostics ---
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{
				"service":   "wordle-solver",
				"words":     len(s.dict),
				"endpoints": []string{"/health", "POST /score", "/sessions", "/history"},
			})
		})
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
		})

		r.Post("/score", s.handleScore)

		r.Get("/history", s.handleHistory)
		r.Get("/history/summary", s.handleHistorySummary)
	})

	s.mountSessions(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", r.URL.Path)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFor enables credentialed CORS for a single origin.
func corsFor(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------ SCORE --------------------------------------

type scoreReq struct {
	Guess  string `json:"guess"`
	Answer string `json:"answer"`
}
type scoreRes struct {
	Guess  string `json:"guess"`
	Answer string `json:"answer"`
	Result string `json:"result"` // e.g. "D..n."
}

// handleScore returns the feedback for a guess against a known answer.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	guess, err := solver.NormalizeWord(req.Guess, len(strings.TrimSpace(req.Guess)))
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	answer, err := solver.NormalizeWord(req.Answer, len(strings.TrimSpace(req.Answer)))
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	p, err := solver.Score(guess, answer)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scoreRes{Guess: guess, Answer: answer, Result: p.Format(guess)})
}

// ----------------------------- HISTORY -------------------------------------

// handleHistory lists recent self-play games (?limit=N).
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.hist == nil {
		writeError(w, http.StatusServiceUnavailable, "history_disabled", "")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	plays, err := s.hist.Recent(r.Context(), limit)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plays)
}

// handleHistorySummary returns aggregate self-play stats.
func (s *Server) handleHistorySummary(w http.ResponseWriter, r *http.Request) {
	if s.hist == nil {
		writeError(w, http.StatusServiceUnavailable, "history_disabled", "")
		return
	}
	sum, err := s.hist.Summary(r.Context())
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// ------------------------------- errors ------------------------------------

type errorRes struct {
	Error   string       `json:"error"`
	Detail  string       `json:"detail,omitempty"`
	Session *sessionView `json:"session,omitempty"`
}

// statusFor maps domain errors to an HTTP status and a stable error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, solver.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, solver.ErrFeedbackInconsistency):
		return http.StatusConflict, "feedback_inconsistency"
	case errors.Is(err, solver.ErrEmptyPool):
		return http.StatusUnprocessableEntity, "empty_pool"
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, store.ErrBusy):
		return http.StatusConflict, "busy"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "think_timeout"
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "cancelled"
	}
	return http.StatusInternalServerError, "internal"
}

// writeErr logs server-side failures and writes the mapped error.
func (s *Server) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := statusFor(err)
	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", r.URL.Path).Str("requestId", chimw.GetReqID(r.Context())).Msg("request failed")
	}
	writeError(w, code, msg, err.Error())
}

func writeError(w http.ResponseWriter, code int, msg, detail string) {
	writeJSON(w, code, errorRes{Error: msg, Detail: detail})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
