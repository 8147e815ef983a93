// internal/httpserver/sessions.go
//
// HTTP routes for solver sessions, mounted under /sessions:
//   - POST   /sessions              → start a session (optional seed)
//   - GET    /sessions/{id}         → current state
//   - POST   /sessions/{id}/result  → apply the feedback of a played guess
//   - POST   /sessions/{id}/think   → recommend the next guess
//   - POST   /sessions/{id}/reset   → start over from the full dictionary
//   - DELETE /sessions/{id}
//
// Sessions live in the in-memory store; every call holds its entry. A call
// that cannot get the entry before its context ends answers 409 "busy".

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

// maxListedWords caps the feasible words included in a session view.
const maxListedWords = 50

// sessionView is the JSON shape of a session.
type sessionView struct {
	SessionID     string        `json:"sessionId"`
	State         string        `json:"state"` // active | determined | contradiction
	NextGuess     string        `json:"nextGuess"`
	FeasibleCount int           `json:"feasibleCount"`
	Feasible      []string      `json:"feasible,omitempty"`
	GuessPoolSize int           `json:"guessPoolSize"`
	Turns         []solver.Turn `json:"turns"`
}

func viewOf(id string, s *solver.Session) *sessionView {
	v := &sessionView{
		SessionID:     id,
		State:         s.State().String(),
		NextGuess:     s.NextGuess(),
		FeasibleCount: s.FeasibleCount(),
		GuessPoolSize: s.GuessCount(),
		Turns:         s.Turns(),
	}
	if v.Turns == nil {
		v.Turns = []solver.Turn{}
	}
	if v.FeasibleCount <= maxListedWords {
		v.Feasible = s.Feasible()
	}
	return v
}

// mountSessions registers all /sessions routes.
func (s *Server) mountSessions(r chi.Router) {
	r.Route("/sessions", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(chimw.Timeout(requestTimeout))
			r.Post("/", s.handleNewSession)
			r.Get("/{id}", s.handleGetSession)
			r.Post("/{id}/result", s.handleResult)
			r.Post("/{id}/reset", s.handleReset)
			r.Delete("/{id}", s.handleDeleteSession)
		})
		// Bounded by cfg.ThinkTimeout instead of requestTimeout.
		r.Post("/{id}/think", s.handleThink)
	})
}

// newSession builds a solver session over the server dictionary.
func (s *Server) newSession(id, seed string) (*solver.Session, error) {
	if seed == "" {
		seed = s.cfg.SeedGuess
	}
	logger := log.With().Str("session", id).Logger()
	return solver.NewSession(s.dict, seed,
		solver.WithSearch(solver.Search{Workers: s.cfg.Workers}),
		solver.WithReporter(solver.LogReporter{Logger: logger}),
	)
}

// entryFor loads the session named in the URL, hiding sessions owned by
// another subject.
func (s *Server) entryFor(r *http.Request) (*store.Entry, error) {
	e, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	if e.Owner != "" && e.Owner != subject(r) {
		return nil, store.ErrNotFound
	}
	return e, nil
}

// -----------------------------------------------------------------------------
// POST /sessions

type newSessionReq struct {
	Seed string `json:"seed"` // optional first guess, defaults to SEED_GUESS
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	// An empty body starts a session with the default seed.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	id := uuid.NewString()
	sess, err := s.newSession(id, req.Seed)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	e := store.NewEntry(id, subject(r), sess)
	if err := s.store.Save(r.Context(), e); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed", "")
		return
	}
	log.Info().Str("session", id).Str("owner", e.Owner).Str("seed", sess.Seed()).Msg("session started")
	writeJSON(w, http.StatusCreated, viewOf(id, sess))
}

// -----------------------------------------------------------------------------
// GET /sessions/{id}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	e, err := s.entryFor(r)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	var v *sessionView
	err = e.With(r.Context(), func(sess *solver.Session) (*solver.Session, error) {
		v = viewOf(e.ID, sess)
		return nil, nil
	})
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// -----------------------------------------------------------------------------
// POST /sessions/{id}/result

type resultReq struct {
	Guess  string `json:"guess"`
	Result string `json:"result"` // e.g. "s.a.."
}

// handleResult applies feedback. A contradiction answers 409 but still
// carries the (now empty) session for inspection.
func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	var req resultReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	e, err := s.entryFor(r)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	var v *sessionView
	err = e.With(r.Context(), func(sess *solver.Session) (*solver.Session, error) {
		err := sess.ApplyResultText(req.Guess, req.Result)
		v = viewOf(e.ID, sess)
		return nil, err
	})
	if errors.Is(err, solver.ErrFeedbackInconsistency) {
		writeJSON(w, http.StatusConflict, errorRes{Error: "feedback_inconsistency", Detail: err.Error(), Session: v})
		return
	}
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// -----------------------------------------------------------------------------
// POST /sessions/{id}/think

type thinkRes struct {
	Guess string `json:"guess"`
	State string `json:"state"`
}

func (s *Server) handleThink(w http.ResponseWriter, r *http.Request) {
	e, err := s.entryFor(r)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	ctx := r.Context()
	if s.cfg.ThinkTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ThinkTimeout)
		defer cancel()
	}

	var res thinkRes
	err = e.With(ctx, func(sess *solver.Session) (*solver.Session, error) {
		guess, err := sess.Think(ctx)
		res = thinkRes{Guess: guess, State: sess.State().String()}
		return nil, err
	})
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	log.Info().Str("session", e.ID).Str("guess", res.Guess).Msg("recommended")
	writeJSON(w, http.StatusOK, res)
}

// -----------------------------------------------------------------------------
// POST /sessions/{id}/reset

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	e, err := s.entryFor(r)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	var v *sessionView
	err = e.With(r.Context(), func(sess *solver.Session) (*solver.Session, error) {
		fresh := sess.Reset()
		v = viewOf(e.ID, fresh)
		return fresh, nil
	})
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	log.Info().Str("session", e.ID).Msg("session reset")
	writeJSON(w, http.StatusOK, v)
}

// -----------------------------------------------------------------------------
// DELETE /sessions/{id}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	e, err := s.entryFor(r)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	if err := s.store.Delete(r.Context(), e.ID); err != nil {
		s.writeErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
