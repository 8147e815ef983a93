// internal/httpserver/auth.go
//
// Optional bearer-token auth.
// Tokens are HS256 JWTs; the subject claim names the caller. Sessions
// created by an authenticated caller are visible only to that subject,
// guest sessions (empty owner) to everybody.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

const tokenCookieName = "solver_token"

// ctxSubjectKey is the context key type for the token subject.
type ctxSubjectKey struct{}

// SignToken creates an HS256 JWT for subject valid for ttl.
func SignToken(secret, subject string, ttl time.Duration) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, errors.New("token subject is empty")
	}
	now := time.Now()
	exp := now.Add(ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString([]byte(secret))
	return ss, exp, err
}

// parseToken validates tok and returns its subject.
func parseToken(secret, tok string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !t.Valid || claims.Subject == "" {
		return "", errors.New("invalid token")
	}
	return claims.Subject, nil
}

// withOptionalAuth decorates requests with the token subject if a valid JWT
// is present. It never 401s; an invalid token is treated as a guest.
func (s *Server) withOptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tok := bearerOrCookie(r); tok != "" {
				sub, err := parseToken(s.cfg.JWTSecret, tok)
				if err != nil {
					log.Debug().Err(err).Msg("ignoring invalid token")
				} else {
					r = r.WithContext(context.WithValue(r.Context(), ctxSubjectKey{}, sub))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// subject returns the authenticated subject or "" for guests.
func subject(r *http.Request) string {
	sub, _ := r.Context().Value(ctxSubjectKey{}).(string)
	return sub
}

// bearerOrCookie extracts a bearer token from Authorization header or token cookie.
func bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(tokenCookieName); err == nil {
		return c.Value
	}
	return ""
}
