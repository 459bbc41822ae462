// Package auth provides the signup/login HTTP handlers and the bearer-token
// middleware protecting the rest of the API.
package auth

import (
	"context"
	"net/http"
	"strings"

	"article-digest/internal/handler/http/respond"
	"article-digest/internal/observability/metrics"
	authUC "article-digest/internal/usecase/auth"
)

// TokenVerifier validates a bearer token and returns the authenticated
// user's email.
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

type contextKey string

const userKey contextKey = "auth.user"

// CurrentUser returns the authenticated email set by Authz, or "" when the
// request was not authenticated.
func CurrentUser(ctx context.Context) string {
	email, _ := ctx.Value(userKey).(string)
	return email
}

// Authz returns middleware that requires a valid bearer token. The 401 body
// names the specific failure so clients can distinguish a missing header
// from an expired or tampered token.
func Authz(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				metrics.RecordAuthAttempt(metrics.AuthOperationVerify, metrics.AuthResultFailure)
				respond.Error(w, http.StatusUnauthorized, err)
				return
			}

			email, err := verifier.Verify(token)
			if err != nil {
				metrics.RecordAuthAttempt(metrics.AuthOperationVerify, metrics.AuthResultFailure)
				respond.Error(w, http.StatusUnauthorized, err)
				return
			}

			metrics.RecordAuthAttempt(metrics.AuthOperationVerify, metrics.AuthResultSuccess)
			ctx := context.WithValue(r.Context(), userKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header.
// A missing or malformed header maps to ErrTokenMissing.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", authUC.ErrTokenMissing
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", authUC.ErrTokenMissing
	}
	return strings.TrimSpace(token), nil
}
