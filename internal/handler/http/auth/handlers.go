package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"article-digest/internal/domain/entity"
	"article-digest/internal/handler/http/respond"
	"article-digest/internal/observability/metrics"
)

// Signuper registers a new account.
type Signuper interface {
	Signup(ctx context.Context, name, email, password string) error
}

// Loginer verifies credentials and issues a session token.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
}

// SignupHandler handles POST /signup.
type SignupHandler struct{ Svc Signuper }

func (h SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if err := h.Svc.Signup(r.Context(), req.Name, req.Email, req.Password); err != nil {
		metrics.RecordAuthAttempt(metrics.AuthOperationSignup, metrics.AuthResultFailure)
		var vErr *entity.ValidationError
		switch {
		case errors.As(err, &vErr), errors.Is(err, entity.ErrDuplicateEmail):
			respond.Error(w, http.StatusBadRequest, err)
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	metrics.RecordAuthAttempt(metrics.AuthOperationSignup, metrics.AuthResultSuccess)
	respond.JSON(w, http.StatusOK, map[string]string{"message": "signup successful"})
}

// LoginHandler handles POST /login.
type LoginHandler struct{ Svc Loginer }

func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	token, user, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		metrics.RecordAuthAttempt(metrics.AuthOperationLogin, metrics.AuthResultFailure)
		if errors.Is(err, entity.ErrInvalidCredentials) {
			respond.Error(w, http.StatusUnauthorized, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	metrics.RecordAuthAttempt(metrics.AuthOperationLogin, metrics.AuthResultSuccess)
	respond.JSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user": map[string]string{
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// AuthService combines the operations the register helper needs.
type AuthService interface {
	Signuper
	Loginer
	TokenVerifier
}

// Register wires the credential endpoints onto mux. limit wraps each
// endpoint with the caller's rate limiting middleware.
func Register(mux *http.ServeMux, svc AuthService, limit func(http.Handler) http.Handler) {
	mux.Handle("POST /signup", limit(SignupHandler{Svc: svc}))
	mux.Handle("POST /login", limit(LoginHandler{Svc: svc}))
}
