package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"article-digest/internal/handler/http/auth"
	authUC "article-digest/internal/usecase/auth"
)

type stubVerifier struct {
	email string
	err   error
}

func (s stubVerifier) Verify(string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.email, nil
}

func protected(t *testing.T, verifier auth.TokenVerifier) (http.Handler, *string) {
	t.Helper()
	var seenEmail string
	h := auth.Authz(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenEmail = auth.CurrentUser(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	return h, &seenEmail
}

func TestAuthz_ValidToken(t *testing.T) {
	h, seenEmail := protected(t, stubVerifier{email: "alice@example.com"})

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if *seenEmail != "alice@example.com" {
		t.Errorf("expected email in context, got %q", *seenEmail)
	}
}

func TestAuthz_MissingHeader(t *testing.T) {
	h, _ := protected(t, stubVerifier{email: "alice@example.com"})

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	assertErrorContains(t, rec, "missing")
}

func TestAuthz_MalformedHeader(t *testing.T) {
	h, _ := protected(t, stubVerifier{email: "alice@example.com"})

	for _, header := range []string{"some-token", "Basic abc", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/history", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAuthz_ExpiredToken(t *testing.T) {
	h, _ := protected(t, stubVerifier{err: authUC.ErrTokenExpired})

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	assertErrorContains(t, rec, "expired")
}

func TestAuthz_InvalidToken(t *testing.T) {
	h, _ := protected(t, stubVerifier{err: authUC.ErrTokenInvalid})

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	req.Header.Set("Authorization", "Bearer tampered-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	assertErrorContains(t, rec, "invalid")
}

func assertErrorContains(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if !strings.Contains(body["error"], want) {
		t.Errorf("expected error containing %q, got %q", want, body["error"])
	}
}
