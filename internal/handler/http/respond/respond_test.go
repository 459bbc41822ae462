package respond_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"article-digest/internal/handler/http/respond"
)

func decodeError(t *testing.T, body []byte) string {
	t.Helper()
	var resp map[string]string
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return resp["error"]
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.JSON(rec, 200, map[string]string{"message": "ok"})

	if rec.Code != 200 {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp["message"] != "ok" {
		t.Errorf("unexpected body %v", resp)
	}
}

func TestSafeError_ValidationMessagePassedThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.SafeError(rec, 400, errors.New("url is required"))

	if got := decodeError(t, rec.Body.Bytes()); got != "url is required" {
		t.Errorf("expected validation message, got %q", got)
	}
}

func TestSafeError_InternalDetailMasked(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.SafeError(rec, 500, fmt.Errorf("pq: connection refused at 10.0.0.5"))

	if got := decodeError(t, rec.Body.Bytes()); got != "internal server error" {
		t.Errorf("expected generic message, got %q", got)
	}
}

func TestSafeError_500NeverExposesMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	// Even a "safe looking" message is masked at 5xx.
	respond.SafeError(rec, 500, errors.New("article not found"))

	if got := decodeError(t, rec.Body.Bytes()); got != "internal server error" {
		t.Errorf("expected generic message for 5xx, got %q", got)
	}
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "anthropic key masked",
			err:  errors.New("auth failed: sk-ant-abc123xyz"),
			want: "auth failed: sk-ant-****",
		},
		{
			name: "openai key masked",
			err:  errors.New("auth failed: sk-abcdef1234567890"),
			want: "auth failed: sk-****",
		},
		{
			name: "dsn password masked",
			err:  errors.New("connect postgres://user:hunter2@db:5432/app"),
			want: "connect postgres://user:****@db:5432/app",
		},
		{
			name: "plain message unchanged",
			err:  errors.New("something broke"),
			want: "something broke",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := respond.SanitizeError(tt.err); got != tt.want {
				t.Errorf("SanitizeError() = %q, want %q", got, tt.want)
			}
		})
	}
}
