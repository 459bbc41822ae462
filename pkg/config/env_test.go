package config

import (
	"testing"
	"time"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	if got := GetEnvString("TEST_STR", "default"); got != "value" {
		t.Errorf("got %q, want %q", got, "value")
	}
	if got := GetEnvString("TEST_STR_UNSET", "default"); got != "default" {
		t.Errorf("got %q, want %q", got, "default")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := GetEnvInt("TEST_INT", 1); got != 42 {
		t.Errorf("got %d, want 42", got)
	}

	t.Setenv("TEST_INT_BAD", "not-a-number")
	if got := GetEnvInt("TEST_INT_BAD", 7); got != 7 {
		t.Errorf("got %d, want fallback 7", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	if !GetEnvBool("TEST_BOOL", false) {
		t.Error("got false, want true")
	}

	t.Setenv("TEST_BOOL_BAD", "maybe")
	if GetEnvBool("TEST_BOOL_BAD", false) {
		t.Error("got true, want fallback false")
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "90s")
	if got := GetEnvDuration("TEST_DUR", time.Minute); got != 90*time.Second {
		t.Errorf("got %v, want 90s", got)
	}

	t.Setenv("TEST_DUR_BAD", "soon")
	if got := GetEnvDuration("TEST_DUR_BAD", time.Minute); got != time.Minute {
		t.Errorf("got %v, want fallback 1m", got)
	}
}
