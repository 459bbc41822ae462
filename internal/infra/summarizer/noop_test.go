package summarizer_test

import (
	"context"
	"strings"
	"testing"

	"article-digest/internal/infra/summarizer"
)

func TestNoOp_ShortTextUnchanged(t *testing.T) {
	got, err := summarizer.NewNoOp().Summarize(context.Background(), "short text")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "short text" {
		t.Errorf("expected text unchanged, got %q", got)
	}
}

func TestNoOp_LongTextTruncated(t *testing.T) {
	long := strings.Repeat("x", 600)
	got, err := summarizer.NewNoOp().Summarize(context.Background(), long)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if len(got) != 503 { // 500 chars + "..."
		t.Errorf("expected 503 bytes, got %d", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
}

func TestValidateCharacterLimit(t *testing.T) {
	if err := summarizer.ValidateCharacterLimit(900); err != nil {
		t.Errorf("expected 900 to be valid, got %v", err)
	}
	if err := summarizer.ValidateCharacterLimit(50); err == nil {
		t.Error("expected error for limit below minimum")
	}
	if err := summarizer.ValidateCharacterLimit(6000); err == nil {
		t.Error("expected error for limit above maximum")
	}
}
