package summarizer_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"article-digest/internal/infra/summarizer"
)

// fakeBackend summarizes each chunk into a short marker and optionally fails
// for chunks matching failOn.
type fakeBackend struct {
	mu     sync.Mutex
	calls  []string
	failOn func(text string) bool
}

func (f *fakeBackend) Summarize(_ context.Context, text string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, text)
	n := len(f.calls)
	f.mu.Unlock()

	if f.failOn != nil && f.failOn(text) {
		return "", errors.New("backend unavailable")
	}
	return fmt.Sprintf("summary-%d-%s", n, text[:1]), nil
}

func TestChunked_SingleChunkPassesThrough(t *testing.T) {
	backend := &fakeBackend{}
	c := summarizer.NewChunked(backend, summarizer.DefaultChunkedConfig())

	got, err := c.Summarize(context.Background(), "short text")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if len(backend.calls) != 1 {
		t.Fatalf("expected one backend call, got %d", len(backend.calls))
	}
	if backend.calls[0] != "short text" {
		t.Errorf("expected backend to receive the whole input, got %q", backend.calls[0])
	}
	if got == "" {
		t.Error("expected non-empty summary")
	}
}

func TestChunked_SplitsAndJoinsInOrder(t *testing.T) {
	cfg := summarizer.ChunkedConfig{ChunkSize: 4, MaxChunks: 10, Parallelism: 1}
	backend := &fakeBackend{}
	c := summarizer.NewChunked(backend, cfg)

	// Chunks of 4 runes: "aaaa", "bbbb", "cccc".
	got, err := c.Summarize(context.Background(), "aaaabbbbcccc")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if len(backend.calls) != 3 {
		t.Fatalf("expected 3 backend calls, got %d", len(backend.calls))
	}

	// With Parallelism=1 call order equals chunk order, so the joined
	// result must keep the a/b/c markers in sequence.
	ai := strings.Index(got, "-a")
	bi := strings.Index(got, "-b")
	ci := strings.Index(got, "-c")
	if !(ai >= 0 && ai < bi && bi < ci) {
		t.Errorf("expected chunk summaries joined in order, got %q", got)
	}
}

func TestChunked_FailedChunkPlaceholder(t *testing.T) {
	cfg := summarizer.ChunkedConfig{ChunkSize: 4, MaxChunks: 10, Parallelism: 1}
	backend := &fakeBackend{
		failOn: func(text string) bool { return strings.HasPrefix(text, "b") },
	}
	c := summarizer.NewChunked(backend, cfg)

	got, err := c.Summarize(context.Background(), "aaaabbbbcccc")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if !strings.Contains(got, "[Failed chunk]") {
		t.Errorf("expected placeholder for failed chunk, got %q", got)
	}
	if !strings.Contains(got, "-a") || !strings.Contains(got, "-c") {
		t.Errorf("expected surviving chunk summaries around the placeholder, got %q", got)
	}
}

func TestChunked_AllChunksFailed(t *testing.T) {
	cfg := summarizer.ChunkedConfig{ChunkSize: 4, MaxChunks: 10, Parallelism: 2}
	backend := &fakeBackend{failOn: func(string) bool { return true }}
	c := summarizer.NewChunked(backend, cfg)

	_, err := c.Summarize(context.Background(), "aaaabbbbcccc")
	if err == nil {
		t.Fatal("expected error when every chunk fails")
	}
}

func TestChunked_ChunkCap(t *testing.T) {
	cfg := summarizer.ChunkedConfig{ChunkSize: 2, MaxChunks: 3, Parallelism: 1}
	backend := &fakeBackend{}
	c := summarizer.NewChunked(backend, cfg)

	if _, err := c.Summarize(context.Background(), strings.Repeat("ab", 20)); err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if len(backend.calls) != 3 {
		t.Errorf("expected backend calls capped at 3, got %d", len(backend.calls))
	}
}

func TestChunked_EmptyInput(t *testing.T) {
	backend := &fakeBackend{}
	c := summarizer.NewChunked(backend, summarizer.DefaultChunkedConfig())

	got, err := c.Summarize(context.Background(), "")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "" {
		t.Errorf("expected empty summary, got %q", got)
	}
	if len(backend.calls) != 0 {
		t.Errorf("expected no backend calls for empty input, got %d", len(backend.calls))
	}
}
