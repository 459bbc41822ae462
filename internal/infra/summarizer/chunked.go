package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"article-digest/internal/utils/text"
)

const (
	// defaultChunkSize is the chunk size in runes for long inputs.
	defaultChunkSize = 1024

	// defaultMaxChunks caps how many chunks of the input are summarized;
	// text beyond the cap is dropped.
	defaultMaxChunks = 16

	// defaultChunkParallelism bounds concurrent backend calls.
	defaultChunkParallelism = 4

	// failedChunkPlaceholder stands in for a chunk whose summarization
	// failed; the remaining chunks still contribute to the result.
	failedChunkPlaceholder = "[Failed chunk]"
)

// ChunkedConfig holds the configuration for the chunked pipeline.
type ChunkedConfig struct {
	// ChunkSize is the chunk size in runes. Default 1024.
	ChunkSize int

	// MaxChunks caps the number of chunks summarized per call. Default 16.
	MaxChunks int

	// Parallelism bounds concurrent backend calls. Default 4.
	Parallelism int
}

// DefaultChunkedConfig returns the default chunked pipeline configuration.
func DefaultChunkedConfig() ChunkedConfig {
	return ChunkedConfig{
		ChunkSize:   defaultChunkSize,
		MaxChunks:   defaultMaxChunks,
		Parallelism: defaultChunkParallelism,
	}
}

// Chunked splits long input into fixed-size chunks, summarizes each through
// the backend with bounded parallelism, and joins the partial summaries in
// their original order. A chunk whose summarization fails contributes the
// "[Failed chunk]" placeholder instead of failing the whole call; the call
// errors only when every chunk fails.
type Chunked struct {
	backend Summarizer
	config  ChunkedConfig
}

// Summarizer matches the usecase-side summarizer port. Declared locally so
// the pipeline can wrap any backend without an import cycle.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// NewChunked wraps backend in the chunked pipeline.
func NewChunked(backend Summarizer, config ChunkedConfig) *Chunked {
	if config.ChunkSize <= 0 {
		config.ChunkSize = defaultChunkSize
	}
	if config.MaxChunks <= 0 {
		config.MaxChunks = defaultMaxChunks
	}
	if config.Parallelism <= 0 {
		config.Parallelism = defaultChunkParallelism
	}
	return &Chunked{backend: backend, config: config}
}

// Summarize implements the Summarizer interface.
func (c *Chunked) Summarize(ctx context.Context, input string) (string, error) {
	chunks := text.ChunkRunes(input, c.config.ChunkSize)
	if len(chunks) == 0 {
		return "", nil
	}
	if len(chunks) > c.config.MaxChunks {
		slog.Warn("input exceeds chunk cap, trailing text dropped",
			slog.Int("chunks", len(chunks)),
			slog.Int("max_chunks", c.config.MaxChunks))
		chunks = chunks[:c.config.MaxChunks]
	}

	if len(chunks) == 1 {
		return c.backend.Summarize(ctx, chunks[0])
	}

	results := make([]string, len(chunks))
	failures := make([]bool, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.config.Parallelism)

	for i, chunk := range chunks {
		g.Go(func() error {
			summary, err := c.backend.Summarize(gctx, chunk)
			if err != nil {
				slog.Warn("chunk summarization failed",
					slog.Int("chunk", i),
					slog.Any("error", err))
				results[i] = failedChunkPlaceholder
				failures[i] = true
				return nil // per-chunk failures don't abort the group
			}
			results[i] = summary
			return nil
		})
	}

	// Workers never return errors; Wait only surfaces context cancellation.
	if err := g.Wait(); err != nil {
		return "", err
	}

	failed := 0
	for _, f := range failures {
		if f {
			failed++
		}
	}
	if failed == len(chunks) {
		return "", fmt.Errorf("all %d chunks failed to summarize", len(chunks))
	}
	if failed > 0 {
		slog.Warn("partial summarization result",
			slog.Int("failed_chunks", failed),
			slog.Int("total_chunks", len(chunks)))
	}

	return strings.Join(results, " "), nil
}
