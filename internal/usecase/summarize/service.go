package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"article-digest/internal/domain/entity"
	"article-digest/internal/observability/metrics"
	"article-digest/internal/repository"
)

// Article is the result of fetching and parsing a web page.
type Article struct {
	Title  string
	Text   string
	Images []string
}

// ArticleFetcher fetches and extracts an article from a URL.
type ArticleFetcher interface {
	Fetch(ctx context.Context, url string) (*Article, error)
}

// Summarizer produces a shorter text from the given text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Service orchestrates the summarize flow. Extractor selects key sentences
// from the full article; Abstractor rewrites the extract into the final
// summary. Either stage may be nil, in which case its input passes through.
type Service struct {
	Fetcher    ArticleFetcher
	Extractor  Summarizer
	Abstractor Summarizer
	History    repository.HistoryRepository
}

// Result is the outcome of a summarize call.
type Result struct {
	ChatID  string
	Title   string
	Summary string
	Images  []string
}

// Summarize fetches the article at rawURL, summarizes it, and upserts the
// result into the user's history. An empty chatID creates a new history
// record under a generated identifier; a non-empty chatID updates the
// existing record, so re-summarizing the same URL yields distinct entries
// unless the caller passes the previous chatID back.
//
// The whole flow is synchronous: the caller blocks on fetch, summarization
// and the history write in turn.
func (s *Service) Summarize(ctx context.Context, email, rawURL, chatID string, messages []entity.Message) (*Result, error) {
	if strings.TrimSpace(rawURL) == "" {
		metrics.RecordSummaryRequest(metrics.OutcomeInvalidInput)
		return nil, &entity.ValidationError{Field: "url", Message: "url is required"}
	}

	logger := slog.Default().With(slog.String("url", rawURL))
	start := time.Now()

	article, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		metrics.RecordSummaryRequest(metrics.OutcomeFetchError)
		return nil, fmt.Errorf("fetch article: %w", err)
	}
	if strings.TrimSpace(article.Text) == "" {
		metrics.RecordSummaryRequest(metrics.OutcomeFetchError)
		return nil, ErrEmptyArticle
	}

	logger.Info("article fetched",
		slog.String("title", article.Title),
		slog.Int("text_length", len(article.Text)),
		slog.Int("images", len(article.Images)))

	text := article.Text
	if s.Extractor != nil {
		extracted, err := s.Extractor.Summarize(ctx, text)
		if err != nil {
			metrics.RecordSummaryRequest(metrics.OutcomeSummarizeError)
			return nil, fmt.Errorf("%w: extractive stage: %v", ErrSummarizeFailed, err)
		}
		if strings.TrimSpace(extracted) != "" {
			text = extracted
		}
	}

	summary := text
	if s.Abstractor != nil {
		summary, err = s.Abstractor.Summarize(ctx, text)
		if err != nil {
			metrics.RecordSummaryRequest(metrics.OutcomeSummarizeError)
			return nil, fmt.Errorf("%w: abstractive stage: %v", ErrSummarizeFailed, err)
		}
	}

	title := article.Title
	if strings.TrimSpace(title) == "" {
		title = "Untitled"
	}

	if chatID == "" {
		chatID = uuid.New().String()
	}

	chat := &entity.Chat{
		ID:       chatID,
		Title:    title,
		Summary:  summary,
		Messages: messages,
	}
	if err := s.History.Save(ctx, email, chat); err != nil {
		metrics.RecordSummaryRequest(metrics.OutcomeStoreError)
		return nil, fmt.Errorf("save history: %w", err)
	}

	metrics.RecordSummaryRequest(metrics.OutcomeSuccess)
	logger.Info("summarization completed",
		slog.String("chat_id", chatID),
		slog.Int("summary_length", len(summary)),
		slog.Duration("duration", time.Since(start)))

	return &Result{
		ChatID:  chatID,
		Title:   title,
		Summary: summary,
		Images:  article.Images,
	}, nil
}
