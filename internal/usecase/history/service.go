// Package history implements use cases over the per-user history collection:
// listing, renaming and deleting summary/chat records.
package history

import (
	"context"
	"errors"
	"fmt"

	"article-digest/internal/domain/entity"
	"article-digest/internal/observability/metrics"
	"article-digest/internal/repository"
)

// Service provides history management use cases.
// It delegates persistence to the repository and records operation metrics.
type Service struct {
	Repo repository.HistoryRepository
}

// List returns the user's full history in insertion order.
func (s *Service) List(ctx context.Context, email string) ([]*entity.Chat, error) {
	chats, err := s.Repo.List(ctx, email)
	if err != nil {
		metrics.RecordHistoryOperation("list", "error")
		return nil, fmt.Errorf("list history: %w", err)
	}
	metrics.RecordHistoryOperation("list", "success")
	return chats, nil
}

// Rename updates the title of one record. An empty title is rejected;
// an unknown record ID yields entity.ErrNotFound.
func (s *Service) Rename(ctx context.Context, email, id, title string) error {
	if title == "" {
		return &entity.ValidationError{Field: "title", Message: "title is required"}
	}

	if err := s.Repo.Rename(ctx, email, id, title); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			metrics.RecordHistoryOperation("rename", "not_found")
			return entity.ErrNotFound
		}
		metrics.RecordHistoryOperation("rename", "error")
		return fmt.Errorf("rename history record: %w", err)
	}
	metrics.RecordHistoryOperation("rename", "success")
	return nil
}

// Delete removes one record. An unknown record ID yields entity.ErrNotFound.
func (s *Service) Delete(ctx context.Context, email, id string) error {
	if err := s.Repo.Delete(ctx, email, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			metrics.RecordHistoryOperation("delete", "not_found")
			return entity.ErrNotFound
		}
		metrics.RecordHistoryOperation("delete", "error")
		return fmt.Errorf("delete history record: %w", err)
	}
	metrics.RecordHistoryOperation("delete", "success")
	return nil
}
