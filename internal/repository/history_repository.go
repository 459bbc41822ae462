package repository

import (
	"context"

	"article-digest/internal/domain/entity"
)

// HistoryRepository manages the per-user history collection of summarized
// articles and chat threads. All operations are scoped to a single user,
// identified by email address.
type HistoryRepository interface {
	// Save upserts a chat record into the user's history. If a record with
	// the same ID exists its title, summary, messages and timestamp are
	// overwritten in place (the record keeps its position); otherwise the
	// record is appended.
	Save(ctx context.Context, email string, chat *entity.Chat) error

	// List returns the user's full history in insertion order.
	// A user with no history yields an empty slice, not an error.
	List(ctx context.Context, email string) ([]*entity.Chat, error)

	// Rename updates only the title of the record with the given ID.
	// Returns entity.ErrNotFound if no record matches.
	Rename(ctx context.Context, email, id, title string) error

	// Delete removes the record with the given ID.
	// Returns entity.ErrNotFound if no record matches.
	Delete(ctx context.Context, email, id string) error
}
