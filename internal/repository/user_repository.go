// Package repository defines persistence interfaces for domain entities.
// Concrete implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"article-digest/internal/domain/entity"
)

// UserRepository manages user account persistence.
type UserRepository interface {
	// Create stores a new user. Returns entity.ErrDuplicateEmail if the
	// email address is already registered.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email address.
	// Returns entity.ErrNotFound if no user with that email exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
