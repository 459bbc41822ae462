// Package postgres implements repository interfaces backed by PostgreSQL
// through database/sql and the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"article-digest/internal/domain/entity"
	"article-digest/internal/repository"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

// Create inserts a new user and fills in the generated ID and creation time.
// A duplicate email maps to entity.ErrDuplicateEmail.
func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO users (name, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id, created_at`

	err := repo.db.QueryRowContext(ctx, query, user.Name, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entity.ErrDuplicateEmail
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// FindByEmail retrieves a user by email, or entity.ErrNotFound.
func (repo *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	const query = `
SELECT id, name, email, password_hash, created_at
FROM users
WHERE email = $1`

	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("FindByEmail: %w", err)
	}
	return &user, nil
}
