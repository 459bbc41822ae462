// Package file implements the history repository as one JSON file per user.
//
// The layout mirrors the original design: each user's full history collection
// is a single JSON array stored under <dir>/<sanitized-email>_history.json,
// and every mutation is a read-modify-write of the whole collection.
//
// Known limitation (inherited, documented rather than fixed): there is no
// cross-process locking or versioning, so two processes mutating the same
// user's history can race and the last whole-collection write wins. The
// store-level mutex below only serializes goroutines within one process.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"article-digest/internal/domain/entity"
	"article-digest/internal/repository"
)

// HistoryRepo stores per-user history collections as JSON files.
type HistoryRepo struct {
	dir string
	mu  sync.Mutex
	now func() time.Time
}

// NewHistoryRepo creates a file-backed history repository rooted at dir.
// The directory is created on first use if it does not exist.
func NewHistoryRepo(dir string) repository.HistoryRepository {
	return &HistoryRepo{dir: dir, now: time.Now}
}

// userFile returns the history file path for a user, using a filesystem-safe
// transform of the email address ("@" -> "_at_", "." -> "_dot_").
func (r *HistoryRepo) userFile(email string) string {
	safe := strings.ReplaceAll(email, "@", "_at_")
	safe = strings.ReplaceAll(safe, ".", "_dot_")
	return filepath.Join(r.dir, safe+"_history.json")
}

// load reads the user's history collection. A missing or unreadable file
// yields an empty collection: history reads never fail for absent users,
// and a corrupt file is treated as empty rather than blocking the account.
func (r *HistoryRepo) load(email string) []*entity.Chat {
	data, err := os.ReadFile(r.userFile(email))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("failed to read history file, treating as empty",
				slog.String("path", r.userFile(email)),
				slog.Any("error", err))
		}
		return []*entity.Chat{}
	}

	var chats []*entity.Chat
	if err := json.Unmarshal(data, &chats); err != nil {
		slog.Warn("corrupt history file, treating as empty",
			slog.String("path", r.userFile(email)),
			slog.Any("error", err))
		return []*entity.Chat{}
	}
	return chats
}

// store writes the whole collection back as one unit. The write goes through
// a temp file followed by rename so a single writer never leaves a partially
// written file behind; concurrent writers from other processes still race.
func (r *HistoryRepo) store(email string, chats []*entity.Chat) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	data, err := json.MarshalIndent(chats, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	path := r.userFile(email)
	tmp, err := os.CreateTemp(r.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp history file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close history file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace history file: %w", err)
	}
	return nil
}

// Save upserts a chat record keyed by chat.ID. A matching record is
// overwritten in place and keeps its position; otherwise the record is
// appended. The record timestamp is refreshed on every save.
func (r *HistoryRepo) Save(_ context.Context, email string, chat *entity.Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	chats := r.load(email)

	updated := *chat
	updated.Timestamp = r.now()

	found := false
	for i, existing := range chats {
		if existing.ID == chat.ID {
			chats[i] = &updated
			found = true
			break
		}
	}
	if !found {
		chats = append(chats, &updated)
	}

	if err := r.store(email, chats); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

// List returns the user's history in insertion order. Users with no prior
// activity get an empty slice, never an error.
func (r *HistoryRepo) List(_ context.Context, email string) ([]*entity.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(email), nil
}

// Rename updates only the title of the record with the given ID.
func (r *HistoryRepo) Rename(_ context.Context, email, id, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	chats := r.load(email)
	for _, chat := range chats {
		if chat.ID == id {
			chat.Title = title
			if err := r.store(email, chats); err != nil {
				return fmt.Errorf("Rename: %w", err)
			}
			return nil
		}
	}
	return entity.ErrNotFound
}

// Delete removes exactly one record matching the given ID.
func (r *HistoryRepo) Delete(_ context.Context, email, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	chats := r.load(email)
	for i, chat := range chats {
		if chat.ID == id {
			chats = append(chats[:i], chats[i+1:]...)
			if err := r.store(email, chats); err != nil {
				return fmt.Errorf("Delete: %w", err)
			}
			return nil
		}
	}
	return entity.ErrNotFound
}
