// Package drafts persists the Pending Mutations collection: locally authored
// drafts that may or may not have reached the authoritative store yet.
package drafts

import (
	"context"

	"github.com/brayenid/espj-sub000/internal/client/models"
)

// Repository describes storage operations for locally authored drafts.
// Implementations are backed by a local SQLite database.
type Repository interface {
	// Put inserts a draft or replaces an existing one by Id (upsert).
	Put(ctx context.Context, draft *models.DraftRecord) error

	// GetByID returns a draft by its identifier, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.DraftRecord, error)

	// List returns all locally stored drafts, newest first by UpdatedAt.
	List(ctx context.Context) ([]*models.DraftRecord, error)

	// ListPending returns all drafts still awaiting a remote commit,
	// oldest first by UpdatedAt so replay preserves causal order.
	ListPending(ctx context.Context) ([]*models.DraftRecord, error)

	// MarkState transitions a draft to the given sync state.
	MarkState(ctx context.Context, id string, state models.SyncState) error
}
