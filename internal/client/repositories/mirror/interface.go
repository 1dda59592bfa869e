// Package mirror persists the Mirror collection: last-known authoritative
// snapshots kept as a read fallback for when both the remote store and the
// pending queue miss.
package mirror

import (
	"context"

	"github.com/brayenid/espj-sub000/internal/client/models"
)

// Repository describes storage operations for mirrored snapshots.
type Repository interface {
	// Upsert stores or refreshes the snapshot for its id.
	Upsert(ctx context.Context, rec *models.MirrorRecord) error

	// GetByID returns a snapshot by id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.MirrorRecord, error)
}
