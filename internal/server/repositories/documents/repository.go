// Package documents provides server-side persistence for committed drafts.
// The write is an idempotent upsert keyed by the client-supplied id, so a
// replayed commit whose earlier attempt already landed never duplicates or
// errors.
package documents

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no document exists for the requested id.
var ErrNotFound = errors.New("document not found")

// Document is the authoritative representation of a committed draft.
type Document struct {
	ID           string
	DocumentType string
	Payload      []byte
	UpdatedAt    time.Time
}

// Repository describes the storage operations the handlers need.
type Repository interface {
	// Upsert inserts the document or, if the id already exists, replaces
	// its payload only when the incoming UpdatedAt is not older than the
	// stored one. Replays of an already applied commit are no-ops.
	Upsert(ctx context.Context, doc *Document) error

	// GetByID returns the document, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*Document, error)
}
