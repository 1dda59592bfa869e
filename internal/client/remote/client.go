// Package remote defines the contract with the authoritative document store
// and its gRPC implementation.
//
// Failure classes are exposed as sentinel errors so callers can decide what
// is retryable: ErrUnavailable is transient (the draft stays pending and a
// later drain pass retries delivery), ErrRejected is a validation verdict on
// the payload itself and must not be retried, ErrNotFound signals an id the
// server does not know.
package remote

import (
	"context"
	"errors"

	"github.com/brayenid/espj-sub000/internal/client/models"
)

var (
	// ErrUnavailable marks a transient delivery failure: the server is
	// unreachable, timed out, or failed internally.
	ErrUnavailable = errors.New("server unavailable")

	// ErrRejected marks a validation rejection: the server deemed the
	// payload invalid. Terminal for the affected draft.
	ErrRejected = errors.New("payload rejected by server")

	// ErrNotFound is returned by GetDraft for an unknown id.
	ErrNotFound = errors.New("draft not found on server")
)

// Client talks to the authoritative store. PutDraft must be idempotent by
// draft id: replaying a commit the server already applied is a no-op upsert.
type Client interface {
	Ping(ctx context.Context) error
	PutDraft(ctx context.Context, draft *models.DraftRecord) error
	GetDraft(ctx context.Context, id string) (*models.DraftRecord, error)
	Close() error
}
