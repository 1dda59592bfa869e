package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/brayenid/espj-sub000/internal/client/models"
	"github.com/brayenid/espj-sub000/internal/client/remote"
)

// CreateResult reports what happened to a newly authored draft. Id is always
// usable as the record's permanent identity; State tells the caller whether
// the draft already reached the server or was queued locally.
type CreateResult struct {
	Id    string
	State models.SyncState
}

// CreateDraft assigns the draft its permanent identity, durably stores it as
// pending, and, if the connectivity signal allows, makes a single inline
// commit attempt against the remote store.
//
// The local write must succeed before any network I/O; its failure is the
// only error this method returns. Delivery failures are absorbed: a
// transient failure leaves the draft pending for a later drain pass, a
// validation rejection parks it as errored. The returned id is valid in all
// of these cases.
func (e *Engine) CreateDraft(ctx context.Context, documentType string, payload []byte) (*CreateResult, error) {
	d := models.NewDraftRecord(documentType, payload)

	if err := e.drafts.Put(ctx, d); err != nil {
		return nil, fmt.Errorf("durable local write failed: %w", err)
	}

	if !e.signal.Online(ctx) {
		e.logger.Info(ctx, "draft queued offline", "id", d.Id, "type", d.DocumentType)
		return &CreateResult{Id: d.Id, State: models.StatePending}, nil
	}

	state := e.commitInline(ctx, d)
	return &CreateResult{Id: d.Id, State: state}, nil
}

// commitInline performs the single remote attempt of the create path and
// records the outcome. At most one attempt happens here; retries belong to
// the drain.
func (e *Engine) commitInline(ctx context.Context, d *models.DraftRecord) models.SyncState {
	err := e.remote.PutDraft(ctx, d)

	switch {
	case err == nil:
		if err := e.drafts.MarkState(ctx, d.Id, models.StateSynced); err != nil {
			// The server has the draft; a failed local mark only means the
			// drain will replay an idempotent upsert later.
			e.logger.Warn(ctx, "failed to mark draft synced", "id", d.Id, "error", err)
			return models.StatePending
		}
		e.logger.Info(ctx, "draft committed", "id", d.Id)
		return models.StateSynced

	case errors.Is(err, remote.ErrRejected):
		if err := e.drafts.MarkState(ctx, d.Id, models.StateErrored); err != nil {
			e.logger.Warn(ctx, "failed to mark draft errored", "id", d.Id, "error", err)
			return models.StatePending
		}
		e.logger.Warn(ctx, "draft rejected by server", "id", d.Id)
		return models.StateErrored

	default:
		e.logger.Info(ctx, "draft saved locally, will sync later", "id", d.Id, "error", err)
		return models.StatePending
	}
}
