package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brayenid/espj-sub000/internal/client/models"
	"github.com/brayenid/espj-sub000/internal/client/repositories/drafts"
	"github.com/brayenid/espj-sub000/internal/client/repositories/mirror"
)

// Provenance tags which source produced a resolved draft so callers can
// disclose non-authoritative data instead of presenting it as live.
type Provenance string

const (
	ProvenanceServer       Provenance = "server"
	ProvenanceLocalPending Provenance = "local-pending"
	ProvenanceLocalMirror  Provenance = "local-mirror"
	ProvenanceNotFound     Provenance = "not-found"
)

// ResolvedDraft is the outcome of a read. Draft is nil when Provenance is
// ProvenanceNotFound.
type ResolvedDraft struct {
	Provenance Provenance
	Draft      *models.DraftRecord
}

// Resolve reads the draft with the given id from the best available source,
// in fixed priority order: authoritative server, local pending queue, local
// mirror. A confirmed server record always wins; a draft that exists only
// locally outranks a stale mirror snapshot.
//
// The remote attempt is bounded by the remote client's call timeout, so this
// method never hangs on a dead network; it falls through to the local
// sources instead. Unreachable sources never surface as errors — only a
// local store failure does.
func (e *Engine) Resolve(ctx context.Context, id string) (*ResolvedDraft, error) {
	if d, err := e.remote.GetDraft(ctx, id); err == nil {
		e.refreshMirror(ctx, d)
		return &ResolvedDraft{Provenance: ProvenanceServer, Draft: d}, nil
	} else {
		e.logger.Debug(ctx, "authoritative fetch missed", "id", id, "error", err)
	}

	d, err := e.drafts.GetByID(ctx, id)
	if err == nil {
		return &ResolvedDraft{Provenance: ProvenanceLocalPending, Draft: d}, nil
	}
	if !errors.Is(err, drafts.ErrNotFound) {
		return nil, fmt.Errorf("local draft lookup failed: %w", err)
	}

	m, err := e.mirror.GetByID(ctx, id)
	if err == nil {
		return &ResolvedDraft{Provenance: ProvenanceLocalMirror, Draft: &models.DraftRecord{
			Id:           m.Id,
			DocumentType: m.DocumentType,
			Payload:      m.Payload,
			SyncState:    models.StateSynced,
			UpdatedAt:    m.FetchedAt,
		}}, nil
	}
	if !errors.Is(err, mirror.ErrNotFound) {
		return nil, fmt.Errorf("mirror lookup failed: %w", err)
	}

	return &ResolvedDraft{Provenance: ProvenanceNotFound}, nil
}

// refreshMirror caches an authoritative read result. Best effort: the read
// already succeeded, a stale mirror only degrades a future offline fallback.
func (e *Engine) refreshMirror(ctx context.Context, d *models.DraftRecord) {
	rec := &models.MirrorRecord{
		Id:           d.Id,
		DocumentType: d.DocumentType,
		Payload:      d.Payload,
		FetchedAt:    time.Now().UTC(),
	}
	if err := e.mirror.Upsert(ctx, rec); err != nil {
		e.logger.Warn(ctx, "failed to refresh mirror", "id", d.Id, "error", err)
	}
}
