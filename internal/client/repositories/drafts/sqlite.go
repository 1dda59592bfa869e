package drafts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/brayenid/espj-sub000/internal/client/models"
	"github.com/brayenid/espj-sub000/internal/dbx"
)

// ErrNotFound is returned when no draft exists for the requested id.
var ErrNotFound = errors.New("draft not found")

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Put upserts a draft by id. On conflict the payload, state and timestamp are
// replaced with the incoming values.
func (r *SQLiteRepository) Put(ctx context.Context, d *models.DraftRecord) error {
	query := `INSERT INTO drafts (id, document_type, payload, sync_state, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET document_type = excluded.document_type,
				payload = excluded.payload,
				sync_state = excluded.sync_state,
				updated_at = excluded.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		d.Id, d.DocumentType, d.Payload, string(d.SyncState), d.UpdatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to upsert draft: %w", err)
	}
	return nil
}

// GetByID returns a single draft by id.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.DraftRecord, error) {
	query := `SELECT id, document_type, payload, sync_state, updated_at FROM drafts WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	d, err := scanDraft(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return d, nil
}

// List returns every locally stored draft, newest first.
func (r *SQLiteRepository) List(ctx context.Context) ([]*models.DraftRecord, error) {
	query := `SELECT id, document_type, payload, sync_state, updated_at FROM drafts
			ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select drafts: %w", err)
	}
	defer rows.Close()

	var result []*models.DraftRecord
	for rows.Next() {
		d, err := scanDraft(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListPending returns drafts in state 'pending', oldest first.
func (r *SQLiteRepository) ListPending(ctx context.Context) ([]*models.DraftRecord, error) {
	query := `SELECT id, document_type, payload, sync_state, updated_at FROM drafts
			WHERE sync_state = ? ORDER BY updated_at ASC`
	rows, err := r.db.QueryContext(ctx, query, string(models.StatePending))
	if err != nil {
		return nil, fmt.Errorf("failed to select pending drafts: %w", err)
	}
	defer rows.Close()

	var pending []*models.DraftRecord
	for rows.Next() {
		d, err := scanDraft(rows.Scan)
		if err != nil {
			return nil, err
		}
		pending = append(pending, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return pending, nil
}

// MarkState updates the sync state of one draft. It expects exactly one row
// to be affected.
func (r *SQLiteRepository) MarkState(ctx context.Context, id string, state models.SyncState) error {
	query := `UPDATE drafts SET sync_state = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, string(state), id)
	if err != nil {
		return fmt.Errorf("failed to update draft state: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return ErrNotFound
	}
	return nil
}

func scanDraft(scan func(dest ...any) error) (*models.DraftRecord, error) {
	d := &models.DraftRecord{}
	var state string
	var updatedAt int64
	if err := scan(&d.Id, &d.DocumentType, &d.Payload, &state, &updatedAt); err != nil {
		return nil, err
	}
	d.SyncState = models.SyncState(state)
	d.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return d, nil
}
