package mirror

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/brayenid/espj-sub000/internal/client/models"
	"github.com/brayenid/espj-sub000/internal/dbx"
)

// ErrNotFound is returned when no snapshot exists for the requested id.
var ErrNotFound = errors.New("mirror record not found")

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Upsert refreshes the cached snapshot for rec.Id.
func (r *SQLiteRepository) Upsert(ctx context.Context, rec *models.MirrorRecord) error {
	query := `INSERT INTO mirror (id, document_type, payload, fetched_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET document_type = excluded.document_type,
				payload = excluded.payload,
				fetched_at = excluded.fetched_at
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.Id, rec.DocumentType, rec.Payload, rec.FetchedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to upsert mirror record: %w", err)
	}
	return nil
}

// GetByID returns the cached snapshot for id.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.MirrorRecord, error) {
	query := `SELECT id, document_type, payload, fetched_at FROM mirror WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	rec := &models.MirrorRecord{}
	var fetchedAt int64
	err := row.Scan(&rec.Id, &rec.DocumentType, &rec.Payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	rec.FetchedAt = time.UnixMilli(fetchedAt).UTC()
	return rec, nil
}
