package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/brayenid/espj-sub000/internal/dbx"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert writes the document by id. The WHERE clause keeps the newest
// payload in place when an old replay arrives out of order; a no-op replay
// still succeeds.
func (r *PostgresRepository) Upsert(ctx context.Context, doc *Document) error {
	query := `
		INSERT INTO documents (id, document_type, payload, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id)
		DO UPDATE SET
			document_type = EXCLUDED.document_type,
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at
			WHERE documents.updated_at <= EXCLUDED.updated_at;
	`
	_, err := r.db.ExecContext(ctx, query,
		doc.ID, doc.DocumentType, doc.Payload, doc.UpdatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByID returns a single document by id.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Document, error) {
	query := `SELECT id, document_type, payload, updated_at FROM documents WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	doc := &Document{}
	var updatedAt int64
	err := row.Scan(&doc.ID, &doc.DocumentType, &doc.Payload, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	doc.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return doc, nil
}
