// Package store bootstraps the durable local store: an SQLite database with
// two collections, pending drafts and mirrored snapshots.
//
// The handle returned by Open is passed explicitly to the components that
// need it and closed by the owner; there is no ambient global database state.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/brayenid/espj-sub000/internal/client/migrations"
	"github.com/brayenid/espj-sub000/internal/client/repositories/drafts"
	"github.com/brayenid/espj-sub000/internal/client/repositories/mirror"
	"github.com/pressly/goose/v3"
)

// Store owns the local database connection and exposes the repositories
// bound to it.
type Store struct {
	db     *sql.DB
	drafts drafts.Repository
	mirror mirror.Repository
}

// Open opens (creating if necessary) the local SQLite database at dsn,
// applies embedded migrations, and returns a ready-to-use handle.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate local store: %w", err)
	}

	return &Store{
		db:     db,
		drafts: drafts.NewSQLiteRepository(db),
		mirror: mirror.NewSQLiteRepository(db),
	}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// Drafts returns the pending drafts repository.
func (s *Store) Drafts() drafts.Repository {
	return s.drafts
}

// Mirror returns the mirrored snapshots repository.
func (s *Store) Mirror() mirror.Repository {
	return s.mirror
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
