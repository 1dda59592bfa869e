package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/brayenid/espj-sub000/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestOpen_MigratesAndServesRepositories(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, filepath.Join(t.TempDir(), "drafts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	d := models.NewDraftRecord("TELAAHAN", []byte(`{"tempatTujuan":"Samarinda"}`))
	require.NoError(t, s.Drafts().Put(ctx, d))

	got, err := s.Drafts().GetByID(ctx, d.Id)
	require.NoError(t, err)
	assert.Equal(t, models.StatePending, got.SyncState)

	require.NoError(t, s.Mirror().Upsert(ctx, &models.MirrorRecord{
		Id: d.Id, DocumentType: d.DocumentType, Payload: d.Payload, FetchedAt: d.UpdatedAt,
	}))
}

// A draft written before the process dies must still be there after a fresh
// open of the same database file.
func TestOpen_DurabilityAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "drafts.db")

	s, err := Open(ctx, dsn)
	require.NoError(t, err)

	d := models.NewDraftRecord("TELAAHAN", []byte(`{"tempatTujuan":"Samarinda"}`))
	require.NoError(t, s.Drafts().Put(ctx, d))
	require.NoError(t, s.Close())

	s2, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s2.Close() })

	got, err := s2.Drafts().GetByID(ctx, d.Id)
	require.NoError(t, err)
	assert.Equal(t, d.Payload, got.Payload)
	assert.Equal(t, models.StatePending, got.SyncState)
}
