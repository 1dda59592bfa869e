package sync

import (
	"context"
	"testing"
	"time"

	"github.com/brayenid/espj-sub000/internal/client/models"
	"github.com/brayenid/espj-sub000/internal/client/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_ServerWinsAndRefreshesMirror(t *testing.T) {
	f := setupEngine(t, true)
	ctx := context.Background()

	f.remote.docs["doc1"] = &models.DraftRecord{
		Id:           "doc1",
		DocumentType: "TELAAHAN",
		Payload:      []byte(`{"v":"server"}`),
		SyncState:    models.StateSynced,
		UpdatedAt:    time.UnixMilli(1000).UTC(),
	}

	resolved, err := f.engine.Resolve(ctx, "doc1")
	require.NoError(t, err)
	assert.Equal(t, ProvenanceServer, resolved.Provenance)
	assert.Equal(t, []byte(`{"v":"server"}`), resolved.Draft.Payload)

	// refresh-on-read populated the mirror
	m, err := f.mirror.GetByID(ctx, "doc1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":"server"}`), m.Payload)
}

func TestResolve_PendingOutranksMirror(t *testing.T) {
	f := setupEngine(t, false)
	f.remote.getErr = remote.ErrUnavailable
	ctx := context.Background()

	require.NoError(t, f.drafts.Put(ctx, &models.DraftRecord{
		Id:           "doc1",
		DocumentType: "TELAAHAN",
		Payload:      []byte(`{"v":"local"}`),
		SyncState:    models.StatePending,
		UpdatedAt:    time.UnixMilli(2000).UTC(),
	}))
	require.NoError(t, f.mirror.Upsert(ctx, &models.MirrorRecord{
		Id:           "doc1",
		DocumentType: "TELAAHAN",
		Payload:      []byte(`{"v":"stale"}`),
		FetchedAt:    time.UnixMilli(1000).UTC(),
	}))

	resolved, err := f.engine.Resolve(ctx, "doc1")
	require.NoError(t, err)
	assert.Equal(t, ProvenanceLocalPending, resolved.Provenance)
	assert.Equal(t, []byte(`{"v":"local"}`), resolved.Draft.Payload)
}

func TestResolve_MirrorIsLastResort(t *testing.T) {
	f := setupEngine(t, false)
	f.remote.getErr = remote.ErrUnavailable
	ctx := context.Background()

	// a record fetched in some earlier session, no pending write for it
	require.NoError(t, f.mirror.Upsert(ctx, &models.MirrorRecord{
		Id:           "doc2",
		DocumentType: "TELAAHAN",
		Payload:      []byte(`{"v":"cached"}`),
		FetchedAt:    time.UnixMilli(1000).UTC(),
	}))

	resolved, err := f.engine.Resolve(ctx, "doc2")
	require.NoError(t, err)
	assert.Equal(t, ProvenanceLocalMirror, resolved.Provenance)
	assert.Equal(t, []byte(`{"v":"cached"}`), resolved.Draft.Payload)
}

func TestResolve_NotFoundIsNotAnError(t *testing.T) {
	f := setupEngine(t, true)

	resolved, err := f.engine.Resolve(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, ProvenanceNotFound, resolved.Provenance)
	assert.Nil(t, resolved.Draft)
}

func TestResolve_AllSourcesUnreachableStillNoError(t *testing.T) {
	f := setupEngine(t, false)
	f.remote.getErr = remote.ErrUnavailable

	resolved, err := f.engine.Resolve(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, ProvenanceNotFound, resolved.Provenance)
}
