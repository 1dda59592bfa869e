package sync

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/brayenid/espj-sub000/internal/client/models"
	"github.com/brayenid/espj-sub000/internal/client/remote"
	"github.com/brayenid/espj-sub000/internal/client/repositories/drafts"
	"github.com/brayenid/espj-sub000/internal/client/repositories/mirror"
	"github.com/brayenid/espj-sub000/internal/logging"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

/*************
 * Fixtures
 *************/

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE drafts (
  id TEXT PRIMARY KEY,
  document_type TEXT NOT NULL,
  payload BLOB NOT NULL,
  sync_state TEXT NOT NULL DEFAULT 'pending',
  updated_at INTEGER NOT NULL
);

CREATE TABLE mirror (
  id TEXT PRIMARY KEY,
  document_type TEXT NOT NULL,
  payload BLOB NOT NULL,
  fetched_at INTEGER NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

// fakeRemote simulates the authoritative store: an id-keyed map with
// injectable failures. PutDraft is an idempotent upsert like the real server.
type fakeRemote struct {
	docs     map[string]*models.DraftRecord
	pingErr  error
	putErr   error
	failPuts int // fail this many puts with putErr, then succeed
	getErr   error
	putCalls int
	putOrder []string
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{docs: map[string]*models.DraftRecord{}}
}

func (f *fakeRemote) Ping(ctx context.Context) error {
	return f.pingErr
}

func (f *fakeRemote) PutDraft(ctx context.Context, d *models.DraftRecord) error {
	f.putCalls++
	f.putOrder = append(f.putOrder, d.Id)
	if f.failPuts > 0 {
		f.failPuts--
		err := f.putErr
		if f.failPuts == 0 {
			f.putErr = nil
		}
		return err
	}
	if f.putErr != nil {
		return f.putErr
	}
	cp := *d
	cp.SyncState = models.StateSynced
	f.docs[d.Id] = &cp
	return nil
}

func (f *fakeRemote) GetDraft(ctx context.Context, id string) (*models.DraftRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	d, ok := f.docs[id]
	if !ok {
		return nil, remote.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeRemote) Close() error { return nil }

// stubSignal is a flippable connectivity signal.
type stubSignal struct {
	online bool
}

func (s *stubSignal) Online(ctx context.Context) bool { return s.online }

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fixture struct {
	engine *Engine
	drafts drafts.Repository
	mirror mirror.Repository
	remote *fakeRemote
	signal *stubSignal
}

func setupEngine(t *testing.T, online bool) *fixture {
	t.Helper()
	db := setupDB(t)

	f := &fixture{
		drafts: drafts.NewSQLiteRepository(db),
		mirror: mirror.NewSQLiteRepository(db),
		remote: newFakeRemote(),
		signal: &stubSignal{online: online},
	}
	f.engine = NewEngine(f.drafts, f.mirror, f.remote, f.signal, discardLogger())
	return f
}
