// Package sync implements the offline-capable draft synchronization engine:
// the dual-write coordinator (create path), the hydration resolver (read
// path) and the reconciliation drain (replay path).
//
// All three share the durable local store and the remote client. Within one
// client instance they run on a single logical timeline; the drain only ever
// touches drafts still in the pending state, so it cannot race the inline
// commit attempt of a create.
package sync

import (
	"time"

	"github.com/brayenid/espj-sub000/internal/client/connectivity"
	"github.com/brayenid/espj-sub000/internal/client/remote"
	"github.com/brayenid/espj-sub000/internal/client/repositories/drafts"
	"github.com/brayenid/espj-sub000/internal/client/repositories/mirror"
	"github.com/brayenid/espj-sub000/internal/logging"
)

// Engine wires the coordinator, resolver and drain over one local store and
// one remote client.
type Engine struct {
	drafts drafts.Repository
	mirror mirror.Repository
	remote remote.Client
	signal connectivity.Signal
	logger logging.Logger

	// backoff policy for DrainWithBackoff
	drainBackoff time.Duration
	drainRetries uint64
}

// NewEngine builds an engine. The caller owns the store and remote client
// lifecycles.
func NewEngine(
	draftRepo drafts.Repository,
	mirrorRepo mirror.Repository,
	remoteClient remote.Client,
	signal connectivity.Signal,
	logger logging.Logger,
) *Engine {
	return &Engine{
		drafts:       draftRepo,
		mirror:       mirrorRepo,
		remote:       remoteClient,
		signal:       signal,
		logger:       logger.With("module", "sync_engine"),
		drainBackoff: drainInitialBackoff,
		drainRetries: drainMaxRetries,
	}
}
