// Package cli implements the interactive draft client: a small REPL over the
// synchronization engine, plus the connectivity watcher that triggers drains
// on reconnect.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/brayenid/espj-sub000/internal/client/config"
	"github.com/brayenid/espj-sub000/internal/client/connectivity"
	"github.com/brayenid/espj-sub000/internal/client/remote"
	"github.com/brayenid/espj-sub000/internal/client/store"
	"github.com/brayenid/espj-sub000/internal/client/sync"
	"github.com/brayenid/espj-sub000/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	store   *store.Store
	remote  remote.Client
	engine  *sync.Engine
	watcher *connectivity.Watcher
	logger  logging.Logger
	reader  *bufio.Reader
}

// NewApp opens the local store, dials the server and wires the engine. The
// returned App owns both handles; Close releases them.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	st, err := store.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing local store: %w", err)
	}

	rc, err := remote.NewGRPCClient(c.ServerEndpointAddr, c.RemoteCallTimeout)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("error initializing remote client: %w", err)
	}

	signal := connectivity.NewProbeSignal(rc, c.RemoteCallTimeout)
	engine := sync.NewEngine(st.Drafts(), st.Mirror(), rc, signal, logger)

	watcher := connectivity.NewWatcher(signal, c.OnlineCheckInterval, func(ctx context.Context) {
		if _, err := engine.DrainWithBackoff(ctx); err != nil {
			logger.Error(ctx, "drain after reconnect failed", "error", err)
		}
	}, logger)

	return &App{
		config:  c,
		store:   st,
		remote:  rc,
		engine:  engine,
		watcher: watcher,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the connectivity watcher and enters the REPL. It returns when
// the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.watcher.Run(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner)
}

// Close releases the remote connection and the local store.
func (a *App) Close() error {
	if err := a.remote.Close(); err != nil {
		return err
	}
	return a.store.Close()
}
