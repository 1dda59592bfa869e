package connectivity

import (
	"context"
	"time"

	"github.com/brayenid/espj-sub000/internal/logging"
)

// Watcher polls a Signal on a fixed interval and fires a callback when
// connectivity transitions from offline to online, plus once at start if the
// first probe already reports online. This is the trigger for the
// reconciliation drain.
type Watcher struct {
	signal   Signal
	interval time.Duration
	onOnline func(ctx context.Context)
	logger   logging.Logger
}

// NewWatcher builds a watcher that invokes onOnline on each offline→online
// transition.
func NewWatcher(signal Signal, interval time.Duration, onOnline func(ctx context.Context), logger logging.Logger) *Watcher {
	return &Watcher{
		signal:   signal,
		interval: interval,
		onOnline: onOnline,
		logger:   logger.With("module", "connectivity_watcher"),
	}
}

// Run blocks until ctx is done, probing every interval. The first probe runs
// immediately so a client that starts online drains right away.
func (w *Watcher) Run(ctx context.Context) {
	online := w.probe(ctx, false)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			online = w.probe(ctx, online)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) probe(ctx context.Context, wasOnline bool) bool {
	online := w.signal.Online(ctx)

	if online && !wasOnline {
		w.logger.Info(ctx, "connectivity regained")
		w.onOnline(ctx)
	}
	if !online && wasOnline {
		w.logger.Info(ctx, "connectivity lost, switching to offline mode")
	}

	return online
}
