// Package connectivity provides the point-in-time reachability signal the
// write and read paths consult before spending a network attempt.
//
// The signal is advisory only: the network can drop between the check and
// the call, so the real authority is always the outcome of the attempted
// call itself.
package connectivity

import (
	"context"
	"time"
)

// Signal answers whether the authoritative store looks reachable right now.
type Signal interface {
	Online(ctx context.Context) bool
}

// Pinger is the slice of the remote client the probe needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeSignal implements Signal by issuing a bounded Ping against the server.
type ProbeSignal struct {
	pinger  Pinger
	timeout time.Duration
}

// NewProbeSignal builds a signal probing through pinger, each probe bounded
// by timeout.
func NewProbeSignal(pinger Pinger, timeout time.Duration) *ProbeSignal {
	return &ProbeSignal{pinger: pinger, timeout: timeout}
}

// Online reports whether a ping currently succeeds. Any error counts as
// offline.
func (s *ProbeSignal) Online(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.pinger.Ping(ctx) == nil
}
