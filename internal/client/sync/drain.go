package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brayenid/espj-sub000/internal/client/models"
	"github.com/brayenid/espj-sub000/internal/client/remote"
	"github.com/sethvargo/go-retry"
)

const (
	drainInitialBackoff = 2 * time.Second
	drainMaxRetries     = 5
)

var errDrainIncomplete = errors.New("pending drafts remain after drain pass")

// DrainReport summarizes one drain pass.
type DrainReport struct {
	// Synced counts drafts confirmed by the server during this pass.
	Synced int
	// Rejected counts drafts the server refused as invalid; they are parked
	// in the errored state and not retried.
	Rejected int
	// Remaining counts drafts still pending after this pass because their
	// delivery failed transiently.
	Remaining int
}

// Drain replays every pending draft against the remote store, oldest first
// by UpdatedAt so create-then-update sequences for one id keep their order.
// The remote commit is an idempotent upsert, so replaying a draft whose
// earlier attempt succeeded without an acknowledged response is harmless.
//
// A transient delivery failure leaves the draft pending for the next pass; a
// validation rejection parks it as errored. Only a local store failure is
// returned as an error.
func (e *Engine) Drain(ctx context.Context) (DrainReport, error) {
	var report DrainReport

	pending, err := e.drafts.ListPending(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to list pending drafts: %w", err)
	}

	for _, d := range pending {
		switch err := e.remote.PutDraft(ctx, d); {
		case err == nil:
			if err := e.drafts.MarkState(ctx, d.Id, models.StateSynced); err != nil {
				return report, fmt.Errorf("failed to mark draft synced: %w", err)
			}
			report.Synced++

		case errors.Is(err, remote.ErrRejected):
			if err := e.drafts.MarkState(ctx, d.Id, models.StateErrored); err != nil {
				return report, fmt.Errorf("failed to mark draft errored: %w", err)
			}
			e.logger.Warn(ctx, "draft rejected during drain", "id", d.Id)
			report.Rejected++

		default:
			e.logger.Info(ctx, "draft delivery failed, kept pending", "id", d.Id, "error", err)
			report.Remaining++
		}
	}

	if report.Synced > 0 || report.Rejected > 0 || report.Remaining > 0 {
		e.logger.Info(ctx, "drain pass finished",
			"synced", report.Synced, "rejected", report.Rejected, "remaining", report.Remaining)
	}

	return report, nil
}

// DrainWithBackoff runs drain passes with fibonacci backoff until nothing is
// left pending or the retry budget is spent. Intended for the reconnect
// trigger, where a flapping link can fail the first passes.
func (e *Engine) DrainWithBackoff(ctx context.Context) (DrainReport, error) {
	var last DrainReport

	b := retry.WithMaxRetries(e.drainRetries, retry.NewFibonacci(e.drainBackoff))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		report, err := e.Drain(ctx)
		if err != nil {
			return err
		}
		last = report
		if report.Remaining > 0 {
			return retry.RetryableError(errDrainIncomplete)
		}
		return nil
	})

	if errors.Is(err, errDrainIncomplete) {
		// Budget spent with drafts still pending; they stay queued for the
		// next trigger.
		return last, nil
	}
	return last, err
}
