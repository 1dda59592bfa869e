package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/brayenid/espj-sub000/internal/client/models"
	"github.com/brayenid/espj-sub000/internal/client/sync"
)

// Create authors a new draft. The user lands on a stable id immediately,
// whether or not the server could be reached.
func (a *App) Create(ctx context.Context) error {
	docType, err := GetInput(a.reader, "Document type (e.g. TELAAHAN):", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fields, err := GetFields(a.reader, "Fields as name=value, empty line to finish:", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	result, err := a.engine.CreateDraft(ctx, docType, payload)
	if err != nil {
		log.Printf("error saving draft: %v", err)
		return err
	}

	switch result.State {
	case models.StateSynced:
		printlnFn(fmt.Sprintf("Draft %s saved and synced", result.Id))
	case models.StateErrored:
		printlnFn(fmt.Sprintf("Draft %s saved locally but rejected by the server; correct and resubmit", result.Id))
	default:
		printlnFn(fmt.Sprintf("Draft %s saved locally, will sync when online", result.Id))
	}
	return nil
}

// Show resolves one record and displays it together with its provenance so
// the user can tell live data from locally queued or cached data.
func (a *App) Show(ctx context.Context, id string) error {
	resolved, err := a.engine.Resolve(ctx, id)
	if err != nil {
		log.Printf("error resolving draft: %v", err)
		return err
	}

	if resolved.Provenance == sync.ProvenanceNotFound {
		printlnFn(fmt.Sprintf("No record found for %s", id))
		return nil
	}

	d := resolved.Draft
	printlnFn(fmt.Sprintf("[%s] %s (%s)", resolved.Provenance, d.Id, d.DocumentType))
	printlnFn(string(d.Payload))
	return nil
}

// List prints the local drafts with their sync states.
func (a *App) List(ctx context.Context) error {
	all, err := a.store.Drafts().List(ctx)
	if err != nil {
		log.Printf("error listing drafts: %v", err)
		return err
	}

	if len(all) == 0 {
		printlnFn("No local drafts")
		return nil
	}
	for _, d := range all {
		printlnFn(fmt.Sprintf("%s  %-10s %s  %s",
			d.Id, d.DocumentType, d.SyncState, d.UpdatedAt.Format("2006-01-02 15:04:05")))
	}
	return nil
}

// Drain replays pending drafts now instead of waiting for the watcher.
func (a *App) Drain(ctx context.Context) error {
	report, err := a.engine.Drain(ctx)
	if err != nil {
		log.Printf("error draining drafts: %v", err)
		return err
	}
	printlnFn(fmt.Sprintf("Drain finished: %d synced, %d rejected, %d still pending",
		report.Synced, report.Rejected, report.Remaining))
	return nil
}
