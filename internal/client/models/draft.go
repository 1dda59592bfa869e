// Package models defines the client-side records handled by the draft
// synchronization engine.
package models

import (
	"time"

	"github.com/google/uuid"
)

// SyncState tracks where a locally authored draft stands relative to the
// authoritative store.
type SyncState string

const (
	// StatePending means the draft is durably stored locally and awaits a
	// successful remote commit.
	StatePending SyncState = "pending"

	// StateSynced means the remote store has confirmed the draft. Terminal.
	StateSynced SyncState = "synced"

	// StateErrored means the remote store rejected the payload as invalid.
	// Terminal; requires user correction, never retried by the drain.
	StateErrored SyncState = "errored"
)

// DraftRecord is a locally authored document draft. Its Id is assigned by the
// client before any I/O and is the permanent identity of the record in both
// the local store and the remote store.
type DraftRecord struct {
	// Id is a client-generated UUIDv4.
	Id string

	// DocumentType tags the document kind (e.g. "TELAAHAN"). The engine
	// treats the payload as opaque per type.
	DocumentType string

	// Payload is the serialized snapshot of the form fields at save time.
	Payload []byte

	// SyncState is the delivery state of this draft.
	SyncState SyncState

	// UpdatedAt orders drain replay and is stored in UTC.
	UpdatedAt time.Time
}

// NewDraftRecord assembles a pending draft with a fresh identity. No I/O
// happens here; the caller persists the record before any network attempt.
func NewDraftRecord(documentType string, payload []byte) *DraftRecord {
	return &DraftRecord{
		Id:           uuid.NewString(),
		DocumentType: documentType,
		Payload:      payload,
		SyncState:    StatePending,
		UpdatedAt:    time.Now().UTC(),
	}
}

// MirrorRecord is a cached copy of a previously fetched authoritative record.
// It is written only as a side effect of a successful authoritative read and
// serves reads only when both the remote store and the pending queue miss.
type MirrorRecord struct {
	Id           string
	DocumentType string
	Payload      []byte
	FetchedAt    time.Time
}
