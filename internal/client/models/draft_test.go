package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraftRecord(t *testing.T) {
	before := time.Now().UTC()
	d := NewDraftRecord("TELAAHAN", []byte(`{"tempatTujuan":"Samarinda"}`))
	after := time.Now().UTC()

	// identity exists before any I/O and is a valid UUID
	_, err := uuid.Parse(d.Id)
	require.NoError(t, err)

	assert.Equal(t, "TELAAHAN", d.DocumentType)
	assert.Equal(t, StatePending, d.SyncState)
	assert.False(t, d.UpdatedAt.Before(before))
	assert.False(t, d.UpdatedAt.After(after))
}

func TestNewDraftRecord_UniqueIds(t *testing.T) {
	a := NewDraftRecord("TELAAHAN", []byte(`{}`))
	b := NewDraftRecord("TELAAHAN", []byte(`{}`))
	assert.NotEqual(t, a.Id, b.Id)
}
