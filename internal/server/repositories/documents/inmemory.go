package documents

import (
	"context"
	"sync"
)

// InMemoryRepository is a map-backed Repository used in tests and local runs
// without Postgres.
type InMemoryRepository struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{docs: map[string]*Document{}}
}

func (r *InMemoryRepository) Upsert(ctx context.Context, doc *Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.docs[doc.ID]; ok && existing.UpdatedAt.After(doc.UpdatedAt) {
		return nil
	}
	cp := *doc
	r.docs[doc.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *doc
	return &cp, nil
}
