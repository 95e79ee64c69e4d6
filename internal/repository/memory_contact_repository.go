package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/grabbix/backend/internal/model"
)

// MemoryContactRepository keeps contacts in an in-process, append-only
// slice. It is the store used when no DATABASE_URL is configured; contents
// do not survive a restart.
type MemoryContactRepository struct {
	mu       sync.RWMutex
	contacts []*model.Contact
}

// NewMemoryContactRepository creates an empty in-memory store.
func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{}
}

var _ ContactRepository = (*MemoryContactRepository)(nil)

// Save assigns a fresh UUID when c.ID is empty and appends the record.
// Safe for concurrent use.
func (r *MemoryContactRepository) Save(_ context.Context, c *model.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	r.contacts = append(r.contacts, c)
	return nil
}

// List returns all stored contacts in insertion order. The returned slice
// is a copy; callers cannot disturb the store through it.
func (r *MemoryContactRepository) List(_ context.Context) ([]*model.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Contact, len(r.contacts))
	copy(out, r.contacts)
	return out, nil
}

// Ping always succeeds; the process being up is the store being up.
func (r *MemoryContactRepository) Ping(_ context.Context) error {
	return nil
}
