package repository

import (
	"context"

	"github.com/grabbix/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact
// submissions. Implementations must assign an ID on Save when the record
// does not carry one, and must preserve insertion order in List.
type ContactRepository interface {
	Save(ctx context.Context, c *model.Contact) error
	List(ctx context.Context) ([]*model.Contact, error)

	// Ping reports whether the store is reachable, for the health endpoint.
	Ping(ctx context.Context) error
}
