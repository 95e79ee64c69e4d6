package service

import (
	"context"

	"github.com/grabbix/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new contact and triggers best-effort delivery to the
	// configured sinks. It returns once the contact is stored; sink
	// outcomes never affect the result. c.ID and c.CreatedAt are populated
	// by the implementation.
	Submit(ctx context.Context, c *model.Contact) error

	// List returns all stored contacts in insertion order.
	List(ctx context.Context) ([]*model.Contact, error)
}
