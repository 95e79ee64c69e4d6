package service

import (
	"context"
	"time"

	"github.com/grabbix/backend/internal/dispatch"
	"github.com/grabbix/backend/internal/logging"
	"github.com/grabbix/backend/internal/metrics"
	"github.com/grabbix/backend/internal/model"
	"github.com/grabbix/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo       repository.ContactRepository
	dispatcher dispatch.Dispatcher
}

// NewContactService creates a ContactService backed by the given repository
// and dispatcher. The dispatcher may be nil, in which case submissions are
// stored without any sink delivery.
func NewContactService(repo repository.ContactRepository, dispatcher dispatch.Dispatcher) ContactService {
	return &contactServiceImpl{repo: repo, dispatcher: dispatcher}
}

// Submit stamps CreatedAt, persists the contact, and hands it to the
// dispatcher on a detached goroutine. The submission is committed the
// moment the store succeeds; third-party outages stay invisible to the
// caller.
func (s *contactServiceImpl) Submit(ctx context.Context, c *model.Contact) error {
	c.CreatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, c); err != nil {
		return err
	}
	metrics.ContactsStoredTotal.Inc()

	if s.dispatcher != nil {
		go s.fanOut(c)
	}
	return nil
}

// fanOut runs after the HTTP response is already committed, so it uses a
// fresh context: per-sink timeouts inside the dispatcher bound its lifetime.
func (s *contactServiceImpl) fanOut(c *model.Contact) {
	log := logging.Component("dispatch")
	results := s.dispatcher.Dispatch(context.Background(), c)
	for _, r := range results {
		if r.OK() {
			metrics.SinkDeliveriesTotal.WithLabelValues(r.Sink, "success").Inc()
			log.Info("sink delivery succeeded", "sink", r.Sink, "contact_id", c.ID)
			continue
		}
		metrics.SinkDeliveriesTotal.WithLabelValues(r.Sink, "error").Inc()
		// Enough context to re-key the lead by hand if it ever matters.
		log.Error("sink delivery failed",
			"sink", r.Sink,
			"contact_id", c.ID,
			"email", c.Email,
			"error", r.Err,
		)
	}
}

// List returns all stored contacts in insertion order.
func (s *contactServiceImpl) List(ctx context.Context) ([]*model.Contact, error) {
	return s.repo.List(ctx)
}
