// Package dispatch fans a stored contact out to the configured external
// sinks. Delivery is best-effort: every sink is attempted exactly once,
// failures are reported per sink, and no sink outcome ever reaches the
// form's caller.
package dispatch

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/grabbix/backend/internal/model"
)

// Sink is one external destination for a stored contact.
type Sink interface {
	// Name identifies the sink in logs, metrics, and diagnostics.
	Name() string

	// Deliver sends one contact to the sink. It must honor ctx cancellation
	// and return a descriptive error when the sink is not configured.
	Deliver(ctx context.Context, c *model.Contact) error

	// Ping makes a cheap call to verify the sink's configuration without
	// delivering anything. Used by the test-integrations endpoint.
	Ping(ctx context.Context) error
}

// Result records the outcome of one sink attempt.
type Result struct {
	Sink string
	Err  error
}

// OK reports whether the delivery succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Dispatcher delivers a contact to every configured sink.
type Dispatcher interface {
	Dispatch(ctx context.Context, c *model.Contact) []Result
	Sinks() []Sink
}

// FanOut runs all sinks concurrently, each under its own timeout. One
// sink failing or hanging never prevents the others from being attempted.
type FanOut struct {
	sinks       []Sink
	sinkTimeout time.Duration
}

// NewFanOut creates a FanOut over the given sinks. sinkTimeout bounds each
// individual Deliver call.
func NewFanOut(sinkTimeout time.Duration, sinks ...Sink) *FanOut {
	return &FanOut{sinks: sinks, sinkTimeout: sinkTimeout}
}

var _ Dispatcher = (*FanOut)(nil)

// Dispatch attempts delivery to every sink and returns one Result per sink,
// in registration order. It blocks until all attempts finish or time out.
func (f *FanOut) Dispatch(ctx context.Context, c *model.Contact) []Result {
	results := make([]Result, len(f.sinks))

	var g errgroup.Group
	for i, s := range f.sinks {
		i, s := i, s
		g.Go(func() error {
			sctx, cancel := context.WithTimeout(ctx, f.sinkTimeout)
			defer cancel()
			results[i] = Result{Sink: s.Name(), Err: s.Deliver(sctx, c)}
			return nil
		})
	}
	// Goroutines report through results, never through an error.
	_ = g.Wait()

	return results
}

// Sinks returns the registered sinks.
func (f *FanOut) Sinks() []Sink { return f.sinks }
