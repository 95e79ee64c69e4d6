package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/grabbix/backend/internal/dispatch"
	"github.com/grabbix/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mock sinks and dispatcher
// ---------------------------------------------------------------------------

type probeSink struct {
	name     string
	pingFunc func(ctx context.Context) error
}

func (s *probeSink) Name() string { return s.name }

func (s *probeSink) Deliver(ctx context.Context, c *model.Contact) error { return nil }

func (s *probeSink) Ping(ctx context.Context) error {
	if s.pingFunc != nil {
		return s.pingFunc(ctx)
	}
	return nil
}

func TestIntegrationsHandler_AllHealthy(t *testing.T) {
	d := dispatch.NewFanOut(time.Second,
		&probeSink{name: "sheets"},
		&probeSink{name: "email"},
		&probeSink{name: "hubspot"},
	)
	h := NewIntegrationsHandler(d, time.Second)

	req := httptest.NewRequest(http.MethodGet, "/api/test-integrations", nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 3 {
		t.Fatalf("expected 3 sink entries, got %d: %+v", len(resp), resp)
	}
	for _, name := range []string{"sheets", "email", "hubspot"} {
		entry, ok := resp[name]
		if !ok {
			t.Errorf("missing entry for sink %q", name)
			continue
		}
		if entry.Status != "success" {
			t.Errorf("sink %q: expected status=success, got %q", name, entry.Status)
		}
		if entry.Error != "" {
			t.Errorf("sink %q: expected no error, got %q", name, entry.Error)
		}
	}
}

// TestIntegrationsHandler_MixedOutcomes verifies one failing probe does not
// mask the others and its message is surfaced.
func TestIntegrationsHandler_MixedOutcomes(t *testing.T) {
	d := dispatch.NewFanOut(time.Second,
		&probeSink{name: "sheets"},
		&probeSink{
			name: "email",
			pingFunc: func(ctx context.Context) error {
				return errors.New("SENDGRID_API_KEY is not set")
			},
		},
	)
	h := NewIntegrationsHandler(d, time.Second)

	req := httptest.NewRequest(http.MethodGet, "/api/test-integrations", nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 even with a failing sink, got %d", rec.Code)
	}

	var resp map[string]struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["sheets"].Status != "success" {
		t.Errorf("sheets: expected success, got %+v", resp["sheets"])
	}
	if resp["email"].Status != "error" {
		t.Errorf("email: expected error, got %+v", resp["email"])
	}
	if resp["email"].Error != "SENDGRID_API_KEY is not set" {
		t.Errorf("email: expected the probe error message, got %q", resp["email"].Error)
	}
}

// TestIntegrationsHandler_ProbeTimeout verifies a hung sink is cut off by
// the per-probe timeout instead of stalling the endpoint.
func TestIntegrationsHandler_ProbeTimeout(t *testing.T) {
	d := dispatch.NewFanOut(time.Second,
		&probeSink{
			name: "hubspot",
			pingFunc: func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		},
	)
	h := NewIntegrationsHandler(d, 50*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/api/test-integrations", nil)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		h.Check(rec, req)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Check did not return; probe timeout not applied")
	}

	var resp map[string]struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["hubspot"].Status != "error" {
		t.Errorf("expected timed-out probe to report error, got %+v", resp["hubspot"])
	}
}

func TestIntegrationsHandler_NoSinks(t *testing.T) {
	h := NewIntegrationsHandler(dispatch.NewFanOut(time.Second), time.Second)

	req := httptest.NewRequest(http.MethodGet, "/api/test-integrations", nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "{}\n" {
		t.Errorf("expected empty object body, got %q", got)
	}
}
