package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/grabbix/backend/internal/dispatch"
)

// IntegrationsHandler exposes an operational diagnostic that probes each
// configured sink with a cheap no-op call. It exists so an operator can
// tell "sink not configured" apart from "sink call failed" without
// submitting a real lead.
type IntegrationsHandler struct {
	dispatcher dispatch.Dispatcher
	timeout    time.Duration
}

// NewIntegrationsHandler creates an IntegrationsHandler over the dispatcher's sinks.
func NewIntegrationsHandler(dispatcher dispatch.Dispatcher, timeout time.Duration) *IntegrationsHandler {
	return &IntegrationsHandler{dispatcher: dispatcher, timeout: timeout}
}

type integrationStatus struct {
	Status string `json:"status"` // "success" | "error"
	Error  string `json:"error,omitempty"`
}

// Check handles GET /api/test-integrations.
func (h *IntegrationsHandler) Check(w http.ResponseWriter, r *http.Request) {
	results := make(map[string]integrationStatus)

	for _, s := range h.dispatcher.Sinks() {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		err := s.Ping(ctx)
		cancel()

		if err != nil {
			results[s.Name()] = integrationStatus{Status: "error", Error: err.Error()}
			continue
		}
		results[s.Name()] = integrationStatus{Status: "success"}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(results)
}
