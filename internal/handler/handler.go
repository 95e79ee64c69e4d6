package handler

import (
	"context"
	"net/http"
)

// Pinger is the slice of the store the base handler needs for health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	store       Pinger
	frontendURL string
}

func New(store Pinger, frontendURL string) *Handler {
	return &Handler{store: store, frontendURL: frontendURL}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
