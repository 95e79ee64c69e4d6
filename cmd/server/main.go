package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/grabbix/backend/internal/config"
	"github.com/grabbix/backend/internal/dispatch"
	"github.com/grabbix/backend/internal/handler"
	"github.com/grabbix/backend/internal/logging"
	"github.com/grabbix/backend/internal/repository"
	"github.com/grabbix/backend/internal/service"
	"github.com/grabbix/backend/pkg/hubspot"
	"github.com/grabbix/backend/pkg/sendgrid"
	"github.com/grabbix/backend/pkg/sheets"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("load config failed", "error", err)
	}

	var contactRepo repository.ContactRepository
	if cfg.DatabaseURL != "" {
		pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logging.Fatal("connect to database failed", "error", err)
		}
		defer pool.Close()
		contactRepo = repository.NewPgContactRepository(pool)
		slog.Info("using postgres contact store")
	} else {
		contactRepo = repository.NewMemoryContactRepository()
		slog.Warn("DATABASE_URL not set, contacts are stored in memory and lost on restart")
	}

	sheetsClient := sheets.New(cfg.Sheets.PrivateKey, cfg.Sheets.ClientEmail, cfg.Sheets.SheetID)
	sendgridClient := sendgrid.New(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.ToEmail)
	hubspotClient := hubspot.New(cfg.HubSpot.PortalID, cfg.HubSpot.FormID, cfg.HubSpot.AccessToken)

	dispatcher := dispatch.NewFanOut(cfg.SinkTimeout,
		dispatch.NewSheetsSink(sheetsClient),
		dispatch.NewEmailSink(sendgridClient),
		dispatch.NewHubSpotSink(hubspotClient),
	)

	contactService := service.NewContactService(contactRepo, dispatcher)

	h := handler.New(contactRepo, cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(contactService)
	integrationsHandler := handler.NewIntegrationsHandler(dispatcher, cfg.SinkTimeout)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("POST /api/contacts", contactHandler.Submit)
	mux.HandleFunc("GET /api/contacts", contactHandler.List)
	mux.HandleFunc("GET /api/test-integrations", integrationsHandler.Check)
	mux.Handle("GET /metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h.CORS(handler.RequestLogger(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
