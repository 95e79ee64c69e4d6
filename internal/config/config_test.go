package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.SinkTimeout != 10*time.Second {
		t.Errorf("expected default sink timeout 10s, got %v", cfg.SinkTimeout)
	}
	if cfg.SendGrid.FromEmail != "noreply@grabbix.com" {
		t.Errorf("expected default from email, got %q", cfg.SendGrid.FromEmail)
	}
}

func TestLoad_ReadsSinkEnv(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_SHEET_ID", "sheet-123")
	t.Setenv("SENDGRID_API_KEY", "SG.test")
	t.Setenv("NOTIFICATION_EMAIL", "leads@grabbix.com")
	t.Setenv("HUBSPOT_PORTAL_ID", "987654")
	t.Setenv("HUBSPOT_FORM_ID_CONTACT", "form-abc")
	t.Setenv("SINK_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Sheets.SheetID != "sheet-123" {
		t.Errorf("expected sheet-123, got %q", cfg.Sheets.SheetID)
	}
	if cfg.SendGrid.APIKey != "SG.test" {
		t.Errorf("expected SG.test, got %q", cfg.SendGrid.APIKey)
	}
	if cfg.SendGrid.ToEmail != "leads@grabbix.com" {
		t.Errorf("expected leads@grabbix.com, got %q", cfg.SendGrid.ToEmail)
	}
	if cfg.HubSpot.PortalID != "987654" {
		t.Errorf("expected 987654, got %q", cfg.HubSpot.PortalID)
	}
	if cfg.SinkTimeout != 5*time.Second {
		t.Errorf("expected 5s, got %v", cfg.SinkTimeout)
	}
}
