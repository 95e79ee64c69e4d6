package dispatch

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/grabbix/backend/internal/model"
	"github.com/grabbix/backend/pkg/hubspot"
	"github.com/grabbix/backend/pkg/sendgrid"
	"github.com/grabbix/backend/pkg/sheets"
)

// ---------------------------------------------------------------------------
// Google Sheets sink
// ---------------------------------------------------------------------------

type sheetsSink struct {
	client *sheets.Client
}

// NewSheetsSink wraps a Google Sheets client as a Sink that appends one
// spreadsheet row per contact.
func NewSheetsSink(client *sheets.Client) Sink {
	return &sheetsSink{client: client}
}

func (s *sheetsSink) Name() string { return "sheets" }

func (s *sheetsSink) Deliver(ctx context.Context, c *model.Contact) error {
	return s.client.AppendRow(ctx, sheetRow(c))
}

// Ping ensures the header row exists, which exercises auth and sheet access
// without writing lead data.
func (s *sheetsSink) Ping(ctx context.Context) error {
	return s.client.EnsureHeader(ctx)
}

// sheetRow maps a contact onto the spreadsheet's fixed column order:
// timestamp, name, email, phone, company, customer size, message,
// location, space type.
func sheetRow(c *model.Contact) []string {
	return []string{
		c.CreatedAt.UTC().Format(time.RFC3339),
		c.Name,
		c.Email,
		c.Phone,
		c.Company,
		c.CustomerSize,
		c.Message,
		c.Location,
		c.SpaceType,
	}
}

// ---------------------------------------------------------------------------
// Email notification sink
// ---------------------------------------------------------------------------

type emailSink struct {
	client *sendgrid.Client
}

// NewEmailSink wraps a SendGrid client as a Sink that sends one
// notification email per contact to the configured recipient.
func NewEmailSink(client *sendgrid.Client) Sink {
	return &emailSink{client: client}
}

func (s *emailSink) Name() string { return "email" }

func (s *emailSink) Deliver(ctx context.Context, c *model.Contact) error {
	text, htmlBody := emailBodies(c)
	return s.client.Send(ctx, sendgrid.Message{
		Subject: "New Contact Form Submission - " + c.Name,
		Text:    text,
		HTML:    htmlBody,
	})
}

// Ping only verifies configuration; there is no cheap no-op send.
func (s *emailSink) Ping(_ context.Context) error {
	return s.client.CheckConfig()
}

func orNotProvided(v string) string {
	if v == "" {
		return "Not provided"
	}
	return v
}

// emailBodies renders the plain-text and HTML variants of the notification.
func emailBodies(c *model.Contact) (text, htmlBody string) {
	ts := c.CreatedAt.UTC().Format("2006-01-02 15:04:05 MST")

	var t strings.Builder
	t.WriteString("New Contact Form Submission - Grabbix\n\n")
	fmt.Fprintf(&t, "Timestamp: %s\n", ts)
	fmt.Fprintf(&t, "Name: %s\n", c.Name)
	fmt.Fprintf(&t, "Email: %s\n", c.Email)
	fmt.Fprintf(&t, "Phone: %s\n", orNotProvided(c.Phone))
	fmt.Fprintf(&t, "Company: %s\n", orNotProvided(c.Company))
	fmt.Fprintf(&t, "Customer Size: %s\n", orNotProvided(c.CustomerSize))
	fmt.Fprintf(&t, "Location: %s\n", orNotProvided(c.Location))
	fmt.Fprintf(&t, "Space Type: %s\n", orNotProvided(c.SpaceType))
	fmt.Fprintf(&t, "\nMessage:\n%s\n", func() string {
		if c.Message == "" {
			return "No message provided"
		}
		return c.Message
	}())
	t.WriteString("\n---\nThis notification was sent from your Grabbix website contact form.\n")

	var h strings.Builder
	h.WriteString("<h2>New Contact Form Submission - Grabbix</h2>")
	fmt.Fprintf(&h, "<p><strong>Timestamp:</strong> %s</p>", ts)
	fmt.Fprintf(&h, "<p><strong>Name:</strong> %s</p>", html.EscapeString(c.Name))
	fmt.Fprintf(&h, "<p><strong>Email:</strong> %s</p>", html.EscapeString(c.Email))
	fmt.Fprintf(&h, "<p><strong>Phone:</strong> %s</p>", html.EscapeString(orNotProvided(c.Phone)))
	fmt.Fprintf(&h, "<p><strong>Company:</strong> %s</p>", html.EscapeString(orNotProvided(c.Company)))
	fmt.Fprintf(&h, "<p><strong>Customer Size:</strong> %s</p>", html.EscapeString(orNotProvided(c.CustomerSize)))
	fmt.Fprintf(&h, "<p><strong>Location:</strong> %s</p>", html.EscapeString(orNotProvided(c.Location)))
	fmt.Fprintf(&h, "<p><strong>Space Type:</strong> %s</p>", html.EscapeString(orNotProvided(c.SpaceType)))
	msg := c.Message
	if msg == "" {
		msg = "No message provided"
	}
	fmt.Fprintf(&h, "<p><strong>Message:</strong></p><p>%s</p>", html.EscapeString(msg))
	h.WriteString("<hr><p><small>This notification was sent from your Grabbix website contact form.</small></p>")

	return t.String(), h.String()
}

// ---------------------------------------------------------------------------
// HubSpot form sink
// ---------------------------------------------------------------------------

type hubspotSink struct {
	client *hubspot.Client
}

// NewHubSpotSink wraps a HubSpot client as a Sink that submits the contact
// to the configured HubSpot form.
func NewHubSpotSink(client *hubspot.Client) Sink {
	return &hubspotSink{client: client}
}

func (s *hubspotSink) Name() string { return "hubspot" }

func (s *hubspotSink) Deliver(ctx context.Context, c *model.Contact) error {
	return s.client.SubmitForm(ctx, hubspotFields(c))
}

// Ping only verifies configuration; a form submission is never a no-op.
func (s *hubspotSink) Ping(_ context.Context) error {
	return s.client.CheckConfig()
}

// hubspotFields maps local field names to HubSpot's internal field names.
func hubspotFields(c *model.Contact) []hubspot.Field {
	return []hubspot.Field{
		{Name: "firstname", Value: c.Name},
		{Name: "email", Value: c.Email},
		{Name: "phone", Value: c.Phone},
		{Name: "company", Value: c.Company},
		{Name: "address", Value: c.Location},
		{Name: "type_of_space", Value: c.SpaceType},
		{Name: "potential_customers", Value: c.CustomerSize},
		{Name: "message", Value: c.Message},
	}
}
