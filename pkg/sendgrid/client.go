// Package sendgrid sends transactional notification email through the
// SendGrid v3 API. Uses raw HTTP calls (no SDK) to minimize external
// dependencies.
package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.sendgrid.com"

// Message is one notification to the fixed recipient.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

// Client is a SendGrid mail client with a fixed sender and recipient.
type Client struct {
	APIKey    string
	FromEmail string
	ToEmail   string

	// BaseURL is overridable for tests.
	BaseURL string

	httpClient *http.Client
}

// New creates a Client. Configuration problems surface on first use via
// CheckConfig, not at construction.
func New(apiKey, fromEmail, toEmail string) *Client {
	return &Client{
		APIKey:     apiKey,
		FromEmail:  fromEmail,
		ToEmail:    toEmail,
		BaseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// CheckConfig returns a descriptive error when the client cannot operate.
// SendGrid keys always start with "SG.", so anything else is a paste error
// worth catching before the first real send.
func (c *Client) CheckConfig() error {
	if c.APIKey == "" {
		return errors.New("sendgrid: SENDGRID_API_KEY is not set")
	}
	if !strings.HasPrefix(c.APIKey, "SG.") {
		return errors.New(`sendgrid: API key must start with "SG."`)
	}
	if c.ToEmail == "" {
		return errors.New("sendgrid: NOTIFICATION_EMAIL is not set")
	}
	if c.FromEmail == "" {
		return errors.New("sendgrid: sender address is not set")
	}
	return nil
}

type address struct {
	Email string `json:"email"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailRequest struct {
	Personalizations []struct {
		To []address `json:"to"`
	} `json:"personalizations"`
	From    address   `json:"from"`
	Subject string    `json:"subject"`
	Content []content `json:"content"`
}

// Send delivers one message to the configured recipient. SendGrid answers
// 202 Accepted on success.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if err := c.CheckConfig(); err != nil {
		return err
	}

	body := mailRequest{
		From:    address{Email: c.FromEmail},
		Subject: msg.Subject,
	}
	body.Personalizations = append(body.Personalizations, struct {
		To []address `json:"to"`
	}{To: []address{{Email: c.ToEmail}}})
	// SendGrid requires text/plain before text/html.
	if msg.Text != "" {
		body.Content = append(body.Content, content{Type: "text/plain", Value: msg.Text})
	}
	if msg.HTML != "" {
		body.Content = append(body.Content, content{Type: "text/html", Value: msg.HTML})
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v3/mail/send", bytes.NewReader(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, raw)
}
