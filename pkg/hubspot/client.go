// Package hubspot submits contact form payloads to the HubSpot Forms API.
// Uses raw HTTP calls (no SDK) to minimize external dependencies.
package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.hsforms.com"

// Field is one name/value pair submitted to a HubSpot form.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Client is a HubSpot Forms API client for a single fixed form.
type Client struct {
	PortalID    string
	FormID      string
	AccessToken string // optional; the forms API accepts anonymous submits

	// BaseURL is overridable for tests.
	BaseURL string

	httpClient *http.Client
}

// New creates a Client. Missing configuration is reported by CheckConfig /
// the first SubmitForm call rather than at construction, so an unconfigured
// sink stays inert instead of crashing startup.
func New(portalID, formID, accessToken string) *Client {
	return &Client{
		PortalID:    portalID,
		FormID:      formID,
		AccessToken: accessToken,
		BaseURL:     defaultBaseURL,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// CheckConfig returns a descriptive error when the client cannot operate.
func (c *Client) CheckConfig() error {
	if c.PortalID == "" {
		return errors.New("hubspot: HUBSPOT_PORTAL_ID is not set")
	}
	if c.FormID == "" {
		return errors.New("hubspot: HUBSPOT_FORM_ID_CONTACT is not set")
	}
	return nil
}

// SubmitForm posts the field/value pairs to the configured form.
// HubSpot answers 200 or 204 on success.
func (c *Client) SubmitForm(ctx context.Context, fields []Field) error {
	if err := c.CheckConfig(); err != nil {
		return err
	}

	payload := struct {
		Fields []Field `json:"fields"`
	}{Fields: fields}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/submissions/v3/integration/submit/%s/%s", c.BaseURL, c.PortalID, c.FormID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return fmt.Errorf("hubspot submit: status %d: %s", resp.StatusCode, body)
}
