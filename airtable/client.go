// Package airtable reads the Experiences table through the Airtable REST API.
package airtable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"portfolio-server-go/models"
)

// ErrMissingToken is returned when no API token is configured.
var ErrMissingToken = errors.New("API token not configured")

// UpstreamError reports a non-success status from Airtable
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Airtable API error: %d", e.Status)
}

// Client issues authenticated reads against one Airtable base
type Client struct {
	BaseURL string // e.g. https://api.airtable.com
	BaseID  string
	Table   string
	Token   string
	HTTP    *http.Client
}

// NewClient creates a Client using the default HTTP transport
func NewClient(baseURL, baseID, table, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		BaseID:  baseID,
		Table:   table,
		Token:   token,
		HTTP:    http.DefaultClient,
	}
}

// Configured reports whether a token is available.
func (c *Client) Configured() bool {
	return c.Token != ""
}

// ListURL returns the list endpoint scoped to view.
func (c *Client) ListURL(view string) string {
	return fmt.Sprintf("%s/v0/%s/%s?view=%s",
		c.BaseURL,
		url.PathEscape(c.BaseID),
		url.PathEscape(c.Table),
		escapeComponent(view))
}

// escapeComponent percent-encodes s for a query value, spaces as %20.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ListExperiences fetches the records of view and returns the raw JSON body.
// One request is made; failures are not retried.
func (c *Client) ListExperiences(ctx context.Context, view string) ([]byte, error) {
	if !c.Configured() {
		return nil, ErrMissingToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ListURL(view), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request experiences: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read experiences: %w", err)
	}
	return body, nil
}

// DecodeRecords parses a list response body into records.
func DecodeRecords(body []byte) ([]models.Record, error) {
	var list models.RecordList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("decode experiences: %w", err)
	}
	if list.Records == nil {
		return []models.Record{}, nil
	}
	return list.Records, nil
}
