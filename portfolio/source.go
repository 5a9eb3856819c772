package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"portfolio-server-go/models"
)

// ProxyPath is where the experiences proxy endpoint is mounted.
const ProxyPath = "/api/get-experiences"

// ExperienceSource fetches a student's experience records
type ExperienceSource interface {
	FetchRecords(ctx context.Context, student string) ([]models.Record, error)
}

// ProxyClient reads experiences through the proxy endpoint. It sends no
// credentials; the token stays with the proxy.
type ProxyClient struct {
	BaseURL string
	Path    string
	HTTP    *http.Client
}

// NewProxyClient creates a ProxyClient for the proxy mounted at baseURL
func NewProxyClient(baseURL string) *ProxyClient {
	return &ProxyClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Path:    ProxyPath,
		HTTP:    http.DefaultClient,
	}
}

// FetchRecords calls the proxy once and decodes its records list.
func (p *ProxyClient) FetchRecords(ctx context.Context, student string) ([]models.Record, error) {
	endpoint := p.BaseURL + p.Path + "?student=" + url.QueryEscape(student)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	httpClient := p.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch experiences: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error! status: %d", resp.StatusCode)
	}

	var list models.RecordList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode experiences: %w", err)
	}
	if list.Records == nil {
		return []models.Record{}, nil
	}
	return list.Records, nil
}
