// Package serpapi is a minimal client for the SerpAPI google_jobs engine.
package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultBaseURL = "https://serpapi.com/search.json"

// Job is one google_jobs posting. Missing fields stay empty; callers apply
// their own defaults.
type Job struct {
	Title        string        `json:"title"`
	CompanyName  string        `json:"company_name"`
	Location     string        `json:"location"`
	Salary       string        `json:"salary"`
	Description  string        `json:"description"`
	ApplyOptions []ApplyOption `json:"apply_options"`
}

type ApplyOption struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

type searchResponse struct {
	JobsResults []Job  `json:"jobs_results"`
	Error       string `json:"error"`
}

type Option func(*Client)

// WithBaseURL overrides the API endpoint (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchJobs queries google_jobs for a role in a location.
func (c *Client) SearchJobs(ctx context.Context, query, location string) ([]Job, error) {
	params := url.Values{}
	params.Set("engine", "google_jobs")
	params.Set("q", query)
	params.Set("location", location)
	params.Set("hl", "en")
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching jobs: %w", err)
	}
	defer resp.Body.Close()

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if result.Error != "" {
		return nil, fmt.Errorf("serpapi: %s", result.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi: HTTP %d", resp.StatusCode)
	}

	return result.JobsResults, nil
}
