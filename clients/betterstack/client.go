package betterstack

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/samber/mo"

	"uptimebot/clients"
	"uptimebot/models"
)

// DefaultBaseURL is the production Better Stack uptime API endpoint
const DefaultBaseURL = "https://uptime.betterstack.com/api/v2"

// BetterStackClient implements the clients.UptimeClient interface
type BetterStackClient struct {
	// httpClient is shared and read-only after construction; handlers may
	// call into it concurrently
	httpClient *http.Client
	baseURL    string
	apiToken   string
}

// NewBetterStackClient creates a new Better Stack API client with a fixed
// base URL and bearer token
func NewBetterStackClient(httpClient *http.Client, baseURL, apiToken string) clients.UptimeClient {
	return &BetterStackClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiToken:   apiToken,
	}
}

// resource is the JSON:API-style wrapper Better Stack puts around every entity
type resource[A any] struct {
	ID         string `json:"id"`
	Attributes A      `json:"attributes"`
}

// page is a single page of a paginated collection. The `next` cursor is
// decoded but never followed: only the first page is rendered.
type page[A any] struct {
	Data       []resource[A] `json:"data"`
	Pagination struct {
		Next *string `json:"next"`
	} `json:"pagination"`
}

func fetchPage[A any](ctx context.Context, c *BetterStackClient, path string) (*page[A], error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", path, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request for %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body for %s: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request for %s failed with status %d: %s", path, resp.StatusCode, string(body))
	}

	var result page[A]
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response for %s: %w", path, err)
	}

	return &result, nil
}

type monitorAttributes struct {
	PronounceableName string `json:"pronounceable_name"`
	Status            string `json:"status"`
	LastCheckedAt     string `json:"last_checked_at"`
}

// ListMonitors fetches the first page of monitors
func (c *BetterStackClient) ListMonitors(ctx context.Context) ([]models.Monitor, error) {
	result, err := fetchPage[monitorAttributes](ctx, c, "/monitors")
	if err != nil {
		return nil, fmt.Errorf("failed to list monitors: %w", err)
	}

	monitors := make([]models.Monitor, len(result.Data))
	for i, item := range result.Data {
		monitors[i] = models.Monitor{
			ID:            item.ID,
			Name:          item.Attributes.PronounceableName,
			Status:        item.Attributes.Status,
			LastCheckedAt: item.Attributes.LastCheckedAt,
		}
	}
	return monitors, nil
}

type incidentAttributes struct {
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	StartedAt  string  `json:"started_at"`
	ResolvedAt *string `json:"resolved_at"`
}

// ListIncidents fetches the first page of incidents
func (c *BetterStackClient) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	result, err := fetchPage[incidentAttributes](ctx, c, "/incidents")
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}

	incidents := make([]models.Incident, len(result.Data))
	for i, item := range result.Data {
		resolvedAt := mo.None[string]()
		if item.Attributes.ResolvedAt != nil {
			resolvedAt = mo.Some(*item.Attributes.ResolvedAt)
		}
		incidents[i] = models.Incident{
			ID:         item.ID,
			Name:       item.Attributes.Name,
			Status:     item.Attributes.Status,
			StartedAt:  item.Attributes.StartedAt,
			ResolvedAt: resolvedAt,
		}
	}
	return incidents, nil
}

type heartbeatAttributes struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Period int    `json:"period"`
}

// ListHeartbeats fetches the first page of heartbeats
func (c *BetterStackClient) ListHeartbeats(ctx context.Context) ([]models.Heartbeat, error) {
	result, err := fetchPage[heartbeatAttributes](ctx, c, "/heartbeats")
	if err != nil {
		return nil, fmt.Errorf("failed to list heartbeats: %w", err)
	}

	heartbeats := make([]models.Heartbeat, len(result.Data))
	for i, item := range result.Data {
		heartbeats[i] = models.Heartbeat{
			ID:     item.ID,
			Name:   item.Attributes.Name,
			Status: item.Attributes.Status,
			Period: item.Attributes.Period,
		}
	}
	return heartbeats, nil
}
