package betterstack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetterStackClient_ListMonitors_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/monitors", r.URL.Path)
		assert.Equal(t, "Bearer test-api-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"data": [
				{"id": "1", "attributes": {"pronounceable_name": "api-server", "status": "up", "last_checked_at": "2024-01-01T00:00:00Z"}},
				{"id": "2", "attributes": {"pronounceable_name": "web-server", "status": "down", "last_checked_at": "2024-01-01T00:01:00Z"}}
			],
			"pagination": {"next": null}
		}`))
	}))
	defer server.Close()

	client := NewBetterStackClient(&http.Client{}, server.URL, "test-api-token")

	monitors, err := client.ListMonitors(context.Background())

	require.NoError(t, err)
	require.Len(t, monitors, 2)
	assert.Equal(t, "1", monitors[0].ID)
	assert.Equal(t, "api-server", monitors[0].Name)
	assert.Equal(t, "up", monitors[0].Status)
	assert.Equal(t, "2024-01-01T00:00:00Z", monitors[0].LastCheckedAt)
	assert.True(t, monitors[0].IsUp())
	assert.False(t, monitors[1].IsUp())
}

func TestBetterStackClient_ListMonitors_DoesNotFollowPagination(t *testing.T) {
	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"data": [{"id": "1", "attributes": {"pronounceable_name": "api-server", "status": "up", "last_checked_at": "2024-01-01T00:00:00Z"}}],
			"pagination": {"next": "https://example.com/api/v2/monitors?page=2"}
		}`))
	}))
	defer server.Close()

	client := NewBetterStackClient(&http.Client{}, server.URL, "test-api-token")

	monitors, err := client.ListMonitors(context.Background())

	require.NoError(t, err)
	assert.Len(t, monitors, 1)
	assert.Equal(t, 1, requestCount, "only the first page should be fetched")
}

func TestBetterStackClient_ListMonitors_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors": "Invalid API token"}`))
	}))
	defer server.Close()

	client := NewBetterStackClient(&http.Client{}, server.URL, "bad-token")

	monitors, err := client.ListMonitors(context.Background())

	assert.Error(t, err)
	assert.Nil(t, monitors)
	assert.Contains(t, err.Error(), "failed with status 401")
	assert.Contains(t, err.Error(), "Invalid API token")
}

func TestBetterStackClient_ListMonitors_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`invalid json response`))
	}))
	defer server.Close()

	client := NewBetterStackClient(&http.Client{}, server.URL, "test-api-token")

	monitors, err := client.ListMonitors(context.Background())

	assert.Error(t, err)
	assert.Nil(t, monitors)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestBetterStackClient_ListMonitors_NetworkError(t *testing.T) {
	client := NewBetterStackClient(&http.Client{}, "http://invalid-url-that-does-not-exist", "test-api-token")

	monitors, err := client.ListMonitors(context.Background())

	assert.Error(t, err)
	assert.Nil(t, monitors)
	assert.Contains(t, err.Error(), "failed to execute request")
}

func TestBetterStackClient_ListIncidents_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/incidents", r.URL.Path)
		assert.Equal(t, "Bearer test-api-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"data": [
				{"id": "10", "attributes": {"name": "API outage", "status": "resolved", "started_at": "2024-01-01T10:00:00Z", "resolved_at": "2024-01-01T11:00:00Z"}},
				{"id": "11", "attributes": {"name": "DB degradation", "status": "started", "started_at": "2024-01-02T10:00:00Z", "resolved_at": null}}
			],
			"pagination": {"next": null}
		}`))
	}))
	defer server.Close()

	client := NewBetterStackClient(&http.Client{}, server.URL, "test-api-token")

	incidents, err := client.ListIncidents(context.Background())

	require.NoError(t, err)
	require.Len(t, incidents, 2)
	assert.Equal(t, "10", incidents[0].ID)
	assert.Equal(t, "API outage", incidents[0].Name)
	assert.True(t, incidents[0].ResolvedAt.IsPresent())
	assert.Equal(t, "2024-01-01T11:00:00Z", incidents[0].ResolvedAt.MustGet())
	assert.False(t, incidents[1].ResolvedAt.IsPresent())
}

func TestBetterStackClient_ListIncidents_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"errors": "Something went wrong"}`))
	}))
	defer server.Close()

	client := NewBetterStackClient(&http.Client{}, server.URL, "test-api-token")

	incidents, err := client.ListIncidents(context.Background())

	assert.Error(t, err)
	assert.Nil(t, incidents)
	assert.Contains(t, err.Error(), "failed to list incidents")
	assert.Contains(t, err.Error(), "failed with status 500")
}

func TestBetterStackClient_ListHeartbeats_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/heartbeats", r.URL.Path)
		assert.Equal(t, "Bearer test-api-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"data": [
				{"id": "20", "attributes": {"name": "nightly-backup", "status": "up", "period": 86400}}
			],
			"pagination": {"next": null}
		}`))
	}))
	defer server.Close()

	client := NewBetterStackClient(&http.Client{}, server.URL, "test-api-token")

	heartbeats, err := client.ListHeartbeats(context.Background())

	require.NoError(t, err)
	require.Len(t, heartbeats, 1)
	assert.Equal(t, "20", heartbeats[0].ID)
	assert.Equal(t, "nightly-backup", heartbeats[0].Name)
	assert.Equal(t, "up", heartbeats[0].Status)
	assert.Equal(t, 86400, heartbeats[0].Period)
}

func TestBetterStackClient_ListHeartbeats_EmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data": [], "pagination": {"next": null}}`))
	}))
	defer server.Close()

	client := NewBetterStackClient(&http.Client{}, server.URL, "test-api-token")

	heartbeats, err := client.ListHeartbeats(context.Background())

	require.NoError(t, err)
	assert.Empty(t, heartbeats)
}
