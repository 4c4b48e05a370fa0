package clients

import (
	"context"

	"uptimebot/models"
)

// UptimeClient is the read-only surface of the uptime monitoring API.
// Every call fetches a fresh first-page snapshot; nothing is cached or
// mutated.
type UptimeClient interface {
	ListMonitors(ctx context.Context) ([]models.Monitor, error)
	ListIncidents(ctx context.Context) ([]models.Incident, error)
	ListHeartbeats(ctx context.Context) ([]models.Heartbeat, error)
}
