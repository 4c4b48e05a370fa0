package responder

import (
	"context"

	"github.com/stretchr/testify/mock"

	"uptimebot/models"
)

// MockUptimeClient is a mock implementation of clients.UptimeClient
type MockUptimeClient struct {
	mock.Mock
}

func (m *MockUptimeClient) ListMonitors(ctx context.Context) ([]models.Monitor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Monitor), args.Error(1)
}

func (m *MockUptimeClient) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Incident), args.Error(1)
}

func (m *MockUptimeClient) ListHeartbeats(ctx context.Context) ([]models.Heartbeat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Heartbeat), args.Error(1)
}
