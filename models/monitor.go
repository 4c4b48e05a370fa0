package models

// MonitorStatusUp is the only status value rendered as healthy. Every
// other value (down, paused, validating, ...) renders as down.
const MonitorStatusUp = "up"

// Monitor is a single watched endpoint tracked by the uptime service
type Monitor struct {
	ID            string
	Name          string
	Status        string
	LastCheckedAt string
}

// IsUp reports whether the monitor is currently healthy
func (m Monitor) IsUp() bool {
	return m.Status == MonitorStatusUp
}
