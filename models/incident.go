package models

import "github.com/samber/mo"

// Incident is a recorded outage or degradation event. ResolvedAt is
// absent while the incident is still open.
type Incident struct {
	ID         string
	Name       string
	Status     string
	StartedAt  string
	ResolvedAt mo.Option[string]
}
