package models

// Heartbeat is a scheduled check-in signal expected from an external
// process. Period is the expected interval between check-ins in seconds.
type Heartbeat struct {
	ID     string
	Name   string
	Status string
	Period int
}
