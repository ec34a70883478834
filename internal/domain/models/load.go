package models

import "time"

// Load outcomes recorded in the load log.
const (
	LoadSucceeded = "ok"
	LoadFailed    = "failed"
)

// LoadLog is one fetch of the products API, as persisted in load_log.
type LoadLog struct {
	ID         string    `json:"id"`
	Region     string    `json:"region"`
	Year       int       `json:"year,omitempty"`
	URL        string    `json:"url"`
	Status     string    `json:"status"`
	Error      string    `json:"error,omitempty"`
	Total      int       `json:"total"`
	Accepted   int       `json:"accepted"`
	Malformed  int       `json:"malformed"`
	DurationMs int64     `json:"duration_ms"`
	FetchedAt  time.Time `json:"fetched_at"`
}
