// api/models/analytics.go
package models

import "time"

// PageViewRequest is the inbound pageview payload. Only path and userAgent
// are accepted from the client; any ip or timestamp in the body is ignored
// and replaced server-side.
type PageViewRequest struct {
	Path      string `json:"path" binding:"required"`
	UserAgent string `json:"userAgent"`
}

// PageViewEvent is the stored analytics record. Events are append-only and
// never read back individually; ip and timestamp are always server-derived.
type PageViewEvent struct {
	EventID   string    `json:"eventId"`
	Path      string    `json:"path"`
	UserAgent string    `json:"userAgent"`
	IP        string    `json:"ip"`
	Timestamp time.Time `json:"timestamp"`
}

// StatsResponse reports a best-effort total (metadata-derived, not a
// transactionally exact scan) plus at most 100 distinct paths in whatever
// order the grouping stage produced.
type StatsResponse struct {
	TotalViews  uint64   `json:"total_views"`
	UniquePaths int      `json:"unique_paths"`
	Paths       []string `json:"paths"`
}
