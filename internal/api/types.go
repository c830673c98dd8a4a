package api

import "github.com/greenplate/greenplate/internal/kpi"

// HealthResponse is the payload for GET /api/v1/health.
type HealthResponse struct {
	Status    string `json:"status"`
	SiteCount int    `json:"site_count"`
	Version   string `json:"version"`
}

// KPIRequest is the body for POST /api/v1/kpis.
type KPIRequest struct {
	SiteID string `json:"site_id"`
	Period string `json:"period"`
}

// CompareRequest is the body for POST /api/v1/kpis/compare.
type CompareRequest struct {
	SiteID         string `json:"site_id"`
	CurrentPeriod  string `json:"current_period"`
	PreviousPeriod string `json:"previous_period"`
}

// SnapshotResponse is the payload for GET /api/v1/snapshot and the data
// frame broadcast on the WebSocket stream: KPIs for every configured
// site for one period.
type SnapshotResponse struct {
	Period      string       `json:"period"`
	Sites       []kpi.Record `json:"sites"`
	GeneratedAt string       `json:"generated_at"` // RFC3339
}

// errorResponse is a generic JSON error body.
type errorResponse struct {
	Error string `json:"error"`
}
