// Package api implements the HTTP REST API for greenplate-server.
//
// New(dir, metrics, baseURL) returns a Handler that serves:
//
//	GET  /api/v1/health       — status, site count, version
//	GET  /api/v1/sites        — static site directory ([]sites.Site)
//	POST /api/v1/kpis         — KPI record for {site_id, period}
//	POST /api/v1/kpis/compare — deltas + trends for {site_id, current_period, previous_period}
//	GET  /api/v1/snapshot     — KPIs for every site for ?period= (default current)
//	GET  /opal-tool-registry  — static tool-discovery manifest
//
// All endpoints:
//   - Respond with Content-Type: application/json
//   - Return 405 for unsupported methods, 400 for malformed bodies or a
//     missing site_id
//   - Compute every KPI response on the fly via internal/kpi — the
//     handlers hold no per-request state
//
// Period labels are opaque strings; "current" and "previous" are only
// defaults, not an enforced enumeration. JSON request/response envelope
// types are defined in types.go.
package api
