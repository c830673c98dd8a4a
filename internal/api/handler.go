package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/greenplate/greenplate/internal/kpi"
	"github.com/greenplate/greenplate/internal/metrics"
	"github.com/greenplate/greenplate/internal/registry"
	"github.com/greenplate/greenplate/internal/sites"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Default period labels applied when a request body omits them.
const (
	defaultPeriod         = "current"
	defaultPreviousPeriod = "previous"
)

// Handler is the HTTP handler for the REST API and the tool-registry
// manifest. All KPI responses are computed on the fly — nothing is stored.
type Handler struct {
	dir      *sites.Directory
	metrics  *metrics.Metrics
	manifest registry.Manifest
	mux      *http.ServeMux
}

// New creates a Handler wired to the given site directory and registers
// all routes. baseURL (no trailing slash) is baked into the manifest.
func New(dir *sites.Directory, m *metrics.Metrics, baseURL string) *Handler {
	h := &Handler{
		dir:      dir,
		metrics:  m,
		manifest: registry.Build(baseURL),
		mux:      http.NewServeMux(),
	}

	h.mux.HandleFunc("/api/v1/health", h.route("/api/v1/health", h.health))
	h.mux.HandleFunc(registry.PathSites, h.route(registry.PathSites, h.listSites))
	h.mux.HandleFunc(registry.PathKPIs, h.route(registry.PathKPIs, h.getKPIs))
	h.mux.HandleFunc(registry.PathCompare, h.route(registry.PathCompare, h.compareKPIs))
	h.mux.HandleFunc("/api/v1/snapshot", h.route("/api/v1/snapshot", h.snapshot))
	h.mux.HandleFunc(registry.PathManifest, h.route(registry.PathManifest, h.toolRegistry))

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// route wraps a handler func with request counting and latency observation.
func (h *Handler) route(path string, fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		fn(sw, r)
		h.metrics.ObserveRequest(path, sw.code, time.Since(start))
	}
}

// --- route handlers ---------------------------------------------------------

// health returns GET /api/v1/health — liveness plus the site count.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		SiteCount: h.dir.Count(),
		Version:   Version,
	})
}

// listSites returns GET /api/v1/sites — the static site directory, in
// configured order.
func (h *Handler) listSites(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, h.dir.List())
}

// getKPIs returns POST /api/v1/kpis — the generated KPI record for one
// site and period. The site does not have to exist in the directory; the
// generator works for arbitrary identifiers.
func (h *Handler) getKPIs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req KPIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.SiteID == "" {
		jsonErr(w, http.StatusBadRequest, "site_id is required")
		return
	}
	if req.Period == "" {
		req.Period = defaultPeriod
	}

	h.metrics.CountKPI(req.Period)
	jsonResp(w, http.StatusOK, kpi.Generate(req.SiteID, req.Period))
}

// compareKPIs returns POST /api/v1/kpis/compare — KPI deltas and trend
// flags between two periods for one site.
func (h *Handler) compareKPIs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.SiteID == "" {
		jsonErr(w, http.StatusBadRequest, "site_id is required")
		return
	}
	if req.CurrentPeriod == "" {
		req.CurrentPeriod = defaultPeriod
	}
	if req.PreviousPeriod == "" {
		req.PreviousPeriod = defaultPreviousPeriod
	}

	h.metrics.CountKPI(req.CurrentPeriod)
	h.metrics.CountKPI(req.PreviousPeriod)
	jsonResp(w, http.StatusOK, kpi.Compare(req.SiteID, req.CurrentPeriod, req.PreviousPeriod))
}

// snapshot returns GET /api/v1/snapshot — KPIs for every configured site
// for the ?period= query parameter (default "current").
func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	period := r.URL.Query().Get("period")
	if period == "" {
		period = defaultPeriod
	}
	jsonResp(w, http.StatusOK, BuildSnapshot(h.dir, period))
}

// toolRegistry returns GET /opal-tool-registry — the static manifest
// describing ListSites, GetSiteKpis and CompareSiteKpis for the agent
// platform.
func (h *Handler) toolRegistry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, h.manifest)
}

// --- helpers ----------------------------------------------------------------

// BuildSnapshot generates the KPI records for every site in the
// directory for one period. Shared by the snapshot endpoint and the
// WebSocket hub.
func BuildSnapshot(dir *sites.Directory, period string) SnapshotResponse {
	list := dir.List()
	records := make([]kpi.Record, 0, len(list))
	for _, s := range list {
		records = append(records, kpi.Generate(s.SiteID, period))
	}
	return SnapshotResponse{
		Period:      period,
		Sites:       records,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func jsonResp(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonErr(w http.ResponseWriter, code int, msg string) {
	jsonResp(w, code, errorResponse{Error: msg})
}

// statusWriter captures the status code written by a handler so the
// instrumentation wrapper can label the request counter.
type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
