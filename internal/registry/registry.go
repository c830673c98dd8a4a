package registry

import "net/http"

// Route paths for the operations exposed to the agent platform. The API
// handler mounts its routes on these same constants, so the manifest can
// never drift from what is actually served.
const (
	PathSites   = "/api/v1/sites"
	PathKPIs    = "/api/v1/kpis"
	PathCompare = "/api/v1/kpis/compare"

	// PathManifest is where the manifest itself is served. Kept at the
	// root — the Opal platform expects this exact path.
	PathManifest = "/opal-tool-registry"
)

// ManifestVersion is the manifest format version the platform consumes.
const ManifestVersion = "1.0"

// Manifest is the tool-discovery document served at PathManifest.
type Manifest struct {
	Version   string     `json:"version"`
	Functions []Function `json:"functions"`
}

// Function describes one callable operation: its name, what it does,
// the JSON-schema of its input and the HTTP wiring the platform uses
// to invoke it.
type Function struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Parameters  Schema  `json:"parameters"`
	HTTP        Binding `json:"x-opal-http"`
}

// Schema is a minimal JSON-schema object description.
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Property is one named parameter inside a Schema.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Binding is the Opal-specific HTTP wiring for one function.
type Binding struct {
	Method string `json:"method"`
	URL    string `json:"url"`
}

// Operation is the route metadata one exposed operation is built from.
type Operation struct {
	Name        string
	Description string
	Method      string
	Path        string
	Parameters  Schema
}

// Operations returns the metadata for every operation exposed to the
// platform, in manifest order.
func Operations() []Operation {
	return []Operation{
		{
			Name:        "ListSites",
			Description: "Return all available sites.",
			Method:      http.MethodGet,
			Path:        PathSites,
			Parameters: Schema{
				Type:       "object",
				Properties: map[string]Property{},
				Required:   []string{},
			},
		},
		{
			Name:        "GetSiteKpis",
			Description: "Return sustainability KPIs for the given site and period.",
			Method:      http.MethodPost,
			Path:        PathKPIs,
			Parameters: Schema{
				Type: "object",
				Properties: map[string]Property{
					"site_id": {
						Type:        "string",
						Description: "ID of the site (e.g. helsinki-hq).",
					},
					"period": {
						Type:        "string",
						Description: "Time period (current, previous, last_month, last_quarter).",
					},
				},
				Required: []string{"site_id", "period"},
			},
		},
		{
			Name:        "CompareSiteKpis",
			Description: "Compare sustainability KPIs between two periods for a site.",
			Method:      http.MethodPost,
			Path:        PathCompare,
			Parameters: Schema{
				Type: "object",
				Properties: map[string]Property{
					"site_id": {
						Type:        "string",
						Description: "ID of the site (e.g. helsinki-hq).",
					},
					"current_period": {
						Type:        "string",
						Description: "Current period (e.g. current).",
					},
					"previous_period": {
						Type:        "string",
						Description: "Previous period (e.g. previous).",
					},
				},
				Required: []string{"site_id", "current_period", "previous_period"},
			},
		},
	}
}

// Build assembles the manifest for the given externally reachable base
// URL (no trailing slash). The result is static — callers build it once
// at startup and serve the same structure on every request.
func Build(baseURL string) Manifest {
	ops := Operations()
	fns := make([]Function, 0, len(ops))
	for _, op := range ops {
		fns = append(fns, Function{
			Name:        op.Name,
			Description: op.Description,
			Parameters:  op.Parameters,
			HTTP: Binding{
				Method: op.Method,
				URL:    baseURL + op.Path,
			},
		})
	}
	return Manifest{Version: ManifestVersion, Functions: fns}
}
