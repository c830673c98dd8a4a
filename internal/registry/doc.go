// Package registry builds the tool-discovery manifest consumed by the
// external agent platform.
//
// Operations() is the single source of truth for the exposed operations
// (ListSites, GetSiteKpis, CompareSiteKpis): name, description, HTTP
// method, route path and JSON-schema input parameters. Build(baseURL)
// turns that metadata into the manifest served at PathManifest. The API
// handler mounts its routes on the same Path* constants, which keeps
// the manifest and the actual routes from drifting apart.
package registry
