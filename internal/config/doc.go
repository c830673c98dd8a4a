// Package config loads the service configuration from config.yaml.
//
// Config fields:
//   - Server.HTTPPort       — port for the REST API, tool registry, metrics
//     and WebSocket stream (default 8080)
//   - Server.BaseURL        — URL prefix written into the tool-registry
//     manifest (default http://localhost:<port>)
//   - Server.StreamInterval — WebSocket broadcast cadence (default 5s)
//   - Sites                 — optional site list; the built-in demo sites
//     are used when absent
//
// Load(path) applies defaults before unmarshalling, then validates.
// Watch(ctx, path, onChange) reloads the file on fsnotify write/create
// events, keeping the previous config when a reload fails.
package config
