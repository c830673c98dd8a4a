// Package metrics holds the Prometheus collectors for the service:
// request counts and latency, generated-KPI counts, and the connected
// WebSocket client gauge. Collectors are registered on an injectable
// prometheus.Registerer so tests can use an isolated registry.
package metrics
