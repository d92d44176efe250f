// Package observability wires exercise lifecycle events to Prometheus metrics and slog.
//
// Metrics owns its own prometheus.Registry so several workbooks (and tests) never
// collide on the global default registry. Use Hooks to attach it to a Workbook and
// Handler to expose it over HTTP.
package observability
