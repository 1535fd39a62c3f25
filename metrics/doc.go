// Package metrics records table render latency, row counts and HTTP status
// counts in the default Prometheus registry.
package metrics
