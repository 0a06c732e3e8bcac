// Package observability groups the logging and metrics subsystems.
//
// Subpackages:
//   - logging: slog-based structured logging helpers
//   - metrics: centralized Prometheus metric definitions and recorders
package observability
