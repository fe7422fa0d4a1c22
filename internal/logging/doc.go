// Package logging assembles structured slog loggers and formatting helpers used
// across contentops.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so provisioning code tags log
// lines with model IDs, step names, and correlation IDs without threading them
// through every call. A no-op logger is provided for tests and nil-safe wiring.
package logging
