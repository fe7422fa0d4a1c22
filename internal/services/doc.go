// Package services defines shared utilities consumed by the provisioning flow
// and its external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp client model IDs, provisioning steps, and
//     correlation identifiers for logging.
//   - Structured error markers plus the Wrap helper so transport layers can
//     map failures to HTTP statuses or stream error events uniformly.
package services
