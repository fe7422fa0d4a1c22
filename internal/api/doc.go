// Package api defines the wire-format types for the HTTP API and the
// provisioning event stream. It translates store records into
// transport-friendly DTOs so clients never couple to internal types.
//
// # Key Types
//
// ClientModel and SheetLink: transport representations of the persisted
// records, with timestamps rendered as RFC3339 with milliseconds.
//
// ProgressEvent, ErrorEvent, CompleteEvent: payloads of the progress, error,
// and complete server-sent events emitted while a caption bank is provisioned.
//
// # Design Notes
//
// DTOs use camelCase JSON tags for JavaScript/TypeScript consumers. Empty
// optional strings are omitted. List responses always encode an array, never
// null.
package api
