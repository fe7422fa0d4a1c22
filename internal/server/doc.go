// Package server hosts the contentops HTTP API.
//
// It owns the single-instance lock next to the database, wires sessions,
// the Google workspace factory, and the provisioning orchestrator into HTTP
// handlers, and manages listener lifecycle.
//
// Routes:
//
//	GET /api/health                         readiness, unauthenticated
//	GET /api/models                         client models, any session
//	GET /api/models/{id}/sheet-links        sheet links of a model, any session
//	GET /api/models/{id}/caption-bank       provisioning event stream, privileged roles
//
// Authentication failures and malformed parameters are reported as JSON
// errors before the event stream opens; everything after that is reported
// as stream events.
package server
