// Package provision runs the caption bank provisioning flow.
//
// A run walks a fixed table of steps: validate, folder, copy, duplicate,
// update, protect, formulas, save. Before each step's action the Orchestrator
// emits a progress event. The first failure emits a single error event and
// ends the run; nothing already applied remotely is rolled back. A run that
// saves its SheetLink ends with a complete event.
//
// Events go through the Emitter interface so the flow can be driven from an
// HTTP event stream, the CLI, or a test recorder. Emit failures are logged
// and otherwise ignored, and the run is detached from caller cancellation,
// so a disconnected client does not stop remote work in flight.
package provision
