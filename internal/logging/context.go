package logging

import (
	"context"
	"log/slog"

	"contentops/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldModelID is the standardized structured logging key for client model identifiers.
	FieldModelID = "model_id"
	// FieldStep is the standardized structured logging key for provisioning steps.
	FieldStep = "step"
	// FieldCorrelationID is the standardized structured logging key for request correlation identifiers.
	FieldCorrelationID = "correlation_id"
	// FieldSpreadsheetID identifies the remote spreadsheet a log line refers to.
	FieldSpreadsheetID = "spreadsheet_id"
	// FieldEventType classifies a log line for filtering (e.g. "provision_failure").
	FieldEventType = "event_type"
	// FieldErrorHint carries the operator-facing next step for an error.
	FieldErrorHint = "error_hint"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if id, ok := services.ModelIDFromContext(ctx); ok {
		fields = append(fields, slog.Int64(FieldModelID, id))
	}
	if step, ok := services.StepFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldStep, step))
	}
	if rid, ok := services.RequestIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCorrelationID, rid))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
