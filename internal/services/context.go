package services

import "context"

type contextKey string

const (
	modelIDKey   contextKey = "model_id"
	stepKey      contextKey = "step"
	requestIDKey contextKey = "request_id"
)

// WithModelID annotates context with the client model identifier.
func WithModelID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, modelIDKey, id)
}

// ModelIDFromContext extracts the client model identifier if present.
func ModelIDFromContext(ctx context.Context) (int64, bool) {
	switch val := ctx.Value(modelIDKey).(type) {
	case int64:
		return val, true
	case int:
		return int64(val), true
	default:
		return 0, false
	}
}

// WithStep annotates context with the provisioning step name.
func WithStep(ctx context.Context, step string) context.Context {
	if step == "" {
		return ctx
	}
	return context.WithValue(ctx, stepKey, step)
}

// StepFromContext returns the step name if present.
func StepFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(stepKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
