package services_test

import (
	"context"
	"testing"

	"contentops/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithModelID(ctx, 42)
	ctx = services.WithStep(ctx, "copy")
	ctx = services.WithRequestID(ctx, "req-123")

	if id, ok := services.ModelIDFromContext(ctx); !ok || id != 42 {
		t.Fatalf("unexpected model id: %v %v", id, ok)
	}
	if step, ok := services.StepFromContext(ctx); !ok || step != "copy" {
		t.Fatalf("unexpected step: %v %v", step, ok)
	}
	if rid, ok := services.RequestIDFromContext(ctx); !ok || rid != "req-123" {
		t.Fatalf("unexpected request id: %v %v", rid, ok)
	}
}

func TestStepBlankPreservesContext(t *testing.T) {
	ctx := services.WithStep(context.Background(), "")
	if _, ok := services.StepFromContext(ctx); ok {
		t.Fatal("expected no step value")
	}
}
