package httpapi

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestIsHandlerSpan(t *testing.T) {
	tests := map[string]bool{
		"httpapi.Handler.RecordBall": true,
		"httpapi.Handler.":           false,
		"httpapi.RequestLogging":     false,
		"httpapi.writeError":         false,
	}
	for in, want := range tests {
		if got := isHandlerSpan(in); got != want {
			t.Fatalf("isHandlerSpan(%q)=%v want=%v", in, got, want)
		}
	}
}

func TestStartSpan_UntracedRequestKeepsContext(t *testing.T) {
	ctx := context.Background()
	got, span := startSpan(ctx, "httpapi.Handler.RecordBall")
	defer span.End()

	if got != ctx {
		t.Fatalf("expected context to be returned unchanged")
	}
	if span.SpanContext().IsValid() {
		t.Fatalf("expected non-recording span, got %v", span.SpanContext())
	}
	if trace.SpanFromContext(got).IsRecording() {
		t.Fatalf("expected no recording span in context")
	}
}
