package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var apiTracer = otel.Tracer("live-score/internal/interfaces/httpapi")

// startSpan opens a child span for handler operations on traced requests.
// Helper names (writers, mappers, middleware) get the parent span back so
// attributes and errors still land on the request span.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !isHandlerSpan(name) {
		return ctx, nonRecordingSpan{parent}
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func isHandlerSpan(name string) bool {
	op, ok := strings.CutPrefix(name, handlerSpanPrefix)
	return ok && op != ""
}

// nonRecordingSpan hands back the parent without letting helpers end it.
type nonRecordingSpan struct {
	trace.Span
}

func (nonRecordingSpan) End(...trace.SpanEndOption) {}
