package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	logger.Info("delivery recorded", "match_id", "m1", "runs", 4, "error", errors.New("boom"))
	logger.Debug("hidden")

	out := buf.String()
	for _, want := range []string{`"msg":"delivery recorded"`, `"match_id":"m1"`, `"runs":4`, `"error":"boom"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output %q missing %s", out, want)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered at info level: %q", out)
	}
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelDebug)

	traceID, _ := trace.TraceIDFromHex("0123456789abcdef0123456789abcdef")
	spanID, _ := trace.SpanIDFromHex("0123456789abcdef")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.WarnContext(ctx, "lock contention", "innings_id", "i1")

	out := buf.String()
	if !strings.Contains(out, `"trace_id":"0123456789abcdef0123456789abcdef"`) {
		t.Fatalf("missing trace id in %q", out)
	}
	if !strings.Contains(out, `"span_id":"0123456789abcdef"`) {
		t.Fatalf("missing span id in %q", out)
	}
}

func TestLogger_OddArgsDoNotPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo).With("component", "test")

	logger.Info("odd", "dangling")

	if !strings.Contains(buf.String(), `"component":"test"`) {
		t.Fatalf("expected With fields in %q", buf.String())
	}
}
