package observability

import (
	"context"
	"errors"
	"testing"

	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/embedded"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type recordingLogger struct {
	embedded.Logger
	records []otellog.Record
}

func (l *recordingLogger) Emit(_ context.Context, record otellog.Record) {
	l.records = append(l.records, record.Clone())
}

func (l *recordingLogger) Enabled(context.Context, otellog.EnabledParameters) bool {
	return true
}

func recordAttributes(record otellog.Record) map[string]otellog.Value {
	out := map[string]otellog.Value{}
	record.WalkAttributes(func(kv otellog.KeyValue) bool {
		out[kv.Key] = kv.Value
		return true
	})
	return out
}

func TestOTelLogCore_EmitsRecordWithFields(t *testing.T) {
	rec := &recordingLogger{}
	logger := zap.New(newOTelLogCoreWith(rec, zapcore.InfoLevel)).Named("scoring").With(zap.String("match_id", "m1"))

	logger.Warn("scoring lock contention", zap.Int("attempt", 2), zap.Error(errors.New("timeout")))

	if len(rec.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(rec.records))
	}
	record := rec.records[0]
	if record.Body().AsString() != "scoring lock contention" {
		t.Fatalf("unexpected body: %q", record.Body().AsString())
	}
	if record.Severity() != otellog.SeverityWarn {
		t.Fatalf("unexpected severity: %v", record.Severity())
	}
	attrs := recordAttributes(record)
	if attrs["match_id"].AsString() != "m1" {
		t.Fatalf("expected match_id attribute from With, got %+v", attrs)
	}
	if attrs["attempt"].AsInt64() != 2 {
		t.Fatalf("unexpected attempt attribute: %+v", attrs["attempt"])
	}
	if attrs["error"].AsString() != "timeout" {
		t.Fatalf("unexpected error attribute: %+v", attrs["error"])
	}
	if attrs["logger"].AsString() != "scoring" {
		t.Fatalf("unexpected logger attribute: %+v", attrs["logger"])
	}
}

func TestOTelLogCore_RespectsLevel(t *testing.T) {
	rec := &recordingLogger{}
	logger := zap.New(newOTelLogCoreWith(rec, zapcore.InfoLevel))

	logger.Debug("innings aggregate refreshed")

	if len(rec.records) != 0 {
		t.Fatalf("expected debug entry to be filtered, got %d records", len(rec.records))
	}
}

func TestOTelLogCore_SkipsHealthRequests(t *testing.T) {
	rec := &recordingLogger{}
	logger := zap.New(newOTelLogCoreWith(rec, zapcore.InfoLevel))

	logger.Info(httpRequestMessage, zap.String("path", healthPath))
	logger.Info(httpRequestMessage, zap.String("path", "/matches"))

	if len(rec.records) != 1 {
		t.Fatalf("expected only non-health request to be emitted, got %d", len(rec.records))
	}
}

func TestToOTelSeverity(t *testing.T) {
	cases := map[zapcore.Level]otellog.Severity{
		zapcore.DebugLevel: otellog.SeverityDebug,
		zapcore.InfoLevel:  otellog.SeverityInfo,
		zapcore.WarnLevel:  otellog.SeverityWarn,
		zapcore.ErrorLevel: otellog.SeverityError,
		zapcore.PanicLevel: otellog.SeverityFatal,
	}
	for level, want := range cases {
		if got := toOTelSeverity(level); got != want {
			t.Fatalf("toOTelSeverity(%s)=%v want %v", level, got, want)
		}
	}
}

func TestToOTelLogValue_Map(t *testing.T) {
	v := toOTelLogValue(map[string]any{
		"runs":     4,
		"boundary": true,
	}, 0)
	if v.Kind() != otellog.KindMap {
		t.Fatalf("expected map value, got %s", v.Kind())
	}
	if items := v.AsMap(); len(items) != 2 {
		t.Fatalf("expected 2 map items, got %d", len(items))
	}
}
