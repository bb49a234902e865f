package observability

import (
	"context"
	"testing"

	"github.com/grafana/pyroscope-go"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/config"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "live-score-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}
	base := logging.NewNop()

	logger, shutdown, err := InitUptrace(cfg, base)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if logger != base {
		t.Fatalf("expected logger to be returned unchanged when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EmptyDSN(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, UptraceDSN: "  "}

	_, shutdown, err := InitUptrace(cfg, nil)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestPyroscopeConfig_TagsAndProfiles(t *testing.T) {
	cfg := config.Config{
		AppEnv:                 config.EnvStage,
		ServiceName:            "live-score-api",
		ServiceVersion:         "1.4.0",
		StorageDriver:          config.StoragePostgres,
		PyroscopeAppName:       "live-score",
		PyroscopeServerAddress: "http://pyroscope:4040",
	}

	got := pyroscopeConfig(cfg)
	if got.ApplicationName != "live-score" || got.ServerAddress != "http://pyroscope:4040" {
		t.Fatalf("unexpected target: %+v", got)
	}
	if got.Tags["storage"] != config.StoragePostgres || got.Tags["version"] != "1.4.0" {
		t.Fatalf("unexpected tags: %v", got.Tags)
	}
	var mutex bool
	for _, p := range got.ProfileTypes {
		if p == pyroscope.ProfileMutexDuration {
			mutex = true
		}
	}
	if !mutex {
		t.Fatalf("expected mutex duration profile, got %v", got.ProfileTypes)
	}
}
