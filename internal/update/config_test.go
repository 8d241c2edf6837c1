package update

import (
	"testing"
	"time"
)

func TestRuntimeConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("TASKVIEW_ENDPOINT", "http://example.test/tasks")
	t.Setenv("TASKVIEW_TIMEOUT_SECONDS", "9")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.Endpoint != "http://example.test/tasks" {
		t.Fatalf("unexpected endpoint: %q", cfg.Endpoint)
	}
	if cfg.FetchTimeout != 9*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.FetchTimeout)
	}
}

func TestRuntimeConfigFromEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("TASKVIEW_ENDPOINT", "   ")
	t.Setenv("TASKVIEW_TIMEOUT_SECONDS", "soon")

	base := DefaultRuntimeConfig()
	cfg := RuntimeConfigFromEnv(base)
	if cfg != base {
		t.Fatalf("expected defaults kept, got %+v", cfg)
	}
}
