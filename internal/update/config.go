package update

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/taskview/internal/client"
)

type RuntimeConfig struct {
	Endpoint     string
	FetchTimeout time.Duration
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Endpoint:     "http://localhost:8080/tasks",
		FetchTimeout: client.DefaultTimeout,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TASKVIEW_ENDPOINT"); ok {
		cfg.Endpoint = v
	}
	if v, ok := getEnvInt("TASKVIEW_TIMEOUT_SECONDS"); ok && v > 0 {
		cfg.FetchTimeout = time.Duration(v) * time.Second
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
