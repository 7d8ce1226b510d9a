package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvConfigDefaults(t *testing.T) {
	for _, key := range []string{"MISSION_API_URL", "MISSION_API_TIMEOUT", "OTLP_ENDPOINT", "SERVICE_NAME", "DEPLOY_ENV", "GROUP_NAME"} {
		t.Setenv(key, "")
	}

	cfg := LoadEnvConfig()
	assert.Equal(t, "http://localhost:4000", cfg.API.BaseURL)
	assert.Equal(t, 0, cfg.API.TimeoutSeconds)
	assert.Empty(t, cfg.Telemetry.OTLPEndpoint)
	assert.Equal(t, "missionctl", cfg.Telemetry.ServiceName)
	assert.Equal(t, "development", cfg.Environment.Mode)
	assert.Equal(t, "local", cfg.Environment.Group)
}

func TestLoadEnvConfigFromEnvironment(t *testing.T) {
	t.Setenv("MISSION_API_URL", "https://api.skyfield.test")
	t.Setenv("MISSION_API_TIMEOUT", "30")
	t.Setenv("OTLP_ENDPOINT", "https://otlp.skyfield.test:4318")
	t.Setenv("SERVICE_NAME", "mission-sync")
	t.Setenv("DEPLOY_ENV", "production")
	t.Setenv("GROUP_NAME", "observatory")

	cfg := LoadEnvConfig()
	assert.Equal(t, "https://api.skyfield.test", cfg.API.BaseURL)
	assert.Equal(t, 30, cfg.API.TimeoutSeconds)
	// Protocol prefix is stripped so the exporter does not double it.
	assert.Equal(t, "otlp.skyfield.test:4318", cfg.Telemetry.OTLPEndpoint)
	assert.Equal(t, "mission-sync", cfg.Telemetry.ServiceName)
	assert.Equal(t, "production", cfg.Environment.Mode)
	assert.Equal(t, "observatory", cfg.Environment.Group)
}

func TestLoadEnvConfigIgnoresBadTimeout(t *testing.T) {
	t.Setenv("MISSION_API_TIMEOUT", "soon")

	cfg := LoadEnvConfig()
	assert.Equal(t, 0, cfg.API.TimeoutSeconds)
}
