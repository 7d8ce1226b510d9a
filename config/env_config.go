package config

import (
	"os"
	"strconv"
	"strings"
)

type EnvConfig struct {
	API struct {
		BaseURL        string
		TimeoutSeconds int
	}
	Telemetry struct {
		OTLPEndpoint string
		ServiceName  string
	}
	Environment struct {
		Mode  string
		Group string
	}
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	// Mission API
	config.API.BaseURL = os.Getenv("MISSION_API_URL")
	if config.API.BaseURL == "" {
		config.API.BaseURL = "http://localhost:4000"
	}

	if val := os.Getenv("MISSION_API_TIMEOUT"); val != "" {
		if timeout, err := strconv.Atoi(val); err == nil {
			config.API.TimeoutSeconds = timeout
		}
	}

	// OpenTelemetry
	otlpEndpoint := os.Getenv("OTLP_ENDPOINT")
	// Remove protocol for OpenTelemetry client to avoid duplicate protocols
	if strings.HasPrefix(otlpEndpoint, "https://") {
		config.Telemetry.OTLPEndpoint = strings.TrimPrefix(otlpEndpoint, "https://")
	} else if strings.HasPrefix(otlpEndpoint, "http://") {
		config.Telemetry.OTLPEndpoint = strings.TrimPrefix(otlpEndpoint, "http://")
	} else {
		config.Telemetry.OTLPEndpoint = otlpEndpoint
	}

	config.Telemetry.ServiceName = os.Getenv("SERVICE_NAME")
	if config.Telemetry.ServiceName == "" {
		config.Telemetry.ServiceName = "missionctl"
	}

	config.Environment.Mode = os.Getenv("DEPLOY_ENV")
	if config.Environment.Mode == "" {
		config.Environment.Mode = "development"
	}

	config.Environment.Group = os.Getenv("GROUP_NAME")
	if config.Environment.Group == "" {
		config.Environment.Group = "local"
	}

	return &config
}
