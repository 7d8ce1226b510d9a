package infra

import (
	"context"

	"github.com/skyfield-labs/mission-client/client"
	"github.com/skyfield-labs/mission-client/config"
)

type Infra struct {
	Logger     *LoggerClient
	Telemetry  *TelemetryClient
	MissionAPI *client.Client
}

var infraInstance *Infra

func InitInfra(cfg *config.Config) *Infra {
	if infraInstance != nil {
		return infraInstance
	}

	// Telemetry first so the API client picks up the global providers.
	telemetry := InitTelemetryClient(cfg.EnvConfig)

	logger := InitLoggerClient(cfg.EnvConfig)
	if logger == nil {
		panic("Failed to initialize Logger service")
	}

	missionAPI := client.InitClient(cfg.EnvConfig)

	infraInstance = &Infra{
		Logger:     logger,
		Telemetry:  telemetry,
		MissionAPI: missionAPI,
	}

	return infraInstance
}

func GetInfra() *Infra {
	if infraInstance == nil {
		panic("Infra not initialized. Call InitInfra() first.")
	}
	return infraInstance
}

// Shutdown flushes telemetry and logs before exit.
func (i *Infra) Shutdown(ctx context.Context) {
	_ = i.Logger.Shutdown(ctx)
	_ = i.Telemetry.Shutdown(ctx)
}
