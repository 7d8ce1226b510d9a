package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/skyfield-labs/mission-client/config"
	"github.com/skyfield-labs/mission-client/infra"
)

var app *infra.Infra

var rootCmd = &cobra.Command{
	Use:   "missionctl",
	Short: "Manage observation organizations, projects, missions and assets",
	Long: `missionctl drives the mission API: create and inspect the
organization -> project -> mission hierarchy and upload observation files
against a mission.

Configuration comes from the environment (or a .env file):
  MISSION_API_URL      base URL of the mission API (default http://localhost:4000)
  MISSION_API_TIMEOUT  request timeout in seconds (default 0, none)
  OTLP_ENDPOINT        optional OTLP endpoint for logs, traces and metrics`,
	PersistentPreRun:  initializeApp,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func initializeApp(cmd *cobra.Command, args []string) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	app = infra.InitInfra(cfg)
}

// Execute runs the CLI and flushes telemetry before exiting.
func Execute() {
	err := rootCmd.Execute()
	if app != nil {
		app.Shutdown(context.Background())
	}
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(orgCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(missionCmd)
	rootCmd.AddCommand(assetCmd)
	rootCmd.AddCommand(taskCmd)
}
