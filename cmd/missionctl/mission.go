package main

import (
	"github.com/spf13/cobra"

	"github.com/skyfield-labs/mission-client/client"
	"github.com/skyfield-labs/mission-client/entity"
)

var (
	missionOrg     string
	missionProject string

	missionName     string
	missionLocation string
	missionDate     string

	missionTelescope string
	missionTarget    string
	missionExposure  string
	missionWeather   string
	missionObserver  string
	missionPriority  string
	missionAltitude  string
)

var missionCmd = &cobra.Command{
	Use:   "mission",
	Short: "Manage missions within a project",
}

var missionCreateCmd = &cobra.Command{
	Use:   "create KEY",
	Short: "Create a mission with its observation metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runMissionCreate,
}

var missionGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Fetch one mission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mission, err := app.MissionAPI.Missions.Get(cmd.Context(), missionOrg, missionProject, args[0])
		if err != nil {
			return err
		}
		return printJSON(mission)
	},
}

var missionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the project's missions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		missions, err := app.MissionAPI.Missions.List(cmd.Context(), missionOrg, missionProject)
		if err != nil {
			return err
		}
		return printJSON(missions)
	},
}

var missionUpdateCmd = &cobra.Command{
	Use:   "update KEY",
	Short: "Patch a mission (only changed flags are sent)",
	Args:  cobra.ExactArgs(1),
	RunE:  runMissionUpdate,
}

func init() {
	missionCmd.PersistentFlags().StringVar(&missionOrg, "org", "", "Organization key (required)")
	missionCmd.PersistentFlags().StringVar(&missionProject, "project", "", "Project key (required)")
	_ = missionCmd.MarkPersistentFlagRequired("org")
	_ = missionCmd.MarkPersistentFlagRequired("project")

	for _, c := range []*cobra.Command{missionCreateCmd, missionUpdateCmd} {
		c.Flags().StringVar(&missionName, "name", "", "Display name")
		c.Flags().StringVar(&missionLocation, "location", "", "Observation site")
		c.Flags().StringVar(&missionDate, "date", "", "Observation date")
		c.Flags().StringVar(&missionTelescope, "telescope", "", "Telescope used")
		c.Flags().StringVar(&missionTarget, "target", "", "Observation target")
		c.Flags().StringVar(&missionExposure, "exposure", "", "Exposure time")
		c.Flags().StringVar(&missionWeather, "weather", "", "Weather conditions")
		c.Flags().StringVar(&missionObserver, "observer", "", "Observer name")
		c.Flags().StringVar(&missionPriority, "priority", "", "Priority")
		c.Flags().StringVar(&missionAltitude, "altitude", "", "Altitude (optional)")
	}

	missionCmd.AddCommand(missionCreateCmd)
	missionCmd.AddCommand(missionGetCmd)
	missionCmd.AddCommand(missionListCmd)
	missionCmd.AddCommand(missionUpdateCmd)
}

func runMissionCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	mission, err := app.MissionAPI.Missions.Create(ctx, client.CreateMissionRequest{
		Organization: missionOrg,
		Project:      missionProject,
		Mission:      args[0],
		Name:         missionName,
		Location:     missionLocation,
		Date:         missionDate,
		Metadata: entity.MissionMetadata{
			Telescope:         missionTelescope,
			Target:            missionTarget,
			ExposureTime:      missionExposure,
			WeatherConditions: missionWeather,
			Observer:          missionObserver,
			Priority:          missionPriority,
			Altitude:          missionAltitude,
		},
	})
	if err != nil {
		return err
	}
	app.Logger.InfoWithContextf(ctx, "[Mission] Created mission %s under %s/%s", mission.Key, missionOrg, missionProject)

	missions, err := app.MissionAPI.Missions.List(ctx, missionOrg, missionProject)
	if err != nil {
		return err
	}
	return printJSON(missions)
}

func runMissionUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	req := client.UpdateMissionRequest{
		Name:     stringFlagIfChanged(cmd.Flags().Changed("name"), missionName),
		Location: stringFlagIfChanged(cmd.Flags().Changed("location"), missionLocation),
		Date:     stringFlagIfChanged(cmd.Flags().Changed("date"), missionDate),
	}

	// Any metadata flag sends the full metadata struct; partial metadata
	// semantics are the backend's call.
	metadataFlags := []string{"telescope", "target", "exposure", "weather", "observer", "priority", "altitude"}
	for _, name := range metadataFlags {
		if cmd.Flags().Changed(name) {
			req.Metadata = &entity.MissionMetadata{
				Telescope:         missionTelescope,
				Target:            missionTarget,
				ExposureTime:      missionExposure,
				WeatherConditions: missionWeather,
				Observer:          missionObserver,
				Priority:          missionPriority,
				Altitude:          missionAltitude,
			}
			break
		}
	}

	mission, err := app.MissionAPI.Missions.Update(ctx, missionOrg, missionProject, args[0], req)
	if err != nil {
		return err
	}
	return printJSON(mission)
}
