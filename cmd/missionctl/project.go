package main

import (
	"github.com/spf13/cobra"

	"github.com/skyfield-labs/mission-client/client"
)

var (
	projectOrg         string
	projectName        string
	projectDescription string
	projectMetadata    []string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects within an organization",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create KEY",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectCreate,
}

var projectGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Fetch one project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := app.MissionAPI.Projects.Get(cmd.Context(), projectOrg, args[0])
		if err != nil {
			return err
		}
		return printJSON(project)
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the organization's projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := app.MissionAPI.Projects.List(cmd.Context(), projectOrg)
		if err != nil {
			return err
		}
		return printJSON(projects)
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update KEY",
	Short: "Patch a project (only changed flags are sent)",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectUpdate,
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete KEY",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectDelete,
}

func init() {
	projectCmd.PersistentFlags().StringVar(&projectOrg, "org", "", "Organization key (required)")
	_ = projectCmd.MarkPersistentFlagRequired("org")

	projectCreateCmd.Flags().StringVar(&projectName, "name", "", "Display name")
	projectCreateCmd.Flags().StringVar(&projectDescription, "description", "", "Description")
	projectCreateCmd.Flags().StringArrayVar(&projectMetadata, "meta", nil, "Metadata pair key=value (repeatable)")

	projectUpdateCmd.Flags().StringVar(&projectName, "name", "", "Display name")
	projectUpdateCmd.Flags().StringVar(&projectDescription, "description", "", "Description")
	projectUpdateCmd.Flags().StringArrayVar(&projectMetadata, "meta", nil, "Metadata pair key=value (repeatable)")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectGetCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}

func runProjectCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	metadata, err := parseMetadata(projectMetadata)
	if err != nil {
		return err
	}

	project, err := app.MissionAPI.Projects.Create(ctx, projectOrg, client.CreateProjectRequest{
		Key:         args[0],
		Name:        projectName,
		Description: projectDescription,
		Metadata:    metadata,
	})
	if err != nil {
		return err
	}
	app.Logger.InfoWithContextf(ctx, "[Project] Created project %s in organization %s", project.Key, projectOrg)

	projects, err := app.MissionAPI.Projects.List(ctx, projectOrg)
	if err != nil {
		return err
	}
	return printJSON(projects)
}

func runProjectUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	req := client.UpdateProjectRequest{
		Name:        stringFlagIfChanged(cmd.Flags().Changed("name"), projectName),
		Description: stringFlagIfChanged(cmd.Flags().Changed("description"), projectDescription),
	}
	if cmd.Flags().Changed("meta") {
		metadata, err := parseMetadata(projectMetadata)
		if err != nil {
			return err
		}
		req.Metadata = metadata
	}

	project, err := app.MissionAPI.Projects.Update(ctx, projectOrg, args[0], req)
	if err != nil {
		return err
	}
	return printJSON(project)
}

func runProjectDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := app.MissionAPI.Projects.Delete(ctx, projectOrg, args[0]); err != nil {
		return err
	}
	app.Logger.InfoWithContextf(ctx, "[Project] Deleted project %s from organization %s", args[0], projectOrg)

	projects, err := app.MissionAPI.Projects.List(ctx, projectOrg)
	if err != nil {
		return err
	}
	return printJSON(projects)
}
