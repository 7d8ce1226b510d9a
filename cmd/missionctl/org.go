package main

import (
	"github.com/spf13/cobra"

	"github.com/skyfield-labs/mission-client/client"
)

var (
	orgName        string
	orgDescription string
	orgMetadata    []string
)

var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "Manage organizations",
}

var orgCreateCmd = &cobra.Command{
	Use:   "create KEY",
	Short: "Create an organization",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrgCreate,
}

var orgGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Fetch one organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		org, err := app.MissionAPI.Organizations.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(org)
	},
}

var orgListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all organizations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		orgs, err := app.MissionAPI.Organizations.List(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(orgs)
	},
}

var orgUpdateCmd = &cobra.Command{
	Use:   "update KEY",
	Short: "Patch an organization (only changed flags are sent)",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrgUpdate,
}

var orgDeleteCmd = &cobra.Command{
	Use:   "delete KEY",
	Short: "Delete an organization",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrgDelete,
}

func init() {
	orgCreateCmd.Flags().StringVar(&orgName, "name", "", "Display name")
	orgCreateCmd.Flags().StringVar(&orgDescription, "description", "", "Description")
	orgCreateCmd.Flags().StringArrayVar(&orgMetadata, "meta", nil, "Metadata pair key=value (repeatable)")

	orgUpdateCmd.Flags().StringVar(&orgName, "name", "", "Display name")
	orgUpdateCmd.Flags().StringVar(&orgDescription, "description", "", "Description")
	orgUpdateCmd.Flags().StringArrayVar(&orgMetadata, "meta", nil, "Metadata pair key=value (repeatable)")

	orgCmd.AddCommand(orgCreateCmd)
	orgCmd.AddCommand(orgGetCmd)
	orgCmd.AddCommand(orgListCmd)
	orgCmd.AddCommand(orgUpdateCmd)
	orgCmd.AddCommand(orgDeleteCmd)
}

func runOrgCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	metadata, err := parseMetadata(orgMetadata)
	if err != nil {
		return err
	}

	org, err := app.MissionAPI.Organizations.Create(ctx, client.CreateOrganizationRequest{
		Key:         args[0],
		Name:        orgName,
		Description: orgDescription,
		Metadata:    metadata,
	})
	if err != nil {
		return err
	}
	app.Logger.InfoWithContextf(ctx, "[Org] Created organization %s", org.Key)

	// Refetch the collection so displayed state matches the backend.
	orgs, err := app.MissionAPI.Organizations.List(ctx)
	if err != nil {
		return err
	}
	return printJSON(orgs)
}

func runOrgUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	req := client.UpdateOrganizationRequest{
		Name:        stringFlagIfChanged(cmd.Flags().Changed("name"), orgName),
		Description: stringFlagIfChanged(cmd.Flags().Changed("description"), orgDescription),
	}
	if cmd.Flags().Changed("meta") {
		metadata, err := parseMetadata(orgMetadata)
		if err != nil {
			return err
		}
		req.Metadata = metadata
	}

	org, err := app.MissionAPI.Organizations.Update(ctx, args[0], req)
	if err != nil {
		return err
	}
	return printJSON(org)
}

func runOrgDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := app.MissionAPI.Organizations.Delete(ctx, args[0]); err != nil {
		return err
	}
	app.Logger.InfoWithContextf(ctx, "[Org] Deleted organization %s", args[0])

	orgs, err := app.MissionAPI.Organizations.List(ctx)
	if err != nil {
		return err
	}
	return printJSON(orgs)
}
