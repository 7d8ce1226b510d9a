package main

import (
	"github.com/spf13/cobra"
)

var (
	taskOrg     string
	taskProject string
	taskMission string
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Inspect a mission's processing tasks",
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the mission's processing tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := app.MissionAPI.Tasks.List(cmd.Context(), taskOrg, taskProject, taskMission)
		if err != nil {
			return err
		}
		return printJSON(tasks)
	},
}

func init() {
	taskCmd.PersistentFlags().StringVar(&taskOrg, "org", "", "Organization key (required)")
	taskCmd.PersistentFlags().StringVar(&taskProject, "project", "", "Project key (required)")
	taskCmd.PersistentFlags().StringVar(&taskMission, "mission", "", "Mission key (required)")
	_ = taskCmd.MarkPersistentFlagRequired("org")
	_ = taskCmd.MarkPersistentFlagRequired("project")
	_ = taskCmd.MarkPersistentFlagRequired("mission")

	taskCmd.AddCommand(taskListCmd)
}
