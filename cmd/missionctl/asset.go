package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/skyfield-labs/mission-client/client"
)

var (
	assetOrg     string
	assetProject string
	assetMission string
)

var assetCmd = &cobra.Command{
	Use:   "asset",
	Short: "Upload and inspect observation files of a mission",
}

var assetUploadCmd = &cobra.Command{
	Use:   "upload FILE...",
	Short: "Upload files sequentially, reporting progress",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAssetUpload,
}

var assetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the mission's assets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		assets, err := app.MissionAPI.Assets.List(cmd.Context(), assetOrg, assetProject, assetMission)
		if err != nil {
			return err
		}
		return printJSON(assets)
	},
}

var assetGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Fetch one asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asset, err := app.MissionAPI.Assets.Get(cmd.Context(), assetOrg, assetProject, assetMission, args[0])
		if err != nil {
			return err
		}
		return printJSON(asset)
	},
}

var assetThumbnailCmd = &cobra.Command{
	Use:   "thumbnail ID",
	Short: "Print the browser-loadable thumbnail URL for an asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := app.MissionAPI.Assets.ThumbnailURL(assetOrg, assetProject, assetMission, args[0])
		if err != nil {
			return err
		}
		fmt.Println(url)
		return nil
	},
}

func init() {
	assetCmd.PersistentFlags().StringVar(&assetOrg, "org", "", "Organization key (required)")
	assetCmd.PersistentFlags().StringVar(&assetProject, "project", "", "Project key (required)")
	assetCmd.PersistentFlags().StringVar(&assetMission, "mission", "", "Mission key (required)")
	_ = assetCmd.MarkPersistentFlagRequired("org")
	_ = assetCmd.MarkPersistentFlagRequired("project")
	_ = assetCmd.MarkPersistentFlagRequired("mission")

	assetCmd.AddCommand(assetUploadCmd)
	assetCmd.AddCommand(assetListCmd)
	assetCmd.AddCommand(assetGetCmd)
	assetCmd.AddCommand(assetThumbnailCmd)
}

func runAssetUpload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	files := make([]client.UploadFile, 0, len(args))
	handles := make([]*os.File, 0, len(args))
	defer func() {
		for _, f := range handles {
			f.Close()
		}
	}()

	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}

		contentType := "application/octet-stream"
		if mtype, err := mimetype.DetectFile(path); err == nil {
			contentType = mtype.String()
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		handles = append(handles, f)

		files = append(files, client.UploadFile{
			Name:        filepath.Base(path),
			ContentType: contentType,
			Size:        info.Size(),
			Reader:      f,
		})
	}

	assets, err := app.MissionAPI.Assets.UploadBatch(ctx, assetOrg, assetProject, assetMission, files,
		func(p client.BatchProgress) {
			switch p.State {
			case client.BatchUploading, client.BatchCompleted:
				fmt.Printf("uploaded %d/%d (%.0f%%)\n", p.Completed, p.Total, p.Fraction()*100)
			case client.BatchFailed:
				fmt.Printf("upload failed at file %d/%d\n", p.FailedIndex+1, p.Total)
			}
		})
	if err != nil {
		app.Logger.ErrorWithContextf(ctx, err, "[Asset] Batch upload failed after %d of %d files", len(assets), len(files))
		return err
	}
	app.Logger.InfoWithContextf(ctx, "[Asset] Uploaded %d files to %s/%s/%s", len(assets), assetOrg, assetProject, assetMission)

	// Refetch the asset list; the orchestrator keeps no state past the batch.
	listed, err := app.MissionAPI.Assets.List(ctx, assetOrg, assetProject, assetMission)
	if err != nil {
		return err
	}
	return printJSON(listed)
}
