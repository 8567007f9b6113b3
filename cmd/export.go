package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"caldrivesync/internal/calendar"
	"caldrivesync/internal/config"
	"caldrivesync/internal/drive"
	"caldrivesync/internal/export"
	"caldrivesync/internal/google"
)

func newExportCmd() *cobra.Command {
	var (
		calendarID string
		folderID   string
		keep       bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Upload yesterday's and tomorrow's events as JSON files to a Drive folder",
		Long: `Fetch all events for the day before and the day after today, wrap each
day in a JSON envelope and upload it to a Drive folder. Yesterday's file is
labeled "reality", tomorrow's "expectation". A file that fails to upload is
left on disk as the recovery artifact.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveExportConfig(calendarID, folderID)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			// One key, materialized separately per service with the scopes
			// that service needs.
			creds, err := google.LoadCredentials(cfg.CredentialsFile)
			if err != nil {
				return err
			}

			calClient, err := calendar.NewClient(ctx, creds)
			if err != nil {
				return fmt.Errorf("failed to create Calendar client: %w", err)
			}
			driveClient, err := drive.NewClient(ctx, creds, google.ScopeDriveFile)
			if err != nil {
				return fmt.Errorf("failed to create Drive client: %w", err)
			}

			exporter := &export.Exporter{
				Source:     calClient,
				Sink:       driveClient,
				CalendarID: cfg.CalendarID,
				FolderID:   cfg.DriveFolderID,
				KeepLocal:  keep,
			}

			res, err := exporter.Run(ctx, time.Now())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Export complete: %d event(s), %d of 2 file(s) uploaded\n",
				res.Events, res.Uploaded)
			return nil
		},
	}

	cmd.Flags().StringVar(&calendarID, "calendar", "", "calendar ID to export")
	cmd.Flags().StringVar(&folderID, "folder", "", "Drive folder ID to upload into")
	cmd.Flags().BoolVar(&keep, "keep", false, "keep local files after a successful upload")
	return cmd
}

// resolveExportConfig merges defaults, environment and flags for the export
// command; flags win. The export destination and source are deliberate
// choices, so both the folder and the calendar must be configured
// explicitly: export never falls back to the primary calendar.
func resolveExportConfig(calendarFlag, folderFlag string) (config.Config, error) {
	cfg := loadConfig()
	if calendarFlag != "" {
		cfg.CalendarID = calendarFlag
	}
	if folderFlag != "" {
		cfg.DriveFolderID = folderFlag
	}
	if cfg.DriveFolderID == "" {
		return cfg, fmt.Errorf("a destination Drive folder is required: set %s or pass --folder", config.EnvDriveFolderID)
	}
	if cfg.CalendarID == "" {
		return cfg, fmt.Errorf("an export calendar is required: set %s or pass --calendar", config.EnvCalendarID)
	}
	return cfg, nil
}
