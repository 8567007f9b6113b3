package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"caldrivesync/internal/drive"
	"caldrivesync/internal/google"
)

func newDrivesCmd() *cobra.Command {
	var samples int64

	cmd := &cobra.Command{
		Use:   "drives",
		Short: "List shared drives accessible to the service account",
		Long: `List every shared drive the service account has been added to, with a
small sample of files from each. Use this to find the drive or folder ID for
the export command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			ctx := cmd.Context()

			creds, err := google.LoadCredentials(cfg.CredentialsFile)
			if err != nil {
				return err
			}

			client, err := drive.NewClient(ctx, creds, google.ScopeDriveReadonly)
			if err != nil {
				return fmt.Errorf("failed to create Drive client: %w", err)
			}

			w := cmd.OutOrStdout()
			rule := strings.Repeat("=", 70)
			fmt.Fprintln(w, rule)
			fmt.Fprintln(w, "Shared Drives Accessible by Service Account")
			fmt.Fprintln(w, rule)
			fmt.Fprintln(w)

			drives, err := client.ListSharedDrives(ctx)
			if err != nil {
				return fmt.Errorf("failed to list shared drives: %w", err)
			}

			if len(drives) == 0 {
				printNoDrivesHelp(w, creds.Email())
				return nil
			}

			fmt.Fprintf(w, "Found %d Shared Drive(s):\n\n", len(drives))

			for i, d := range drives {
				fmt.Fprintf(w, "%d. %s\n", i+1, d.Name)
				fmt.Fprintf(w, "   ID: %s\n", d.ID)
				fmt.Fprintf(w, "   Type: %s\n", d.Kind)
				fmt.Fprintln(w)

				// A drive the service account can see but not read from must
				// not stop the listing of the remaining drives.
				files, err := client.ListDriveFiles(ctx, d.ID, samples)
				if err != nil {
					fmt.Fprintf(w, "   Could not list files: %v\n\n", err)
					continue
				}
				printSampleFiles(w, files)
			}

			fmt.Fprintln(w, rule)
			fmt.Fprintln(w, "Copy one of the Shared Drive IDs above and set it as the")
			fmt.Fprintln(w, "export destination folder (CALDRIVESYNC_DRIVE_FOLDER_ID or --folder).")
			fmt.Fprintln(w, rule)
			return nil
		},
	}

	cmd.Flags().Int64Var(&samples, "samples", 5, "number of sample files to fetch per drive")
	return cmd
}

func printSampleFiles(w io.Writer, files []drive.FileInfo) {
	if len(files) == 0 {
		fmt.Fprintf(w, "   (Empty drive)\n\n")
		return
	}

	fmt.Fprintf(w, "   Sample files (%d):\n", len(files))
	shown := files
	if len(shown) > 3 {
		shown = shown[:3]
	}
	for _, f := range shown {
		fmt.Fprintf(w, "     - %s\n", f.Name)
	}
	fmt.Fprintln(w)
}

func printNoDrivesHelp(w io.Writer, serviceAccountEmail string) {
	fmt.Fprintln(w, "No Shared Drives found!")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "To fix this:")
	fmt.Fprintln(w, "1. Go to Google Drive -> Shared drives")
	fmt.Fprintln(w, "2. Create a new Shared Drive (or use an existing one)")
	fmt.Fprintln(w, "3. Add the service account as a member:")
	if serviceAccountEmail != "" {
		fmt.Fprintf(w, "   %s\n", serviceAccountEmail)
	}
	fmt.Fprintln(w, "4. Give it 'Content manager' or 'Manager' role")
	fmt.Fprintln(w)
}
