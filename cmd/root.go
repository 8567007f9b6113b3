package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"caldrivesync/internal/config"
	"caldrivesync/internal/logging"
)

// rootCmd represents the base command for the caldrivesync application
var rootCmd = &cobra.Command{
	Use:   "caldrivesync",
	Short: "Reports and exports Google Calendar days using a service account",
	Long: `caldrivesync talks to the Google Calendar and Drive APIs with a
service account key. It can list the shared drives the service account can
see, print yesterday's and tomorrow's calendar events, or export both days
as JSON files into a Drive folder.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose)
	},
}

var (
	verbose         bool
	credentialsFile string
)

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "caldrivesync version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: defaults, then the
// environment, then persistent flags.
func loadConfig() config.Config {
	cfg := config.Load()
	if credentialsFile != "" {
		cfg.CredentialsFile = credentialsFile
	}
	return cfg
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&credentialsFile, "credentials", "", "path to the service account key file")

	rootCmd.AddCommand(newDrivesCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newVersionCmd())
}
