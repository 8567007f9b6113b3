package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Defaults used when neither the environment nor a flag overrides them.
// DefaultCalendarID applies to report only; export refuses to guess a
// calendar and requires an explicit one.
const (
	DefaultCredentialsFile = "service-account.json"
	DefaultCalendarID      = "primary"
)

// Environment variable names recognized by Load.
const (
	EnvCredentialsFile = "CALDRIVESYNC_CREDENTIALS_FILE"
	EnvCalendarID      = "CALDRIVESYNC_CALENDAR_ID"
	EnvDriveFolderID   = "CALDRIVESYNC_DRIVE_FOLDER_ID"
)

// Config carries everything the commands need to reach the Google APIs.
// It is built once per run and passed down explicitly; nothing reads the
// environment after Load returns.
type Config struct {
	// CredentialsFile is the path to the service account key JSON.
	CredentialsFile string

	// CalendarID selects the calendar queried by report and export. Load
	// leaves it empty unless the environment sets one: report falls back to
	// DefaultCalendarID, export treats an empty value as a usage error.
	CalendarID string

	// DriveFolderID is the fixed upload destination for export. It has no
	// default; the export command refuses to run without it.
	DriveFolderID string
}

// Load builds the configuration from defaults and the environment.
// A .env file in the working directory is honored when present; its
// absence is not an error.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		CredentialsFile: DefaultCredentialsFile,
	}
	if v := os.Getenv(EnvCredentialsFile); v != "" {
		cfg.CredentialsFile = v
	}
	if v := os.Getenv(EnvCalendarID); v != "" {
		cfg.CalendarID = v
	}
	if v := os.Getenv(EnvDriveFolderID); v != "" {
		cfg.DriveFolderID = v
	}
	return cfg
}
