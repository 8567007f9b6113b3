package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvCredentialsFile, "")
	t.Setenv(EnvCalendarID, "")
	t.Setenv(EnvDriveFolderID, "")

	cfg := Load()

	if cfg.CredentialsFile != DefaultCredentialsFile {
		t.Errorf("CredentialsFile = %q, want %q", cfg.CredentialsFile, DefaultCredentialsFile)
	}
	if cfg.CalendarID != "" {
		t.Errorf("CalendarID = %q, want empty (callers apply their own fallback)", cfg.CalendarID)
	}
	if cfg.DriveFolderID != "" {
		t.Errorf("DriveFolderID = %q, want empty", cfg.DriveFolderID)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvCredentialsFile, "/keys/sa.json")
	t.Setenv(EnvCalendarID, "team@group.calendar.google.com")
	t.Setenv(EnvDriveFolderID, "0AFoo123")

	cfg := Load()

	if cfg.CredentialsFile != "/keys/sa.json" {
		t.Errorf("CredentialsFile = %q, want /keys/sa.json", cfg.CredentialsFile)
	}
	if cfg.CalendarID != "team@group.calendar.google.com" {
		t.Errorf("CalendarID = %q, want team calendar", cfg.CalendarID)
	}
	if cfg.DriveFolderID != "0AFoo123" {
		t.Errorf("DriveFolderID = %q, want 0AFoo123", cfg.DriveFolderID)
	}
}
