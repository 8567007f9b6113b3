// Package cmd implements the command-line interface for caldrivesync.
//
// This package provides the following commands:
//   - drives: List shared drives accessible to the service account
//   - report: Print yesterday's and tomorrow's calendar events
//   - export: Upload yesterday's and tomorrow's events as JSON files to a Drive folder
//   - version: Display version information
package cmd
