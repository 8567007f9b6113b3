// Package logging provides structured logging utilities for caldrivesync.
//
// It centralizes attribute naming so recovered failures (empty days, failed
// uploads, unreadable drives) are logged consistently with slog, separate
// from the human-readable report on stdout.
package logging
