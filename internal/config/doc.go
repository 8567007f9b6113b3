// Package config resolves the runtime configuration for caldrivesync.
//
// Precedence is defaults, then CALDRIVESYNC_* environment variables
// (optionally loaded from a .env file), then command-line flags applied
// by the cmd package.
package config
