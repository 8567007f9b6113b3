// Package google provides service account authentication for Google APIs.
//
// The key file is loaded once per run; each API client then materializes
// its own scoped HTTP client from the same credentials.
package google
