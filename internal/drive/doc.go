// Package drive provides a client for the Google Drive operations used by
// caldrivesync:
//
//   - Listing shared drives the service account is a member of
//   - Sampling files inside one shared drive
//   - Uploading JSON files into a fixed folder
//
// All calls set SupportsAllDrives where the target may live on a shared
// drive rather than in My Drive.
package drive
