package main

import (
	"caldrivesync/cmd"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Set the version from build-time variable
	cmd.SetVersion(version)

	// Execute the root command
	cmd.Execute()
}
