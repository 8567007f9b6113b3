package drive

// DriveInfo identifies a shared drive accessible to the service account
type DriveInfo struct {
	// ID is the unique identifier for the shared drive
	ID string `json:"id"`

	// Name is the display name of the shared drive
	Name string `json:"name"`

	// Kind is the resource kind reported by the API
	Kind string `json:"kind"`
}

// FileInfo is the subset of file metadata the commands consume
type FileInfo struct {
	// ID is the unique identifier for the file
	ID string `json:"id"`

	// Name is the name of the file
	Name string `json:"name"`

	// WebViewLink is a link for opening the file in a browser
	WebViewLink string `json:"webViewLink,omitempty"`
}
