package drive

import (
	"context"
	"fmt"
	"io"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"caldrivesync/internal/google"
)

const (
	// JSONMimeType is the MIME type set on exported envelope files
	JSONMimeType = "application/json"

	// sharedDrivePageSize bounds a single drives.list call
	sharedDrivePageSize = 100
)

// Client wraps the Google Drive API service
type Client struct {
	svc *drive.Service
}

// NewClient creates a Drive client authenticated as the service account
// with the given scopes.
func NewClient(ctx context.Context, creds *google.Credentials, scopes ...string) (*Client, error) {
	httpClient, err := creds.HTTPClient(ctx, scopes...)
	if err != nil {
		return nil, err
	}

	svc, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// ListSharedDrives lists the shared drives the service account is a member of.
func (c *Client) ListSharedDrives(ctx context.Context) ([]DriveInfo, error) {
	list, err := c.svc.Drives.List().
		Context(ctx).
		PageSize(sharedDrivePageSize).
		Fields("drives(id, name, kind)").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list shared drives: %w", err)
	}

	drives := make([]DriveInfo, 0, len(list.Drives))
	for _, d := range list.Drives {
		drives = append(drives, DriveInfo{
			ID:   d.Id,
			Name: d.Name,
			Kind: d.Kind,
		})
	}
	return drives, nil
}

// ListDriveFiles lists up to max files inside one shared drive.
func (c *Client) ListDriveFiles(ctx context.Context, driveID string, max int64) ([]FileInfo, error) {
	if driveID == "" {
		return nil, fmt.Errorf("driveID is required")
	}

	list, err := c.svc.Files.List().
		Context(ctx).
		DriveId(driveID).
		Corpora("drive").
		IncludeItemsFromAllDrives(true).
		SupportsAllDrives(true).
		PageSize(max).
		Fields("files(id, name)").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list files of drive %s: %w", driveID, err)
	}

	files := make([]FileInfo, 0, len(list.Files))
	for _, f := range list.Files {
		files = append(files, FileInfo{ID: f.Id, Name: f.Name})
	}
	return files, nil
}

// UploadJSON uploads content as a new JSON file into a Drive folder. Every
// call creates a new file; there is no deduplication against earlier
// uploads of the same name.
func (c *Client) UploadJSON(ctx context.Context, name string, content io.Reader, folderID string) (*FileInfo, error) {
	if name == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if content == nil {
		return nil, fmt.Errorf("file content is required")
	}
	if folderID == "" {
		return nil, fmt.Errorf("destination folder is required")
	}

	file := &drive.File{
		Name:     name,
		Parents:  []string{folderID},
		MimeType: JSONMimeType,
	}

	// SupportsAllDrives is required when the parent lives on a shared drive.
	created, err := c.svc.Files.Create(file).
		Context(ctx).
		SupportsAllDrives(true).
		Media(content, googleapi.ContentType(JSONMimeType)).
		Fields("id, name, webViewLink").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", name, err)
	}

	return &FileInfo{
		ID:          created.Id,
		Name:        created.Name,
		WebViewLink: created.WebViewLink,
	}, nil
}
