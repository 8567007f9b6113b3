package drive

import (
	"context"
	"strings"
	"testing"
)

func TestUploadJSONValidation(t *testing.T) {
	// Validation happens before any service call, so a zero client is enough.
	c := &Client{}
	ctx := context.Background()
	body := strings.NewReader("{}")

	if _, err := c.UploadJSON(ctx, "", body, "folder1"); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := c.UploadJSON(ctx, "a.json", nil, "folder1"); err == nil {
		t.Error("expected error for nil content")
	}
	if _, err := c.UploadJSON(ctx, "a.json", body, ""); err == nil {
		t.Error("expected error for empty folder")
	}
}

func TestListDriveFilesValidation(t *testing.T) {
	c := &Client{}
	if _, err := c.ListDriveFiles(context.Background(), "", 5); err == nil {
		t.Error("expected error for empty driveID")
	}
}
