package logging

import (
	"errors"
	"log/slog"
	"testing"
)

func TestWithOperation(t *testing.T) {
	logger := slog.Default()
	result := WithOperation(logger, "export")
	if result == nil {
		t.Error("WithOperation returned nil")
	}
}

func TestWithService(t *testing.T) {
	logger := slog.Default()
	result := WithService(logger, "drive")
	if result == nil {
		t.Error("WithService returned nil")
	}
}

func TestOperationAttr(t *testing.T) {
	attr := Operation("calendar.list")
	if attr.Key != KeyOperation {
		t.Errorf("Operation key = %q, want %q", attr.Key, KeyOperation)
	}
	if attr.Value.String() != "calendar.list" {
		t.Errorf("Operation value = %q, want %q", attr.Value.String(), "calendar.list")
	}
}

func TestCalendarAttr(t *testing.T) {
	attr := Calendar("primary")
	if attr.Key != KeyCalendar {
		t.Errorf("Calendar key = %q, want %q", attr.Key, KeyCalendar)
	}
	if attr.Value.String() != "primary" {
		t.Errorf("Calendar value = %q, want %q", attr.Value.String(), "primary")
	}
}

func TestFileAttr(t *testing.T) {
	attr := File("07-04-2025-reality.json")
	if attr.Key != KeyFile {
		t.Errorf("File key = %q, want %q", attr.Key, KeyFile)
	}
}

func TestCountAttr(t *testing.T) {
	attr := Count(3)
	if attr.Key != KeyCount {
		t.Errorf("Count key = %q, want %q", attr.Key, KeyCount)
	}
	if attr.Value.Int64() != 3 {
		t.Errorf("Count value = %d, want 3", attr.Value.Int64())
	}
}

func TestStatusAttr(t *testing.T) {
	attr := Status(StatusError)
	if attr.Key != KeyStatus {
		t.Errorf("Status key = %q, want %q", attr.Key, KeyStatus)
	}
	if attr.Value.String() != StatusError {
		t.Errorf("Status value = %q, want %q", attr.Value.String(), StatusError)
	}
}

func TestErrAttr(t *testing.T) {
	err := errors.New("upload failed")
	attr := Err(err)
	if attr.Key != KeyError {
		t.Errorf("Err key = %q, want %q", attr.Key, KeyError)
	}
	if attr.Value.String() != "upload failed" {
		t.Errorf("Err value = %q, want %q", attr.Value.String(), "upload failed")
	}
}

func TestErrAttrNil(t *testing.T) {
	attr := Err(nil)
	if attr.Key != "" {
		t.Errorf("Err(nil) key = %q, want empty group", attr.Key)
	}
}
