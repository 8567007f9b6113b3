package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"caldrivesync/internal/calendar"
	"caldrivesync/internal/drive"
	"caldrivesync/internal/logging"
)

// EventSource fetches one day of calendar events.
type EventSource interface {
	ListDayEvents(ctx context.Context, calendarID string, date time.Time) ([]calendar.Event, error)
}

// FileSink stores a named JSON document in a folder.
type FileSink interface {
	UploadJSON(ctx context.Context, name string, content io.Reader, folderID string) (*drive.FileInfo, error)
}

// Exporter uploads yesterday's and tomorrow's events of one calendar to a
// Drive folder, one envelope file per day.
type Exporter struct {
	Source     EventSource
	Sink       FileSink
	CalendarID string
	FolderID   string

	// Dir is the directory for the local envelope files. Empty means the
	// working directory.
	Dir string

	// KeepLocal leaves local files in place even after a successful upload.
	KeepLocal bool

	Logger *slog.Logger
}

// Result reports what one run produced.
type Result struct {
	// Events is the total number of events across both days.
	Events int

	// Uploaded is the number of envelope files that reached Drive (0..2).
	Uploaded int
}

// Run produces and uploads the reality envelope for the day before now and
// the expectation envelope for the day after. A failed day query degrades to
// an empty envelope; a failed upload leaves the local file in place as the
// recovery artifact. Neither aborts the other day.
func (e *Exporter) Run(ctx context.Context, now time.Time) (Result, error) {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logging.WithOperation(logger, "export")

	var res Result
	days := []struct {
		date  time.Time
		label string
	}{
		{now.AddDate(0, 0, -1), LabelReality},
		{now.AddDate(0, 0, 1), LabelExpectation},
	}

	for _, day := range days {
		events, err := e.Source.ListDayEvents(ctx, e.CalendarID, day.date)
		if err != nil {
			logger.Error("day query failed, exporting empty day",
				logging.Calendar(e.CalendarID),
				slog.String("date", day.date.Format("2006-01-02")),
				logging.Err(err))
			events = nil
		}
		res.Events += len(events)

		env := NewEnvelope(now, day.date, day.label, events)
		data, err := env.Encode()
		if err != nil {
			return res, err
		}

		name := FileName(day.date, day.label)
		path := filepath.Join(e.Dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return res, fmt.Errorf("failed to write %s: %w", path, err)
		}

		info, err := e.Sink.UploadJSON(ctx, name, bytes.NewReader(data), e.FolderID)
		if err != nil {
			logger.Error("upload failed, keeping local file",
				logging.File(name),
				logging.Err(err))
			continue
		}
		res.Uploaded++
		logger.Info("uploaded envelope",
			logging.File(name),
			slog.String("id", info.ID),
			logging.Count(env.EventCount),
			logging.Status(logging.StatusSuccess))

		if !e.KeepLocal {
			if err := os.Remove(path); err != nil {
				logger.Warn("failed to remove local file",
					logging.File(name),
					logging.Err(err))
			}
		}
	}

	return res, nil
}
