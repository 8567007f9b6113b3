package calendar

import (
	"context"
	"fmt"
	"time"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"caldrivesync/internal/google"
)

// Client wraps the Google Calendar service
type Client struct {
	svc *calendar.Service
}

// NewClient creates a read-only Calendar client authenticated as the
// service account.
func NewClient(ctx context.Context, creds *google.Credentials) (*Client, error) {
	httpClient, err := creds.HTTPClient(ctx, google.ScopeCalendarReadonly)
	if err != nil {
		return nil, err
	}

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// DayWindow returns the inclusive bounds of date's day in its own location:
// 00:00:00.000000 through 23:59:59.999999. Events at either boundary instant
// fall inside the window exactly once.
func DayWindow(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	end := time.Date(y, m, d, 23, 59, 59, 999999000, date.Location())
	return start, end
}

// formatWindowBound renders a window bound for the events query: local wall
// clock at microsecond precision with a trailing Z. The literal Z on a local
// timestamp is a long-standing quirk of this tool; fixing it would shift the
// queried day on any machine not running in UTC.
func formatWindowBound(t time.Time) string {
	return t.Format("2006-01-02T15:04:05.000000") + "Z"
}

// ListDayEvents lists all events of one calendar on one day, ordered by
// start time, with recurring events expanded to single instances.
func (c *Client) ListDayEvents(ctx context.Context, calendarID string, date time.Time) ([]Event, error) {
	timeMin, timeMax := DayWindow(date)

	events, err := c.svc.Events.List(calendarID).
		Context(ctx).
		TimeMin(formatWindowBound(timeMin)).
		TimeMax(formatWindowBound(timeMax)).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events for %s: %w", date.Format("2006-01-02"), err)
	}

	result := make([]Event, 0, len(events.Items))
	for _, item := range events.Items {
		result = append(result, toEvent(item))
	}
	return result, nil
}
