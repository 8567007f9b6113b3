package export

import (
	"encoding/json"
	"fmt"
	"time"

	"caldrivesync/internal/calendar"
)

// Labels distinguishing the two envelopes produced per run.
const (
	// LabelReality marks yesterday's actual events.
	LabelReality = "reality"

	// LabelExpectation marks tomorrow's planned events.
	LabelExpectation = "expectation"
)

// envelopeDateLayout is DD-MM-YYYY, used both inside the envelope and in
// file names. It is fixed and independent of locale.
const envelopeDateLayout = "02-01-2006"

// Envelope is the JSON document uploaded to Drive for one day of events.
type Envelope struct {
	SyncTimestamp string           `json:"sync_timestamp"`
	Date          string           `json:"date"`
	DayName       string           `json:"day_name"`
	Type          string           `json:"type"`
	EventCount    int              `json:"event_count"`
	Events        []calendar.Event `json:"events"`
}

// NewEnvelope builds the envelope for one day. Events is never null in the
// serialized form; an empty day yields event_count 0 and events [].
func NewEnvelope(now, date time.Time, label string, events []calendar.Event) Envelope {
	if events == nil {
		events = []calendar.Event{}
	}
	return Envelope{
		SyncTimestamp: now.Format(time.RFC3339),
		Date:          date.Format(envelopeDateLayout),
		DayName:       date.Weekday().String(),
		Type:          label,
		EventCount:    len(events),
		Events:        events,
	}
}

// FileName returns the name used both locally and on Drive for a day's
// envelope, e.g. 07-04-2025-reality.json.
func FileName(date time.Time, label string) string {
	return fmt.Sprintf("%s-%s.json", date.Format(envelopeDateLayout), label)
}

// Encode renders the envelope as UTF-8 JSON with two-space indentation.
func (e Envelope) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode envelope: %w", err)
	}
	return data, nil
}
