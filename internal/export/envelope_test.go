package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caldrivesync/internal/calendar"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		name  string
		date  time.Time
		label string
		want  string
	}{
		{
			name:  "reality with zero-padded day and month",
			date:  time.Date(2025, time.April, 7, 12, 0, 0, 0, time.UTC),
			label: LabelReality,
			want:  "07-04-2025-reality.json",
		},
		{
			name:  "expectation at end of year",
			date:  time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
			label: LabelExpectation,
			want:  "31-12-2025-expectation.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.date, tt.label))
		})
	}
}

func TestNewEnvelopeEmptyDay(t *testing.T) {
	now := time.Date(2025, time.April, 8, 6, 30, 0, 0, time.UTC)
	date := time.Date(2025, time.April, 7, 6, 30, 0, 0, time.UTC)

	env := NewEnvelope(now, date, LabelReality, nil)

	assert.Equal(t, 0, env.EventCount)
	assert.NotNil(t, env.Events, "events must serialize as [], not null")
	assert.Equal(t, "07-04-2025", env.Date)
	assert.Equal(t, "Monday", env.DayName)
	assert.Equal(t, LabelReality, env.Type)
	assert.Equal(t, "2025-04-08T06:30:00Z", env.SyncTimestamp)
}

func TestNewEnvelopeCountsEvents(t *testing.T) {
	now := time.Now()
	events := []calendar.Event{
		{Summary: "a"},
		{Summary: "b"},
	}

	env := NewEnvelope(now, now.AddDate(0, 0, 1), LabelExpectation, events)

	assert.Equal(t, 2, env.EventCount)
	assert.Len(t, env.Events, 2)
}

func TestEncodeIndentationAndNullness(t *testing.T) {
	now := time.Date(2025, time.April, 8, 6, 30, 0, 0, time.UTC)
	env := NewEnvelope(now, now.AddDate(0, 0, -1), LabelReality, nil)

	data, err := env.Encode()
	require.NoError(t, err)

	s := string(data)
	assert.True(t, strings.Contains(s, "\n  \"sync_timestamp\""), "expected 2-space indentation: %s", s)
	assert.Contains(t, s, `"events": []`)
	assert.Contains(t, s, `"event_count": 0`)
	assert.NotContains(t, s, "null")

	// Round-trips as valid JSON.
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, LabelReality, decoded["type"])
}
