package calendar

import (
	"fmt"
	"strings"
)

// descriptionPreviewLimit is the number of characters of an event
// description shown in the report before truncation.
const descriptionPreviewLimit = 100

// FormatEvent renders an event as the multi-line block printed by the
// report command.
func FormatEvent(e Event) string {
	title := e.Summary
	if title == "" {
		title = "No Title"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  • %s\n", title)
	fmt.Fprintf(&b, "    Time: %s\n", formatTimeRange(e))
	if e.Location != "" {
		fmt.Fprintf(&b, "    Location: %s\n", e.Location)
	}
	if e.Description != "" {
		fmt.Fprintf(&b, "    Description: %s\n", truncate(e.Description, descriptionPreviewLimit))
	}
	return b.String()
}

func formatTimeRange(e Event) string {
	if e.AllDay {
		return "All day"
	}
	return e.Start.Format("03:04 PM") + " - " + e.End.Format("03:04 PM")
}

// truncate shortens s to limit characters of original content plus an
// ellipsis. Characters, not bytes: a multi-byte rune counts once.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
