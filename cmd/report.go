package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"caldrivesync/internal/calendar"
	"caldrivesync/internal/config"
	"caldrivesync/internal/google"
	"caldrivesync/internal/logging"
)

// dateHeaderLayout matches "Monday, January 02, 2006" in report headings.
const dateHeaderLayout = "Monday, January 02, 2006"

func newReportCmd() *cobra.Command {
	var calendarID string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print yesterday's and tomorrow's calendar events",
		Long: `Fetch all events for the day before and the day after today from one
calendar and print them as a human-readable report. A failed query for one
day is logged and treated as an empty day; the other day is still reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if calendarID != "" {
				cfg.CalendarID = calendarID
			}
			if cfg.CalendarID == "" {
				cfg.CalendarID = config.DefaultCalendarID
			}
			ctx := cmd.Context()

			creds, err := google.LoadCredentials(cfg.CredentialsFile)
			if err != nil {
				return err
			}

			client, err := calendar.NewClient(ctx, creds)
			if err != nil {
				return fmt.Errorf("failed to create Calendar client: %w", err)
			}

			now := time.Now()
			yesterday := now.AddDate(0, 0, -1)
			tomorrow := now.AddDate(0, 0, 1)

			w := cmd.OutOrStdout()
			rule := strings.Repeat("=", 60)
			fmt.Fprintln(w, rule)
			fmt.Fprintln(w, "Google Calendar Report")
			fmt.Fprintln(w, rule)
			fmt.Fprintln(w)
			fmt.Fprintf(w, "Today: %s\n", now.Format(dateHeaderLayout))
			fmt.Fprintln(w, "Fetching events for:")
			fmt.Fprintf(w, "  - Yesterday: %s\n", yesterday.Format(dateHeaderLayout))
			fmt.Fprintf(w, "  - Tomorrow: %s\n", tomorrow.Format(dateHeaderLayout))
			fmt.Fprintln(w)

			total := 0
			days := []struct {
				title string
				date  time.Time
			}{
				{"YESTERDAY", yesterday},
				{"TOMORROW", tomorrow},
			}
			for _, day := range days {
				events, err := client.ListDayEvents(ctx, cfg.CalendarID, day.date)
				if err != nil {
					slog.Error("day query failed, treating day as empty",
						logging.Operation("calendar.list"),
						logging.Calendar(cfg.CalendarID),
						slog.String("date", day.date.Format("2006-01-02")),
						logging.Err(err))
					events = nil
				}
				printDaySection(w, day.title, day.date, events)
				total += len(events)
			}

			fmt.Fprintln(w, rule)
			fmt.Fprintf(w, "Total events: %d\n", total)
			fmt.Fprintln(w, rule)
			return nil
		},
	}

	cmd.Flags().StringVar(&calendarID, "calendar", "", "calendar ID to query (defaults to the configured calendar)")
	return cmd
}

func printDaySection(w io.Writer, title string, date time.Time, events []calendar.Event) {
	rule := strings.Repeat("-", 60)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%s - %s\n", title, date.Format(dateHeaderLayout))
	fmt.Fprintln(w, rule)

	if len(events) == 0 {
		fmt.Fprintf(w, "No events found.\n\n")
		return
	}

	fmt.Fprintf(w, "Found %d event(s):\n\n", len(events))
	for _, e := range events {
		fmt.Fprintln(w, calendar.FormatEvent(e))
	}
}
