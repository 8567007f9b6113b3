// Package calendar provides a client for reading Google Calendar events.
//
// The client fetches whole days at a time: ListDayEvents queries the window
// [00:00:00.000000, 23:59:59.999999] of one date with recurring events
// expanded and results ordered by start time. Events are returned as
// read-only projections carrying only the fields the report and export
// commands consume.
package calendar
