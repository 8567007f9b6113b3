// Package export builds and uploads the per-day JSON envelopes.
//
// An Exporter runs one cycle: yesterday's events become the "reality"
// envelope, tomorrow's the "expectation" envelope. Each envelope is written
// to a local DD-MM-YYYY-{label}.json file, uploaded into a fixed Drive
// folder, and the local copy is deleted once the upload is confirmed. The
// Exporter talks to the outside world only through the EventSource and
// FileSink interfaces, so the cycle is testable without live credentials.
package export
