// Package otel provides OpenTelemetry metric exporter bindings for
// goSession counters.
//
// [NewExporter] registers an Int64ObservableCounter per session metric plus
// one for dropped audit events. A single callback reads
// [goSession.Session.MetricsSnapshot] on each collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider; callers supply the Meter.
//   - Mutate session state.
package otel
