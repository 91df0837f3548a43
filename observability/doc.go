// Package observability wires OpenTelemetry metrics and traces into the
// registration toolkit. Services that want telemetry for their service
// collection call InitMeter/InitTracer once at startup and attach a
// Metrics instance to the collection and provider via their options;
// everything here is optional and the toolkit works without it.
package observability
