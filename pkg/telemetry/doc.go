// Package telemetry records OpenTelemetry metrics and spans for password
// generation.
//
// Instruments bind lazily to the global MeterProvider and TracerProvider, so
// they are no-ops until an SDK is installed. Only sizes, counts and labels
// are recorded. Generated passwords never reach telemetry.
package telemetry
