// Package telemetry exposes prometheus metrics for the detect
// pipeline: call duration, failure counts by reason, and the
// confidence distribution.
package telemetry
