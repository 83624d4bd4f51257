// Package logging defines the Logger capability the orchestrator uses
// to report warnings and errors, with a log/slog-backed production
// implementation and a recording fake for tests.
package logging
