// Package result defines the wire-level output of a detect call:
// Failure, Metrics, and DetectionOutput, shared by the scorer,
// orchestrator, CLI, and MCP server.
package result
