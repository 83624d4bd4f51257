// Package detect wires Locator, QualityAnalyzer, PatchAnalyzer, and
// Scorer into the single Detect entry point: validate the frame,
// derive BGR/grayscale buffers, run the pipeline, and guarantee buffer
// release on every exit path including unexpected panics/errors.
package detect
