// Package frame validates incoming camera frames and derives the working
// image buffers the rest of the pipeline consumes: a BGR view of the
// frame and a blurred single-channel grayscale view.
//
// # Buffer Ownership
//
// Every buffer derived from a Frame is held by a *Buffers value scoped to
// a single Detect call. Release must run on every exit path; Buffers
// tracks outstanding allocations so tests can assert no buffer leaks
// across repeated calls (spec invariant: equal acquire/release counts).
package frame
