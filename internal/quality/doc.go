// Package quality implements the two scalar image-quality metrics the
// pipeline needs before it even looks for a chart: contrast (global
// intensity spread) and Laplacian variance (focus).
//
// Both functions are pure and side-effect free, operating on a single
// 8-bit grayscale image. Unlike the blur applied in internal/frame, the
// Laplacian response here is kept in 64-bit float space rather than
// routed through an 8-bit convolution library, because clamping the
// response to [0,255] before squaring it would throw away the very
// high-frequency content the variance is meant to measure.
package quality
