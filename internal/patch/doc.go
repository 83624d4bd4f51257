// Package patch warps a detected chart quad to the canonical 600x400
// canvas, samples the 24-patch grid, and scores the samples against
// the reference table.
//
// The homography solve (8x8 Gaussian elimination with partial
// pivoting) and the inverse-homography bilinear warp are adapted from
// the teacher pack's rectify package, generalized from "rectify a
// detected document to a fixed output height" to "rectify a detected
// chart quad to the fixed 600x400 ColorChecker canvas".
package patch
