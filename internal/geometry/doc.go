// Package geometry provides the pixel-coordinate primitives shared by the
// locator, patch, and scorer stages: points, ordered quadrilaterals, and
// their axis-aligned bounding boxes.
//
// # Coordinate System
//
// All coordinates use the standard image convention: origin (0,0) at the
// top-left corner, X increasing rightward, Y increasing downward.
package geometry
