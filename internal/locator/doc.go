// Package locator finds candidate ColorChecker chart quadrilaterals in
// a BGR image.
//
// The detector core (edge gradient threshold, flood-fill contour
// extraction, bounding-box rectangularity scoring) is adapted from the
// teacher's axis-aligned rectangle detector; it is extended here to
// run as a two-stage full-image-then-split search and to emit ordered
// Quads instead of bare bounding boxes.
package locator
