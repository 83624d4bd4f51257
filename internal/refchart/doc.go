// Package refchart holds the immutable, process-wide table of 24
// reference CIE L*a*b* values for the standard ColorChecker layout, in
// the row-major sampling order (6 columns x 4 rows) used by the patch
// sampler: patch index 0 is the dark-skin swatch in the top-left corner,
// index 23 is the darkest neutral in the bottom-right.
package refchart
