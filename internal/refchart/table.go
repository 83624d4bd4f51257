package refchart

import "github.com/colorchecker/verifier-core/internal/colorspace"

// Table is the 24-entry reference Lab vector, in sampling order. It is
// shared read-only for the lifetime of the process; callers must never
// mutate its contents.
var Table = []colorspace.LabSample{
	{L: 37.986, A: 13.555, B: 14.059},
	{L: 65.711, A: 18.130, B: 17.810},
	{L: 49.927, A: -4.880, B: -21.925},
	{L: 43.139, A: -13.095, B: 21.905},
	{L: 55.112, A: 8.844, B: -25.399},
	{L: 70.719, A: -33.395, B: -0.199},
	{L: 62.661, A: 36.067, B: 57.096},
	{L: 40.020, A: 10.410, B: -45.964},
	{L: 51.124, A: 48.239, B: 16.248},
	{L: 30.325, A: 22.976, B: -21.587},
	{L: 72.532, A: -23.709, B: 57.255},
	{L: 71.941, A: 19.363, B: 67.857},
	{L: 28.778, A: 14.179, B: -50.297},
	{L: 55.261, A: -38.342, B: 31.370},
	{L: 42.101, A: 53.378, B: 28.190},
	{L: 81.733, A: 4.039, B: 79.819},
	{L: 51.935, A: 49.986, B: -14.574},
	{L: 51.038, A: -28.631, B: -28.638},
	{L: 96.539, A: -0.425, B: 1.186},
	{L: 81.257, A: -0.638, B: -0.335},
	{L: 66.766, A: -0.734, B: -0.504},
	{L: 50.867, A: -0.153, B: -0.270},
	{L: 35.656, A: -0.421, B: -1.231},
	{L: 20.461, A: -0.079, B: -0.973},
}

// PatchCount is the number of reference entries, and the number of
// cells in the 6x4 sampling grid.
const PatchCount = 24

// GrayscalePanelIndices are the indices of the six neutral patches
// (the bottom row of a standard 24-patch chart), used to check the
// primary chart's own neutral row.
var GrayscalePanelIndices = []int{18, 19, 20, 21, 22, 23}
