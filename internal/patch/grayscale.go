package patch

import (
	"github.com/colorchecker/verifier-core/internal/colorspace"
	"github.com/colorchecker/verifier-core/internal/refchart"
)

// isValidGrayscalePanel applies the three grayscale-panel heuristics
// to a row-major 6x4 grid of Lab samples: low mean and max chroma, and
// quasi-monotonically non-increasing per-row mean luminance. The three
// limits come from the shared configuration so a colorchecker.yaml/env
// override reaches the heuristic.
func isValidGrayscalePanel(samples []colorspace.LabSample, meanChromaLimit, maxChromaLimit, luminanceSlack float64) bool {
	if len(samples) != gridColumns*gridRows {
		return false
	}

	var sumChroma, maxChroma float64
	for _, s := range samples {
		c := s.Chroma()
		sumChroma += c
		if c > maxChroma {
			maxChroma = c
		}
	}
	meanChroma := sumChroma / float64(len(samples))

	if meanChroma >= meanChromaLimit {
		return false
	}
	if maxChroma >= maxChromaLimit {
		return false
	}

	rowMeans := make([]float64, gridRows)
	for r := 0; r < gridRows; r++ {
		var sum float64
		for c := 0; c < gridColumns; c++ {
			sum += samples[r*gridColumns+c].L
		}
		rowMeans[r] = sum / float64(gridColumns)
	}

	for r := 0; r < gridRows-1; r++ {
		if rowMeans[r] < rowMeans[r+1]-luminanceSlack {
			return false
		}
	}

	return true
}

// isValidNeutralRow checks the primary chart's own bottom neutral row
// (refchart.GrayscalePanelIndices) the same way isValidGrayscalePanel
// checks a secondary panel's full grid, minus the row-descent check: a
// single row has no rows to descend across. samples must be indexed
// the same as refchart.Table.
func isValidNeutralRow(samples []colorspace.LabSample, meanChromaLimit, maxChromaLimit float64) bool {
	if len(samples) != 24 {
		return false
	}

	var sumChroma, maxChroma float64
	for _, idx := range refchart.GrayscalePanelIndices {
		c := samples[idx].Chroma()
		sumChroma += c
		if c > maxChroma {
			maxChroma = c
		}
	}
	meanChroma := sumChroma / float64(len(refchart.GrayscalePanelIndices))

	if meanChroma >= meanChromaLimit {
		return false
	}
	if maxChroma >= maxChromaLimit {
		return false
	}
	return true
}
