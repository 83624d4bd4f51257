package patch

import (
	"errors"
	"image"

	"github.com/colorchecker/verifier-core/internal/colorspace"
	"github.com/colorchecker/verifier-core/internal/config"
	"github.com/colorchecker/verifier-core/internal/geometry"
	"github.com/colorchecker/verifier-core/internal/refchart"
)

// errDegenerateQuad is returned when a quad's corners are collinear or
// coincide, so no perspective transform exists.
var errDegenerateQuad = errors.New("patch: quad is degenerate, cannot compute homography")

// gridColumns and gridRows are the chart's fixed 6x4 patch layout;
// unlike the canvas size and grayscale thresholds, this shape is a
// property of the chart itself, not a tunable.
const (
	gridColumns = 6
	gridRows    = 4
)

// Scores holds the per-patch ΔE2000 measurements for one warped quad.
type Scores struct {
	// Samples is the 24 measured Lab values, in sampling order.
	Samples []colorspace.LabSample
	// DeltaE is the per-patch ΔE2000 against refchart.Table, same
	// indexing as Samples.
	DeltaE []float64
	// AvgDeltaE and MaxDeltaE summarize DeltaE.
	AvgDeltaE float64
	MaxDeltaE float64
	// NeutralRowValid reports whether the chart's own bottom neutral
	// row (refchart.GrayscalePanelIndices) measures as near-neutral,
	// an additional sanity check distinct from ValidateGrayscalePanel's
	// secondary-panel validation.
	NeutralRowValid bool
}

// Analyzer warps a quad to the canonical canvas, samples its 24
// patches, and validates a quad as a neutral grayscale panel. Swapped
// for a fake in orchestrator tests.
type Analyzer interface {
	ScorePatches(bgr image.Image, quad geometry.Quad) (Scores, error)
	ValidateGrayscalePanel(bgr image.Image, quad geometry.Quad) (bool, error)
}

// Default is the production Analyzer.
type Default struct {
	Config config.Config
}

// NewDefault builds a Default analyzer with the specification's
// compiled-in canvas size and grayscale thresholds.
func NewDefault() Default {
	return Default{Config: config.Default()}
}

// NewDefaultWithConfig builds a Default analyzer whose warp canvas
// size and grayscale thresholds come from the shared configuration,
// so a colorchecker.yaml/env override reaches the warp and the
// grayscale heuristic instead of being shadowed by compiled-in
// constants.
func NewDefaultWithConfig(cfg config.Config) Default {
	return Default{Config: cfg}
}

func (d Default) config() config.Config {
	if d.Config == (config.Config{}) {
		return config.Default()
	}
	return d.Config
}

// ScorePatches implements Analyzer.
func (d Default) ScorePatches(bgr image.Image, quad geometry.Quad) (Scores, error) {
	samples, err := d.sampleCanonicalGrid(bgr, quad)
	if err != nil {
		return Scores{}, err
	}

	deltaE := make([]float64, len(samples))
	var sum, max float64
	for i, s := range samples {
		de := colorspace.DeltaE2000(s, refchart.Table[i])
		deltaE[i] = de
		sum += de
		if de > max {
			max = de
		}
	}

	n := float64(len(samples))
	avg := 0.0
	if n > 0 {
		avg = sum / n
	}

	cfg := d.config()
	return Scores{
		Samples:         samples,
		DeltaE:          deltaE,
		AvgDeltaE:       avg,
		MaxDeltaE:       max,
		NeutralRowValid: isValidNeutralRow(samples, cfg.GrayscaleMeanChromaLimit, cfg.GrayscaleMaxChromaLimit),
	}, nil
}

// ValidateGrayscalePanel implements Analyzer.
func (d Default) ValidateGrayscalePanel(bgr image.Image, quad geometry.Quad) (bool, error) {
	samples, err := d.sampleCanonicalGrid(bgr, quad)
	if err != nil {
		return false, err
	}
	cfg := d.config()
	return isValidGrayscalePanel(samples, cfg.GrayscaleMeanChromaLimit, cfg.GrayscaleMaxChromaLimit, cfg.LuminanceDescentSlack), nil
}

// sampleCanonicalGrid warps quad to the canonical canvas and returns
// the 24 per-patch mean Lab samples, row-major (r outermost). The
// canvas size and cell/ROI geometry scale with the configured warp
// canvas dimensions; the 6x4 grid shape itself stays fixed.
func (d Default) sampleCanonicalGrid(bgr image.Image, quad geometry.Quad) ([]colorspace.LabSample, error) {
	cfg := d.config()
	canvas, err := warpToCanvas(bgr, quad, cfg.WarpCanvasWidth, cfg.WarpCanvasHeight)
	if err != nil {
		return nil, err
	}

	cellWidth := cfg.WarpCanvasWidth / gridColumns
	cellHeight := cfg.WarpCanvasHeight / gridRows
	roiW, roiH := cellWidth/2, cellHeight/2
	offsetX, offsetY := cellWidth/4, cellHeight/4

	samples := make([]colorspace.LabSample, 0, gridColumns*gridRows)
	for r := 0; r < gridRows; r++ {
		for c := 0; c < gridColumns; c++ {
			x0 := c*cellWidth + offsetX
			y0 := r*cellHeight + offsetY
			samples = append(samples, meanLabOverROI(canvas, x0, y0, roiW, roiH))
		}
	}
	return samples, nil
}

// meanLabOverROI converts each pixel in the (x0,y0,w,h) window to Lab
// and returns the per-channel mean.
func meanLabOverROI(img image.Image, x0, y0, w, h int) colorspace.LabSample {
	var sumL, sumA, sumB float64
	n := 0
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			s := colorspace.FromColor(img.At(x, y))
			sumL += s.L
			sumA += s.A
			sumB += s.B
			n++
		}
	}
	if n == 0 {
		return colorspace.LabSample{}
	}
	return colorspace.LabSample{L: sumL / float64(n), A: sumA / float64(n), B: sumB / float64(n)}
}
