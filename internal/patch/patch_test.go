package patch

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/colorchecker/verifier-core/internal/geometry"
	"github.com/colorchecker/verifier-core/internal/refchart"
	"github.com/lucasb-eyer/go-colorful"
)

// syntheticChart paints the 24 reference Lab colors in a 6x4 grid onto
// a w x h canvas at the given top-left offset, mirroring the "synthetic
// perfect chart" scenario: each cell is cellW x cellH and is painted a
// uniform color converted from the corresponding reference Lab entry.
func syntheticChart(w, h, originX, originY, cellW, cellH int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 30, G: 30, B: 30, A: 255})
		}
	}

	for r := 0; r < gridRows; r++ {
		for c := 0; c < gridColumns; c++ {
			sample := refchart.Table[r*gridColumns+c]
			cc := colorful.Lab(sample.L/100, sample.A/100, sample.B/100)
			rr, gg, bb := cc.Clamped().RGB255()
			fill := color.RGBA{R: rr, G: gg, B: bb, A: 255}

			x0 := originX + c*cellW
			y0 := originY + r*cellH
			for y := y0; y < y0+cellH; y++ {
				for x := x0; x < x0+cellW; x++ {
					img.Set(x, y, fill)
				}
			}
		}
	}
	return img
}

func TestScorePatchesOnSyntheticPerfectChartIsLowDeltaE(t *testing.T) {
	chartW, chartH := CanvasWidth, CanvasHeight
	img := syntheticChart(1200, 800, (1200-chartW)/2, (800-chartH)/2, chartW/gridColumns, chartH/gridRows)

	ox, oy := float64((1200-chartW)/2), float64((800-chartH)/2)
	quad := geometry.Quad{
		{X: ox, Y: oy},
		{X: ox + float64(chartW), Y: oy},
		{X: ox + float64(chartW), Y: oy + float64(chartH)},
		{X: ox, Y: oy + float64(chartH)},
	}

	scores, err := NewDefault().ScorePatches(img, quad)
	if err != nil {
		t.Fatalf("ScorePatches error: %v", err)
	}
	if len(scores.DeltaE) != 24 {
		t.Fatalf("len(DeltaE) = %d, want 24", len(scores.DeltaE))
	}
	if scores.AvgDeltaE >= 2.0 {
		t.Fatalf("AvgDeltaE = %v, want < 2.0 for a synthetic perfect chart", scores.AvgDeltaE)
	}
	if !scores.NeutralRowValid {
		t.Fatalf("expected a synthetic perfect chart's own bottom neutral row to validate as near-neutral")
	}
}

func TestScorePatchesFlagsSaturatedNeutralRow(t *testing.T) {
	chartW, chartH := CanvasWidth, CanvasHeight
	img := syntheticChart(1200, 800, (1200-chartW)/2, (800-chartH)/2, chartW/gridColumns, chartH/gridRows)

	// Overpaint the bottom row (the chart's own neutral row) with a
	// saturated color, as if a stray light leak or a printing defect
	// tinted it.
	cellH := chartH / gridRows
	ox, oy := (1200-chartW)/2, (800-chartH)/2
	y0 := oy + 3*cellH
	for y := y0; y < y0+cellH; y++ {
		for x := ox; x < ox+chartW; x++ {
			img.Set(x, y, color.RGBA{R: 220, G: 20, B: 20, A: 255})
		}
	}

	quad := geometry.Quad{
		{X: float64(ox), Y: float64(oy)},
		{X: float64(ox + chartW), Y: float64(oy)},
		{X: float64(ox + chartW), Y: float64(oy + chartH)},
		{X: float64(ox), Y: float64(oy + chartH)},
	}

	scores, err := NewDefault().ScorePatches(img, quad)
	if err != nil {
		t.Fatalf("ScorePatches error: %v", err)
	}
	if scores.NeutralRowValid {
		t.Fatalf("expected a saturated bottom row to fail the neutral-row check")
	}
}

func TestValidateGrayscalePanelAcceptsNeutralRamp(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	cellHeight := CanvasHeight / gridRows
	for r := 0; r < gridRows; r++ {
		gray := uint8(220 - r*40) // descending luminance, within the 2.0 slack
		for y := r * cellHeight; y < (r+1)*cellHeight; y++ {
			for x := 0; x < CanvasWidth; x++ {
				img.Set(x, y, color.RGBA{R: gray, G: gray, B: gray, A: 255})
			}
		}
	}

	quad := geometry.Quad{
		{X: 0, Y: 0}, {X: CanvasWidth, Y: 0}, {X: CanvasWidth, Y: CanvasHeight}, {X: 0, Y: CanvasHeight},
	}

	ok, err := NewDefault().ValidateGrayscalePanel(img, quad)
	if err != nil {
		t.Fatalf("ValidateGrayscalePanel error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a descending neutral-gray ramp to validate as a grayscale panel")
	}
}

func TestValidateGrayscalePanelRejectsColorfulPanel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	for y := 0; y < CanvasHeight; y++ {
		for x := 0; x < CanvasWidth; x++ {
			img.Set(x, y, color.RGBA{R: 220, G: 20, B: 20, A: 255})
		}
	}
	quad := geometry.Quad{
		{X: 0, Y: 0}, {X: CanvasWidth, Y: 0}, {X: CanvasWidth, Y: CanvasHeight}, {X: 0, Y: CanvasHeight},
	}

	ok, err := NewDefault().ValidateGrayscalePanel(img, quad)
	if err != nil {
		t.Fatalf("ValidateGrayscalePanel error: %v", err)
	}
	if ok {
		t.Fatalf("expected a saturated red panel to fail grayscale validation")
	}
}

func TestWarpToCanvasRejectsDegenerateQuad(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	degenerate := geometry.Quad{
		{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0},
	}
	if _, err := warpToCanvas(img, degenerate, CanvasWidth, CanvasHeight); err == nil {
		t.Fatalf("expected an error warping a degenerate quad")
	}
}

func TestLerpIsLinear(t *testing.T) {
	if got := lerp(0, 10, 0.5); math.Abs(got-5) > 1e-9 {
		t.Fatalf("lerp(0,10,0.5) = %v, want 5", got)
	}
}
