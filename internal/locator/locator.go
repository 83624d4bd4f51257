package locator

import (
	"image"

	"github.com/colorchecker/verifier-core/internal/config"
	"github.com/colorchecker/verifier-core/internal/geometry"
)

// Locator finds chart-shaped quadrilaterals in a BGR image. LocateAll
// returns zero or more deduplicated candidate quads in full-image
// coordinates, ordered however the implementation naturally produces
// them (the orchestrator re-sorts by area).
type Locator interface {
	LocateAll(bgr image.Image) ([]geometry.Quad, error)
}

// Config controls the edge/contour detector thresholds and the
// deduplication distance.
type Config struct {
	// EdgeGradientThreshold is the minimum per-axis grayscale gradient
	// magnitude for a pixel to be marked as an edge.
	EdgeGradientThreshold float64
	// MinContourSize discards flood-filled contours smaller than this
	// many pixels as noise.
	MinContourSize int
	// MinArea discards candidate rectangles smaller than this area, in
	// pixels, to filter sensor noise.
	MinArea int
	// RectangularityTolerance is the minimum rectangularity score (§
	// internal scoring, 0..1) a contour's bounding box must reach to be
	// kept as a candidate quad.
	RectangularityTolerance float64
	// DedupDistance is the average-corner-distance threshold (pixels,
	// strict less-than) below which two quads are treated as the same
	// detection.
	DedupDistance float64
}

// DefaultConfig mirrors the thresholds named in the external
// interfaces section: a dedup distance of 40.0 pixels, and detector
// thresholds tuned for a printed 24-patch chart under typical camera
// exposure.
func DefaultConfig() Config {
	return Config{
		EdgeGradientThreshold:  30.0,
		MinContourSize:         10,
		MinArea:                400,
		RectangularityTolerance: 0.75,
		DedupDistance:          40.0,
	}
}

// Default is the production Locator. It runs the two-stage
// full-image/split-ROI strategy described by the detector contract:
// a Stage-1 full-image pass, an early exit if that pass already found
// two or more quads, and otherwise a Stage-2 pass over the left and
// right halves of the image with results translated back into
// full-image coordinates.
type Default struct {
	Config Config
}

// NewDefault builds a Default locator with the standard configuration.
func NewDefault() Default {
	return Default{Config: DefaultConfig()}
}

// NewDefaultWithConfig builds a Default locator whose dedup distance
// comes from the shared configuration's DedupThreshold, so a
// colorchecker.yaml/env override reaches the locator instead of being
// shadowed by DefaultConfig's hardcoded value.
func NewDefaultWithConfig(cfg config.Config) Default {
	c := DefaultConfig()
	c.DedupDistance = cfg.DedupThreshold
	return Default{Config: c}
}

// LocateAll implements Locator.
func (d Default) LocateAll(bgr image.Image) ([]geometry.Quad, error) {
	cfg := d.Config
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}

	stage1 := detectQuads(bgr, cfg)
	if len(stage1) >= 2 {
		return dedupQuads(stage1, cfg.DedupDistance), nil
	}

	bounds := bgr.Bounds()
	w := bounds.Dx()
	halfW := w / 2

	left := subImage(bgr, image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+halfW, bounds.Max.Y))
	right := subImage(bgr, image.Rect(bounds.Min.X+halfW, bounds.Min.Y, bounds.Max.X, bounds.Max.Y))

	leftQuads := translateQuads(detectQuads(left, cfg), 0, 0)
	rightQuads := translateQuads(detectQuads(right, cfg), float64(halfW), 0)

	all := append(append(stage1, leftQuads...), rightQuads...)
	return dedupQuads(all, cfg.DedupDistance), nil
}

// subImage extracts a rectangular window as a standalone image so the
// split-stage detector sees local (0,0)-relative coordinates, matching
// how the detector contract describes ROI translation.
func subImage(img image.Image, r image.Rectangle) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Set(x-r.Min.X, y-r.Min.Y, img.At(x, y))
		}
	}
	return dst
}

func translateQuads(quads []geometry.Quad, dx, dy float64) []geometry.Quad {
	out := make([]geometry.Quad, len(quads))
	for i, q := range quads {
		out[i] = q.Translate(dx, dy)
	}
	return out
}
