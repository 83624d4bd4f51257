package detect

import (
	"errors"
	"image"
	"testing"

	"github.com/colorchecker/verifier-core/internal/config"
	"github.com/colorchecker/verifier-core/internal/frame"
	"github.com/colorchecker/verifier-core/internal/geometry"
	"github.com/colorchecker/verifier-core/internal/logging"
	"github.com/colorchecker/verifier-core/internal/patch"
	"github.com/colorchecker/verifier-core/internal/quality"
	"github.com/colorchecker/verifier-core/internal/result"
	"github.com/colorchecker/verifier-core/internal/scorer"
)

type fakeLocator struct {
	quads []geometry.Quad
	err   error
}

func (f fakeLocator) LocateAll(image.Image) ([]geometry.Quad, error) { return f.quads, f.err }

type fakeQuality struct {
	contrast, lapVar float64
}

func (f fakeQuality) Contrast(*image.Gray) float64          { return f.contrast }
func (f fakeQuality) LaplacianVariance(*image.Gray) float64 { return f.lapVar }

type fakePatch struct {
	scores       patch.Scores
	grayscaleOK  bool
	scoreErr     error
	grayscaleErr error
}

func (f fakePatch) ScorePatches(image.Image, geometry.Quad) (patch.Scores, error) {
	return f.scores, f.scoreErr
}
func (f fakePatch) ValidateGrayscalePanel(image.Image, geometry.Quad) (bool, error) {
	return f.grayscaleOK, f.grayscaleErr
}

func solidFrame(w, h int) frame.Frame {
	pixels := make([]byte, w*h*4)
	for i := range pixels {
		pixels[i] = 128
	}
	return frame.Frame{Width: w, Height: h, Pixels: pixels}
}

func square(x0, y0, size float64) geometry.Quad {
	return geometry.Quad{
		{X: x0, Y: y0}, {X: x0 + size, Y: y0}, {X: x0 + size, Y: y0 + size}, {X: x0, Y: y0 + size},
	}
}

func newTestOrchestrator(loc fakeLocator, q fakeQuality, p fakePatch) *Orchestrator {
	cfg := config.Default()
	return &Orchestrator{
		Locator: loc,
		Quality: q,
		Patch:   p,
		Scorer:  scorer.Default{Config: cfg},
		Logger:  logging.NewRecording(),
		Config:  cfg,
	}
}

func TestDetectInvalidFrameReturnsNotFoundWithNeedsInput(t *testing.T) {
	o := newTestOrchestrator(fakeLocator{}, fakeQuality{}, fakePatch{})
	out := o.Detect(frame.Frame{Width: 0, Height: 0})

	if out.Failure != result.FailureNotFound || !out.NeedsInput || out.Confidence != 0 || out.Metrics != nil {
		t.Fatalf("invalid frame: got %+v, want NotFound/needs_input=true/confidence=0/metrics=nil", out)
	}
}

func TestDetectZeroQuadsReturnsNotFoundWithoutNeedsInput(t *testing.T) {
	o := newTestOrchestrator(fakeLocator{quads: nil}, fakeQuality{}, fakePatch{})
	out := o.Detect(solidFrame(100, 100))

	if out.Failure != result.FailureNotFound || out.NeedsInput || out.Confidence != 0 || out.Metrics != nil {
		t.Fatalf("zero quads: got %+v, want NotFound/needs_input=false/confidence=0/metrics=nil", out)
	}
}

func TestDetectLocatorErrorMapsToNotFoundNeedsInput(t *testing.T) {
	o := newTestOrchestrator(fakeLocator{err: errors.New("boom")}, fakeQuality{}, fakePatch{})
	out := o.Detect(solidFrame(100, 100))

	if out.Failure != result.FailureNotFound || !out.NeedsInput {
		t.Fatalf("locator error: got %+v, want NotFound/needs_input=true", out)
	}
}

func TestDetectCleanPrimaryOnlyPasses(t *testing.T) {
	quad := square(10, 10, 300)
	loc := fakeLocator{quads: []geometry.Quad{quad}}
	q := fakeQuality{contrast: 1.0, lapVar: config.Default().BlurReference}
	p := fakePatch{scores: patch.Scores{AvgDeltaE: 0, MaxDeltaE: 0}}

	o := newTestOrchestrator(loc, q, p)
	out := o.Detect(solidFrame(500, 500))

	if out.Failure != result.FailureNone {
		t.Fatalf("expected no failure, got %v", out.Failure)
	}
	if out.Metrics == nil || out.Metrics.SecondaryValid {
		t.Fatalf("expected metrics with secondary_valid=false (no secondary quad), got %+v", out.Metrics)
	}
}

func TestDetectWithSecondaryValidatesGrayscalePanel(t *testing.T) {
	primary := square(10, 10, 300)
	secondary := square(400, 10, 50)
	loc := fakeLocator{quads: []geometry.Quad{primary, secondary}}
	q := fakeQuality{contrast: 1.0, lapVar: config.Default().BlurReference}
	p := fakePatch{scores: patch.Scores{AvgDeltaE: 0, MaxDeltaE: 0}, grayscaleOK: true}

	o := newTestOrchestrator(loc, q, p)
	out := o.Detect(solidFrame(600, 500))

	if out.Metrics == nil || !out.Metrics.SecondaryValid {
		t.Fatalf("expected secondary_valid=true, got %+v", out.Metrics)
	}
	if len(out.Metrics.SecondaryQuad) != 4 {
		t.Fatalf("expected 4 secondary corners, got %d", len(out.Metrics.SecondaryQuad))
	}
}

func TestDetectPatchAnalyzerErrorMapsToNotFoundNeedsInput(t *testing.T) {
	quad := square(10, 10, 300)
	loc := fakeLocator{quads: []geometry.Quad{quad}}
	p := fakePatch{scoreErr: errors.New("warp failed")}

	o := newTestOrchestrator(loc, fakeQuality{}, p)
	out := o.Detect(solidFrame(500, 500))

	if out.Failure != result.FailureNotFound || !out.NeedsInput {
		t.Fatalf("patch analyzer error: got %+v, want NotFound/needs_input=true", out)
	}
}

func TestDetectIsDeterministicAcrossRepeatedCalls(t *testing.T) {
	quad := square(10, 10, 300)
	loc := fakeLocator{quads: []geometry.Quad{quad}}
	q := fakeQuality{contrast: 0.8, lapVar: 90}
	p := fakePatch{scores: patch.Scores{AvgDeltaE: 5, MaxDeltaE: 10}}

	o := newTestOrchestrator(loc, q, p)
	f := solidFrame(500, 500)

	out1 := o.Detect(f)
	out2 := o.Detect(f)

	if out1.Confidence != out2.Confidence || out1.Failure != out2.Failure || out1.NeedsInput != out2.NeedsInput {
		t.Fatalf("Detect is not deterministic: %+v vs %+v", out1, out2)
	}
}

var _ quality.Analyzer = fakeQuality{}
var _ patch.Analyzer = fakePatch{}
