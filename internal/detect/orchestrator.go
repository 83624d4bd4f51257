package detect

import (
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/colorchecker/verifier-core/internal/config"
	"github.com/colorchecker/verifier-core/internal/frame"
	"github.com/colorchecker/verifier-core/internal/geometry"
	"github.com/colorchecker/verifier-core/internal/locator"
	"github.com/colorchecker/verifier-core/internal/logging"
	"github.com/colorchecker/verifier-core/internal/patch"
	"github.com/colorchecker/verifier-core/internal/quality"
	"github.com/colorchecker/verifier-core/internal/result"
	"github.com/colorchecker/verifier-core/internal/scorer"
	"github.com/colorchecker/verifier-core/internal/telemetry"
)

// Orchestrator sequences Locator, QualityAnalyzer, PatchAnalyzer, and
// Scorer into the full detect pipeline described by the component
// design: validate, derive buffers, locate candidate quads, score the
// primary (and validate any secondary as a grayscale panel), then
// blend into a DetectionOutput.
type Orchestrator struct {
	Locator   locator.Locator
	Quality   quality.Analyzer
	Patch     patch.Analyzer
	Scorer    scorer.Scorer
	Logger    logging.Logger
	Telemetry *telemetry.Collector
	Config    config.Config
}

// New builds an Orchestrator wired with every production
// implementation, using compiled-in defaults.
func New() *Orchestrator {
	return NewWithConfig(config.Default())
}

// NewWithConfig builds an Orchestrator wired with every production
// implementation against an explicit configuration, e.g. one loaded
// from colorchecker.yaml by a CLI or server entrypoint. Its metrics
// are recorded but registered with no registry; use
// NewWithConfigAndRegisterer to register them against one.
func NewWithConfig(cfg config.Config) *Orchestrator {
	return NewWithConfigAndRegisterer(cfg, nil)
}

// NewWithConfigAndRegisterer builds an Orchestrator like NewWithConfig
// but registers its metrics against reg. A nil reg leaves the metrics
// unregistered, so any number of such Orchestrators can coexist in one
// process. Registering two Orchestrators against the same non-nil reg
// panics with "duplicate metrics collector registration".
func NewWithConfigAndRegisterer(cfg config.Config, reg prometheus.Registerer) *Orchestrator {
	return &Orchestrator{
		Locator:   locator.NewDefaultWithConfig(cfg),
		Quality:   quality.Default{},
		Patch:     patch.NewDefaultWithConfig(cfg),
		Scorer:    scorer.Default{Config: cfg},
		Logger:    logging.NewSlogLogger(0),
		Telemetry: telemetry.NewCollector(reg),
		Config:    cfg,
	}
}

// Detect runs the full pipeline on one frame. Any unexpected fault
// during processing is caught and mapped to a NotFound result with
// needs_input=true, matching the error policy in the component
// design; the frame's derived buffers are always released before
// Detect returns.
func (o *Orchestrator) Detect(f frame.Frame) (out result.DetectionOutput) {
	start := time.Now()
	defer func() {
		o.Telemetry.Observe(time.Since(start), out)
	}()

	defer func() {
		if r := recover(); r != nil {
			o.Logger.Error("detect: unexpected fault", "panic", r)
			out = result.NotFound(true)
		}
	}()

	if err := f.Validate(); err != nil {
		o.Logger.Warn("detect: invalid frame", "error", err)
		return result.NotFound(true)
	}

	buffers, err := frame.NewBuffers(f)
	if err != nil {
		o.Logger.Warn("detect: failed to derive buffers", "error", err)
		return result.NotFound(true)
	}
	defer buffers.Release()

	lapVar := o.Quality.LaplacianVariance(buffers.Gray)
	contrast := o.Quality.Contrast(buffers.Gray)

	quads, err := o.Locator.LocateAll(buffers.BGR)
	if err != nil {
		o.Logger.Warn("detect: locator error", "error", err)
		return result.NotFound(true)
	}
	if len(quads) == 0 {
		return result.DetectionOutput{Confidence: 0, Failure: result.FailureNotFound, NeedsInput: false, Metrics: nil}
	}

	sort.SliceStable(quads, func(i, j int) bool {
		ai := geometry.BoundsOf(quads[i])
		aj := geometry.BoundsOf(quads[j])
		return ai.Width*ai.Height > aj.Width*aj.Height
	})

	primary := quads[0]
	orderedPrimary, err := geometry.OrderCorners(primary.Slice())
	if err != nil {
		o.Logger.Warn("detect: failed to order primary corners", "error", err)
		return result.NotFound(true)
	}

	patchScores, err := o.Patch.ScorePatches(buffers.BGR, orderedPrimary)
	if err != nil {
		o.Logger.Warn("detect: failed to score patches", "error", err)
		return result.NotFound(true)
	}
	if !patchScores.NeutralRowValid {
		o.Logger.Warn("detect: primary chart's bottom neutral row measured outside the expected chroma range")
	}

	primaryBBox := geometry.BoundsOf(orderedPrimary)

	var orderedSecondary geometry.Quad
	var secondaryValid, hasSecondary bool
	if len(quads) > 1 {
		hasSecondary = true
		secondary := quads[1]
		orderedSecondary, err = geometry.OrderCorners(secondary.Slice())
		if err != nil {
			o.Logger.Warn("detect: failed to order secondary corners", "error", err)
			orderedSecondary = geometry.Quad{}
			hasSecondary = false
		} else {
			secondaryValid, err = o.Patch.ValidateGrayscalePanel(buffers.BGR, orderedSecondary)
			if err != nil {
				o.Logger.Warn("detect: failed to validate secondary panel", "error", err)
				secondaryValid = false
			}
		}
	}

	return o.Scorer.Score(scorer.Input{
		FrameWidth:       f.Width,
		FrameHeight:      f.Height,
		RotationDegrees:  f.RotationDegrees,
		PrimaryBBox:      primaryBBox,
		LapVar:           lapVar,
		Contrast:         contrast,
		PatchScores:      patchScores,
		OrderedPrimary:   orderedPrimary,
		OrderedSecondary: orderedSecondary,
		HasSecondary:     hasSecondary,
		SecondaryValid:   secondaryValid,
	})
}
