package scorer

import (
	"github.com/colorchecker/verifier-core/internal/config"
	"github.com/colorchecker/verifier-core/internal/geometry"
	"github.com/colorchecker/verifier-core/internal/patch"
	"github.com/colorchecker/verifier-core/internal/result"
)

// Input bundles everything the Scorer needs to produce a
// DetectionOutput for one detect call's primary detection.
type Input struct {
	FrameWidth, FrameHeight int
	RotationDegrees         int

	PrimaryBBox geometry.BoundingBox
	LapVar      float64
	Contrast    float64

	PatchScores patch.Scores

	OrderedPrimary   geometry.Quad
	OrderedSecondary geometry.Quad
	HasSecondary     bool
	SecondaryValid   bool
}

// Scorer blends geometric and photometric metrics into a confidence
// value and classifies the result's failure reason. Swapped for a
// fake in orchestrator tests.
type Scorer interface {
	Score(in Input) result.DetectionOutput
}

// Default is the production Scorer.
type Default struct {
	Config config.Config
}

// NewDefault builds a Default scorer using config.Default().
func NewDefault() Default {
	return Default{Config: config.Default()}
}

// Score implements Scorer.
func (d Default) Score(in Input) result.DetectionOutput {
	cfg := d.Config
	if cfg == (config.Config{}) {
		cfg = config.Default()
	}

	frameArea := float64(in.FrameWidth) * float64(in.FrameHeight)
	var areaScore float64
	if frameArea > 0 {
		areaScore = (in.PrimaryBBox.Width * in.PrimaryBBox.Height) / frameArea
	}

	aspect := in.PrimaryBBox.Width / maxFloat(in.PrimaryBBox.Height, 1)
	aspectScore := clamp01(1 - absFloat(aspect-cfg.ExpectedAspect)/cfg.ExpectedAspect)

	contrastScore := clamp01(in.Contrast)
	blurScore := clamp01(in.LapVar / cfg.BlurReference)

	avgColorSub := clamp01(1 - in.PatchScores.AvgDeltaE/cfg.PassAverageDeltaE)
	maxColorSub := clamp01(1 - in.PatchScores.MaxDeltaE/cfg.PassMaxDeltaE)
	colorScore := clamp01(0.7*avgColorSub + 0.3*maxColorSub)

	boostedArea := clamp01(areaScore * cfg.AreaBoostFactor)

	confidence := 0.7*boostedArea + 0.1*aspectScore + 0.05*contrastScore + 0.05*blurScore + 0.1*colorScore

	failure := classifyFailure(cfg, blurScore, areaScore, contrastScore, in.PatchScores.AvgDeltaE)
	needsInput := failure == result.FailureNotFound

	avgDeltaE := in.PatchScores.AvgDeltaE
	maxDeltaE := in.PatchScores.MaxDeltaE

	metrics := &result.Metrics{
		AreaScore:       areaScore,
		AspectScore:     aspectScore,
		ContrastScore:   contrastScore,
		BlurScore:       blurScore,
		ColorScore:      colorScore,
		AvgDeltaE:       &avgDeltaE,
		MaxDeltaE:       &maxDeltaE,
		PrimaryQuad:     in.OrderedPrimary.Slice(),
		SecondaryValid:  in.SecondaryValid,
		FrameWidth:      int32(in.FrameWidth),
		FrameHeight:     int32(in.FrameHeight),
		RotationDegrees: int32(in.RotationDegrees),
	}
	if in.HasSecondary {
		metrics.SecondaryQuad = in.OrderedSecondary.Slice()
	} else {
		metrics.SecondaryQuad = []geometry.Point{}
	}

	return result.DetectionOutput{
		Confidence: float32(confidence),
		Failure:    failure,
		NeedsInput: needsInput,
		Metrics:    metrics,
	}
}

// classifyFailure evaluates the failure taxonomy in the
// specification's fixed order: Blur, Partial, Lighting, NotFound, then
// none. The first matching rule wins.
func classifyFailure(cfg config.Config, blurScore, areaScore, contrastScore, avgDeltaE float64) result.Failure {
	switch {
	case blurScore < cfg.BlurFailureThreshold:
		return result.FailureBlur
	case areaScore < cfg.AreaFailureThreshold:
		return result.FailurePartial
	case contrastScore < cfg.ContrastFailureThreshold:
		return result.FailureLighting
	case avgDeltaE > cfg.NotFoundDeltaEGuard():
		return result.FailureNotFound
	default:
		return result.FailureNone
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func maxFloat(v, floor float64) float64 {
	if v < floor {
		return floor
	}
	return v
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
