package scorer

import (
	"testing"

	"github.com/colorchecker/verifier-core/internal/config"
	"github.com/colorchecker/verifier-core/internal/geometry"
	"github.com/colorchecker/verifier-core/internal/patch"
	"github.com/colorchecker/verifier-core/internal/result"
)

func baseInput(cfg config.Config) Input {
	return Input{
		FrameWidth:  1000,
		FrameHeight: 1000,
		PrimaryBBox: geometry.BoundingBox{Width: 500, Height: 333.33}, // aspect ~1.5, area 0.1666
		LapVar:      cfg.BlurReference,                                // blurScore = 1.0
		Contrast:    1.0,
		PatchScores: patch.Scores{AvgDeltaE: 0, MaxDeltaE: 0},
		OrderedPrimary: geometry.Quad{
			{X: 0, Y: 0}, {X: 500, Y: 0}, {X: 500, Y: 333.33}, {X: 0, Y: 333.33},
		},
	}
}

func TestScoreBlurExactlyAtThresholdIsNotBlurFailure(t *testing.T) {
	cfg := config.Default()
	in := baseInput(cfg)
	in.LapVar = cfg.BlurReference * cfg.BlurFailureThreshold // blurScore == 0.15 exactly

	out := Default{Config: cfg}.Score(in)
	if out.Failure == result.FailureBlur {
		t.Fatalf("blur_score exactly at threshold must NOT classify as Blur (strict <)")
	}
}

func TestScoreCleanDetectionClearsConfidenceThreshold(t *testing.T) {
	cfg := config.Default()
	in := baseInput(cfg)

	out := Default{Config: cfg}.Score(in)
	if out.Failure != result.FailureNone {
		t.Fatalf("expected no failure for a clean detection, got %v", out.Failure)
	}
	// A near-ideal geometric+photometric input should comfortably clear
	// the 0.70 confidence threshold.
	if out.Confidence < 0.70 {
		t.Fatalf("Confidence = %v, want >= 0.70", out.Confidence)
	}
}

func TestClassifyFailureOrderPrefersBlurOverOthers(t *testing.T) {
	cfg := config.Default()
	// Everything is bad, but blur should win since it's checked first.
	failure := classifyFailure(cfg, 0.01, 0.0001, 0.01, 100.0)
	if failure != result.FailureBlur {
		t.Fatalf("classifyFailure = %v, want Blur (first match wins)", failure)
	}
}

func TestClassifyFailurePartialBeatsLightingAndNotFound(t *testing.T) {
	cfg := config.Default()
	failure := classifyFailure(cfg, 1.0, 0.0001, 0.01, 100.0)
	if failure != result.FailurePartial {
		t.Fatalf("classifyFailure = %v, want Partial", failure)
	}
}

func TestClassifyFailureNotFoundWhenAvgDeltaEExceedsGuard(t *testing.T) {
	cfg := config.Default()
	failure := classifyFailure(cfg, 1.0, 1.0, 1.0, cfg.NotFoundDeltaEGuard()+0.001)
	if failure != result.FailureNotFound {
		t.Fatalf("classifyFailure = %v, want NotFound", failure)
	}
}

func TestClassifyFailureNoneWhenAllMetricsClean(t *testing.T) {
	cfg := config.Default()
	failure := classifyFailure(cfg, 1.0, 1.0, 1.0, 0.0)
	if failure != result.FailureNone {
		t.Fatalf("classifyFailure = %v, want none", failure)
	}
}
