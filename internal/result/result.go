package result

import "github.com/colorchecker/verifier-core/internal/geometry"

// Failure is the categorical reason a detection did not pass, or
// FailureNone when it did.
type Failure string

const (
	FailureNone     Failure = "NONE"
	FailureNotFound Failure = "NOT_FOUND"
	FailureLighting Failure = "LIGHTING"
	FailureBlur     Failure = "BLUR"
	FailurePartial  Failure = "PARTIAL"
)

// Metrics carries every per-call diagnostic value. A nil *Metrics on
// DetectionOutput means no chart was found at all.
type Metrics struct {
	AreaScore     float64 `json:"area_score"`
	AspectScore   float64 `json:"aspect_score"`
	ContrastScore float64 `json:"contrast_score"`
	BlurScore     float64 `json:"blur_score"`
	ColorScore    float64 `json:"color_score"`

	AvgDeltaE *float64 `json:"avg_delta_e"`
	MaxDeltaE *float64 `json:"max_delta_e"`

	PrimaryQuad   []geometry.Point `json:"primary_quad"`
	SecondaryQuad []geometry.Point `json:"secondary_quad"`
	SecondaryValid bool            `json:"secondary_valid"`

	FrameWidth       int32 `json:"frame_width"`
	FrameHeight      int32 `json:"frame_height"`
	RotationDegrees  int32 `json:"rotation_degrees"`
}

// DetectionOutput is the full result of one detect call.
type DetectionOutput struct {
	Confidence  float32  `json:"confidence"`
	Failure     Failure  `json:"failure_reason"`
	NeedsInput  bool     `json:"needs_input"`
	Metrics     *Metrics `json:"metrics"`
}

// NotFound builds the canonical "nothing to see here" output, used for
// invalid frames and zero-quad detections, which differ only in
// needs_input.
func NotFound(needsInput bool) DetectionOutput {
	return DetectionOutput{
		Confidence: 0,
		Failure:    FailureNotFound,
		NeedsInput: needsInput,
		Metrics:    nil,
	}
}
