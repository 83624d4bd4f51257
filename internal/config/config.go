package config

import "fmt"

// Config holds every named threshold the pipeline's components
// consult. All fields are compile-time constants in the specification
// but are exposed here so tests and deployments can override them.
type Config struct {
	ExpectedAspect float64 `mapstructure:"expected_aspect" yaml:"expected_aspect" json:"expected_aspect"`
	BlurReference  float64 `mapstructure:"blur_reference" yaml:"blur_reference" json:"blur_reference"`

	PassAverageDeltaE float64 `mapstructure:"pass_average_delta_e" yaml:"pass_average_delta_e" json:"pass_average_delta_e"`
	PassMaxDeltaE     float64 `mapstructure:"pass_max_delta_e" yaml:"pass_max_delta_e" json:"pass_max_delta_e"`
	NotFoundDeltaEGuardFactor float64 `mapstructure:"not_found_delta_e_guard_factor" yaml:"not_found_delta_e_guard_factor" json:"not_found_delta_e_guard_factor"`

	ConfidenceThreshold float64 `mapstructure:"confidence_threshold" yaml:"confidence_threshold" json:"confidence_threshold"`
	DedupThreshold      float64 `mapstructure:"dedup_threshold" yaml:"dedup_threshold" json:"dedup_threshold"`

	WarpCanvasWidth  int `mapstructure:"warp_canvas_width" yaml:"warp_canvas_width" json:"warp_canvas_width"`
	WarpCanvasHeight int `mapstructure:"warp_canvas_height" yaml:"warp_canvas_height" json:"warp_canvas_height"`

	GrayscaleMeanChromaLimit float64 `mapstructure:"grayscale_mean_chroma_limit" yaml:"grayscale_mean_chroma_limit" json:"grayscale_mean_chroma_limit"`
	GrayscaleMaxChromaLimit  float64 `mapstructure:"grayscale_max_chroma_limit" yaml:"grayscale_max_chroma_limit" json:"grayscale_max_chroma_limit"`
	LuminanceDescentSlack    float64 `mapstructure:"luminance_descent_slack" yaml:"luminance_descent_slack" json:"luminance_descent_slack"`

	AreaBoostFactor float64 `mapstructure:"area_boost_factor" yaml:"area_boost_factor" json:"area_boost_factor"`

	BlurFailureThreshold     float64 `mapstructure:"blur_failure_threshold" yaml:"blur_failure_threshold" json:"blur_failure_threshold"`
	AreaFailureThreshold     float64 `mapstructure:"area_failure_threshold" yaml:"area_failure_threshold" json:"area_failure_threshold"`
	ContrastFailureThreshold float64 `mapstructure:"contrast_failure_threshold" yaml:"contrast_failure_threshold" json:"contrast_failure_threshold"`
}

// Default returns the specification's compiled-in constants.
func Default() Config {
	return Config{
		ExpectedAspect: 1.5,
		BlurReference:  120.0,

		PassAverageDeltaE:         24.0,
		PassMaxDeltaE:             40.0,
		NotFoundDeltaEGuardFactor: 1.3,

		ConfidenceThreshold: 0.70,
		DedupThreshold:      40.0,

		WarpCanvasWidth:  600,
		WarpCanvasHeight: 400,

		GrayscaleMeanChromaLimit: 55.0,
		GrayscaleMaxChromaLimit:  90.0,
		LuminanceDescentSlack:    2.0,

		AreaBoostFactor: 8.0,

		BlurFailureThreshold:     0.15,
		AreaFailureThreshold:     0.005,
		ContrastFailureThreshold: 0.08,
	}
}

// NotFoundDeltaEGuard is the ΔE above which a "passing" geometric
// detection is still reclassified as NotFound.
func (c Config) NotFoundDeltaEGuard() float64 {
	return c.PassAverageDeltaE * c.NotFoundDeltaEGuardFactor
}

// Validate reports whether c's thresholds are sane enough to run the
// pipeline with.
func (c Config) Validate() error {
	if c.ExpectedAspect <= 0 {
		return fmt.Errorf("config: expected_aspect must be positive, got %v", c.ExpectedAspect)
	}
	if c.WarpCanvasWidth <= 0 || c.WarpCanvasHeight <= 0 {
		return fmt.Errorf("config: warp canvas dimensions must be positive, got %dx%d", c.WarpCanvasWidth, c.WarpCanvasHeight)
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("config: confidence_threshold must be in [0,1], got %v", c.ConfidenceThreshold)
	}
	if c.DedupThreshold < 0 {
		return fmt.Errorf("config: dedup_threshold must be nonnegative, got %v", c.DedupThreshold)
	}
	return nil
}
