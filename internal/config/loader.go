package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the base name for configuration files (without extension).
	ConfigFileName = "colorchecker"

	// EnvPrefix is the prefix for environment variables.
	EnvPrefix = "COLORCHECKER"
)

// Loader handles loading configuration from environment variables, a
// configuration file, and compiled-in defaults, in that order of
// precedence.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader backed by the global
// viper instance, so command-line flag bindings set up elsewhere keep
// working.
func NewLoader() *Loader {
	return &Loader{v: viper.GetViper()}
}

// Load reads colorchecker.yaml (if present) and environment variables,
// falling back to Default(), and validates the result.
func (l *Loader) Load() (Config, error) {
	l.v.SetConfigName(ConfigFileName)
	l.v.SetConfigType("yaml")

	l.addConfigPaths()
	l.setupEnvironmentVariables()
	l.setDefaults()

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshaling: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadWithFile loads configuration from a specific file path, falling
// back to Load if path is empty.
func (l *Loader) LoadWithFile(path string) (Config, error) {
	if path == "" {
		return l.Load()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config: file does not exist: %s", path)
	}

	l.v.SetConfigFile(path)
	l.setupEnvironmentVariables()
	l.setDefaults()

	if err := l.v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("config: reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshaling: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (l *Loader) addConfigPaths() {
	l.v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		l.v.AddConfigPath(home)
		l.v.AddConfigPath(filepath.Join(home, ".config", "colorchecker"))
	}
	l.v.AddConfigPath("/etc/colorchecker")
	if configDir, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		l.v.AddConfigPath(filepath.Join(configDir, "colorchecker"))
	}
}

func (l *Loader) setupEnvironmentVariables() {
	l.v.SetEnvPrefix(EnvPrefix)
	l.v.AutomaticEnv()
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
}

func (l *Loader) setDefaults() {
	d := Default()
	l.v.SetDefault("expected_aspect", d.ExpectedAspect)
	l.v.SetDefault("blur_reference", d.BlurReference)
	l.v.SetDefault("pass_average_delta_e", d.PassAverageDeltaE)
	l.v.SetDefault("pass_max_delta_e", d.PassMaxDeltaE)
	l.v.SetDefault("not_found_delta_e_guard_factor", d.NotFoundDeltaEGuardFactor)
	l.v.SetDefault("confidence_threshold", d.ConfidenceThreshold)
	l.v.SetDefault("dedup_threshold", d.DedupThreshold)
	l.v.SetDefault("warp_canvas_width", d.WarpCanvasWidth)
	l.v.SetDefault("warp_canvas_height", d.WarpCanvasHeight)
	l.v.SetDefault("grayscale_mean_chroma_limit", d.GrayscaleMeanChromaLimit)
	l.v.SetDefault("grayscale_max_chroma_limit", d.GrayscaleMaxChromaLimit)
	l.v.SetDefault("luminance_descent_slack", d.LuminanceDescentSlack)
	l.v.SetDefault("area_boost_factor", d.AreaBoostFactor)
	l.v.SetDefault("blur_failure_threshold", d.BlurFailureThreshold)
	l.v.SetDefault("area_failure_threshold", d.AreaFailureThreshold)
	l.v.SetDefault("contrast_failure_threshold", d.ContrastFailureThreshold)
}
