// Package config holds the tunable thresholds that drive locator,
// patch, and scorer behavior, loadable from a colorchecker.yaml file,
// COLORCHECKER_* environment variables, or compiled-in defaults, via
// github.com/spf13/viper.
package config
