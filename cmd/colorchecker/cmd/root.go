package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/colorchecker/verifier-core/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// configLoader is the global configuration loader.
	configLoader *config.Loader
	// globalConfig is the global configuration.
	globalConfig *config.Config
	// cfgFile is the configuration file path set via --config.
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "colorchecker",
	Short: "ColorChecker chart detection and scoring",
	Long: `colorchecker runs the Macbeth/ColorChecker 24-patch verification pipeline
against a still image: it locates the chart, rectifies it, scores each
patch against the reference table, and reports a confidence and
pass/fail classification.

Examples:
  colorchecker detect frame.png
  colorchecker detect frame.png --out text
  colorchecker detect frame.png --config ./colorchecker.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it. It is
// called by main.main and only needs to happen once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCommand returns the root command for testing purposes, so tests
// can exercise the CLI without calling os.Exit.
func GetRootCommand() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is search in ., $HOME, $HOME/.config/colorchecker, /etc/colorchecker)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (equivalent to --log-level=debug)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to bind verbose flag: %v\n", err)
	}
	if err := viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to bind log-level flag: %v\n", err)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if globalConfig == nil {
			initConfig()
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		logLevelFlag, _ := cmd.Flags().GetString("log-level")

		logLevel := slog.LevelInfo
		if verbose {
			logLevel = slog.LevelDebug
		} else {
			switch logLevelFlag {
			case "debug":
				logLevel = slog.LevelDebug
			case "warn":
				logLevel = slog.LevelWarn
			case "error":
				logLevel = slog.LevelError
			}
		}

		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
	}
}

// initConfig loads configuration from --config, the default search
// path, or compiled-in defaults, in that order, exiting the process on
// failure since every subcommand depends on a valid configuration.
func initConfig() {
	configLoader = config.NewLoader()

	var cfg config.Config
	var err error
	if cfgFile != "" {
		cfg, err = configLoader.LoadWithFile(cfgFile)
	} else {
		cfg, err = configLoader.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	globalConfig = &cfg
}

// GetConfig returns the global configuration, loading it first if
// necessary.
func GetConfig() *config.Config {
	if globalConfig == nil {
		initConfig()
	}
	return globalConfig
}
