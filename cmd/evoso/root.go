package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sgklab/evoso/internal/config"
	"github.com/sgklab/evoso/internal/logging"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "evoso",
	Short: "Evolutionary optimization for numeric objectives and interactive sound search",
	Long: `evoso drives a generate/evaluate/select loop over two kinds of problems:
a closed-form numeric objective optimized by differential evolution, and a
human-judged sound search where a listener picks between candidate
waveforms generation by generation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		lcfg := &logging.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Output: cfg.Logging.Output,
		}
		if cmd.Flags().Changed("log-level") {
			lcfg.Level = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			lcfg.Format = logFormat
		}

		logger, err = logging.NewLogger(lcfg)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "Log format (json, console)")
}

// flagOrInt returns the flag value when set, otherwise the env-derived
// default.
func flagOrInt(cmd *cobra.Command, name string, flagVal, envVal int) int {
	if cmd.Flags().Changed(name) {
		return flagVal
	}
	return envVal
}

func flagOrInt64(cmd *cobra.Command, name string, flagVal, envVal int64) int64 {
	if cmd.Flags().Changed(name) {
		return flagVal
	}
	return envVal
}

func flagOrFloat(cmd *cobra.Command, name string, flagVal, envVal float64) float64 {
	if cmd.Flags().Changed(name) {
		return flagVal
	}
	return envVal
}

func flagOrString(cmd *cobra.Command, name, flagVal, envVal string) string {
	if cmd.Flags().Changed(name) {
		return flagVal
	}
	return envVal
}
