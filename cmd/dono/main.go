package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	endpoint   string
	timeout    time.Duration

	// Logger
	logger = zap.NewNop()
)

// rootCmd renders the contribution calendar of a user
var rootCmd = &cobra.Command{
	Use:   "dono USER_NAME",
	Short: "Show the GitHub contributions of a user in the terminal",
	Long: `dono fetches the contribution calendar of the last year from the GitHub
GraphQL API and prints it as a colored heatmap.

The GitHub token, colors, glyphs and the first day of the week are read from
dono.toml in the user config directory. The file is created on first run.`,
	Version:       "0.2.0",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runShow,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <user config dir>/dono/dono.toml)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "GitHub GraphQL endpoint (default: https://api.github.com/graphql)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout for fetching contributions")

	initShowFlags()
	initExportFlags()
	initSetTokenFlags()

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(setTokenCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
