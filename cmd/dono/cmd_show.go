package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/klabast/dono/internal/calendar"
	"github.com/klabast/dono/internal/config"
	"github.com/klabast/dono/internal/github"
	"github.com/klabast/dono/internal/render"
)

var (
	nativeColors bool
	weekStart    string
	colorMode    string
)

func initShowFlags() {
	rootCmd.Flags().BoolVar(&nativeColors, "native", false, "Use the colors supplied by GitHub (overrides native_colors)")
	rootCmd.Flags().StringVar(&weekStart, "week-start", "", "First day of the week (overrides week_start_day)")
	rootCmd.Flags().StringVar(&colorMode, "color", "auto", "When to use colors: auto, always or never")
}

// runShow fetches the calendar of args[0] and prints the heatmap
func runShow(cmd *cobra.Command, args []string) error {
	cfg, ok, err := loadConfig(cmd)
	if err != nil || !ok {
		return err
	}

	if cmd.Flags().Changed("native") {
		cfg.NativeColors = nativeColors
	}
	if weekStart != "" {
		cfg.WeekStartDay = weekStart
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	opts, err := cfg.RenderOptions()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	renderer, err := newRenderer(cmd.OutOrStdout(), colorMode)
	if err != nil {
		return err
	}

	cal, err := fetchCalendar(cfg, args[0])
	if err != nil {
		return err
	}
	if len(cal) == 0 {
		logger.Warn("Empty contribution calendar", zap.String("user", args[0]))
		fmt.Fprintf(cmd.ErrOrStderr(), "No contributions returned for %s\n", args[0])
		return nil
	}

	logger.Debug("Rendering calendar",
		zap.Int("days", len(cal)),
		zap.Stringer("policy", opts.Policy),
		zap.Stringer("week_start", opts.WeekStart))
	return renderer.Write(cal, opts)
}

// newRenderer picks the color profile for the --color flag
func newRenderer(w io.Writer, mode string) (*render.Renderer, error) {
	switch mode {
	case "always":
		return render.NewRendererWithProfile(w, termenv.TrueColor), nil
	case "never":
		return render.NewRendererWithProfile(w, termenv.Ascii), nil
	case "auto", "":
		return render.NewRendererWithProfile(w, termenv.NewOutput(w).EnvColorProfile()), nil
	default:
		return nil, fmt.Errorf("invalid --color %q: use auto, always or never", mode)
	}
}

// resolveConfigPath returns --config or the default location
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

// loadConfig loads the config file. ok is false when the file was just
// created and there is no token to continue with.
func loadConfig(cmd *cobra.Command) (cfg config.Config, ok bool, err error) {
	path, err := resolveConfigPath()
	if err != nil {
		return config.Config{}, false, err
	}

	cfg, err = config.Load(path)
	switch {
	case errors.Is(err, config.ErrConfigCreated):
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config file created at: %s\n", path)
		if cfg.GitHubUserToken == "" {
			fmt.Fprintln(out, "Please edit the file and add your GitHub personal access token,")
			fmt.Fprintln(out, "or run 'dono set-token'.")
			fmt.Fprintf(out, "Generate a personal access token at (%s).\n", config.TokenURL)
			return cfg, false, nil
		}
	case err != nil:
		return config.Config{}, false, err
	}

	logger.Debug("Configuration loaded",
		zap.String("path", path),
		zap.String("token", cfg.MaskedToken()),
		zap.Bool("native_colors", cfg.NativeColors))
	return cfg, true, nil
}

// fetchCalendar downloads the calendar of user, giving up after --timeout or on SIGINT
func fetchCalendar(cfg config.Config, user string) (calendar.Calendar, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	clientConfig := github.DefaultConfig(cfg.GitHubUserToken)
	clientConfig.Timeout = timeout
	clientConfig.Logger = logger
	if endpoint != "" {
		clientConfig.Endpoint = endpoint
	}

	logger.Debug("Fetching contributions", zap.String("user", user))
	cal, err := github.NewClientWithConfig(clientConfig).FetchCalendar(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contributions of %s: %w", user, err)
	}
	return cal, nil
}
