package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/jaskcal/internal/config"
	"github.com/jask/jaskcal/internal/ics"
	"github.com/jask/jaskcal/internal/provider"
	"github.com/jask/jaskcal/internal/schedule"
	"github.com/jask/jaskcal/internal/tui"
)

type flags struct {
	config string
	ics    string
	debug  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "jaskcal",
		Short:         "Terminal calendar with day, week and month views",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), f)
		},
	}
	cmd.PersistentFlags().StringVar(&f.config, "config", "", "config file (default ~/.config/jaskcal/config.toml)")
	cmd.Flags().StringVar(&f.ics, "ics", "", "iCalendar file path or URL to load on start")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "write a debug log to the configured log file")
	cmd.AddCommand(newConfigCmd(&f))
	return cmd
}

func run(ctx context.Context, f flags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := useConfigPath(f.config); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if f.ics != "" {
		cfg.Source.ICS = f.ics
	}

	closeLog, err := setupLogging(cfg.Log.File, f.debug)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := buildOptions(cfg)
	source := cfg.Source.ICS
	if source != "" {
		opts.Source = func(ctx context.Context) ([]schedule.Event, error) {
			return ics.Load(ctx, source)
		}
	}

	app := tui.New(ctx, provider.New(nil), opts)
	defer app.Close()

	slog.Info("starting", "views_desktop", opts.Views.Desktop, "views_mobile", opts.Views.Mobile, "source", source != "")
	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// useConfigPath points config.Load and config.Save at path when one is given.
func useConfigPath(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Setenv("JASKCAL_CONFIG", path); err != nil {
		return fmt.Errorf("set config path: %w", err)
	}
	return nil
}

// setupLogging routes slog to the log file while the TUI owns the terminal.
// Without --debug all records are discarded.
func setupLogging(path string, debug bool) (func(), error) {
	if !debug {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "jaskcal")
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() { _ = f.Close() }, nil
}
