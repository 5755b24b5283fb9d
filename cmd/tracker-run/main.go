package main

// Command tracker-run replays the last saved launcher settings against the
// tracker executable without opening a window.

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ytget/tracker-launcher/internal/config"
	"github.com/ytget/tracker-launcher/internal/logger"
	"github.com/ytget/tracker-launcher/internal/model"
	"github.com/ytget/tracker-launcher/internal/platform"
	"github.com/ytget/tracker-launcher/internal/store"
	"github.com/ytget/tracker-launcher/internal/tracker"
)

// Exit codes besides the tracker's own
const (
	ExitUsage       = 2
	ExitInterrupted = 130
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes one tracker run and returns the process exit code
func run(args []string) int {
	flags := flag.NewFlagSet("tracker-run", flag.ContinueOnError)
	configPath := flags.String("config", config.ConfigPath(), "launcher config file")
	settingsPath := flags.String("settings", "", "settings file, overrides settings_path")
	trackerPath := flags.String("tracker", "", "tracker executable, overrides tracker_path")
	if err := flags.Parse(args); err != nil {
		return ExitUsage
	}

	cfg, err := config.LoadApp(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitUsage
	}
	if *settingsPath != "" {
		cfg.SettingsPath = *settingsPath
	}
	if *trackerPath != "" {
		cfg.TrackerPath = *trackerPath
	}

	log := logger.NewConsole(logger.ParseLevel(cfg.LogLevel))

	if !platform.FileExists(cfg.SettingsPath) {
		log.Error().Str("path", cfg.SettingsPath).Msg("no saved settings, run the launcher window first")
		return ExitUsage
	}

	settings, err := store.New(cfg.SettingsPath, logger.Component(log, "store")).Load()
	if err != nil {
		log.Error().Err(err).Str("path", cfg.SettingsPath).Msg("failed to load settings")
		return ExitUsage
	}
	if !settings.Complete() {
		names := []string{}
		for _, f := range settings.Missing() {
			names = append(names, f.Key())
		}
		log.Error().Err(model.ErrMissingFields).Strs("missing", names).Str("path", cfg.SettingsPath).Msg("settings incomplete")
		return ExitUsage
	}

	svc := tracker.NewService(cfg.TrackerPath, logger.Component(log, "tracker"))
	svc.SetTimeout(cfg.Timeout)
	svc.SetStdout(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := svc.Run(ctx, settings)
	switch {
	case err == nil:
		log.Info().Str("run_id", result.ID).Str("elapsed", result.GetElapsedString()).Msg("tracker executed successfully")
		return 0

	case errors.Is(err, context.Canceled):
		log.Warn().Str("run_id", result.ID).Msg("tracker run interrupted")
		return ExitInterrupted

	case errors.Is(err, model.ErrTrackerFailed):
		log.Error().Err(err).Str("run_id", result.ID).Str("diagnostic", result.Diagnostic()).Msg("tracker execution failed")
		if result.ExitCode > 0 {
			return result.ExitCode
		}
		return 1

	default:
		log.Error().Err(err).Msg("failed to run tracker")
		return ExitUsage
	}
}
