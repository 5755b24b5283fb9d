package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/tracker-launcher/internal/config"
	"github.com/ytget/tracker-launcher/internal/logger"
	"github.com/ytget/tracker-launcher/internal/platform"
	"github.com/ytget/tracker-launcher/internal/store"
	"github.com/ytget/tracker-launcher/internal/tracker"
	"github.com/ytget/tracker-launcher/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.tracker-launcher"
)

func main() {
	cfg, err := config.LoadApp(config.ConfigPath())
	if err != nil {
		logger.NewConsole(logger.ParseLevel(config.DefaultLogLevel)).Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.NewConsole(logger.ParseLevel(cfg.LogLevel))
	log.Info().Str("version", version).Str("tracker", cfg.TrackerPath).Msg("tracker launcher starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	myWindow := myApp.NewWindow(ui.NewLocalization().GetText(ui.KeyAppTitle))
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	myWindow.SetFixedSize(!cfg.Window.Resizable)
	if icon, err := ui.LoadLogoResource(); err == nil {
		myWindow.SetIcon(icon)
	} else {
		log.Debug().Err(err).Msg("window icon not loaded")
	}

	// Initialize services
	if err := platform.EnsureParentDir(cfg.SettingsPath); err != nil {
		log.Error().Err(err).Str("path", cfg.SettingsPath).Msg("failed to ensure settings directory")
	}
	settingsStore := store.New(cfg.SettingsPath, logger.Component(log, "store"))

	trackerSvc := tracker.NewService(cfg.TrackerPath, logger.Component(log, "tracker"))
	trackerSvc.SetTimeout(cfg.Timeout)
	trackerSvc.SetStdout(os.Stdout)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, ui.Deps{
		Store:         settingsStore,
		Runner:        trackerSvc,
		StartDir:      platform.ResolveStartDir(cfg.PickerStartDir),
		OpenDirectory: platform.OpenDirectory,
		Logger:        logger.Component(log, "ui"),
	})

	// Show and run
	myWindow.ShowAndRun()
}
