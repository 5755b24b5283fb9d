package ui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/tracker-launcher/internal/config"
	"github.com/ytget/tracker-launcher/internal/form"
	"github.com/ytget/tracker-launcher/internal/model"
	"github.com/ytget/tracker-launcher/internal/tracker"
)

// Deps holds the services the window is wired to
type Deps struct {
	Store  form.Store
	Runner tracker.Runner

	// StartDir is where the pickers open
	StartDir string

	// OpenDirectory reveals the results directory in the file manager
	OpenDirectory func(dir string) error

	Logger zerolog.Logger
}

// RootUI represents the main window: six labelled fields, their choose
// buttons, and the run controls
type RootUI struct {
	window        fyne.Window
	app           fyne.App
	settings      *config.Settings
	localization  *Localization
	controller    *form.Controller
	openDirectory func(dir string) error
	log           zerolog.Logger

	// UI components
	labels         map[model.Field]*widget.Label
	entries        map[model.Field]*widget.Entry
	chooseButtons  map[model.Field]*widget.Button
	runBtn         *widget.Button
	cancelBtn      *widget.Button
	openResultsBtn *widget.Button
	statusLabel    *widget.Label

	// Run state, UI goroutine only
	currentRun *model.Run

	tickerMutex sync.Mutex
	stopTicker  chan struct{}
}

// NewRootUI creates the main window content and fills it from the saved settings
func NewRootUI(window fyne.Window, app fyne.App, deps Deps) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	app.Settings().SetTheme(NewTrackerTheme(settings.GetAppearance()))

	ui := &RootUI{
		window:        window,
		app:           app,
		settings:      settings,
		localization:  localization,
		openDirectory: deps.OpenDirectory,
		log:           deps.Logger,
		labels:        make(map[model.Field]*widget.Label),
		entries:       make(map[model.Field]*widget.Entry),
		chooseButtons: make(map[model.Field]*widget.Button),
	}

	ui.controller = form.NewController(form.Deps{
		Fields:     ui,
		Picker:     ui,
		Notifier:   ui,
		Translator: localization,
		Store:      deps.Store,
		Runner:     deps.Runner,
		StartDir:   deps.StartDir,
		Dispatch:   fyne.Do,
		Logger:     deps.Logger,
	})

	// Set up callback for run updates
	deps.Runner.SetUpdateCallback(ui.onRunUpdate)

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetCloseIntercept(ui.onClose)

	ui.setupUI()
	_ = ui.controller.Populate() // load errors are shown in a dialog

	ui.log.Debug().Msg("UI setup completed")
	return ui
}

// Controller returns the form controller behind the window
func (ui *RootUI) Controller() *form.Controller {
	return ui.controller
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	rows := container.New(layout.NewFormLayout())
	for _, f := range model.Fields {
		field := f // Capture for closure

		label := widget.NewLabel(ui.localization.GetText(FieldLabelKey(field)))
		entry := widget.NewEntry()
		ui.labels[field] = label
		ui.entries[field] = entry

		var row fyne.CanvasObject = entry
		switch field.Kind() {
		case model.KindFile:
			btn := widget.NewButton(ui.localization.GetText(KeyChooseFile), func() { ui.controller.ChooseFile(field) })
			ui.chooseButtons[field] = btn
			row = container.NewBorder(nil, nil, nil, btn, entry)
		case model.KindDirectory:
			btn := widget.NewButton(ui.localization.GetText(KeyChooseFolder), func() { ui.controller.ChooseDir(field) })
			ui.chooseButtons[field] = btn
			row = container.NewBorder(nil, nil, nil, btn, entry)
		}

		rows.Add(label)
		rows.Add(row)
	}

	ui.runBtn = widget.NewButton(IconPlay+" "+ui.localization.GetText(KeyRunTracker), ui.onRunClick)
	ui.runBtn.Importance = widget.HighImportance

	ui.cancelBtn = widget.NewButton(IconStop+" "+ui.localization.GetText(KeyCancelRun), ui.onCancelClick)
	ui.cancelBtn.Disable()

	ui.openResultsBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyOpenResults), ui.openResults)
	ui.openResultsBtn.Importance = widget.LowImportance
	ui.openResultsBtn.Disable()

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter
	ui.refreshStatus()

	buttons := container.NewHBox(layout.NewSpacer(), ui.runBtn, ui.cancelBtn, ui.openResultsBtn, layout.NewSpacer())

	content := container.NewBorder(
		nil, // top
		container.NewVBox(buttons, ui.statusLabel), // bottom
		nil, // left
		nil, // right
		container.NewPadded(rows),
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	preferencesItem := fyne.NewMenuItem(ui.localization.GetText(KeyPreferences), ui.onShowPreferences)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), preferencesItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// onShowPreferences shows the preferences dialog
func (ui *RootUI) onShowPreferences() {
	NewPreferencesDialog(ui.settings, ui.localization, ui.window, ui.applyPreferences).Show()
}

// applyPreferences re-reads the preferences after the dialog saved them
func (ui *RootUI) applyPreferences() {
	ui.app.Settings().SetTheme(NewTrackerTheme(ui.settings.GetAppearance()))
	ui.localization.SetLanguage(ui.settings.GetLanguage())

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	for field, label := range ui.labels {
		label.SetText(ui.localization.GetText(FieldLabelKey(field)))
	}
	for field, btn := range ui.chooseButtons {
		if field.Kind() == model.KindDirectory {
			btn.SetText(ui.localization.GetText(KeyChooseFolder))
		} else {
			btn.SetText(ui.localization.GetText(KeyChooseFile))
		}
	}

	ui.runBtn.SetText(IconPlay + " " + ui.localization.GetText(KeyRunTracker))
	ui.cancelBtn.SetText(IconStop + " " + ui.localization.GetText(KeyCancelRun))
	ui.openResultsBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyOpenResults))
	ui.refreshStatus()
}

// Value returns the current text of a field
func (ui *RootUI) Value(field model.Field) string {
	if entry, ok := ui.entries[field]; ok {
		return entry.Text
	}
	return ""
}

// SetValue replaces the text of a field
func (ui *RootUI) SetValue(field model.Field, value string) {
	if entry, ok := ui.entries[field]; ok {
		entry.SetText(value)
	}
}

// PickFile shows the file open dialog
func (ui *RootUI) PickFile(startDir string, onChosen func(path string)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.log.Error().Err(err).Msg("file dialog failed")
			onChosen("")
			return
		}
		if reader == nil {
			onChosen("")
			return
		}
		path := reader.URI().Path()
		reader.Close()
		onChosen(path)
	}, ui.window)

	ui.setDialogLocation(fd, startDir)
	fd.Show()
}

// PickDirectory shows the folder open dialog
func (ui *RootUI) PickDirectory(startDir string, onChosen func(path string)) {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.log.Error().Err(err).Msg("folder dialog failed")
			onChosen("")
			return
		}
		if uri == nil {
			onChosen("")
			return
		}
		onChosen(uri.Path())
	}, ui.window)

	ui.setDialogLocation(fd, startDir)
	fd.Show()
}

// setDialogLocation points a picker at startDir when it can be listed
func (ui *RootUI) setDialogLocation(fd *dialog.FileDialog, startDir string) {
	fd.Resize(ui.window.Canvas().Size())
	if startDir == "" {
		return
	}

	lister, err := storage.ListerForURI(storage.NewFileURI(startDir))
	if err != nil {
		ui.log.Debug().Err(err).Str("dir", startDir).Msg("picker start dir not listable")
		return
	}
	fd.SetLocation(lister)
}

// ShowInfo shows an information dialog
func (ui *RootUI) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, ui.window)
}

// ShowError shows an error dialog with a custom title
func (ui *RootUI) ShowError(title, message string) {
	text := widget.NewLabel(message)
	text.Wrapping = fyne.TextWrapWord

	content := container.NewBorder(nil, nil, widget.NewIcon(theme.ErrorIcon()), nil, text)
	d := dialog.NewCustom(title, ui.localization.GetText(KeyOK), content, ui.window)
	d.Resize(fyne.NewSize(DialogMinWidth, DialogMinHeight))
	d.Show()
}

// onRunClick validates and starts the tracker in the background
func (ui *RootUI) onRunClick() {
	if err := ui.controller.Start(context.Background(), ui.onRunFinished); err != nil {
		// The controller has already shown the reason
		ui.log.Debug().Err(err).Msg("run not started")
		return
	}

	ui.openResultsBtn.Disable()
	ui.setRunning(true)
}

// onCancelClick stops the running tracker
func (ui *RootUI) onCancelClick() {
	if ui.controller.Cancel() {
		ui.cancelBtn.Disable()
	}
}

// onRunUpdate receives run snapshots from the tracker goroutine
func (ui *RootUI) onRunUpdate(run *model.Run) {
	fyne.Do(func() {
		ui.currentRun = run
		ui.refreshStatus()
	})
}

// onRunFinished is called on the UI goroutine after the result dialog
func (ui *RootUI) onRunFinished(run *model.Run, err error) {
	ui.setRunning(false)
	if run != nil {
		ui.currentRun = run
	}
	ui.refreshStatus()

	if err != nil {
		return
	}

	ui.openResultsBtn.Enable()
	if ui.settings.GetRevealOnComplete() {
		ui.openResults()
	}
}

// openResults reveals the results directory
func (ui *RootUI) openResults() {
	if ui.openDirectory == nil {
		return
	}

	dir := ui.Value(model.FieldResultsDir)
	if err := ui.openDirectory(dir); err != nil {
		ui.log.Error().Err(err).Str("dir", dir).Msg("failed to open results directory")
		ui.ShowError(ui.localization.GetText(form.MsgTitleError), fmt.Sprintf(ui.localization.GetText(KeyOpenFailed), err))
	}
}

// setRunning toggles the controls between idle and running
func (ui *RootUI) setRunning(running bool) {
	for _, entry := range ui.entries {
		if running {
			entry.Disable()
		} else {
			entry.Enable()
		}
	}
	for _, btn := range ui.chooseButtons {
		if running {
			btn.Disable()
		} else {
			btn.Enable()
		}
	}

	if running {
		ui.runBtn.Disable()
		ui.cancelBtn.Enable()
		ui.startStatusTicker()
	} else {
		ui.runBtn.Enable()
		ui.cancelBtn.Disable()
		ui.stopStatusTicker()
	}
}

// refreshStatus renders the state of the current run
func (ui *RootUI) refreshStatus() {
	if ui.statusLabel == nil {
		return
	}
	ui.statusLabel.SetText(ui.statusText(ui.currentRun))
}

// statusText describes a run for the status line
func (ui *RootUI) statusText(run *model.Run) string {
	l := ui.localization
	if run == nil {
		return l.GetText(KeyStatusReady)
	}

	switch run.Status {
	case model.RunStatusRunning:
		return fmt.Sprintf(l.GetText(KeyStatusRunning), run.GetElapsedString())
	case model.RunStatusCancelling:
		return l.GetText(KeyStatusStopping)
	case model.RunStatusSucceeded:
		return fmt.Sprintf(l.GetText(KeyStatusSucceeded), run.GetElapsedString())
	case model.RunStatusFailed:
		return fmt.Sprintf(l.GetText(KeyStatusFailed), run.GetElapsedString())
	case model.RunStatusCancelled:
		return fmt.Sprintf(l.GetText(KeyStatusCancelled), run.GetElapsedString())
	default:
		return l.GetText(KeyStatusReady)
	}
}

// startStatusTicker refreshes the elapsed time once per interval
func (ui *RootUI) startStatusTicker() {
	ui.tickerMutex.Lock()
	defer ui.tickerMutex.Unlock()

	if ui.stopTicker != nil {
		return
	}
	stop := make(chan struct{})
	ui.stopTicker = stop

	go func() {
		ticker := time.NewTicker(StatusRefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fyne.Do(ui.refreshStatus)
			case <-stop:
				return
			}
		}
	}()
}

// stopStatusTicker stops the elapsed time refresh
func (ui *RootUI) stopStatusTicker() {
	ui.tickerMutex.Lock()
	defer ui.tickerMutex.Unlock()

	if ui.stopTicker != nil {
		close(ui.stopTicker)
		ui.stopTicker = nil
	}
}

// onClose stops a running tracker before the window goes away
func (ui *RootUI) onClose() {
	if ui.controller.Busy() {
		ui.log.Info().Msg("window closed while tracker was running")
		ui.controller.Cancel()
	}
	ui.stopStatusTicker()
	ui.window.Close()
}
