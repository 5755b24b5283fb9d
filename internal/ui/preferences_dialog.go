package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tracker-launcher/internal/config"
)

// PreferencesDialog edits the UI preferences kept in Fyne storage
type PreferencesDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	appearanceSelect *widget.Select
	languageSelect   *widget.Select
	revealCheck      *widget.Check

	// display label -> stored value
	appearanceValues map[string]config.Appearance
	languageValues   map[string]string
}

// NewPreferencesDialog creates a new preferences dialog
func NewPreferencesDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *PreferencesDialog {
	pd := &PreferencesDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	pd.createUI()
	return pd
}

// Show displays the preferences dialog
func (pd *PreferencesDialog) Show() {
	pd.loadCurrentSettings()
	pd.dialog.Show()
}

// createUI creates the preferences dialog UI
func (pd *PreferencesDialog) createUI() {
	l := pd.localization

	pd.appearanceValues = map[string]config.Appearance{
		l.GetText(KeyAppearanceDark):  config.AppearanceDark,
		l.GetText(KeyAppearanceLight): config.AppearanceLight,
		l.GetText(KeySystemDefault):   config.AppearanceSystem,
	}
	appearanceOptions := []string{}
	for _, mode := range pd.settings.GetAppearanceOptions() {
		appearanceOptions = append(appearanceOptions, pd.appearanceLabel(mode))
	}
	pd.appearanceSelect = widget.NewSelect(appearanceOptions, nil)

	pd.languageValues = map[string]string{}
	languageOptions := []string{}
	for code, name := range pd.settings.GetLanguageOptions() {
		if code == "system" {
			name = l.GetText(KeySystemDefault)
		}
		pd.languageValues[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	pd.languageSelect = widget.NewSelect(languageOptions, nil)

	pd.revealCheck = widget.NewCheck(l.GetText(KeyRevealResults), nil)

	formContent := container.NewVBox(
		widget.NewLabel(l.GetText(KeyAppearance)),
		pd.appearanceSelect,

		widget.NewLabel(l.GetText(KeyLanguage)),
		pd.languageSelect,

		widget.NewSeparator(),
		pd.revealCheck,
	)

	pd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeyPreferences),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		formContent,
		pd.onSave,
		pd.window,
	)

	pd.dialog.Resize(fyne.NewSize(DialogMinWidth, 300))
}

// loadCurrentSettings loads current preferences into the UI
func (pd *PreferencesDialog) loadCurrentSettings() {
	pd.appearanceSelect.SetSelected(pd.appearanceLabel(pd.settings.GetAppearance()))

	current := pd.settings.GetLanguage()
	for label, code := range pd.languageValues {
		if code == current {
			pd.languageSelect.SetSelected(label)
		}
	}

	pd.revealCheck.SetChecked(pd.settings.GetRevealOnComplete())
}

// onSave handles saving the preferences
func (pd *PreferencesDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if mode, ok := pd.appearanceValues[pd.appearanceSelect.Selected]; ok {
		pd.settings.SetAppearance(mode)
	}

	if code, ok := pd.languageValues[pd.languageSelect.Selected]; ok {
		pd.settings.SetLanguage(code)
	}

	pd.settings.SetRevealOnComplete(pd.revealCheck.Checked)

	if pd.onSaved != nil {
		pd.onSaved()
	}
}

func (pd *PreferencesDialog) appearanceLabel(mode config.Appearance) string {
	for label, value := range pd.appearanceValues {
		if value == mode {
			return label
		}
	}
	return string(mode)
}
