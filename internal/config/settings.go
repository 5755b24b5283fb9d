package config

import (
	"fyne.io/fyne/v2"
)

// Appearance modes for the launcher window
type Appearance string

const (
	AppearanceDark   Appearance = "dark"
	AppearanceLight  Appearance = "light"
	AppearanceSystem Appearance = "system"
)

// Settings keys for Fyne preferences
const (
	KeyAppearance       = "appearance_mode"
	KeyLanguage         = "app_language"
	KeyRevealOnComplete = "reveal_results_on_complete"
)

// Default values
const (
	DefaultAppearance       = AppearanceDark
	DefaultLanguage         = "system"
	DefaultRevealOnComplete = false
)

// Settings manages UI preferences. The tracker values themselves live in
// the settings file handled by the store package.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAppearance returns the configured appearance mode
func (s *Settings) GetAppearance() Appearance {
	mode := Appearance(s.app.Preferences().String(KeyAppearance))
	switch mode {
	case AppearanceDark, AppearanceLight, AppearanceSystem:
		return mode
	default:
		s.SetAppearance(DefaultAppearance)
		return DefaultAppearance
	}
}

// SetAppearance sets the appearance mode, unknown values fall back to the default
func (s *Settings) SetAppearance(mode Appearance) {
	switch mode {
	case AppearanceDark, AppearanceLight, AppearanceSystem:
	default:
		mode = DefaultAppearance
	}
	s.app.Preferences().SetString(KeyAppearance, string(mode))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRevealOnComplete returns whether to open the results directory after a successful run
func (s *Settings) GetRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealOnComplete, DefaultRevealOnComplete)
}

// SetRevealOnComplete sets whether to open the results directory after a successful run
func (s *Settings) SetRevealOnComplete(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealOnComplete, reveal)
}

// GetAppearanceOptions returns available appearance modes
func (s *Settings) GetAppearanceOptions() []Appearance {
	return []Appearance{AppearanceDark, AppearanceLight, AppearanceSystem}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}
