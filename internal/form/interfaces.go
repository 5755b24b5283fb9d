package form

import (
	"github.com/ytget/tracker-launcher/internal/model"
)

// Fields gives access to the six editable values
type Fields interface {
	Value(field model.Field) string
	SetValue(field model.Field, value string)
}

// Picker opens the native dialogs. The callback receives "" when the user cancels.
type Picker interface {
	PickFile(startDir string, onChosen func(path string))
	PickDirectory(startDir string, onChosen func(path string))
}

// Notifier shows modal messages
type Notifier interface {
	ShowInfo(title, message string)
	ShowError(title, message string)
}

// Translator returns the user-facing text for a message key
type Translator interface {
	GetText(key string) string
}

// Store persists the settings record
type Store interface {
	Load() (model.Settings, error)
	Save(settings model.Settings) error
}
