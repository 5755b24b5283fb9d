package ui

// Package ui contains the Fyne-based desktop user interface for the launcher.
// It renders the six-field form, binds the native pickers and dialogs to the
// form controller, and shows the state of the running tracker. All UI strings
// are localized via Localization.
