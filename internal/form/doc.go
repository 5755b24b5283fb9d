package form

// Package form holds the launcher's application state and the handlers behind
// the six-field form: populating from the saved record, choosing files and
// directories, validating, and dispatching a tracker run. It is independent of
// the widget toolkit; the ui package supplies the Fields, Picker and Notifier.
