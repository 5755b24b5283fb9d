package form

// Message keys resolved through the Translator
const (
	MsgTitleError        = "title_error"
	MsgTitleSuccess      = "title_success"
	MsgTitleCancelled    = "title_cancelled"
	MsgFillAllFields     = "fill_all_fields"
	MsgExecutableMissing = "executable_missing"
	MsgRunSucceeded      = "run_succeeded"
	MsgRunFailed         = "run_failed"
	MsgLaunchFailed      = "launch_failed"
	MsgRunCancelled      = "run_cancelled"
	MsgRunInProgress     = "run_in_progress"
	MsgSaveFailed        = "save_failed"
	MsgLoadFailed        = "load_failed"
)

// defaultTexts is used when the controller has no Translator
var defaultTexts = map[string]string{
	MsgTitleError:        "Error",
	MsgTitleSuccess:      "Success",
	MsgTitleCancelled:    "Cancelled",
	MsgFillAllFields:     "Please fill out all fields",
	MsgExecutableMissing: "Tracker executable not found",
	MsgRunSucceeded:      "Tracker executed successfully",
	MsgRunFailed:         "Tracker execution failed: %s",
	MsgLaunchFailed:      "Failed to run tracker: %v",
	MsgRunCancelled:      "Tracker run cancelled",
	MsgRunInProgress:     "Tracker is already running",
	MsgSaveFailed:        "Failed to save settings: %v",
	MsgLoadFailed:        "Failed to load settings: %v",
}
