package model

import "errors"

// Errors shared by the form, the invoker and the headless runner
var (
	ErrMissingFields      = errors.New("please fill out all fields")
	ErrExecutableNotFound = errors.New("tracker executable not found")
	ErrTrackerFailed      = errors.New("tracker execution failed")
	ErrLaunchFailed       = errors.New("failed to run tracker")
	ErrRunInProgress      = errors.New("tracker run already in progress")
)
