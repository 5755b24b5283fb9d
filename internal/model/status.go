package model

// RunStatus represents the status of a tracker run
type RunStatus string

const (
	// RunStatusPending means the run was created but the process is not started yet
	RunStatusPending RunStatus = "Pending"

	// RunStatusRunning means the tracker process is executing
	RunStatusRunning RunStatus = "Running"

	// RunStatusCancelling means a cancellation was requested and the process is being stopped
	RunStatusCancelling RunStatus = "Cancelling"

	// RunStatusCancelled means the run was stopped by user
	RunStatusCancelled RunStatus = "Cancelled"

	// RunStatusSucceeded means the tracker exited with code zero
	RunStatusSucceeded RunStatus = "Succeeded"

	// RunStatusFailed means the tracker exited non-zero or could not be started
	RunStatusFailed RunStatus = "Failed"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsActive returns true if the run holds a live process
func (rs RunStatus) IsActive() bool {
	return rs == RunStatusRunning || rs == RunStatusCancelling
}

// IsFinished returns true if the run is in a terminal state (succeeded, failed, or cancelled)
func (rs RunStatus) IsFinished() bool {
	return rs == RunStatusSucceeded || rs == RunStatusFailed || rs == RunStatusCancelled
}
