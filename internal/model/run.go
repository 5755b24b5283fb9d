package model

import (
	"fmt"
	"time"
)

// Run represents a single tracker invocation
type Run struct {
	ID         string
	Args       []string  // positional arguments passed after the executable
	Status     RunStatus
	ExitCode   int       // -1 until the process exits or when it never started
	Stderr     string    // captured tail of the error stream
	LastError  string    // launch or exit error message if any
	StartedAt  time.Time // when the process was started
	FinishedAt time.Time // when the process exited
}

// Duration returns how long the run took, or has taken so far
func (r *Run) Duration() time.Duration {
	if r.StartedAt.IsZero() {
		return 0
	}
	if r.FinishedAt.IsZero() {
		return time.Since(r.StartedAt)
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// GetElapsedString returns the run duration formatted as hh:mm:ss or mm:ss, or "—" if not started
func (r *Run) GetElapsedString() string {
	if r.StartedAt.IsZero() {
		return "—"
	}

	total := int(r.Duration().Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Diagnostic returns the most useful text describing a failed run
func (r *Run) Diagnostic() string {
	if r.Stderr != "" {
		return r.Stderr
	}
	if r.LastError != "" {
		return r.LastError
	}
	if r.ExitCode > 0 {
		return fmt.Sprintf("exit status %d", r.ExitCode)
	}
	return ""
}
