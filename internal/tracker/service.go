package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/tracker-launcher/internal/model"
)

// Invocation constants
const (
	DefaultExecutable = "./build/tracker"
	StderrTailBytes   = 4096
	RunIDPrefix       = "run-"
	UnknownExitCode   = -1

	// WaitDelay bounds how long Wait blocks on pipes after the process is killed
	WaitDelay = 2 * time.Second
)

// Service invokes the tracker executable
type Service struct {
	executable string
	timeout    time.Duration
	stdout     io.Writer
	log        zerolog.Logger

	runMutex sync.Mutex
	onUpdate func(*model.Run) // callback for UI updates
}

// NewService creates a new tracker service for the executable at path
func NewService(executable string, log zerolog.Logger) *Service {
	if executable == "" {
		executable = DefaultExecutable
	}
	return &Service{
		executable: executable,
		stdout:     os.Stdout,
		log:        log,
	}
}

// SetUpdateCallback sets the callback function for run updates
func (s *Service) SetUpdateCallback(callback func(*model.Run)) {
	s.onUpdate = callback
}

// SetTimeout limits how long a run may take, zero disables the limit
func (s *Service) SetTimeout(timeout time.Duration) {
	s.timeout = timeout
}

// SetStdout redirects the tracker's standard output, nil discards it
func (s *Service) SetStdout(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.stdout = w
}

// Executable returns the tracker path
func (s *Service) Executable() string {
	return s.executable
}

// CheckExecutable verifies the tracker path points to a regular file
func (s *Service) CheckExecutable() error {
	info, err := os.Stat(s.executable)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", model.ErrExecutableNotFound, s.executable)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", model.ErrExecutableNotFound, s.executable, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", model.ErrExecutableNotFound, s.executable)
	}
	return nil
}

// BuildArgs builds the tracker positional arguments
func (s *Service) BuildArgs(settings model.Settings) []string {
	return []string{
		settings.ModelPath,      // Model file
		settings.BitsThreshold,  // Bits threshold
		settings.SequencesDir,   // Sequences directory
		settings.AnnotationsDir, // Annotations directory
		settings.ResultsDir,     // Results directory
		settings.FPSFile,        // FPS file
	}
}

// CommandLine renders the invocation with every value quoted, for logs and dialogs
func (s *Service) CommandLine(settings model.Settings) string {
	parts := []string{s.executable}
	for _, arg := range s.BuildArgs(settings) {
		parts = append(parts, quote(arg))
	}
	return strings.Join(parts, " ")
}

// Run starts the tracker and waits for it to exit
func (s *Service) Run(ctx context.Context, settings model.Settings) (*model.Run, error) {
	if err := s.CheckExecutable(); err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	run := &model.Run{
		ID:       generateRunID(),
		Args:     s.BuildArgs(settings),
		Status:   model.RunStatusPending,
		ExitCode: UnknownExitCode,
	}
	log := s.log.With().Str("run_id", run.ID).Logger()

	// Stderr never reaches the terminal, only its tail is kept for diagnostics
	stderr := newTailBuffer(StderrTailBytes)
	cmd := exec.CommandContext(ctx, s.executable, run.Args...)
	cmd.Stdout = s.stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = WaitDelay

	log.Info().Str("command", s.CommandLine(settings)).Msg("starting tracker")

	if err := cmd.Start(); err != nil {
		s.finish(run, model.RunStatusFailed, UnknownExitCode, err.Error(), "")
		log.Error().Err(err).Msg("failed to start tracker")
		return s.snapshot(run), fmt.Errorf("%w: %v", model.ErrLaunchFailed, err)
	}

	s.runMutex.Lock()
	run.Status = model.RunStatusRunning
	run.StartedAt = time.Now()
	s.runMutex.Unlock()
	s.notifyUpdate(run)

	// Monitor for cancel requests
	exited := make(chan struct{})
	defer close(exited)
	go func() {
		select {
		case <-ctx.Done():
			s.runMutex.Lock()
			if run.Status == model.RunStatusRunning {
				run.Status = model.RunStatusCancelling
			}
			s.runMutex.Unlock()
			s.notifyUpdate(run)
		case <-exited:
		}
	}()

	waitErr := cmd.Wait()

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		s.finish(run, model.RunStatusCancelled, exitCodeOf(waitErr), "cancelled", stderr.String())
		log.Warn().Msg("tracker run cancelled")
		return s.snapshot(run), ctx.Err()

	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		msg := fmt.Sprintf("timed out after %s", s.timeout)
		s.finish(run, model.RunStatusFailed, exitCodeOf(waitErr), msg, stderr.String())
		log.Error().Dur("timeout", s.timeout).Msg("tracker run timed out")
		return s.snapshot(run), fmt.Errorf("%w: %s", model.ErrTrackerFailed, msg)

	case waitErr == nil:
		s.finish(run, model.RunStatusSucceeded, 0, "", stderr.String())
		done := s.snapshot(run)
		log.Info().Dur("elapsed", done.Duration()).Msg("tracker finished")
		return done, nil

	case errors.As(waitErr, &exitErr):
		code := exitErr.ExitCode()
		s.finish(run, model.RunStatusFailed, code, waitErr.Error(), stderr.String())
		log.Error().Int("exit_code", code).Msg("tracker exited with error")
		return s.snapshot(run), fmt.Errorf("%w: exit status %d", model.ErrTrackerFailed, code)

	default:
		s.finish(run, model.RunStatusFailed, UnknownExitCode, waitErr.Error(), stderr.String())
		log.Error().Err(waitErr).Msg("tracker wait failed")
		return s.snapshot(run), fmt.Errorf("%w: %v", model.ErrLaunchFailed, waitErr)
	}
}

// finish records the terminal state of a run
func (s *Service) finish(run *model.Run, status model.RunStatus, exitCode int, lastError, stderr string) {
	s.runMutex.Lock()
	run.Status = status
	run.ExitCode = exitCode
	run.LastError = lastError
	run.Stderr = strings.TrimSpace(stderr)
	run.FinishedAt = time.Now()
	s.runMutex.Unlock()

	s.notifyUpdate(run)
}

// snapshot copies a run so callers never share it with the monitor goroutine
func (s *Service) snapshot(run *model.Run) *model.Run {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()
	copied := *run
	return &copied
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(run *model.Run) {
	if s.onUpdate != nil {
		s.onUpdate(s.snapshot(run))
	}
}

// exitCodeOf returns the process exit code carried by err, if any
func exitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return UnknownExitCode
}

// quote wraps a value in double quotes, escaping embedded quotes
func quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `\"`) + `"`
}

// generateRunID generates a unique run ID using UUID v7 so IDs sort chronologically
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
