package tracker

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ytget/tracker-launcher/internal/model"
)

func testSettings() model.Settings {
	return model.Settings{
		BitsThreshold:  "16",
		ModelPath:      "/models/yolo v8.engine",
		SequencesDir:   "/data/sequences/",
		AnnotationsDir: "/data/annotations/",
		ResultsDir:     "/data/results/",
		FPSFile:        "/data/fps.txt",
	}
}

// writeScript creates an executable shell script standing in for the tracker
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script trackers are not supported on windows")
	}

	path := filepath.Join(t.TempDir(), "tracker")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatalf("Failed to write tracker script: %v", err)
	}
	return path
}

func TestNewService(t *testing.T) {
	service := NewService("", zerolog.Nop())

	if service.Executable() != DefaultExecutable {
		t.Errorf("Expected executable %s, got %s", DefaultExecutable, service.Executable())
	}

	service = NewService("/opt/tracker", zerolog.Nop())
	if service.Executable() != "/opt/tracker" {
		t.Errorf("Expected executable /opt/tracker, got %s", service.Executable())
	}
}

func TestBuildArgs(t *testing.T) {
	service := NewService("/bin/tracker", zerolog.Nop())
	args := service.BuildArgs(testSettings())

	expectedArgs := []string{
		"/models/yolo v8.engine",
		"16",
		"/data/sequences/",
		"/data/annotations/",
		"/data/results/",
		"/data/fps.txt",
	}

	if len(args) != len(expectedArgs) {
		t.Fatalf("Expected %d args, got %d", len(expectedArgs), len(args))
	}

	for i, expected := range expectedArgs {
		if args[i] != expected {
			t.Errorf("Arg %d: expected %s, got %s", i, expected, args[i])
		}
	}
}

func TestCommandLine(t *testing.T) {
	service := NewService("./build/tracker", zerolog.Nop())
	settings := testSettings()
	settings.FPSFile = `/data/"fps".txt`

	expected := `./build/tracker "/models/yolo v8.engine" "16" "/data/sequences/" "/data/annotations/" "/data/results/" "/data/\"fps\".txt"`
	if got := service.CommandLine(settings); got != expected {
		t.Errorf("CommandLine() =\n %s\nexpected\n %s", got, expected)
	}
}

func TestCheckExecutable(t *testing.T) {
	dir := t.TempDir()

	missing := NewService(filepath.Join(dir, "absent"), zerolog.Nop())
	if err := missing.CheckExecutable(); !errors.Is(err, model.ErrExecutableNotFound) {
		t.Errorf("Expected ErrExecutableNotFound for missing file, got %v", err)
	}

	directory := NewService(dir, zerolog.Nop())
	if err := directory.CheckExecutable(); !errors.Is(err, model.ErrExecutableNotFound) {
		t.Errorf("Expected ErrExecutableNotFound for directory, got %v", err)
	}

	file := filepath.Join(dir, "tracker")
	if err := os.WriteFile(file, []byte("bin"), 0755); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := NewService(file, zerolog.Nop()).CheckExecutable(); err != nil {
		t.Errorf("Expected existing file to pass, got %v", err)
	}
}

func TestRun_MissingExecutable(t *testing.T) {
	service := NewService(filepath.Join(t.TempDir(), "absent"), zerolog.Nop())

	updates := 0
	service.SetUpdateCallback(func(*model.Run) { updates++ })

	run, err := service.Run(context.Background(), testSettings())
	if !errors.Is(err, model.ErrExecutableNotFound) {
		t.Fatalf("Expected ErrExecutableNotFound, got %v", err)
	}
	if run != nil {
		t.Errorf("Expected no run record, got %+v", run)
	}
	if updates != 0 {
		t.Errorf("Expected no updates without a process, got %d", updates)
	}
}

func TestRun_Success(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args.txt")
	script := writeScript(t, `for a in "$@"; do echo "$a" >> "`+argsFile+`"; done
exit 0`)

	service := NewService(script, zerolog.Nop())
	service.SetStdout(nil)

	run, err := service.Run(context.Background(), testSettings())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if run.Status != model.RunStatusSucceeded {
		t.Errorf("Expected status Succeeded, got %s", run.Status)
	}
	if run.ExitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", run.ExitCode)
	}
	if !strings.HasPrefix(run.ID, RunIDPrefix) {
		t.Errorf("Expected run ID prefix %s, got %s", RunIDPrefix, run.ID)
	}
	if run.StartedAt.IsZero() || run.FinishedAt.IsZero() {
		t.Error("Expected start and finish times to be recorded")
	}

	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("Tracker did not record its arguments: %v", err)
	}
	got := strings.Split(strings.TrimSpace(string(data)), "\n")
	expected := service.BuildArgs(testSettings())
	if len(got) != len(expected) {
		t.Fatalf("Expected %d arguments, tracker saw %d: %v", len(expected), len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Arg %d: expected %q, tracker saw %q", i, expected[i], got[i])
		}
	}
}

func TestRun_NonZeroExit(t *testing.T) {
	script := writeScript(t, `echo "progress 100%"
echo "cannot open model" >&2
exit 3`)

	var stdout bytes.Buffer
	service := NewService(script, zerolog.Nop())
	service.SetStdout(&stdout)

	run, err := service.Run(context.Background(), testSettings())
	if !errors.Is(err, model.ErrTrackerFailed) {
		t.Fatalf("Expected ErrTrackerFailed, got %v", err)
	}

	if run.Status != model.RunStatusFailed {
		t.Errorf("Expected status Failed, got %s", run.Status)
	}
	if run.ExitCode != 3 {
		t.Errorf("Expected exit code 3, got %d", run.ExitCode)
	}
	if run.Stderr != "cannot open model" {
		t.Errorf("Expected captured stderr, got %q", run.Stderr)
	}
	if strings.Contains(stdout.String(), "cannot open model") {
		t.Error("Stderr must not be forwarded to stdout")
	}
	if !strings.Contains(stdout.String(), "progress 100%") {
		t.Errorf("Expected stdout to be forwarded, got %q", stdout.String())
	}
}

func TestRun_LaunchFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker")
	if err := os.WriteFile(path, []byte("not a program"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	run, err := NewService(path, zerolog.Nop()).Run(context.Background(), testSettings())
	if !errors.Is(err, model.ErrLaunchFailed) {
		t.Fatalf("Expected ErrLaunchFailed, got %v", err)
	}
	if run.Status != model.RunStatusFailed {
		t.Errorf("Expected status Failed, got %s", run.Status)
	}
	if run.ExitCode != UnknownExitCode {
		t.Errorf("Expected exit code %d, got %d", UnknownExitCode, run.ExitCode)
	}
	if run.LastError == "" {
		t.Error("Expected launch error description")
	}
}

func TestRun_Cancel(t *testing.T) {
	script := writeScript(t, "exec sleep 5")
	service := NewService(script, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	started := time.Now()
	run, err := service.Run(ctx, testSettings())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if run.Status != model.RunStatusCancelled {
		t.Errorf("Expected status Cancelled, got %s", run.Status)
	}
	if time.Since(started) > 4*time.Second {
		t.Errorf("Cancellation took too long: %s", time.Since(started))
	}
}

func TestRun_Timeout(t *testing.T) {
	script := writeScript(t, "exec sleep 5")
	service := NewService(script, zerolog.Nop())
	service.SetTimeout(100 * time.Millisecond)

	run, err := service.Run(context.Background(), testSettings())
	if !errors.Is(err, model.ErrTrackerFailed) {
		t.Fatalf("Expected ErrTrackerFailed on timeout, got %v", err)
	}
	if run.Status != model.RunStatusFailed {
		t.Errorf("Expected status Failed, got %s", run.Status)
	}
	if !strings.Contains(run.LastError, "timed out") {
		t.Errorf("Expected timeout message, got %q", run.LastError)
	}
}

func TestUpdateCallback(t *testing.T) {
	script := writeScript(t, "exit 0")
	service := NewService(script, zerolog.Nop())

	var mu sync.Mutex
	var statuses []model.RunStatus
	service.SetUpdateCallback(func(run *model.Run) {
		mu.Lock()
		statuses = append(statuses, run.Status)
		mu.Unlock()
	})

	if _, err := service.Run(context.Background(), testSettings()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(statuses) < 2 {
		t.Fatalf("Expected at least 2 updates, got %v", statuses)
	}
	if statuses[0] != model.RunStatusRunning {
		t.Errorf("Expected first update Running, got %s", statuses[0])
	}
	if statuses[len(statuses)-1] != model.RunStatusSucceeded {
		t.Errorf("Expected last update Succeeded, got %s", statuses[len(statuses)-1])
	}
}

func TestTailBuffer(t *testing.T) {
	buf := newTailBuffer(8)

	n, err := buf.Write([]byte("0123456789"))
	if err != nil || n != 10 {
		t.Fatalf("Write() = %d, %v", n, err)
	}
	if buf.String() != "23456789" {
		t.Errorf("Expected last 8 bytes, got %q", buf.String())
	}

	buf.Write([]byte("ab"))
	if buf.String() != "456789ab" {
		t.Errorf("Expected rolling tail, got %q", buf.String())
	}
}

func TestGenerateRunID(t *testing.T) {
	id1 := generateRunID()
	time.Sleep(1 * time.Millisecond) // Ensure different timestamp
	id2 := generateRunID()

	if id1 == id2 {
		t.Error("Expected different run IDs")
	}

	if !strings.HasPrefix(id1, "run-") {
		t.Errorf("Expected ID to start with 'run-', got: %s", id1)
	}

	// run- + 36 chars for UUID
	if len(id1) != len("run-")+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len("run-")+36, len(id1), id1)
	}
}
