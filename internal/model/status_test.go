package model

import "testing"

func TestRunStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   RunStatus
		expected bool
	}{
		{RunStatusPending, false},
		{RunStatusRunning, true},
		{RunStatusCancelling, true},
		{RunStatusCancelled, false},
		{RunStatusSucceeded, false},
		{RunStatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("RunStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestRunStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   RunStatus
		expected bool
	}{
		{RunStatusPending, false},
		{RunStatusRunning, false},
		{RunStatusCancelling, false},
		{RunStatusCancelled, true},
		{RunStatusSucceeded, true},
		{RunStatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("RunStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestRunStatus_String(t *testing.T) {
	status := RunStatusRunning
	expected := "Running"
	result := status.String()

	if result != expected {
		t.Errorf("RunStatus.String() = %s, expected %s", result, expected)
	}
}
