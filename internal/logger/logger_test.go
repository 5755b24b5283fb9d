package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"", DefaultLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" warn ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"verbose", DefaultLevel},
	}

	for _, test := range tests {
		if level := ParseLevel(test.input); level != test.expected {
			t.Errorf("ParseLevel(%q) = %s, expected %s", test.input, level, test.expected)
		}
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	log := Component(New(&buf, zerolog.DebugLevel), "store")

	log.Info().Str("path", "last_settings.json").Msg("settings saved")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to decode log line %q: %v", buf.String(), err)
	}

	if entry["component"] != "store" {
		t.Errorf("Expected component 'store', got %v", entry["component"])
	}
	if entry["message"] != "settings saved" {
		t.Errorf("Expected message 'settings saved', got %v", entry["message"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("Expected timestamp field in log entry")
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.WarnLevel)

	log.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Errorf("Info message should be filtered at warn level, got %q", buf.String())
	}

	log.Warn().Msg("kept")
	if buf.Len() == 0 {
		t.Error("Warn message should be written at warn level")
	}
}
