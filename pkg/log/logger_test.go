package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug": DebugLevel, "INFO": InfoLevel, "warn": WarnLevel,
		"warning": WarnLevel, "Error": ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q): got %v, want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(WithLevel(WarnLevel), WithOutput(buf))

	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info entry should be filtered: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn entry missing: %s", out)
	}
}

func TestJSONFormatAndFields(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(WithFormat(FormatJSON), WithOutput(buf))
	l = l.With(Component("cli"))

	l.Info("generator ready", Int64("machine_id", 42), Str("epoch", "2024-01-01T00:00:00Z"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("entry is not JSON: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "generator ready" {
		t.Fatalf("msg: %v", entry["msg"])
	}
	if entry["component"] != "cli" {
		t.Fatalf("component: %v", entry["component"])
	}
	if entry["machine_id"] != float64(42) {
		t.Fatalf("machine_id: %v", entry["machine_id"])
	}
}

func TestSetLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(WithOutput(buf))

	l.Debug("before")
	l.SetLevel(DebugLevel)
	l.Debug("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Fatalf("debug entry should be filtered before SetLevel: %s", out)
	}
	if !strings.Contains(out, "after") {
		t.Fatalf("debug entry missing after SetLevel: %s", out)
	}
}
