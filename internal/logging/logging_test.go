package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"
	"testing"
)

func TestHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, slog.LevelInfo, FormatHuman)
	if err != nil {
		t.Fatal(err)
	}
	log.Info("sorted", "width", 640, "method", "hue")

	line := buf.String()
	pattern := regexp.MustCompile(`^\d{4}-\d\d-\d\dT\d\d:\d\d:\d\dZ \[info\] sorted \| width=640 method=hue\n$`)
	if !pattern.MatchString(line) {
		t.Errorf("unexpected line %q", line)
	}
}

func TestHandlerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	for _, test := range []struct {
		text string
		want bool
	}{
		{"debug message", false},
		{"info message", false},
		{"[warn] warn message", true},
		{"[error] error message", true},
	} {
		if v := strings.Contains(out, test.text); v != test.want {
			t.Errorf("contains %q: expected %t, got %t in %q", test.text, test.want, v, out)
		}
	}
}

func TestHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, nil)).With("pass", 1).WithGroup("gate")
	log.Info("band", "min", 40, "max", 90)

	if out := buf.String(); !strings.HasSuffix(out, "| pass=1 gate.min=40 gate.max=90\n") {
		t.Errorf("unexpected attributes in %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, slog.LevelDebug, "JSON")
	if err != nil {
		t.Fatal(err)
	}
	log.Debug("decoded", "format", "png")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected a JSON record, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "decoded" || record["format"] != "png" {
		t.Errorf("unexpected record %v", record)
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, slog.LevelInfo, "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestLevelFromString(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"Warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"off":     Silent,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if v := LevelFromString(in); v != want {
			t.Errorf("LevelFromString(%q): expected %s, got %s", in, want, v)
		}
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		quiet     bool
		want      slog.Level
	}{
		{0, false, slog.LevelWarn},
		{1, false, slog.LevelInfo},
		{2, false, slog.LevelDebug},
		{5, false, slog.LevelDebug},
		{2, true, Silent},
	}
	for _, test := range tests {
		if v := LevelFromVerbosity(slog.LevelWarn, test.verbosity, test.quiet); v != test.want {
			t.Errorf("LevelFromVerbosity(%d, %t): expected %s, got %s", test.verbosity, test.quiet, test.want, v)
		}
	}
}

func TestDiscard(t *testing.T) {
	if Discard().Enabled(context.Background(), slog.LevelError) {
		t.Error("expected discard logger to be disabled")
	}
}
