package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("expected %v for %q, got %v", want, raw, got)
		}
	}
}

func TestConfigureWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "neutron.log")
	if err := Configure(path, "debug"); err != nil {
		t.Fatalf("configure: %v", err)
	}
	defer Close()

	Logger().Debug("transition started", "kind", "launch")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"transition started"`) {
		t.Fatalf("expected JSON entry in log, got %q", string(data))
	}
}

func TestConfigureStdoutClosesPreviousFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neutron.log")
	if err := Configure(path, "info"); err != nil {
		t.Fatalf("configure: %v", err)
	}
	defer Close()

	f := logFile
	if f == nil {
		t.Fatalf("expected log file open")
	}
	if err := Configure("", "info"); err != nil {
		t.Fatalf("configure stdout: %v", err)
	}
	if logFile != nil {
		t.Fatalf("expected log file released")
	}
	if _, err := f.Write([]byte("x")); err == nil {
		t.Fatalf("expected previous log file closed")
	}

	Logger().Info("after redirect")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "after redirect") {
		t.Fatalf("expected no entries after redirect, got %q", string(data))
	}
}
