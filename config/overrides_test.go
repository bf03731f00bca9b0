package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeUIOverlaysKnownKeys(t *testing.T) {
	base := DefaultUI()
	cfg, err := DecodeUI("fade_duration_long = 0.8\ntransition_timeout = 5.0\n", base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FadeDurationLong != 0.8 {
		t.Fatalf("expected long fade 0.8, got %v", cfg.FadeDurationLong)
	}
	if cfg.TransitionTimeout != 5 {
		t.Fatalf("expected timeout 5, got %v", cfg.TransitionTimeout)
	}
	if cfg.FadeDurationShort != base.FadeDurationShort {
		t.Fatalf("expected short fade to keep %v, got %v", base.FadeDurationShort, cfg.FadeDurationShort)
	}
}

func TestDecodeUIRejectsUnknownKeys(t *testing.T) {
	base := DefaultUI()
	cfg, err := DecodeUI("fade_speed = 3.0\n", base)
	if !errors.Is(err, ErrInvalidUI) {
		t.Fatalf("expected ErrInvalidUI, got %v", err)
	}
	if cfg != base {
		t.Fatalf("expected base config back on error")
	}
}

func TestDecodeUIRejectsNonPositiveDurations(t *testing.T) {
	_, err := DecodeUI("fade_duration_short = 0.0\n", DefaultUI())
	if !errors.Is(err, ErrInvalidUI) {
		t.Fatalf("expected ErrInvalidUI, got %v", err)
	}
}

func TestLoadUIFile(t *testing.T) {
	saved := UI
	defer func() { UI = saved }()

	path := filepath.Join(t.TempDir(), "ui.toml")
	if err := os.WriteFile(path, []byte("analog_nav_threshold = 0.3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := LoadUIFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if UI.AnalogNavThreshold != 0.3 {
		t.Fatalf("expected threshold 0.3, got %v", UI.AnalogNavThreshold)
	}
}

func TestLoadEnvFromAppliesOverrides(t *testing.T) {
	savedUI, savedLog, savedDebug := UI, Log, Debug
	defer func() { UI, Log, Debug = savedUI, savedLog, savedDebug }()

	o, err := LoadEnvFrom(map[string]string{
		"NEUTRON_LOG_LEVEL":          "debug",
		"NEUTRON_TRANSITION_TIMEOUT": "2.5",
		"NEUTRON_SKIP_MENU":          "true",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	o.Apply()

	if Log.Level != "debug" {
		t.Fatalf("expected debug level, got %q", Log.Level)
	}
	if UI.TransitionTimeout != 2.5 {
		t.Fatalf("expected timeout 2.5, got %v", UI.TransitionTimeout)
	}
	if !Debug.SkipMenu {
		t.Fatalf("expected SkipMenu to be set")
	}
}

func TestLoadEnvFromKeepsTimeoutWhenUnset(t *testing.T) {
	savedUI := UI
	defer func() { UI = savedUI }()

	UI.TransitionTimeout = 7
	o, err := LoadEnvFrom(map[string]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	o.Apply()
	if UI.TransitionTimeout != 7 {
		t.Fatalf("expected timeout to stay 7, got %v", UI.TransitionTimeout)
	}
}

func TestActionByName(t *testing.T) {
	a, ok := ActionByName("NextTab")
	if !ok || a != ActionNextTab {
		t.Fatalf("expected ActionNextTab, got %v (%v)", a, ok)
	}
	if _, ok := ActionByName("Jump"); ok {
		t.Fatalf("expected unknown action to fail")
	}
}
