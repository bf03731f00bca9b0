package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// ErrInvalidUI is returned when a UI timing file holds unusable values.
var ErrInvalidUI = errors.New("invalid ui config")

// EnvOverrides holds the settings that can be changed from the environment
type EnvOverrides struct {
	LogLevel          string  `env:"NEUTRON_LOG_LEVEL"`
	LogPath           string  `env:"NEUTRON_LOG_PATH"`
	UIFile            string  `env:"NEUTRON_UI_FILE"`
	Locale            string  `env:"NEUTRON_LOCALE"`
	TransitionTimeout float64 `env:"NEUTRON_TRANSITION_TIMEOUT" envDefault:"-1"`
	SkipMenu          bool    `env:"NEUTRON_SKIP_MENU"`
	ShowFocus         bool    `env:"NEUTRON_SHOW_FOCUS"`
}

// LoadEnv reads overrides from the process environment.
func LoadEnv() (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.Parse(&o); err != nil {
		return o, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}

// LoadEnvFrom reads overrides from the given variables instead of the
// process environment.
func LoadEnvFrom(environ map[string]string) (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.ParseWithOptions(&o, env.Options{Environment: environ}); err != nil {
		return o, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}

// Apply copies the set overrides into the global configuration.
func (o EnvOverrides) Apply() {
	if o.LogLevel != "" {
		Log.Level = o.LogLevel
	}
	if o.LogPath != "" {
		Log.Path = o.LogPath
	}
	if o.Locale != "" {
		SettingsMenu.DefaultLocale = o.Locale
	}
	if o.TransitionTimeout >= 0 {
		UI.TransitionTimeout = o.TransitionTimeout
	}
	if o.SkipMenu {
		Debug.SkipMenu = true
	}
	if o.ShowFocus {
		Debug.ShowFocus = true
	}
}

// DecodeUI overlays TOML-encoded timings on base. Keys missing from the
// document keep their base value; unknown keys are an error.
func DecodeUI(data string, base UIConfig) (UIConfig, error) {
	cfg := base
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return base, fmt.Errorf("decode ui config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return base, fmt.Errorf("%w: unknown keys %s", ErrInvalidUI, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// LoadUIFile overlays the TOML file at path on the current UI config.
func LoadUIFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read ui config %s: %w", path, err)
	}
	cfg, err := DecodeUI(string(data), UI)
	if err != nil {
		return err
	}
	UI = cfg
	return nil
}

// Validate rejects timings the widgets cannot run with.
func (c UIConfig) Validate() error {
	durations := map[string]float64{
		"fade_duration_minimal":     c.FadeDurationMinimal,
		"fade_duration_short":       c.FadeDurationShort,
		"fade_duration_long":        c.FadeDurationLong,
		"button_animation_duration": c.ButtonAnimationDuration,
		"pointer_smoothing_period":  c.PointerSmoothingPeriod,
		"slider_speed":              c.SliderSpeed,
	}
	for name, v := range durations {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidUI, name, v)
		}
	}
	if c.AnalogNavThreshold < 0 || c.AnalogNavThreshold >= 1 {
		return fmt.Errorf("%w: analog_nav_threshold must be in [0, 1), got %v", ErrInvalidUI, c.AnalogNavThreshold)
	}
	if c.SliderStepThreshold <= 0 || c.SliderStepThreshold > 1 {
		return fmt.Errorf("%w: slider_step_threshold must be in (0, 1], got %v", ErrInvalidUI, c.SliderStepThreshold)
	}
	if c.AnalogNavMinPeriod > c.AnalogNavMaxPeriod {
		return fmt.Errorf("%w: analog_nav_min_period exceeds analog_nav_max_period", ErrInvalidUI)
	}
	if c.TransitionTimeout < 0 {
		return fmt.Errorf("%w: transition_timeout must not be negative", ErrInvalidUI)
	}
	return nil
}
