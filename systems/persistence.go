package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/controls"
	"github.com/automoto/neutron/logging"
	"github.com/automoto/neutron/shared/gamemath"
	"github.com/automoto/neutron/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const settingsItem = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume       float64                      `json:"sfxVolume"`
	Fullscreen      bool                         `json:"fullscreen"`
	ResolutionIndex int                          `json:"resolutionIndex"`
	Locale          string                       `json:"locale"`
	Bindings        map[string]controls.Override `json:"bindings,omitempty"`
}

// DefaultSettings returns the settings used before anything was saved.
func DefaultSettings() *SavedSettings {
	return &SavedSettings{
		SFXVolume:       cfg.Audio.DefaultSFXVol,
		ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
		Locale:          cfg.SettingsMenu.DefaultLocale,
	}
}

// itemStore is the slice of gdata.Manager the settings need.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var settingsStore itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "neutron",
	})
	if err != nil {
		logging.Logger().Warn("could not initialize persistence", "error", err)
		return err
	}
	settingsStore = m
	return nil
}

// LoadSettings loads settings from disk. Missing or unusable data yields
// the defaults; a parse error is returned alongside them.
func LoadSettings() (*SavedSettings, error) {
	if settingsStore == nil {
		return DefaultSettings(), nil
	}

	data, err := settingsStore.LoadItem(settingsItem)
	if err != nil {
		logging.Logger().Warn("could not load settings", "error", err)
		return DefaultSettings(), nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return DefaultSettings(), nil
	}

	s, err := DecodeSettings(data)
	if err != nil {
		logging.Logger().Warn("could not parse saved settings", "error", err)
		return DefaultSettings(), err
	}
	return s, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if settingsStore == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := settingsStore.SaveItem(settingsItem, data); err != nil {
		logging.Logger().Warn("could not save settings", "error", err)
		return fmt.Errorf("save settings: %w", err)
	}
	logging.Logger().Debug("settings saved", "bytes", len(data))
	return nil
}

// DecodeSettings parses saved settings and clamps out of range values.
func DecodeSettings(data []byte) (*SavedSettings, error) {
	s := DefaultSettings()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	s.SFXVolume = gamemath.Clamp(s.SFXVolume, 0, 1)
	if s.ResolutionIndex < 0 || s.ResolutionIndex >= len(cfg.SettingsMenu.Resolutions) {
		s.ResolutionIndex = cfg.SettingsMenu.DefaultResolutionIndex
	}
	if s.Locale == "" {
		s.Locale = cfg.SettingsMenu.DefaultLocale
	}
	return s, nil
}

// MenuSettings converts saved settings to what the menu edits.
func (s *SavedSettings) MenuSettings() ui.Settings {
	return ui.Settings{
		SFXVolume:  s.SFXVolume,
		Fullscreen: s.Fullscreen,
		Locale:     s.Locale,
	}
}

// Update copies the menu choices and the current bindings into s.
func (s *SavedSettings) Update(m ui.Settings, bindings *controls.Table) {
	s.SFXVolume = m.SFXVolume
	s.Fullscreen = m.Fullscreen
	s.Locale = m.Locale
	if bindings != nil {
		s.Bindings = bindings.Overrides()
	}
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before scenes are created and whenever the menu
// changes a setting.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	SetSFXVolume(saved.SFXVolume)

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
