package config

import (
	"image/color"
	"time"
)

// UIConfig contains the timing and easing constants shared by every widget
type UIConfig struct {
	// Easing exponents
	EaseLight    float64 `toml:"ease_light"`
	EaseStandard float64 `toml:"ease_standard"`
	EaseStrong   float64 `toml:"ease_strong"`

	// Fade durations in seconds
	FadeDurationMinimal float64 `toml:"fade_duration_minimal"`
	FadeDurationShort   float64 `toml:"fade_duration_short"`
	FadeDurationLong    float64 `toml:"fade_duration_long"`

	// Alpha below which blur effects stay off
	BlurAlphaOffset float64 `toml:"blur_alpha_offset"`

	// Analog stick navigation
	AnalogNavThreshold float64 `toml:"analog_nav_threshold"`
	AnalogNavMinPeriod float64 `toml:"analog_nav_min_period"`
	AnalogNavMaxPeriod float64 `toml:"analog_nav_max_period"`

	// Pointer drag smoothing window
	PointerSmoothingPeriod float64 `toml:"pointer_smoothing_period"`

	// Max seconds between two clicks of a double click
	DoubleClickTime float64 `toml:"double_click_time"`

	// Button color/size animations
	ButtonAnimationDuration float64 `toml:"button_animation_duration"`

	// Slider bar speed in ranges per second, and the analog deflection
	// needed for one step
	SliderSpeed         float64 `toml:"slider_speed"`
	SliderStepThreshold float64 `toml:"slider_step_threshold"`

	// Seconds a transition may stay black waiting on its condition, 0 = forever
	TransitionTimeout float64 `toml:"transition_timeout"`
}

// MenuConfig contains menu layout and color values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TextColorDisabled color.RGBA
	ButtonColor       color.RGBA
	ButtonColorFocus  color.RGBA
	HighlightColor    color.RGBA
	ModalOverlayColor color.RGBA
	ModalColor        color.RGBA
	TitleY            float64
	MenuStartY        float64
	ButtonWidth       float64
	ButtonHeight      float64
	ButtonGap         float64
	TabBarY           float64
	TabWidth          float64
	ListVisibleRows   int
	TooltipY          float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	SkipMenu  bool // Start with the menu closed
	ShowFocus bool // Outline every registered element
}

// LogConfig controls the structured logger
type LogConfig struct {
	Level string
	Path  string
}

// WorldConfig describes the stand-in level loaded behind the menu
type WorldConfig struct {
	Name      string
	LoadSteps int           // Progress updates during a load
	LoadStep  time.Duration // Simulated work per step
	Speed     float64       // Marker speed in pixels per second
}

// Global configuration instances
var C *Config
var UI UIConfig
var Menu MenuConfig
var Debug DebugConfig
var Log LogConfig
var World WorldConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray         = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	UI = DefaultUI()

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TextColorDisabled: Gray,
		ButtonColor:       color.RGBA{R: 40, G: 50, B: 80, A: 255},
		ButtonColorFocus:  DarkBlue,
		HighlightColor:    LightBlue,
		ModalOverlayColor: BlackOverlay,
		ModalColor:        color.RGBA{R: 25, G: 35, B: 60, A: 255},
		TitleY:            40,
		MenuStartY:        110,
		ButtonWidth:       180,
		ButtonHeight:      26,
		ButtonGap:         8,
		TabBarY:           70,
		TabWidth:          110,
		ListVisibleRows:   6,
		TooltipY:          310,
	}

	Debug = DebugConfig{
		SkipMenu:  false,
		ShowFocus: false,
	}

	Log = LogConfig{
		Level: "info",
	}

	World = WorldConfig{
		Name:      "Proving Grounds",
		LoadSteps: 20,
		LoadStep:  60 * time.Millisecond,
		Speed:     90,
	}
}

// DefaultUI returns the stock UI timings.
func DefaultUI() UIConfig {
	return UIConfig{
		EaseLight:    1.5,
		EaseStandard: 2,
		EaseStrong:   4,

		FadeDurationMinimal: 0.1,
		FadeDurationShort:   0.25,
		FadeDurationLong:    0.4,

		BlurAlphaOffset: 0.25,

		AnalogNavThreshold: 0.25,
		AnalogNavMinPeriod: 0.2,
		AnalogNavMaxPeriod: 1.0,

		PointerSmoothingPeriod: 0.2,

		DoubleClickTime: 0.3,

		ButtonAnimationDuration: 0.2,

		SliderSpeed:         2,
		SliderStepThreshold: 0.8,

		TransitionTimeout: 0,
	}
}
