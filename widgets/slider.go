package widgets

import (
	"math"

	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/navigation"
	"github.com/automoto/neutron/shared/gamemath"
)

// SliderConfig describes a Slider.
type SliderConfig struct {
	Min, Max float64
	// Step is the amount one key press or stick push moves the value.
	Step  float64
	Value float64

	OnValueChanged func(v float64)
}

// Slider is a button holding a value in [Min, Max]. Left and right step the
// value through the owning panel; a pushed analog stick steps it directly,
// once per bar animation.
type Slider struct {
	*Button

	conf  SliderConfig
	value float64
	bar   float64
}

// NewSlider creates a slider. The inner button is what the panel registers.
func NewSlider(menu Menu, parent navigation.Node, label string, conf SliderConfig, opts ...ButtonOpt) *Slider {
	if conf.Max < conf.Min {
		conf.Min, conf.Max = conf.Max, conf.Min
	}
	if conf.Step <= 0 {
		conf.Step = (conf.Max - conf.Min) / 10
	}
	s := &Slider{conf: conf}
	s.value = s.clamp(conf.Value)
	s.bar = s.value
	s.Button = NewButton(menu, parent, label, append(opts, WithAnalog(s.analogInput))...)
	return s
}

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

func (s *Slider) Min() float64 { return s.conf.Min }
func (s *Slider) Max() float64 { return s.conf.Max }

// SetValue moves the slider without running the change callback.
func (s *Slider) SetValue(v float64) {
	s.value = s.clamp(v)
	s.bar = s.value
}

// Step moves the value by dir steps, snapped to the step grid and clamped
// to the range. It reports whether the value changed.
func (s *Slider) Step(dir int) bool {
	n := math.Round((s.value-s.conf.Min)/s.conf.Step) + float64(dir)
	return s.change(s.conf.Min + n*s.conf.Step)
}

// Fill is the animated bar position in [0, 1].
func (s *Slider) Fill() float64 {
	r := s.conf.Max - s.conf.Min
	if r <= 0 {
		return 0
	}
	return (s.bar - s.conf.Min) / r
}

// Tick animates the button and moves the bar toward the value.
func (s *Slider) Tick(dt float64) {
	s.Button.Tick(dt)
	speed := cfg.UI.SliderSpeed * (s.conf.Max - s.conf.Min)
	s.bar = gamemath.StepToward(s.bar, s.value, speed*dt)
}

// analogInput steps once the bar caught up with the last step, so holding
// the stick repeats at the bar speed.
func (s *Slider) analogInput(v float64) bool {
	if s.bar != s.value {
		return true
	}
	thr := cfg.UI.SliderStepThreshold
	switch {
	case v >= thr:
		s.Step(1)
	case v <= -thr:
		s.Step(-1)
	}
	return true
}

func (s *Slider) change(v float64) bool {
	v = s.clamp(v)
	if v == s.value {
		return false
	}
	s.value = v
	if s.conf.OnValueChanged != nil {
		s.conf.OnValueChanged(v)
	}
	return true
}

func (s *Slider) clamp(v float64) float64 {
	return gamemath.Clamp(v, s.conf.Min, s.conf.Max)
}
