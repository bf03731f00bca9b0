package widgets

import (
	"math"

	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/navigation"
	"github.com/automoto/neutron/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ButtonOpt configures a Button.
type ButtonOpt func(*Button)

// WithBounds places the button on screen.
func WithBounds(r gamemath.Rect) ButtonOpt {
	return func(b *Button) { b.bounds = r }
}

// WithTooltip sets the help text shown while the button is focused or
// hovered.
func WithTooltip(text string) ButtonOpt {
	return func(b *Button) { b.tooltip = text }
}

// WithOnClick sets the click callback.
func WithOnClick(fn func()) ButtonOpt {
	return func(b *Button) { b.onClicked = fn }
}

// WithOnDoubleClick sets the double click callback. Without one a double
// click is a click.
func WithOnDoubleClick(fn func()) ButtonOpt {
	return func(b *Button) { b.onDoubleClicked = fn }
}

// WithOnFocus sets a callback run when the button gains focus.
func WithOnFocus(fn func()) ButtonOpt {
	return func(b *Button) { b.onFocused = fn }
}

// WithAction binds the button to an action key. focusable decides whether
// the panel navigation resets after the key fired a focused button.
func WithAction(a cfg.ActionID, focusable bool) ButtonOpt {
	return func(b *Button) {
		b.action = a
		b.actionFocusable = focusable
	}
}

// WithToggle makes the button flip its active state on click.
func WithToggle(active bool) ButtonOpt {
	return func(b *Button) {
		b.toggle = true
		b.active = active
	}
}

// WithEnabled sets a predicate deciding whether the button can be used.
func WithEnabled(fn func() bool) ButtonOpt {
	return func(b *Button) { b.enabledFn = fn }
}

// WithVisible sets a predicate deciding whether the button is shown.
func WithVisible(fn func() bool) ButtonOpt {
	return func(b *Button) { b.visibleFn = fn }
}

// WithFocusable sets the focusable attribute. Buttons are focusable by
// default.
func WithFocusable(focusable bool) ButtonOpt {
	return func(b *Button) { b.focusable = focusable }
}

// WithSound overrides the click sound. SoundNone stays silent.
func WithSound(id cfg.SoundID) ButtonOpt {
	return func(b *Button) { b.sound = id }
}

// WithAnalog hands analog stick input to h while the button is focused on a
// gamepad. h reports whether it used the input.
func WithAnalog(h func(v float64) bool) ButtonOpt {
	return func(b *Button) { b.analog = h }
}

// Button is a focusable, clickable menu control. It implements
// navigation.ActionButton and navigation.AnalogReceiver.
type Button struct {
	menu   Menu
	parent navigation.Node
	bounds gamemath.Rect

	label   string
	tooltip string

	enabledFn       func() bool
	visibleFn       func() bool
	focusable       bool
	focused         bool
	hovered         bool
	toggle          bool
	active          bool
	action          cfg.ActionID
	actionFocusable bool
	sound           cfg.SoundID

	onClicked       func()
	onDoubleClicked func()
	onFocused       func()
	analog          func(float64) bool

	colorAlpha    float64
	sizeAlpha     float64
	disabledAlpha float64
	sinceClick    float64

	pulse      *gween.Tween
	pulseValue float64
}

// NewButton creates a button owned by parent.
func NewButton(menu Menu, parent navigation.Node, label string, opts ...ButtonOpt) *Button {
	b := &Button{
		menu:       menu,
		parent:     parent,
		label:      label,
		focusable:  true,
		sound:      cfg.SoundMenuSelect,
		sinceClick: math.Inf(1),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Button) Parent() navigation.Node     { return b.parent }
func (b *Button) Bounds() gamemath.Rect       { return b.bounds }
func (b *Button) SetBounds(r gamemath.Rect)   { b.bounds = r }
func (b *Button) Label() string               { return b.label }
func (b *Button) SetLabel(label string)       { b.label = label }
func (b *Button) Tooltip() string             { return b.tooltip }
func (b *Button) SetTooltip(text string)      { b.tooltip = text }
func (b *Button) Action() cfg.ActionID        { return b.action }
func (b *Button) IsActionFocusable() bool     { return b.actionFocusable }
func (b *Button) IsFocusable() bool           { return b.focusable }
func (b *Button) SetFocusable(focusable bool) { b.focusable = focusable }
func (b *Button) IsFocused() bool             { return b.focused }
func (b *Button) IsHovered() bool             { return b.hovered }
func (b *Button) IsToggle() bool              { return b.toggle }
func (b *Button) IsActive() bool              { return b.active }
func (b *Button) SetActive(active bool)       { b.active = active }

// IsEnabled reports whether the button reacts to clicks.
func (b *Button) IsEnabled() bool {
	return b.enabledFn == nil || b.enabledFn()
}

// IsVisible reports whether the button is shown.
func (b *Button) IsVisible() bool {
	return b.visibleFn == nil || b.visibleFn()
}

// SetFocused updates the focus flag and the tooltip.
func (b *Button) SetFocused(focused bool) {
	if focused == b.focused {
		return
	}
	b.focused = focused
	if focused {
		if b.menu != nil {
			b.menu.ShowTooltip(b, b.tooltip)
		}
		if b.onFocused != nil {
			b.onFocused()
		}
	} else if b.menu != nil {
		b.menu.HideTooltip(b)
	}
}

// SetHovered reports pointer hover. Hover is ignored on a gamepad.
func (b *Button) SetHovered(hovered bool) {
	if hovered == b.hovered {
		return
	}
	if hovered && b.menu != nil && b.menu.IsUsingGamepad() {
		return
	}
	b.hovered = hovered
	if b.menu == nil {
		return
	}
	if hovered {
		b.menu.ShowTooltip(b, b.tooltip)
	} else {
		b.menu.HideTooltip(b)
	}
}

// Click activates the button: toggles it, takes focus, runs the callback
// and plays the click sound. Disabled buttons ignore clicks.
func (b *Button) Click() {
	if !b.IsEnabled() {
		return
	}
	if b.toggle {
		b.active = !b.active
	}

	b.sinceClick = 0
	b.pulse = gween.New(1, 0, float32(cfg.UI.ButtonAnimationDuration), ease.OutQuad)

	if b.menu != nil && navigation.CanFocus(b) {
		_ = b.menu.SetFocused(b, false)
	}
	if b.onClicked != nil {
		b.onClicked()
	}
	if b.menu != nil && b.sound != cfg.SoundNone {
		b.menu.PlaySound(b.sound)
	}
}

// HorizontalAnalogInput passes v to the analog handler, if any.
func (b *Button) HorizontalAnalogInput(v float64) bool {
	return b.analog != nil && b.IsEnabled() && b.analog(v)
}

// VerticalAnalogInput is never used by buttons.
func (b *Button) VerticalAnalogInput(v float64) bool { return false }

// DoubleClick runs the double click callback, or clicks.
func (b *Button) DoubleClick() {
	if !b.IsEnabled() {
		return
	}
	if b.onDoubleClicked != nil {
		b.onDoubleClicked()
		return
	}
	b.Click()
}

// Tick advances the focus, size and disabled animations.
func (b *Button) Tick(dt float64) {
	var targetColor, targetSize, targetDisabled float64

	if b.IsEnabled() {
		if b.focused {
			targetColor = 1
			targetSize = 1
		}
		if b.hovered {
			targetSize = 0.75
		}
	} else {
		if b.focused {
			targetSize = 1
		}
		targetDisabled = 1
	}
	if b.sinceClick < cfg.UI.ButtonAnimationDuration {
		targetSize = 0.5
	}

	step := dt / cfg.UI.ButtonAnimationDuration
	b.colorAlpha = gamemath.StepToward(b.colorAlpha, targetColor, step)
	b.sizeAlpha = gamemath.StepToward(b.sizeAlpha, targetSize, step)
	b.disabledAlpha = gamemath.StepToward(b.disabledAlpha, targetDisabled, step)

	b.sinceClick += dt

	if b.pulse != nil {
		v, done := b.pulse.Update(float32(dt))
		b.pulseValue = float64(v)
		if done {
			b.pulse = nil
			b.pulseValue = 0
		}
	}
}

// ColorAlpha is the eased focus highlight amount.
func (b *Button) ColorAlpha() float64 {
	return gamemath.EaseInOut(b.colorAlpha, cfg.UI.EaseLight)
}

// SizeAlpha is the eased focus growth amount.
func (b *Button) SizeAlpha() float64 {
	return gamemath.EaseInOut(b.sizeAlpha, cfg.UI.EaseLight)
}

// DisabledAlpha is the eased disabled tint amount.
func (b *Button) DisabledAlpha() float64 {
	return gamemath.EaseInOut(b.disabledAlpha, cfg.UI.EaseLight)
}

// Pulse is the click flash, 1 right after a click and decaying to 0.
func (b *Button) Pulse() float64 {
	return b.pulseValue
}

// Contains reports whether a screen point lies on the button.
func (b *Button) Contains(x, y float64) bool {
	return b.IsVisible() && b.bounds.Contains(x, y)
}
