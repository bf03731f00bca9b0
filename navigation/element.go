// Package navigation implements keyboard and gamepad focus for menus: the
// per-panel focus graph with spatial search, navigation panels, and the
// navigator that owns the active panel and its single modal override.
package navigation

import (
	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/shared/gamemath"
)

// Direction is a navigation direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "none"
}

// DirectionFromAction maps a directional action to its Direction.
func DirectionFromAction(a cfg.ActionID) Direction {
	switch a {
	case cfg.ActionUp:
		return DirectionUp
	case cfg.ActionDown:
		return DirectionDown
	case cfg.ActionLeft:
		return DirectionLeft
	case cfg.ActionRight:
		return DirectionRight
	}
	return DirectionNone
}

// Node is anything placed in the widget tree.
type Node interface {
	Parent() Node
}

// Focusable is a control that can receive navigation focus.
type Focusable interface {
	Node
	Bounds() gamemath.Rect
	IsEnabled() bool
	// IsFocusable reports the focusable attribute.
	IsFocusable() bool
	// IsVisible reports whether the control is on screen and can take
	// keyboard focus right now.
	IsVisible() bool
	IsFocused() bool
	SetFocused(focused bool)
}

// Clickable is a Focusable that can be activated.
type Clickable interface {
	Focusable
	Click()
}

// ActionButton is a button bound to a global action key.
type ActionButton interface {
	Clickable
	Action() cfg.ActionID
	// IsActionFocusable reports whether firing the action through its key
	// should hand focus back to the panel default afterwards.
	IsActionFocusable() bool
}

// AnalogReceiver is implemented by focused controls that consume analog
// input themselves, sliders for instance. The methods report whether the
// input was used.
type AnalogReceiver interface {
	HorizontalAnalogInput(v float64) bool
	VerticalAnalogInput(v float64) bool
}

// CanFocus reports whether f can take focus now.
func CanFocus(f Focusable) bool {
	return f != nil && f.IsFocusable() && f.IsVisible()
}

// IsDescendant walks n's parents looking for ancestor.
func IsDescendant(ancestor, n Node) bool {
	if ancestor == nil || n == nil {
		return false
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p == ancestor {
			return true
		}
	}
	return false
}
