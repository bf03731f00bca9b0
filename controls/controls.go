// Package controls maps menu actions and axes to ebiten keys, gamepad
// buttons and gamepad axes, and lets players override the keys.
package controls

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	cfg "github.com/automoto/neutron/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrUnknownAction is returned for override entries naming no action.
var ErrUnknownAction = errors.New("unknown action")

// Binding lists the inputs that trigger an action.
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// AxisBinding maps a logical axis to a standard gamepad axis. Scale flips
// the axis so that up and right are positive.
type AxisBinding struct {
	Axis  ebiten.StandardGamepadAxis
	Scale float64
}

// Override is the persisted form of a rebound action.
type Override struct {
	Keys    []string `json:"keys"`
	Buttons []int    `json:"buttons,omitempty"`
}

// Table is the active binding table.
type Table struct {
	bindings map[cfg.ActionID]Binding
	axes     map[cfg.AxisID]AxisBinding
	changed  map[cfg.ActionID]bool
}

// Default returns the stock bindings.
func Default() *Table {
	return &Table{
		bindings: map[cfg.ActionID]Binding{
			cfg.ActionMenuToggle: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
			cfg.ActionConfirm: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				// A / Cross button
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			cfg.ActionCancel: {
				Keys: []ebiten.Key{ebiten.KeyBackspace},
				// B / Circle button
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
			},
			cfg.ActionUp: {
				Keys:    []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			cfg.ActionDown: {
				Keys:    []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			cfg.ActionLeft: {
				Keys:    []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			cfg.ActionRight: {
				Keys:    []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			cfg.ActionNext: {
				Keys: []ebiten.Key{ebiten.KeyPageDown},
			},
			cfg.ActionPrevious: {
				Keys: []ebiten.Key{ebiten.KeyPageUp},
			},
			cfg.ActionZoomIn: {
				Keys:    []ebiten.Key{ebiten.KeyEqual},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
			},
			cfg.ActionZoomOut: {
				Keys:    []ebiten.Key{ebiten.KeyMinus},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomLeft},
			},
			cfg.ActionPrimary: {
				Keys: []ebiten.Key{ebiten.KeyF},
				// X / Square button
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
			},
			cfg.ActionSecondary: {
				Keys: []ebiten.Key{ebiten.KeyR},
				// Y / Triangle button
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
			},
			cfg.ActionAltPrimary: {
				Keys: []ebiten.Key{ebiten.KeyG},
			},
			cfg.ActionAltSecondary: {
				Keys: []ebiten.Key{ebiten.KeyH},
			},
			cfg.ActionNextTab: {
				Keys:    []ebiten.Key{ebiten.KeyE, ebiten.KeyTab},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
			},
			cfg.ActionPreviousTab: {
				Keys:    []ebiten.Key{ebiten.KeyQ},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
			},
		},
		axes: map[cfg.AxisID]AxisBinding{
			cfg.AxisMoveHorizontal:   {Axis: ebiten.StandardGamepadAxisLeftStickHorizontal, Scale: 1},
			cfg.AxisMoveVertical:     {Axis: ebiten.StandardGamepadAxisLeftStickVertical, Scale: -1},
			cfg.AxisAnalogHorizontal: {Axis: ebiten.StandardGamepadAxisRightStickHorizontal, Scale: 1},
			cfg.AxisAnalogVertical:   {Axis: ebiten.StandardGamepadAxisRightStickVertical, Scale: -1},
		},
		changed: make(map[cfg.ActionID]bool),
	}
}

// Binding returns the inputs bound to a.
func (t *Table) Binding(a cfg.ActionID) Binding {
	return t.bindings[a]
}

// Axis returns the gamepad axis bound to a logical axis.
func (t *Table) Axis(a cfg.AxisID) (AxisBinding, bool) {
	b, ok := t.axes[a]
	return b, ok
}

// Actions returns the bound actions in ID order.
func (t *Table) Actions() []cfg.ActionID {
	out := make([]cfg.ActionID, 0, len(t.bindings))
	for a := range t.bindings {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SetKeys rebinds the keyboard keys of a.
func (t *Table) SetKeys(a cfg.ActionID, keys []ebiten.Key) {
	b := t.bindings[a]
	b.Keys = append([]ebiten.Key(nil), keys...)
	t.bindings[a] = b
	t.changed[a] = true
}

// SetButtons rebinds the gamepad buttons of a.
func (t *Table) SetButtons(a cfg.ActionID, buttons []ebiten.StandardGamepadButton) {
	b := t.bindings[a]
	b.Buttons = append([]ebiten.StandardGamepadButton(nil), buttons...)
	t.bindings[a] = b
	t.changed[a] = true
}

// Input is one picked key or gamepad button.
type Input struct {
	Key     ebiten.Key
	Button  ebiten.StandardGamepadButton
	Gamepad bool
}

// Label names the input.
func (in Input) Label() string {
	if in.Gamepad {
		return ButtonLabel(in.Button)
	}
	return KeyLabel(in.Key)
}

// Rebind makes in the only input of its device family bound to a. The
// other family keeps its bindings.
func (t *Table) Rebind(a cfg.ActionID, in Input) {
	if in.Gamepad {
		t.SetButtons(a, []ebiten.StandardGamepadButton{in.Button})
		return
	}
	t.SetKeys(a, []ebiten.Key{in.Key})
}

// FirstKey names the first input bound to a for the device family.
func (t *Table) FirstKey(a cfg.ActionID, gamepad bool) string {
	b := t.bindings[a]
	if gamepad {
		if len(b.Buttons) > 0 {
			return ButtonLabel(b.Buttons[0])
		}
		return ""
	}
	if len(b.Keys) > 0 {
		return KeyLabel(b.Keys[0])
	}
	return ""
}

// Labels names every input bound to a for the device family.
func (t *Table) Labels(a cfg.ActionID, gamepad bool) []string {
	b := t.bindings[a]
	var out []string
	if gamepad {
		for _, btn := range b.Buttons {
			out = append(out, ButtonLabel(btn))
		}
		return out
	}
	for _, k := range b.Keys {
		out = append(out, KeyLabel(k))
	}
	return out
}

// Overrides returns the rebound actions keyed by action name.
func (t *Table) Overrides() map[string]Override {
	out := make(map[string]Override, len(t.changed))
	for a := range t.changed {
		b := t.bindings[a]
		o := Override{}
		for _, k := range b.Keys {
			o.Keys = append(o.Keys, k.String())
		}
		for _, btn := range b.Buttons {
			o.Buttons = append(o.Buttons, int(btn))
		}
		out[a.String()] = o
	}
	return out
}

// ApplyOverrides rebinds the actions named in overrides. Entries are
// applied until the first invalid one.
func (t *Table) ApplyOverrides(overrides map[string]Override) error {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		a, ok := cfg.ActionByName(name)
		if !ok || a == cfg.ActionNone {
			return fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		o := overrides[name]

		keys := make([]ebiten.Key, 0, len(o.Keys))
		for _, raw := range o.Keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(raw)); err != nil {
				return fmt.Errorf("action %s: %w", name, err)
			}
			keys = append(keys, k)
		}
		t.SetKeys(a, keys)

		if len(o.Buttons) > 0 {
			buttons := make([]ebiten.StandardGamepadButton, 0, len(o.Buttons))
			for _, raw := range o.Buttons {
				if raw < 0 || raw > int(ebiten.StandardGamepadButtonMax) {
					return fmt.Errorf("action %s: invalid gamepad button %d", name, raw)
				}
				buttons = append(buttons, ebiten.StandardGamepadButton(raw))
			}
			t.SetButtons(a, buttons)
		}
	}
	return nil
}

// KeyLabel is the short name shown in key hints.
func KeyLabel(k ebiten.Key) string {
	switch k {
	case ebiten.KeyEnter:
		return "Enter"
	case ebiten.KeyEscape:
		return "Esc"
	case ebiten.KeyBackspace:
		return "Backspace"
	case ebiten.KeySpace:
		return "Space"
	case ebiten.KeyArrowUp:
		return "Up"
	case ebiten.KeyArrowDown:
		return "Down"
	case ebiten.KeyArrowLeft:
		return "Left"
	case ebiten.KeyArrowRight:
		return "Right"
	}
	return strings.TrimPrefix(k.String(), "Key")
}

var buttonLabels = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonRightBottom:      "A",
	ebiten.StandardGamepadButtonRightRight:       "B",
	ebiten.StandardGamepadButtonRightLeft:        "X",
	ebiten.StandardGamepadButtonRightTop:         "Y",
	ebiten.StandardGamepadButtonFrontTopLeft:     "LB",
	ebiten.StandardGamepadButtonFrontTopRight:    "RB",
	ebiten.StandardGamepadButtonFrontBottomLeft:  "LT",
	ebiten.StandardGamepadButtonFrontBottomRight: "RT",
	ebiten.StandardGamepadButtonCenterLeft:       "Back",
	ebiten.StandardGamepadButtonCenterRight:      "Start",
	ebiten.StandardGamepadButtonLeftTop:          "D-Up",
	ebiten.StandardGamepadButtonLeftBottom:       "D-Down",
	ebiten.StandardGamepadButtonLeftLeft:         "D-Left",
	ebiten.StandardGamepadButtonLeftRight:        "D-Right",
}

// ButtonLabel is the Xbox style name of a standard gamepad button.
func ButtonLabel(b ebiten.StandardGamepadButton) string {
	if l, ok := buttonLabels[b]; ok {
		return l
	}
	return fmt.Sprintf("Button %d", int(b))
}
