package systems

import (
	"math"

	"github.com/automoto/neutron/components"
	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/controls"
	"github.com/automoto/neutron/menu"
	"github.com/automoto/neutron/ui"
	"github.com/automoto/neutron/widgets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// doubleClickSlop is how far in pixels the pointer may move between the two
// clicks of a double click.
const doubleClickSlop = 4

// GetMenu returns the shared menu state, or nil when the scene has none.
func GetMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		return nil
	}
	return components.Menu.Get(entry)
}

// UpdateMenu routes input to the menu manager and advances every menu
// animation. Must run AFTER the input system.
func UpdateMenu(e *ecs.ECS) {
	data := GetMenu(e)
	if data == nil {
		return
	}
	input := getOrCreateInput(e)
	mgr := data.Manager
	dt := 1.0 / float64(ebiten.TPS())
	data.Clock += dt

	mgr.SetUsingGamepad(input.LastInputMethod.IsGamepad())

	// A row waiting for a binding takes every key, the toggle included
	binding := data.Main.IsBindingKey()
	if GetAction(input, cfg.ActionMenuToggle).JustPressed && !binding {
		toggleMenu(data)
	}

	if mgr.InputFocus() == menu.FocusMenu && mgr.IsIdle() && !data.Hints.IsTyping() {
		if binding {
			pollBinding(data.Main)
		} else {
			routeActions(mgr, input)
			routePointer(data, input)
		}
	}

	mgr.Tick(dt)
	data.Main.Tick(dt)
	if data.Dots != nil {
		data.Dots.Update(int(data.Clock*3)%data.Dots.Len(), dt)
	}
	if mgr.IsMenuOpen() {
		data.Hints.Update(mgr, data.Catalog, data.Main)
	}
}

// toggleMenu pauses into the menu or resumes out of it. The title screen
// has nothing to resume, so the toggle only works in game.
func toggleMenu(data *components.MenuData) {
	mgr := data.Manager
	if !data.Main.InGame() || !mgr.IsIdle() {
		return
	}
	if mgr.IsMenuOpen() {
		if !mgr.IsModalActive() {
			data.Main.Play.Resume.Click()
		}
		return
	}
	mgr.PlaySound(cfg.SoundMenuOpen)
	mgr.OpenMenu(nil, nil)
}

// Reusable buffer for the keys pressed this frame
var pressedKeys []ebiten.Key

// pollBinding hands the first key or gamepad button pressed this frame to
// the waiting controls row. Escape backs out.
func pollBinding(mm *ui.MainMenu) {
	pressedKeys = inpututil.AppendJustPressedKeys(pressedKeys[:0])
	if len(pressedKeys) > 0 {
		if k := pressedKeys[0]; k == ebiten.KeyEscape {
			mm.CancelBinding()
		} else {
			mm.PickBinding(controls.Input{Key: k})
		}
		return
	}

	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for btn := ebiten.StandardGamepadButton(0); btn <= ebiten.StandardGamepadButtonMax; btn++ {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				mm.PickBinding(controls.Input{Button: btn, Gamepad: true})
				return
			}
		}
	}
}

func routeActions(mgr *menu.Manager, input *components.InputData) {
	for a := cfg.ActionNone + 1; a < cfg.ActionCount; a++ {
		if a == cfg.ActionMenuToggle {
			continue
		}
		if GetAction(input, a).JustPressed {
			mgr.HandleAction(a)
		}
	}

	mgr.HandleNavigationAxis(cfg.AxisMoveHorizontal, input.Axes[cfg.AxisMoveHorizontal])
	mgr.HandleNavigationAxis(cfg.AxisMoveVertical, input.Axes[cfg.AxisMoveVertical])
	mgr.SetAnalogInput(input.Axes[cfg.AxisAnalogHorizontal], input.Axes[cfg.AxisAnalogVertical])
}

func routePointer(data *components.MenuData, input *components.InputData) {
	mgr := data.Manager
	mgr.SetPointer(input.PointerX, input.PointerY, input.PointerPressed)
	if mgr.IsUsingGamepad() {
		return
	}

	hovered := data.Main.HitTest(input.PointerX, input.PointerY)
	if input.PointerMoved || input.PointerJustPressed {
		for _, b := range data.Main.Buttons() {
			b.SetHovered(b == hovered)
		}
	}

	if input.PointerJustPressed && hovered != nil {
		clickButton(data, hovered, input.PointerX, input.PointerY)
	}

	switch {
	case input.Wheel > 0:
		mgr.HandleAction(cfg.ActionPrevious)
	case input.Wheel < 0:
		mgr.HandleAction(cfg.ActionNext)
	}
}

func clickButton(data *components.MenuData, b *widgets.Button, x, y float64) {
	double := data.Clock-data.LastClickTime <= cfg.UI.DoubleClickTime &&
		math.Hypot(x-data.LastClickX, y-data.LastClickY) <= doubleClickSlop
	if double {
		b.DoubleClick()
		// A third click starts a new pair
		data.LastClickTime = math.Inf(-1)
		return
	}
	b.Click()
	data.LastClickTime = data.Clock
	data.LastClickX, data.LastClickY = x, y
}
