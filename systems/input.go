package systems

import (
	"math"
	"strings"

	"github.com/automoto/neutron/components"
	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/controls"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// NewUpdateInput creates the system that polls raw input through bindings
// into the Input component. Must run BEFORE UpdateMenu in the system order.
func NewUpdateInput(bindings *controls.Table) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}
		input.Axes = [cfg.AxisCount]float64{}

		gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

		// Track which input method was used this frame
		var keyboardUsed, gamepadUsed bool
		var activeGamepadID ebiten.GamepadID

		for _, actionID := range bindings.Actions() {
			binding := bindings.Binding(actionID)
			for _, key := range binding.Keys {
				if ebiten.IsKeyPressed(key) {
					input.Current[actionID] = true
					keyboardUsed = true
				}
			}

			for _, gpID := range gamepadIDs {
				if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
					continue
				}
				for _, btn := range binding.Buttons {
					if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
						input.Current[actionID] = true
						gamepadUsed = true
						activeGamepadID = gpID
					}
				}
			}
		}

		// Strongest deflection across pads wins per axis
		for axis := cfg.AxisID(0); axis < cfg.AxisCount; axis++ {
			ab, ok := bindings.Axis(axis)
			if !ok {
				continue
			}
			for _, gpID := range gamepadIDs {
				if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
					continue
				}
				v := ebiten.StandardGamepadAxisValue(gpID, ab.Axis) * ab.Scale
				if math.Abs(v) > math.Abs(input.Axes[axis]) {
					input.Axes[axis] = v
				}
				if math.Abs(v) > cfg.UI.AnalogNavThreshold {
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}

		if pollPointer(input) {
			keyboardUsed = true
		}

		// Update last input method - gamepad takes priority if both used
		if gamepadUsed {
			input.LastInputMethod = getControllerType(activeGamepadID)
		} else if keyboardUsed {
			input.LastInputMethod = components.InputKeyboard
		}
	}
}

// pollPointer reads the mouse and reports whether it was used this frame.
func pollPointer(input *components.InputData) bool {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	input.PointerMoved = x != input.PointerX || y != input.PointerY
	input.PointerX, input.PointerY = x, y
	input.PointerPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	input.PointerJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	_, input.Wheel = ebiten.Wheel()

	return input.PointerMoved || input.PointerPressed || input.Wheel != 0
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	method := controllerTypeFromName(name)
	controllerTypeCache[gpID] = method
	return method
}

func controllerTypeFromName(name string) components.InputMethod {
	for _, marker := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(name, marker) {
			return components.InputPlayStation
		}
	}
	// Default gamepad to Xbox-style
	return components.InputXbox
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
