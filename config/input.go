package config

// ActionID represents a logical menu action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMenuToggle
	ActionConfirm
	ActionCancel
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionNext
	ActionPrevious
	ActionZoomIn
	ActionZoomOut
	ActionPrimary
	ActionSecondary
	ActionAltPrimary
	ActionAltSecondary
	ActionNextTab
	ActionPreviousTab
	ActionCount // Must be last - used for array sizing
)

// AxisID represents a logical analog axis
type AxisID int

const (
	AxisMoveHorizontal AxisID = iota
	AxisMoveVertical
	AxisAnalogHorizontal
	AxisAnalogVertical
	AxisCount
)

var actionNames = [ActionCount]string{
	ActionNone:         "None",
	ActionMenuToggle:   "MenuToggle",
	ActionConfirm:      "Confirm",
	ActionCancel:       "Cancel",
	ActionUp:           "Up",
	ActionDown:         "Down",
	ActionLeft:         "Left",
	ActionRight:        "Right",
	ActionNext:         "Next",
	ActionPrevious:     "Previous",
	ActionZoomIn:       "ZoomIn",
	ActionZoomOut:      "ZoomOut",
	ActionPrimary:      "Primary",
	ActionSecondary:    "Secondary",
	ActionAltPrimary:   "AltPrimary",
	ActionAltSecondary: "AltSecondary",
	ActionNextTab:      "NextTab",
	ActionPreviousTab:  "PreviousTab",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// ActionByName resolves a persisted action name.
func ActionByName(name string) (ActionID, bool) {
	for i, n := range actionNames {
		if n == name {
			return ActionID(i), true
		}
	}
	return ActionNone, false
}

// IsDirection reports whether the action moves focus.
func (a ActionID) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

var axisNames = [AxisCount]string{
	AxisMoveHorizontal:   "MoveHorizontal",
	AxisMoveVertical:     "MoveVertical",
	AxisAnalogHorizontal: "AnalogHorizontal",
	AxisAnalogVertical:   "AnalogVertical",
}

func (a AxisID) String() string {
	if a < 0 || a >= AxisCount {
		return "Unknown"
	}
	return axisNames[a]
}
