package navigation

import "errors"

// Contract violations. Callers may log and carry on; nothing changes state
// when one of these is returned.
var (
	ErrNilElement         = errors.New("navigation: nil element")
	ErrAlreadyRegistered  = errors.New("navigation: element already registered")
	ErrNotRegistered      = errors.New("navigation: element not registered in panel")
	ErrNotFocusable       = errors.New("navigation: element cannot take focus")
	ErrNilPanel           = errors.New("navigation: nil panel")
	ErrPanelActive        = errors.New("navigation: another panel is active")
	ErrNoActivePanel      = errors.New("navigation: no active panel")
	ErrModalAlreadyActive = errors.New("navigation: a modal panel is already active")
	ErrNoModalActive      = errors.New("navigation: no modal panel to clear")
)
